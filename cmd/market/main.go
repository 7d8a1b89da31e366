package main

import "github.com/light-bringer/market-service/cmd/market/commands"

func main() {
	commands.Execute()
}
