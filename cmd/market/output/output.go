package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/light-bringer/market-service/internal/app/product/domain"
)

var (
	// Color styles for terminal output
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	primaryStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Print(successStyle.Render("✓ "))
	fmt.Printf(format+"\n", args...)
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Print(warningStyle.Render("⚠ "))
	fmt.Printf(format+"\n", args...)
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Print(errorStyle.Render("✗ "))
	fmt.Printf(format+"\n", args...)
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Print(infoStyle.Render("ℹ "))
	fmt.Printf(format+"\n", args...)
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Products writes a product table, or a muted notice when there is none.
func Products(w io.Writer, views []*domain.ProductView) {
	if len(views) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No products."))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, primaryStyle.Render("ID")+"\tTITLE\tPRICE\tSTATUS\tSELLER\tADDED")
	for _, v := range views {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			v.ID,
			v.Title,
			Price(v.Price),
			StatusLabel(&v.Product),
			v.Seller.Pseudo,
			v.CreatedAt.Format("2006-01-02"),
		)
	}
	_ = tw.Flush()
}

// PageFooter writes "page x of y".
func PageFooter(w io.Writer, current, total int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("page %d of %d", current, total)))
}

// Detail writes a product show page.
func Detail(w io.Writer, d *domain.ProductDetail) {
	fmt.Fprintln(w, primaryStyle.Render(d.Title))
	fmt.Fprintln(w, mutedStyle.Render(strings.Repeat("═", len([]rune(d.Title)))))
	fmt.Fprintln(w, d.Description)
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Price", Price(d.Price)},
		{"Status", StatusLabel(&d.Product)},
		{"Category", d.Category.Title},
		{"Room", d.Room},
		{"Material", d.Material},
		{"Condition", d.Condition},
		{"Info", d.Info},
		{"Photos", strings.Join(d.Photos, ", ")},
		{"Seller", fmt.Sprintf("%s (%.1f)", d.Seller.Pseudo, d.Seller.Rating)},
		{"Contact", strings.TrimSpace(d.Seller.Email + " " + d.Seller.Phone)},
		{"Address", d.Seller.Address},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", infoStyle.Render(row[0]), row[1])
	}
	_ = tw.Flush()
}

// Price formats a price held in cents.
func Price(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// StatusLabel returns a colored lifecycle label.
func StatusLabel(p *domain.Product) string {
	switch {
	case p.Status == domain.StatusSold:
		return mutedStyle.Render("sold")
	case p.InCart():
		return warningStyle.Render("in cart")
	default:
		return successStyle.Render("for sale")
	}
}
