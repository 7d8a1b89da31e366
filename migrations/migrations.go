// Package migrations embeds the schema of both store dialects.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed spanner/*.sql postgres/*.sql
var files embed.FS

// Migration is one schema file split into DDL statements.
type Migration struct {
	Name       string
	Statements []string
}

// Load returns the migrations of a dialect directory ("spanner" or
// "postgres"), ordered by file name.
func Load(dialect string) ([]Migration, error) {
	names, err := fs.Glob(files, path.Join(dialect, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to list migration files: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no migrations for dialect %q", dialect)
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}
		out = append(out, Migration{
			Name:       path.Base(name),
			Statements: SplitStatements(string(content)),
		})
	}
	return out, nil
}

// SplitStatements drops comment lines and splits content on semicolons.
func SplitStatements(content string) []string {
	// Remove comments and empty lines
	lines := strings.Split(content, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	content = strings.Join(cleaned, "\n")

	// Split by semicolon
	statements := strings.Split(content, ";")
	var result []string
	for _, stmt := range statements {
		stmt = strings.TrimSpace(stmt)
		if stmt != "" {
			result = append(result, stmt)
		}
	}

	return result
}
