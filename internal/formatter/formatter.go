// package formatter provides functions to export guild lists to various formats (CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/guildboard/internal/models"
	"github.com/desertthunder/guildboard/internal/shared"
)

// Format names accepted by [Export].
const (
	FormatText     = "text"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Formats lists every supported format in display order.
var Formats = []string{FormatText, FormatCSV, FormatMarkdown, FormatJSON}

// ExportToCSV converts a GuildExport to CSV format with columns: ID, Name, Owner, Icon
func ExportToCSV(export *models.GuildExport, cdn models.CDN) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Owner", "Icon"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, g := range export.Guilds {
		record := []string{g.ID, g.Name, strconv.FormatBool(g.Owner), cdn.GuildIconURL(g)}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a GuildExport to a Markdown list with icon thumbnails
func ExportToMarkdown(export *models.GuildExport, cdn models.CDN) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", export.Title))
	buf.WriteString(fmt.Sprintf("**Servers**: %d\n\n", len(export.Guilds)))

	for i, g := range export.Guilds {
		owner := ""
		if g.Owner {
			owner = " (owner)"
		}
		buf.WriteString(fmt.Sprintf("%d. ![%s](%s) **%s**%s `%s`\n",
			i+1, escapeMarkdown(g.Name), cdn.GuildIconURL(g), escapeMarkdown(g.Name), owner, g.ID))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a GuildExport to plain text format
func ExportToText(export *models.GuildExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", export.Title))
	buf.WriteString(fmt.Sprintf("Servers: %d\n\n", len(export.Guilds)))

	for i, g := range export.Guilds {
		buf.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, g.Name, g.ID))
	}

	return buf.Bytes(), nil
}

// ExportToJSON renders the export as indented JSON
func ExportToJSON(export *models.GuildExport) ([]byte, error) {
	guilds := export.Guilds
	if guilds == nil {
		guilds = []models.Guild{}
	}

	data, err := json.MarshalIndent(models.GuildExport{Title: export.Title, Guilds: guilds}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Export renders export in the named format.
func Export(format string, export *models.GuildExport, cdn models.CDN) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return ExportToText(export)
	case FormatCSV:
		return ExportToCSV(export, cdn)
	case FormatMarkdown, "md":
		return ExportToMarkdown(export, cdn)
	case FormatJSON:
		return ExportToJSON(export)
	default:
		return nil, fmt.Errorf("%w: format %q (expected one of %s)", shared.ErrInvalidFlag, format, strings.Join(Formats, ", "))
	}
}

// WriteExport renders export and writes it to path.
func WriteExport(path, format string, export *models.GuildExport, cdn models.CDN) error {
	data, err := Export(format, export, cdn)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

var markdownEscaper = strings.NewReplacer(`[`, `\[`, `]`, `\]`, `*`, `\*`, "`", "\\`", `_`, `\_`)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
