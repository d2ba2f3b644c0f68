package formatter

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/guildboard/internal/models"
	"github.com/desertthunder/guildboard/internal/shared"
)

func testExport() *models.GuildExport {
	return &models.GuildExport{
		Title: "Common Servers",
		Guilds: []models.Guild{
			{ID: "111", Name: "Hangar", Icon: "iconhash", Owner: true},
			{ID: "222", Name: "Flight_Deck"},
		},
	}
}

func TestExporters(t *testing.T) {
	cdn := models.NewCDN("")

	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(testExport(), cdn)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected header and 2 rows, got %d lines: %s", len(lines), data)
		}
		if lines[0] != "ID,Name,Owner,Icon" {
			t.Errorf("CSV missing headers, got: %s", lines[0])
		}
		if lines[1] != "111,Hangar,true,https://cdn.discordapp.com/icons/111/iconhash.png" {
			t.Errorf("unexpected first row: %s", lines[1])
		}
		if !strings.HasSuffix(lines[2], "/icons/222/default.png") {
			t.Errorf("expected default icon, got: %s", lines[2])
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(testExport(), cdn)
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{
			"# Common Servers",
			"**Servers**: 2",
			"1. ![Hangar](https://cdn.discordapp.com/icons/111/iconhash.png) **Hangar** (owner) `111`",
			`**Flight\_Deck**`,
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q, got: %s", want, output)
			}
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(testExport())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{"Common Servers", "Servers: 2", "1. Hangar (111)", "2. Flight_Deck (222)"} {
			if !strings.Contains(output, want) {
				t.Errorf("Text missing %q", want)
			}
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		t.Run("round trips the guilds", func(t *testing.T) {
			data, err := ExportToJSON(testExport())
			if err != nil {
				t.Fatalf("ExportToJSON failed: %v", err)
			}

			var got models.GuildExport
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if got.Title != "Common Servers" || len(got.Guilds) != 2 || !got.Guilds[0].Owner {
				t.Errorf("unexpected export %+v", got)
			}
		})

		t.Run("empty list is an array", func(t *testing.T) {
			data, err := ExportToJSON(&models.GuildExport{Title: "None"})
			if err != nil {
				t.Fatalf("ExportToJSON failed: %v", err)
			}
			if !strings.Contains(string(data), `"guilds": []`) {
				t.Errorf("expected empty array, got: %s", data)
			}
		})
	})

	t.Run("Export", func(t *testing.T) {
		tests := []struct {
			format string
			want   string
		}{
			{"", "Servers: 2"},
			{FormatText, "Servers: 2"},
			{FormatCSV, "ID,Name,Owner,Icon"},
			{"CSV", "ID,Name,Owner,Icon"},
			{FormatMarkdown, "# Common Servers"},
			{"md", "# Common Servers"},
			{FormatJSON, `"title": "Common Servers"`},
		}

		for _, tt := range tests {
			t.Run(tt.format, func(t *testing.T) {
				data, err := Export(tt.format, testExport(), cdn)
				if err != nil {
					t.Fatalf("Export failed: %v", err)
				}
				if !strings.Contains(string(data), tt.want) {
					t.Errorf("expected %q in output, got: %s", tt.want, data)
				}
			})
		}

		t.Run("unknown format", func(t *testing.T) {
			_, err := Export("xml", testExport(), cdn)
			if !errors.Is(err, shared.ErrInvalidFlag) {
				t.Errorf("expected ErrInvalidFlag, got %v", err)
			}
		})
	})
}

func TestWriteExport(t *testing.T) {
	cdn := models.NewCDN("")

	t.Run("writes the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "guilds.csv")
		if err := WriteExport(path, FormatCSV, testExport(), cdn); err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read export: %v", err)
		}
		if !strings.HasPrefix(string(data), "ID,Name,Owner,Icon") {
			t.Errorf("unexpected file contents: %s", data)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "guilds.txt")
		if err := WriteExport(path, FormatText, testExport(), cdn); err == nil {
			t.Error("expected error for missing directory")
		}
	})

	t.Run("bad format writes nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "guilds.xml")
		if err := WriteExport(path, "xml", testExport(), cdn); err == nil {
			t.Fatal("expected error")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("expected no file for a rejected format")
		}
	})
}
