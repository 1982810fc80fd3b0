// Package markdown exports completed readings as Markdown files.
package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arcano/oracle/internal/domain"
)

type clock func() string

// Writer renders readings into Markdown files.
type Writer struct {
	now clock
}

// NewWriter constructs a Markdown writer with a timestamp supplier.
func NewWriter(now clock) *Writer {
	return &Writer{now: now}
}

// Write persists a reading to a Markdown file under dir and returns the path.
func (w *Writer) Write(dir string, spread domain.Spread, reading domain.Reading) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.md", sanitise(spread.ID), w.now())
	path := filepath.Join(dir, filename)

	content := buildContent(spread, reading)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}

	return path, nil
}

func buildContent(spread domain.Spread, reading domain.Reading) string {
	var builder strings.Builder
	caser := cases.Title(language.Spanish)

	builder.WriteString(fmt.Sprintf("# Lectura: %s\n\n", spread.Name))
	builder.WriteString(fmt.Sprintf("- Fecha: %s\n", reading.CreatedAt.Format("2006-01-02 15:04")))
	if reading.Question != "" {
		builder.WriteString(fmt.Sprintf("- Pregunta: %s\n", reading.Question))
	}
	if reading.Source == domain.SourceFallback {
		builder.WriteString("- Fuente: lectura de respaldo (sin oráculo)\n")
	}
	builder.WriteString("\n## Cartas\n\n")

	for _, card := range reading.Cards {
		position, _ := spread.PositionByID(card.PositionID)
		builder.WriteString(fmt.Sprintf("### %s\n\n", caser.String(position.Name)))
		builder.WriteString(fmt.Sprintf("%s\n\n", domain.CardDisplayName(card.Name, card.Reversed)))
	}

	builder.WriteString("## Interpretación\n\n")
	builder.WriteString(reading.Interpretation)
	builder.WriteString("\n")

	return builder.String()
}

func sanitise(value string) string {
	replacer := strings.NewReplacer("/", "-", " ", "-", ":", "-")
	cleaned := replacer.Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return "lectura"
	}
	return cleaned
}
