package couplet

import (
	"fmt"
	"io"
	"os"
	"strings"

	docx "github.com/fumiama/go-docx"

	"github.com/inkstone-cli/inkstone/internal/docxtext"
	"github.com/inkstone-cli/inkstone/internal/logger"
)

// Run formatting for each element. Sizes are OOXML half-points
// (28pt -> "56"), colors are RRGGBB hex.
const (
	titleFont  = "宋体"
	titleSize  = "56"
	titleColor = "C80000"

	lineFont  = "楷体"
	lineSize  = "48"
	lineColor = "B40000"

	streamerFont  = "黑体"
	streamerSize  = "52"
	streamerColor = "DC0000"

	separatorSize  = "24"
	separatorWidth = 50
)

// Write renders the document as OOXML docx to w.
func Write(doc Document, w io.Writer) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	file := docx.New().WithDefaultTheme().WithA4Page()

	if doc.Title != "" {
		title := file.AddParagraph().Justification("center")
		title.AddText(doc.Title).
			Size(titleSize).
			Color(titleColor).
			Font(titleFont, titleFont, titleFont, "eastAsia")
		file.AddParagraph()
	}

	for i, scroll := range doc.Scrolls {
		if i > 0 {
			// Separator between scrolls.
			file.AddParagraph()
			sep := file.AddParagraph()
			sep.AddText(strings.Repeat("=", separatorWidth)).Size(separatorSize)
		}
		addScroll(file, scroll)
	}

	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("failed to serialise document: %w", err)
	}
	return nil
}

// addScroll renders one couplet: upper line, lower line, streamer.
func addScroll(file *docx.Docx, scroll Scroll) {
	for _, text := range []string{upperLabel + scroll.Upper, lowerLabel + scroll.Lower} {
		line := file.AddParagraph().Justification("center")
		line.AddText(text).
			Size(lineSize).
			Color(lineColor).
			Font(lineFont, lineFont, lineFont, "eastAsia")
	}

	streamer := file.AddParagraph().Justification("center")
	streamer.AddText(streamerLabel + scroll.Streamer).
		Size(streamerSize).
		Color(streamerColor).
		Font(streamerFont, streamerFont, streamerFont, "eastAsia").
		Bold()
}

// Generate writes the document to path, creating or truncating it.
func Generate(doc Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(doc, f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	logger.Info("generated %s (%d scrolls)", path, len(doc.Scrolls))
	return nil
}

// VerifyFile re-opens a generated document and checks the couplet
// text survived the round trip through OOXML serialisation.
func VerifyFile(doc Document, path string) error {
	paragraphs, err := docxtext.ExtractFile(path)
	if err != nil {
		return fmt.Errorf("failed to read back %s: %w", path, err)
	}

	text := strings.Join(paragraphs, "\n")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%s contains no text", path)
	}

	missing := make([]string, 0)
	if doc.Title != "" && !strings.Contains(text, doc.Title) {
		missing = append(missing, doc.Title)
	}
	for _, line := range doc.Lines() {
		if !strings.Contains(text, line) {
			missing = append(missing, line)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s is missing expected lines: %s", path, strings.Join(missing, ", "))
	}

	logger.Debug("verified %s: %d paragraphs", path, len(paragraphs))
	return nil
}
