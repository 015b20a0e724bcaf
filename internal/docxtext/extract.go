// Package docxtext extracts paragraph text from OOXML .docx files.
// It is used to verify generated documents without depending on a
// Word installation: a docx is a ZIP archive and the visible text
// lives in word/document.xml.
package docxtext

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"
)

// ErrInvalidDocument indicates the content is not a readable docx archive.
var ErrInvalidDocument = errors.New("invalid docx document")

// ExtractFile reads the docx at path and returns its paragraph text,
// one string per paragraph. Empty paragraphs are preserved so callers
// can reason about document structure.
func ExtractFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Extract(content)
}

// Extract returns the paragraph text of a docx given as raw bytes.
func Extract(content []byte) ([]string, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, ErrInvalidDocument
	}
	return extractDocumentText(reader)
}

// Text is a convenience wrapper joining all paragraphs with newlines
// and trimming surrounding whitespace.
func Text(content []byte) (string, error) {
	paragraphs, err := Extract(content)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(paragraphs, "\n")), nil
}

// extractDocumentText extracts text from word/document.xml.
func extractDocumentText(reader *zip.Reader) ([]string, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, ErrInvalidDocument
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, ErrInvalidDocument
		}

		return parseDocumentXML(content)
	}
	return nil, ErrInvalidDocument
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML extracts per-paragraph text from the document XML.
func parseDocumentXML(content []byte) ([]string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, ErrInvalidDocument
	}

	result := make([]string, 0, len(doc.Body.Paragraphs))
	for _, para := range doc.Body.Paragraphs {
		var sb strings.Builder
		for _, r := range para.Runs {
			for _, text := range r.Text {
				sb.WriteString(text.Content)
			}
		}
		result = append(result, sb.String())
	}

	return result, nil
}
