// Package couplet models and generates the Spring Festival couplet
// document (春联): pairs of matched lines plus a four-character
// streamer, laid out centred with fixed festive formatting.
package couplet

import "errors"

// DefaultFileName is the document written to the working directory
// when no output path is configured.
const DefaultFileName = "春联.docx"

// Labels prepended to each scroll line in the rendered document.
const (
	upperLabel    = "上联："
	lowerLabel    = "下联："
	streamerLabel = "横批："
)

// ErrNoScrolls indicates a document with nothing to render.
var ErrNoScrolls = errors.New("document has no scrolls")

// Scroll is a single couplet: the upper and lower lines and the
// streamer (横批) hung above them.
type Scroll struct {
	Upper    string `toml:"upper"`
	Lower    string `toml:"lower"`
	Streamer string `toml:"streamer"`
}

// Document is the full couplet document.
type Document struct {
	Title   string   `toml:"title"`
	Scrolls []Scroll `toml:"scrolls"`
}

// Default returns the fixed document the tool has always generated.
func Default() Document {
	return Document{
		Title: "2025新春对联",
		Scrolls: []Scroll{
			{
				Upper:    "春回大地千山秀",
				Lower:    "日暖神州万物荣",
				Streamer: "万象更新",
			},
			{
				Upper:    "瑞雪迎春铺锦绣",
				Lower:    "红梅报岁展宏图",
				Streamer: "新春大吉",
			},
		},
	}
}

// Validate checks the document can be rendered.
func (d Document) Validate() error {
	if len(d.Scrolls) == 0 {
		return ErrNoScrolls
	}
	return nil
}

// Lines returns the labelled text lines of the document in render
// order, excluding the title and separators. Used for verification.
func (d Document) Lines() []string {
	lines := make([]string, 0, len(d.Scrolls)*3)
	for _, s := range d.Scrolls {
		lines = append(lines,
			upperLabel+s.Upper,
			lowerLabel+s.Lower,
			streamerLabel+s.Streamer,
		)
	}
	return lines
}
