// Package content holds the screen's static bilingual copy: mood quotes,
// the message wall, the luggage list and the help text.
//
// Content is a markdown document with YAML front-matter. The front-matter
// carries the structured strings and the body is the help page. A default
// document is embedded; a replacement can be loaded from disk.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/chris-regnier/tearoff/internal/state"
)

//go:embed default.md
var defaultDocument []byte

// ErrInvalidContent is returned when a content document is missing
// required strings.
var ErrInvalidContent = errors.New("invalid content")

// MoodText is the copy shown for one mood stage.
type MoodText struct {
	Label string `yaml:"label"`
	Quote string `yaml:"quote"`
}

// Item is one entry in the luggage list.
type Item struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
}

// Content is the full set of strings the screen displays.
type Content struct {
	Moods     map[string]MoodText `yaml:"moods"`
	QuoteHint string              `yaml:"quote_hint"`
	TearHint  string              `yaml:"tear_hint"`
	Resonance struct {
		Title    string   `yaml:"title"`
		Messages []string `yaml:"messages"`
	} `yaml:"resonance"`
	Luggage struct {
		Title string `yaml:"title"`
		Items []Item `yaml:"items"`
	} `yaml:"luggage"`
	Help string `yaml:"-"`
}

// Mood returns the copy for a stage.
func (c *Content) Mood(m state.MoodStage) MoodText {
	return c.Moods[m.String()]
}

// Parse reads a content document.
func Parse(data []byte) (*Content, error) {
	var c Content
	body, err := frontmatter.Parse(bytes.NewReader(data), &c)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing front-matter: %v", ErrInvalidContent, err)
	}
	c.Help = strings.TrimSpace(string(body))
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Content) validate() error {
	for _, m := range state.Moods {
		t, ok := c.Moods[m.String()]
		if !ok {
			return fmt.Errorf("%w: missing mood %q", ErrInvalidContent, m)
		}
		if strings.TrimSpace(t.Quote) == "" {
			return fmt.Errorf("%w: mood %q has no quote", ErrInvalidContent, m)
		}
	}
	if len(c.Resonance.Messages) == 0 {
		return fmt.Errorf("%w: resonance has no messages", ErrInvalidContent)
	}
	if len(c.Luggage.Items) == 0 {
		return fmt.Errorf("%w: luggage has no items", ErrInvalidContent)
	}
	for i, it := range c.Luggage.Items {
		if strings.TrimSpace(it.Title) == "" {
			return fmt.Errorf("%w: luggage item %d has no title", ErrInvalidContent, i)
		}
	}
	return nil
}

// Load reads content from path, or returns the embedded default when path
// is empty.
func Load(path string) (*Content, error) {
	if path == "" {
		return Parse(defaultDocument)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default returns the embedded content. It panics if the embedded document
// is malformed, which is a build defect.
func Default() *Content {
	c, err := Parse(defaultDocument)
	if err != nil {
		panic(err)
	}
	return c
}
