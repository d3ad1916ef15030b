// Package importer turns local markdown files into create requests.
//
// A file may carry YAML frontmatter (name, tags, comment, url); the
// record name falls back to the first H1 heading, then to a slug of the
// filename.
package importer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// Document is the parsed import source.
type Document struct {
	Name    string
	Tags    []string
	Comment string
	URL     string
	Body    string
}

type frontmatter struct {
	Name    string   `yaml:"name"`
	Title   string   `yaml:"title"`
	Tags    []string `yaml:"tags"`
	Comment string   `yaml:"comment"`
	URL     string   `yaml:"url"`
}

var delimiter = []byte("---\n")

// ReadFile loads and parses the markdown file at path.
func ReadFile(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(src, base)
}

// Parse splits optional frontmatter from src and derives the record
// name. fallbackName is slugified when neither frontmatter nor an H1
// supplies a name.
func Parse(src []byte, fallbackName string) (*Document, error) {
	var fm frontmatter
	body := src

	if bytes.HasPrefix(src, delimiter) {
		rest := src[len(delimiter):]
		end := bytes.Index(rest, delimiter)
		if end < 0 {
			return nil, fmt.Errorf("unterminated frontmatter block")
		}
		if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
			return nil, fmt.Errorf("parse frontmatter: %w", err)
		}
		body = rest[end+len(delimiter):]
	}

	doc := &Document{
		Tags:    fm.Tags,
		Comment: fm.Comment,
		URL:     fm.URL,
		Body:    strings.TrimLeft(string(body), "\n"),
	}

	switch {
	case fm.Name != "":
		doc.Name = fm.Name
	case fm.Title != "":
		doc.Name = fm.Title
	default:
		if h1 := firstHeading(body); h1 != "" {
			doc.Name = h1
		} else {
			doc.Name = slug.Make(fallbackName)
		}
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("cannot derive a record name")
	}
	return doc, nil
}

// firstHeading returns the text of the first level-1 heading, if any.
func firstHeading(body []byte) string {
	parser := goldmark.New().Parser()
	root := parser.Parse(text.NewReader(body))

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != 1 {
			continue
		}
		var sb strings.Builder
		for c := h.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				sb.Write(t.Segment.Value(body))
			}
		}
		return strings.TrimSpace(sb.String())
	}
	return ""
}
