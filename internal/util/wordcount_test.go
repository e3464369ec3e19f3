package util

import (
	"strings"
	"testing"
)

func TestStripMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{name: "plain text", content: "hello world", expected: "hello world"},
		{name: "simple tags", content: "<p>hello</p><p>world</p>", expected: "hello  world"},
		{name: "nested tags", content: "<div><strong>bold</strong> text</div>", expected: "bold  text"},
		{name: "entities", content: "fish &amp; chips", expected: "fish   chips"},
		{name: "attributes", content: `<a href="https://example.com">link</a>`, expected: "link"},
		{name: "empty", content: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := StripMarkup(tt.content); got != tt.expected {
				t.Fatalf("StripMarkup(%q) = %q, want %q", tt.content, got, tt.expected)
			}
		})
	}
}

func TestCountWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{name: "plain words", content: "one two three", expected: 3},
		{name: "tags do not merge words", content: "<p>one</p><p>two</p>", expected: 2},
		{name: "extra whitespace", content: "  one \n two\tthree ", expected: 3},
		{name: "only markup", content: "<p></p><br/>", expected: 0},
		{name: "repeated word", content: strings.Repeat("word ", 1000), expected: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CountWords(tt.content); got != tt.expected {
				t.Fatalf("CountWords(%q) = %d, want %d", tt.content, got, tt.expected)
			}
		})
	}
}
