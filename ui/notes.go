package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"
)

// loadNotes renders the embedded dataset glossary to HTML once at startup
func loadNotes() (template.HTML, error) {
	source, err := embeddedFiles.ReadFile("notes.md")
	if err != nil {
		return "", err
	}
	// notes.md ships with the binary, so its HTML is trusted
	return template.HTML(markdown.ToHTML(source, nil, nil)), nil
}
