// Package parser separates YAML frontmatter from the Markdown body of a note.
package parser

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// Result holds the output of parsing a Markdown file.
type Result struct {
	Header string // raw YAML between the delimiters, "" when absent
	Body   string
}

// Parse splits raw Markdown bytes into frontmatter and body. Content without
// a frontmatter block that decodes as a YAML mapping is returned entirely as
// body.
func Parse(data []byte) *Result {
	header, body := splitFrontmatter(data)
	return &Result{Header: header, Body: body}
}

// Lines returns the body lines followed by the frontmatter lines, so that a
// caller looking for the first line containing something prefers the body.
func (r *Result) Lines() []string {
	lines := strings.Split(r.Body, "\n")
	if r.Header == "" {
		return lines
	}
	return append(lines, strings.Split(r.Header, "\n")...)
}

// splitFrontmatter separates YAML frontmatter (between leading --- delimiters)
// from the Markdown body.
func splitFrontmatter(data []byte) (string, string) {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return "", string(data)
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		// No closing delimiter, treat everything as body.
		return "", string(data)
	}

	yamlBlock := rest[:idx]
	afterDelim := rest[idx+1+len(delim):]
	body := strings.TrimLeft(string(afterDelim), "\n\r")

	var fm map[string]interface{}
	if err := yaml.Unmarshal(yamlBlock, &fm); err != nil || fm == nil {
		return "", string(data)
	}

	return strings.Trim(string(yamlBlock), "\n\r"), body
}
