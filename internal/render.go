package internal

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	fcolor "github.com/fatih/color"

	"github.com/starford/fsk/internal/models"
)

var (
	rule = strings.Repeat("─", 40)

	dimStyle     = fcolor.New(fcolor.FgHiBlack)
	headingStyle = fcolor.New(fcolor.FgCyan, fcolor.Bold)
	missStyle    = fcolor.New(fcolor.FgRed)
	queryStyle   = fcolor.New(fcolor.FgYellow)
	titleStyle   = fcolor.New(fcolor.FgHiWhite, fcolor.Bold)
	dirStyle     = fcolor.New(fcolor.FgBlue, fcolor.Bold)
	contentStyle = fcolor.New(fcolor.FgGreen)
)

// renderNote writes content unchanged, or a notice when it is blank.
func renderNote(w io.Writer, text string) error {
	if strings.TrimSpace(text) == "" {
		_, err := dimStyle.Fprintln(w, "Note is empty.")
		return err
	}
	_, err := io.WriteString(w, text)
	return err
}

func renderSearch(w io.Writer, q string, results []models.Match) error {
	var buf bytes.Buffer

	if len(results) == 0 {
		fmt.Fprintf(&buf, "%s '%s'\n", missStyle.Sprint("No results found for"), queryStyle.Sprint(q))
		_, err := w.Write(buf.Bytes())
		return err
	}

	fmt.Fprintf(&buf, "%s '%s':\n", headingStyle.Sprint("Found matches for"), queryStyle.Sprint(q))
	fmt.Fprintln(&buf, dimStyle.Sprint(rule))
	for _, m := range results {
		switch m.Kind {
		case models.TitleMatch:
			fmt.Fprintf(&buf, "%s %s\n", dirStyle.Sprint("■"), titleStyle.Sprint(m.Title))
		default:
			fmt.Fprintf(&buf, "%s %s\n", contentStyle.Sprint("□"), m.Title)
			if m.Preview != "" {
				fmt.Fprintf(&buf, "   %s\n", dimStyle.Sprint("↳ "+m.Preview))
			}
		}
	}
	fmt.Fprintln(&buf, dimStyle.Sprint(rule))
	fmt.Fprintf(&buf, "%d result(s) found\n", len(results))

	_, err := w.Write(buf.Bytes())
	return err
}

func renderTree(w io.Writer, tree *models.Tree) error {
	var buf bytes.Buffer

	if tree.Empty() {
		fmt.Fprintln(&buf, missStyle.Sprint("No notes found in database."))
		_, err := w.Write(buf.Bytes())
		return err
	}

	fmt.Fprintln(&buf, headingStyle.Sprint("Your Knowledge Base"))
	fmt.Fprintln(&buf, dimStyle.Sprint(rule))
	writeNodes(&buf, tree.Root.Children, "")
	fmt.Fprintln(&buf, dimStyle.Sprint(rule))
	fmt.Fprintf(&buf, "%d total notes\n", tree.Count())

	_, err := w.Write(buf.Bytes())
	return err
}

func writeNodes(buf *bytes.Buffer, nodes []*models.Node, indent string) {
	for i, n := range nodes {
		branch, next := "├── ", "│   "
		if i == len(nodes)-1 {
			branch, next = "└── ", "    "
		}

		label := n.Name
		if n.IsNote {
			label = titleStyle.Sprint(label)
		} else {
			label = dirStyle.Sprint(label + "/")
		}
		fmt.Fprintf(buf, "%s%s\n", dimStyle.Sprint(indent+branch), label)
		writeNodes(buf, n.Children, indent+next)
	}
}
