package models

import (
	"slices"
	"strings"
)

// Node is a directory or note in a listing tree. A name used both as a
// directory and as a note (linux/ next to linux.md) is a single node with
// IsNote set and children.
type Node struct {
	Name     string  `json:"name"`
	Title    string  `json:"title,omitempty"`
	IsNote   bool    `json:"is_note"`
	Children []*Node `json:"children,omitempty"`

	index map[string]*Node
}

// Tree is the listing of a database, sorted lexicographically by name at
// every level.
type Tree struct {
	Root *Node `json:"root"`
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{Root: &Node{}}
}

// Insert adds the note with the given slash-delimited title, creating the
// intermediate directory nodes.
func (t *Tree) Insert(title string) {
	n := t.Root
	for _, seg := range strings.Split(title, "/") {
		n = n.child(seg)
	}
	n.IsNote = true
	n.Title = title
}

// Sort orders children by name at every level.
func (t *Tree) Sort() {
	stack := []*Node{t.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		slices.SortFunc(n.Children, func(a, b *Node) int {
			return strings.Compare(a.Name, b.Name)
		})
		stack = append(stack, n.Children...)
	}
}

// Empty reports whether the tree holds no notes.
func (t *Tree) Empty() bool {
	return t.Root == nil || len(t.Root.Children) == 0
}

// Count returns the number of notes in the tree.
func (t *Tree) Count() int {
	if t.Root == nil {
		return 0
	}
	count := 0
	stack := []*Node{t.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.IsNote {
			count++
		}
		stack = append(stack, n.Children...)
	}
	return count
}

// Titles returns every note title in depth-first, sorted order.
func (t *Tree) Titles() []string {
	var out []string
	var visit func(n *Node)
	visit = func(n *Node) {
		if n.IsNote {
			out = append(out, n.Title)
		}
		for _, c := range n.Children {
			visit(c)
		}
	}
	if t.Root != nil {
		visit(t.Root)
	}
	return out
}

func (n *Node) child(name string) *Node {
	if n.index == nil {
		n.index = make(map[string]*Node)
	}
	if c, ok := n.index[name]; ok {
		return c
	}
	c := &Node{Name: name}
	n.index[name] = c
	n.Children = append(n.Children, c)
	return c
}
