package ui

import (
	"slices"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is one overlay element (panel or label). Class and ID are matched by .class and #id
// rules; Bounds is filled from the resolved style on draw.
type Node struct {
	Type   string // "panel", "label"
	Class  string // space-separated class names
	ID     string
	Bounds rl.Rectangle
	Text   string
	Hidden bool
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// Show clears Hidden.
func (n *Node) Show() { n.Hidden = false }

// Hide sets Hidden; Draw skips hidden nodes.
func (n *Node) Hide() { n.Hidden = true }

// HasClass reports whether class is one of the node's classes.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(strings.Fields(n.Class), class)
}
