package ui

import "fmt"

// Inspector is a bottom-right panel describing the exhibit under the pointer.
// It owns its nodes and refreshes their text in AppendNodes.
type Inspector struct {
	panel    *Node
	title    *Node
	name     *Node
	caption  *Node
	position *Node
	material *Node
}

// NewInspector creates an Inspector styled by .inspector and .inspector-* rules.
func NewInspector() *Inspector {
	line := func(class string) *Node {
		return NewNode("label", "inspector-line "+class, "", "")
	}
	return &Inspector{
		panel:    NewNode("panel", "inspector", "", ""),
		title:    line("inspector-title"),
		name:     line("inspector-name"),
		caption:  line("inspector-caption"),
		position: line("inspector-position"),
		material: line("inspector-material"),
	}
}

// Selection is what the inspector shows. ui does not import scene; the caller fills this in.
type Selection struct {
	Node      string
	Caption   string
	Position  [3]float32
	Texture   string
	Wireframe bool
}

// AppendNodes appends the inspector nodes to dst when visible, after updating them from sel.
func (in *Inspector) AppendNodes(dst []*Node, visible bool, sel Selection) []*Node {
	if !visible {
		return dst
	}
	in.title.Text = "Inspector"
	in.name.Text = "Node: " + sel.Node
	in.caption.Text = sel.Caption
	in.position.Text = fmt.Sprintf("Position: %.2f, %.2f, %.2f", sel.Position[0], sel.Position[1], sel.Position[2])
	tex := sel.Texture
	if tex == "" {
		tex = "-"
	}
	mode := "solid"
	if sel.Wireframe {
		mode = "wireframe"
	}
	in.material.Text = fmt.Sprintf("Texture: %s (%s)", tex, mode)
	return append(dst, in.panel, in.title, in.name, in.caption, in.position, in.material)
}
