package scene

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Graph is the flat list of nodes that make up the room. Draw order is insertion order.
type Graph struct {
	nodes    []*Node
	exhibits []*Node
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add appends a node. Exhibit nodes are also indexed in insertion order.
func (g *Graph) Add(n *Node) {
	g.nodes = append(g.nodes, n)
	if n.IsExhibit() {
		g.exhibits = append(g.exhibits, n)
	}
}

// Nodes returns all nodes in draw order. The slice must not be modified.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Exhibits returns exhibit nodes in pedestal order (left, center, right).
func (g *Graph) Exhibits() []*Node {
	return g.exhibits
}

// Find returns the node with the given name, or nil.
func (g *Graph) Find(name string) *Node {
	for _, n := range g.nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// Hit is one ray intersection.
type Hit struct {
	Node     *Node
	Distance float32
	Point    rl.Vector3
}

// Intersect returns every node the ray hits, nearest first.
func (g *Graph) Intersect(ray rl.Ray) []Hit {
	var hits []Hit
	for _, n := range g.nodes {
		var c rl.RayCollision
		if n.Shape == ShapeSphere {
			c = rl.GetRayCollisionSphere(ray, n.Transform.Position, n.Radius())
		} else {
			c = rl.GetRayCollisionBox(ray, n.Bounds())
		}
		if c.Hit && c.Distance >= 0 {
			hits = append(hits, Hit{Node: n, Distance: c.Distance, Point: c.Point})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// Nearest returns the closest hit, if any. Only this hit counts for picking: an exhibit
// behind a wall or pedestal is not reachable.
func (g *Graph) Nearest(ray rl.Ray) (Hit, bool) {
	hits := g.Intersect(ray)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}
