// Package primitives draws scene nodes with raylib: cached unit meshes, the gallery lighting
// shader, uploaded textures and contact shadows.
package primitives

import (
	"gallery/internal/lighting"
	"gallery/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// cached holds the unit mesh for a shape. Created lazily on first Draw so GPU resources are
// allocated after the window/OpenGL context exists.
type cached struct {
	mesh rl.Mesh
}

const (
	sphereRings  = 32
	sphereSlices = 32
)

// Registry draws scene nodes. Meshes and shaders are created on first use.
type Registry struct {
	cache       map[scene.Shape]cached
	mtl         rl.Material
	texturedMtl rl.Material
	ready       bool

	Textures *Textures

	rig     rigUniforms
	viewPos rl.Vector3
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[scene.Shape]cached),
		Textures: NewTextures(),
	}
}

func (r *Registry) ensureMaterials() {
	if r.ready {
		return
	}
	r.mtl = rl.LoadMaterialDefault()
	if s := loadLitShader(); rl.IsShaderValid(s) {
		r.mtl.Shader = s
	}
	r.texturedMtl = rl.LoadMaterialDefault()
	if s := loadLitTexturedShader(); rl.IsShaderValid(s) {
		r.texturedMtl.Shader = s
	}
	r.ready = true
}

// ensure creates the unit mesh for shape: a 1×1×1 cube, a radius-1 sphere or a 1×1 plane.
func (r *Registry) ensure(shape scene.Shape) cached {
	if c, ok := r.cache[shape]; ok {
		return c
	}
	var c cached
	switch shape {
	case scene.ShapeBox:
		c.mesh = rl.GenMeshCube(1, 1, 1)
	case scene.ShapeSphere:
		c.mesh = rl.GenMeshSphere(1, sphereRings, sphereSlices)
	case scene.ShapePlane:
		c.mesh = rl.GenMeshPlane(1, 1, 1, 1)
	}
	r.cache[shape] = c
	return c
}

// SetView sets the camera position and the light rig for this frame. Call once per frame
// before drawing.
func (r *Registry) SetView(viewPos rl.Vector3, lights [lighting.Count]lighting.Light) {
	r.ensureMaterials()
	r.viewPos = viewPos
	r.rig = makeRigUniforms(lights)
	r.rig.apply(r.mtl.Shader, viewPos)
	r.rig.apply(r.texturedMtl.Shader, viewPos)
}

// ModelMatrix is the node's unit mesh scaled to its size, then placed by its transform.
func ModelMatrix(n *scene.Node) rl.Matrix {
	size := n.Size
	switch n.Shape {
	case scene.ShapeSphere:
		size = rl.NewVector3(n.Size.X, n.Size.X, n.Size.X)
	case scene.ShapePlane:
		size.Y = 1
	}
	return rl.MatrixMultiply(rl.MatrixScale(size.X, size.Y, size.Z), n.Transform.Matrix())
}

// Draw draws one node with its material: textured once its texture has been uploaded,
// base color until then, as lines when wireframed.
// Must be called between BeginMode3D and EndMode3D, after SetView.
func (r *Registry) Draw(n *scene.Node) {
	if n.Material == nil {
		return
	}
	r.ensureMaterials()
	c := r.ensure(n.Shape)
	m := n.Material

	mtl := r.mtl
	if tex, ok := r.Textures.Get(m.Texture); ok {
		mtl = r.texturedMtl
		rl.SetMaterialTexture(&mtl, rl.MapAlbedo, tex)
	}
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = m.Color
	}
	setFloats(mtl.Shader, "specularStrength", []float32{specular(m.Roughness, m.Metalness)})

	if m.Wireframe {
		rl.EnableWireMode()
		defer rl.DisableWireMode()
	}
	rl.DrawMesh(c.mesh, mtl, ModelMatrix(n))
}

// DrawGraph draws every node in order, then the contact shadows of shadow-casting nodes.
func (r *Registry) DrawGraph(g *scene.Graph, lights [lighting.Count]lighting.Light) {
	for _, n := range g.Nodes() {
		r.Draw(n)
	}
	DrawShadows(ContactShadows(g, lights))
}

// Unload frees meshes, shaders and textures. The registry can be used again afterwards.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, k)
	}
	if r.ready {
		rl.UnloadShader(r.mtl.Shader)
		rl.UnloadShader(r.texturedMtl.Shader)
		r.ready = false
	}
	r.Textures.Unload()
}
