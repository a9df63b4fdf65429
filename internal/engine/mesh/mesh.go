// Package mesh builds the procedural geometry the viewer instances:
// a tapered branch segment and a leaf. Meshes are generated once at
// startup; there is no asset loading.
package mesh

import "github.com/Faultbox/canopy/pkg/math"

// Vertex is an interleaved position + normal, matching the vertex layout
// the render package uploads.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mesh is an indexed triangle mesh in unit space. Instances are placed by
// the per-part 3x4 matrices, so a mesh spans roughly [-0.5,0.5] around
// its part's pivot.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// quad appends a flat quad a-b-c-d (counter-clockwise seen from outside)
// with one shared face normal.
func (m *Mesh) quad(a, b, c, d math.Vec3) {
	n := b.Sub(a).Cross(d.Sub(a)).Normalize()
	base := uint32(len(m.Vertices))
	for _, p := range []math.Vec3{a, b, c, d} {
		m.Vertices = append(m.Vertices, Vertex{
			Position: [3]float32{p.X, p.Y, p.Z},
			Normal:   [3]float32{n.X, n.Y, n.Z},
		})
	}
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
}

// tri appends a single triangle a-b-c with a shared face normal.
func (m *Mesh) tri(a, b, c math.Vec3) {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	base := uint32(len(m.Vertices))
	for _, p := range []math.Vec3{a, b, c} {
		m.Vertices = append(m.Vertices, Vertex{
			Position: [3]float32{p.X, p.Y, p.Z},
			Normal:   [3]float32{n.X, n.Y, n.Z},
		})
	}
	m.Indices = append(m.Indices, base, base+1, base+2)
}

// Branch returns a box tapered toward +Y, pivot at the center.
func Branch() *Mesh {
	const (
		bottom = float32(-0.75)
		top    = float32(0.75)
		wBase  = float32(0.35)
		wTop   = float32(0.22)
	)

	// Bottom corners (b0..b3) and top corners (t0..t3), CCW seen from +Y.
	b0 := math.Vec3{X: -wBase, Y: bottom, Z: -wBase}
	b1 := math.Vec3{X: wBase, Y: bottom, Z: -wBase}
	b2 := math.Vec3{X: wBase, Y: bottom, Z: wBase}
	b3 := math.Vec3{X: -wBase, Y: bottom, Z: wBase}
	t0 := math.Vec3{X: -wTop, Y: top, Z: -wTop}
	t1 := math.Vec3{X: wTop, Y: top, Z: -wTop}
	t2 := math.Vec3{X: wTop, Y: top, Z: wTop}
	t3 := math.Vec3{X: -wTop, Y: top, Z: wTop}

	m := &Mesh{}
	m.quad(b3, b2, t2, t3) // front (+Z)
	m.quad(b1, b0, t0, t1) // back (-Z)
	m.quad(b2, b1, t1, t2) // right (+X)
	m.quad(b0, b3, t3, t0) // left (-X)
	m.quad(t3, t2, t1, t0) // top
	m.quad(b0, b1, b2, b3) // bottom
	return m
}

// Leaf returns an octahedron, slightly stretched along Y.
func Leaf() *Mesh {
	const r = float32(0.6)

	top := math.Vec3{Y: 1.4 * r}
	bot := math.Vec3{Y: -1.4 * r}
	px := math.Vec3{X: r}
	nx := math.Vec3{X: -r}
	pz := math.Vec3{Z: r}
	nz := math.Vec3{Z: -r}

	m := &Mesh{}
	m.tri(top, pz, px)
	m.tri(top, px, nz)
	m.tri(top, nz, nx)
	m.tri(top, nx, pz)
	m.tri(bot, px, pz)
	m.tri(bot, nz, px)
	m.tri(bot, nx, nz)
	m.tri(bot, pz, nx)
	return m
}
