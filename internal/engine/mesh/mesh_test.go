package mesh

import (
	gomath "math"
	"testing"
)

func checkMesh(t *testing.T, m *Mesh) {
	t.Helper()

	if len(m.Indices)%3 != 0 {
		t.Fatalf("index count %d not a multiple of 3", len(m.Indices))
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range (%d vertices)", idx, len(m.Vertices))
		}
	}
	for i, v := range m.Vertices {
		n := v.Normal
		length := gomath.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
		if gomath.Abs(length-1) > 1e-5 {
			t.Errorf("vertex %d: normal length %v, expected 1", i, length)
		}
	}
}

func TestBranch(t *testing.T) {
	m := Branch()
	checkMesh(t, m)

	if len(m.Vertices) != 24 {
		t.Errorf("branch: expected 24 vertices, got %d", len(m.Vertices))
	}
	if len(m.Indices) != 36 {
		t.Errorf("branch: expected 36 indices, got %d", len(m.Indices))
	}

	// The taper narrows the top: no top-face vertex may be wider than a
	// bottom-face one.
	var maxTop, maxBottom float32
	for _, v := range m.Vertices {
		w := v.Position[0]
		if w < 0 {
			w = -w
		}
		if v.Position[1] > 0 && w > maxTop {
			maxTop = w
		}
		if v.Position[1] < 0 && w > maxBottom {
			maxBottom = w
		}
	}
	if maxTop >= maxBottom {
		t.Errorf("branch should taper: top width %v, bottom width %v", maxTop, maxBottom)
	}
}

func TestLeaf(t *testing.T) {
	m := Leaf()
	checkMesh(t, m)

	if len(m.Indices) != 24 {
		t.Errorf("leaf: expected 8 triangles (24 indices), got %d", len(m.Indices))
	}
}
