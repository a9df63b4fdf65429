package tree

import "testing"

func TestLevelSize(t *testing.T) {
	want := []int{1, 5, 25, 125, 625, 3125, 15625, 78125}
	for level, expected := range want {
		if got := LevelSize(level); got != expected {
			t.Errorf("LevelSize(%d): expected %d, got %d", level, expected, got)
		}
	}
}

func TestTotalNodes(t *testing.T) {
	for depth := MinDepth; depth <= MaxDepth; depth++ {
		sum := 0
		for level := 0; level < depth; level++ {
			sum += LevelSize(level)
		}
		if got := TotalNodes(depth); got != sum {
			t.Errorf("TotalNodes(%d): expected %d, got %d", depth, sum, got)
		}
	}
}

func TestParentIndexRange(t *testing.T) {
	for level := 1; level < 5; level++ {
		size := LevelSize(level)
		parentSize := LevelSize(level - 1)
		for i := 0; i < size; i++ {
			p := ParentIndex(i)
			if p < 0 || p >= parentSize {
				t.Fatalf("level %d node %d: parent index %d outside [0,%d)", level, i, p, parentSize)
			}
		}
	}
}

func TestSiblingGroups(t *testing.T) {
	// Each contiguous group of 5 shares one parent and covers slots 0..4.
	for group := 0; group < 25; group++ {
		for slot := 0; slot < BranchFactor; slot++ {
			i := group*BranchFactor + slot
			if ParentIndex(i) != group {
				t.Errorf("node %d: expected parent %d, got %d", i, group, ParentIndex(i))
			}
			if SlotIndex(i) != slot {
				t.Errorf("node %d: expected slot %d, got %d", i, slot, SlotIndex(i))
			}
		}
	}
}

func TestSlotRotationsMapUpAxis(t *testing.T) {
	// Slot 0 keeps up pointing up; the four tilted slots move it onto
	// the horizontal plane.
	up := slotRotations[0].Rotate(vec3Up())
	if up.Distance(vec3Up()) > 1e-6 {
		t.Errorf("slot 0 should leave up untouched, got %+v", up)
	}
	for slot := 1; slot < BranchFactor; slot++ {
		tilted := slotRotations[slot].Rotate(vec3Up())
		if abs32(tilted.Y) > 1e-6 {
			t.Errorf("slot %d: tilted up axis should be horizontal, got %+v", slot, tilted)
		}
		if abs32(tilted.Length()-1) > 1e-5 {
			t.Errorf("slot %d: tilted up axis should stay unit length, got %v", slot, tilted.Length())
		}
	}
}
