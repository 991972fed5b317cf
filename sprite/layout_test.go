package sprite

import "testing"

func TestSegmentMeshTrianglesAreFlat(t *testing.T) {
	if len(SegmentIndices)%3 != 0 {
		t.Fatalf("index count %d is not a multiple of 3", len(SegmentIndices))
	}
	for i := 0; i+3 <= len(SegmentIndices); i += 3 {
		a := SegmentVertices[SegmentIndices[i]].Island
		b := SegmentVertices[SegmentIndices[i+1]].Island
		c := SegmentVertices[SegmentIndices[i+2]].Island
		if a != b || b != c {
			t.Fatalf("triangle %d spans islands %d/%d/%d", i/3, a, b, c)
		}
	}
}

func TestSegmentMeshIslandCoverage(t *testing.T) {
	seen := map[uint32]bool{}
	for _, v := range SegmentVertices {
		seen[v.Island] = true
	}

	// Four digit positions of seven segments each.
	for id := uint32(0); id < 28; id++ {
		if !seen[id] {
			t.Errorf("digit segment island %d missing", id)
		}
	}
	// Weekday row, AM, PM, colon in word 1.
	for id := uint32(32); id <= 41; id++ {
		if !seen[id] {
			t.Errorf("indicator island %d missing", id)
		}
	}
}

func TestSegmentMeshWithinDisplayExtent(t *testing.T) {
	// The digital face is authored for a 2.5 x 1.40625 half-extent.
	const ex, ey = 2.5, 1.40625
	for i, v := range SegmentVertices {
		if v.Pos.X < -ex || v.Pos.X > ex || v.Pos.Y < -ey || v.Pos.Y > ey {
			t.Errorf("vertex %d at %+v outside display extent", i, v.Pos)
		}
	}
}
