package direction_test

import (
	"testing"

	"github.com/amazcuter/rlwfc/direction"
)

// TestOrthogonal4_Index verifies the worked example from §4.2: creation
// order East, South, West, North yields neighbour order North, West, South,
// East, so index(East)=3 and index(North)=0.
func TestOrthogonal4_Index(t *testing.T) {
	cases := []struct {
		d    direction.Orthogonal4
		want int
	}{
		{direction.East, 3},
		{direction.South, 2},
		{direction.West, 1},
		{direction.North, 0},
	}
	for _, c := range cases {
		if got := c.d.Index(); got != c.want {
			t.Errorf("%s.Index() = %d; want %d", c.d, got, c.want)
		}
	}
}

// TestOrthogonal4_Opposite verifies E/W and N/S pair up.
func TestOrthogonal4_Opposite(t *testing.T) {
	cases := []struct {
		d, want direction.Orthogonal4
	}{
		{direction.East, direction.West},
		{direction.West, direction.East},
		{direction.North, direction.South},
		{direction.South, direction.North},
	}
	for _, c := range cases {
		got, ok := c.d.Opposite()
		if !ok {
			t.Fatalf("%s.Opposite(): not ok", c.d)
		}
		if got != c.want {
			t.Errorf("%s.Opposite() = %s; want %s", c.d, got, c.want)
		}
	}
}

// TestOrthogonal4Directions_CreationOrder verifies the canonical enumeration
// order matches §4.2's worked example: East, South, West, North.
func TestOrthogonal4Directions_CreationOrder(t *testing.T) {
	want := []direction.Orthogonal4{direction.East, direction.South, direction.West, direction.North}
	got := direction.Orthogonal4Directions()
	if len(got) != len(want) {
		t.Fatalf("len = %d; want %d", len(got), len(want))
	}
	for i, d := range want {
		if got[i] != d {
			t.Errorf("Orthogonal4Directions()[%d] = %v; want %v", i, got[i], d)
		}
	}
}

// TestLinear2_Index verifies the 2-direction path variant: creation order
// East, West yields neighbour order West, East.
func TestLinear2_Index(t *testing.T) {
	if got := direction.LinearEast.Index(); got != 1 {
		t.Errorf("LinearEast.Index() = %d; want 1", got)
	}
	if got := direction.LinearWest.Index(); got != 0 {
		t.Errorf("LinearWest.Index() = %d; want 0", got)
	}
	opp, ok := direction.LinearEast.Opposite()
	if !ok || opp != direction.LinearWest {
		t.Errorf("LinearEast.Opposite() = %v, %v; want LinearWest, true", opp, ok)
	}
}
