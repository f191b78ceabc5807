package world

import "testing"

// A river with zero iterations derives to exactly its
// axiom (no rewrite rule ever applies).
func TestRiverZeroIterationsEqualsAxiom(t *testing.T) {
	r := NewRiver("F", defaultRiverRules, 0, 25, 10, 0, 0)
	if r.Axiom != "F" {
		t.Fatalf("unexpected axiom %q", r.Axiom)
	}
	if got := r.derive(); got != "F" {
		t.Fatalf("0-iteration derive() = %q, want axiom %q", got, r.Axiom)
	}
	// The turtle still marks its start cell for a bare "F": one step forward.
	if !r.IsRiverAt(0, 0) {
		t.Errorf("expected start cell (0,0) to be marked")
	}
}

func TestRiverIsRiverAtIsSetMembership(t *testing.T) {
	r := NewRiver("F", defaultRiverRules, 2, 25, 8, 0, 0)
	found := false
	for cell := range r.cells {
		if !r.IsRiverAt(cell.X, cell.Z) {
			t.Fatalf("cell %v present in set but IsRiverAt reports false", cell)
		}
		found = true
	}
	if !found {
		t.Fatalf("river produced no cells")
	}
	if r.IsRiverAt(1_000_000, 1_000_000) {
		t.Errorf("far-away coordinate unexpectedly reported as a river cell")
	}
}

func TestRiverSetUnionsMultipleRivers(t *testing.T) {
	a := NewRiver("F", defaultRiverRules, 1, 25, 5, 0, 0)
	b := NewRiver("F", defaultRiverRules, 1, 25, 5, 500, 500)
	set := RiverSet{a, b}

	var aCell, bCell RiverCell
	for c := range a.cells {
		aCell = c
		break
	}
	for c := range b.cells {
		bCell = c
		break
	}
	if !set.IsRiverAt(aCell.X, aCell.Z) {
		t.Errorf("RiverSet missed a cell belonging to the first river")
	}
	if !set.IsRiverAt(bCell.X, bCell.Z) {
		t.Errorf("RiverSet missed a cell belonging to the second river")
	}
}

func TestRiverDeriveSubstitutesEachIteration(t *testing.T) {
	r := &River{Axiom: "F", Rules: map[byte]string{'F': "F+F"}, Iterations: 2}
	got := r.derive()
	// F -> F+F -> (F+F)+(F+F)
	want := "F+F+F+F"
	if got != want {
		t.Fatalf("derive() = %q, want %q", got, want)
	}
}
