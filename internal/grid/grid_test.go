package grid

import "testing"

func TestNewValidatesDimensions(t *testing.T) {
	if _, err := New(0, 3, nil); err == nil {
		t.Fatal("expected error for zero rows")
	}
	if _, err := New(2, 2, []int{0, 1, 2}); err == nil {
		t.Fatal("expected error for wrong clue count")
	}
	if _, err := New(1, 1, []int{5}); err == nil {
		t.Fatal("expected error for out-of-range clue")
	}
}

func TestCellIndexAndClue(t *testing.T) {
	g, err := New(2, 3, []int{
		0, NoClue, 2,
		NoClue, 1, NoClue,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := g.Clue(0, 2); got != 2 {
		t.Errorf("Clue(0,2) = %d, want 2", got)
	}
	if got := g.Clue(1, 0); got != NoClue {
		t.Errorf("Clue(1,0) = %d, want NoClue", got)
	}
	if got := g.CellIndex(1, 1); got != 4 {
		t.Errorf("CellIndex(1,1) = %d, want 4", got)
	}
}

func TestNumPointsAndPointID(t *testing.T) {
	g, _ := New(2, 3, make([]int, 6))
	for i := range g.Clues {
		g.Clues[i] = NoClue
	}
	if got := g.NumPoints(); got != 12 {
		t.Errorf("NumPoints() = %d, want 12", got)
	}
	if got := g.PointID(2, 3); got != 11 {
		t.Errorf("PointID(2,3) = %d, want 11", got)
	}
}
