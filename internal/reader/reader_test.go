package reader

import (
	"strings"
	"testing"

	"github.com/ancientHacker/slitherlink/internal/grid"
)

func TestReadBasicGrid(t *testing.T) {
	input := "2 2\n0 .\n. 3\n"
	g, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if g.Rows != 2 || g.Cols != 2 {
		t.Fatalf("dims = %dx%d, want 2x2", g.Rows, g.Cols)
	}
	if g.Clue(0, 0) != 0 || g.Clue(0, 1) != grid.NoClue {
		t.Errorf("row 0 = %v, %v", g.Clue(0, 0), g.Clue(0, 1))
	}
	if g.Clue(1, 0) != grid.NoClue || g.Clue(1, 1) != 3 {
		t.Errorf("row 1 = %v, %v", g.Clue(1, 0), g.Clue(1, 1))
	}
}

func TestReadSkipsBlankLines(t *testing.T) {
	input := "\n\n2 2\n\n0 .\n\n. 3\n\n"
	g, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if g.Rows != 2 || g.Cols != 2 {
		t.Fatalf("dims = %dx%d, want 2x2", g.Rows, g.Cols)
	}
}

func TestReadAcceptsConventionalNoClueTokens(t *testing.T) {
	input := "1 3\n. - x\n"
	g, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	for c := 0; c < 3; c++ {
		if g.Clue(0, c) != grid.NoClue {
			t.Errorf("Clue(0, %d) = %v, want NoClue", c, g.Clue(0, c))
		}
	}
}

func TestReadRejectsWrongRowLength(t *testing.T) {
	input := "1 3\n0 .\n"
	if _, err := Read(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for short row")
	}
}

func TestReadRejectsMultiCharacterToken(t *testing.T) {
	input := "1 1\nxx\n"
	if _, err := Read(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for an unrecognized multi-character token")
	}
}

func TestReadRejectsTruncatedFile(t *testing.T) {
	input := "2 2\n0 .\n"
	if _, err := Read(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for missing row")
	}
}
