// Command slitherlink solves Slitherlink loop puzzles: given a grid of
// numeric clues, it finds one or all assignments of lattice edges that form
// a single closed loop satisfying every clue.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ancientHacker/slitherlink/internal/solveerr"
)

func main() {
	setVersion("0.1.0", "", "")
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var se solveerr.Error
		if errors.As(err, &se) && se.Scope == solveerr.StoreScope {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
