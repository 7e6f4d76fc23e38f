// Command matrices prints a few experiments with matrix properties:
// inverting the identity, multiplying a matrix by its inverse, comparing the
// inverse of the transpose with the transpose of the inverse, and what a
// tweaked identity does to a tuple.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/rtc/matrix"
	"github.com/katalvlaran/rtc/tuple"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("matrices: ")
	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer) error {
	id := matrix.Identity(4)
	a := matrix.MustNew(4,
		6, 4, 4, 4,
		5, 5, 7, 6,
		4, -9, 3, -7,
		9, 1, 7, -6,
	)
	t := tuple.Tuple{X: 1, Y: 2, Z: 3, W: 4}
	modified := matrix.MustNew(4,
		1, 0, 0, 2,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)

	sections := []struct {
		title string
		body  string
	}{
		{"1. Inverse of the identity matrix", id.Inverse().String()},
		{"2. A times its inverse", fmt.Sprintf("A =\n%sA·A⁻¹ =\n%sequals identity: %t\n",
			a, a.Mul(a.Inverse()), a.Mul(a.Inverse()).Equal(id))},
		{"3. Inverse of transpose vs. transpose of inverse", fmt.Sprintf("inverse(transpose(A)) =\n%stranspose(inverse(A)) =\n%sequal: %t\n",
			a.Transpose().Inverse(), a.Inverse().Transpose(), a.Transpose().Inverse().Equal(a.Inverse().Transpose()))},
		{"4. Modified identity times a tuple", fmt.Sprintf("I·t = %v\nmodified =\n%smodified·t = %v\n",
			id.MulTuple(t), modified, modified.MulTuple(t))},
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "\n%s:\n%s", s.title, s.body); err != nil {
			return err
		}
	}

	return nil
}
