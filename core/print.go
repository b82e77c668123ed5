package core

import (
	"bufio"
	"fmt"
	"io"
)

// debugRule frames the edge listing written by Fprint.
const debugRule = "---------------------------------"

// Fprint writes edges to w in the diagnostic layout
//
//	<blank line>
//	---------------------------------
//	src -> dst
//	...
//	<blank line>
//	---------------------------------
//
// one edge per line. It is not part of any sort contract.
func Fprint(w io.Writer, edges []Edge) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "\n%s\n", debugRule); err != nil {
		return err
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d -> %d\n", e.Source, e.Destination); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "\n%s\n", debugRule); err != nil {
		return err
	}

	return bw.Flush()
}

// String renders an edge as "src -> dst".
func (e Edge) String() string {
	return fmt.Sprintf("%d -> %d", e.Source, e.Destination)
}
