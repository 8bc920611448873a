package model

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Summary returns a one-line description of the model.
func (m *Model) Summary() string {
	return fmt.Sprintf("%d points, %d faces", len(m.Points), len(m.Faces))
}

// WriteTo writes the model back in the text format Parse reads.
// Floats use the shortest representation that parses to the same value.
func (m *Model) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, p := range m.Points {
		k, err := fmt.Fprintf(bw, "%s %s %s %s\n", TagPoint, formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	for _, f := range m.Faces {
		k, err := fmt.Fprintf(bw, "%s %d %d %d\n", TagFace, f[0], f[1], f[2])
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
