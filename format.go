package exactextract

import (
	"fmt"
	"strings"
)

// boxWKT renders box as a WKT POLYGON, ring corners ordered lower-left,
// lower-right, upper-right, upper-left, lower-left, matching the textual
// rendering convention used elsewhere in the package.
func boxWKT(b Box) string {
	ll, lr, ur, ul := b.LowerLeft(), b.LowerRight(), b.UpperRight(), b.UpperLeft()
	return fmt.Sprintf("POLYGON((%v %v,%v %v,%v %v,%v %v,%v %v))",
		ll.X, ll.Y, lr.X, lr.Y, ur.X, ur.Y, ul.X, ul.Y, ll.X, ll.Y)
}

// FormatMatrix renders a float64 Matrix the way a covered-fraction grid is
// conventionally printed for inspection: right-aligned fixed six-decimal
// values, one row per line, with exact zeros rendered as blanks so that
// untouched cells stand out visually against partially- or fully-covered
// ones.
func FormatMatrix(m Matrix[float64]) string {
	var b strings.Builder
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			v := m.At(row, col)
			if v == 0 {
				b.WriteString("        ")
			} else {
				fmt.Fprintf(&b, "%8.6f", v)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
