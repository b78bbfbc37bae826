package vec3

import (
	"fmt"
	"io"
	"strings"
)

// Align selects where padding goes when a rendered vector is shorter
// than the requested minimum width.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// String renders the vector as "(x, y, z)" with each component using
// its default formatting.
func (v Vector3D[T]) String() string {
	return v.text(-1)
}

// Text renders the vector as "(x, y, z)". A non-negative precision
// formats every component in fixed-point with that many fraction
// digits; a negative precision keeps each component's default
// formatting. The whole parenthesized string is then padded to at
// least width characters according to align.
func (v Vector3D[T]) Text(precision, width int, align Align) string {
	return pad(v.text(precision), width, align)
}

// Format implements fmt.Formatter so vectors honor width, precision
// and the '-' flag of verbs like %v, %s and %f. Alignment follows the
// fmt convention: right unless the '-' flag is set. Center alignment
// has no fmt directive; use Text for it.
func (v Vector3D[T]) Format(f fmt.State, verb rune) {
	precision := -1
	if p, ok := f.Precision(); ok {
		precision = p
	}
	s := v.text(precision)
	if w, ok := f.Width(); ok {
		align := AlignRight
		if f.Flag('-') {
			align = AlignLeft
		}
		s = pad(s, w, align)
	}
	io.WriteString(f, s)
}

func (v Vector3D[T]) text(precision int) string {
	if precision < 0 {
		return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
	}
	return fmt.Sprintf("(%.*f, %.*f, %.*f)",
		precision, float64(v.X),
		precision, float64(v.Y),
		precision, float64(v.Z))
}

func pad(s string, width int, align Align) string {
	gap := width - len(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	}
	return s + strings.Repeat(" ", gap)
}
