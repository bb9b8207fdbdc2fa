// Package layout decides which composition fits the available width.
package layout

// Breakpoint is the width in density-independent units above which the wide
// composition is used.
const Breakpoint = 600

type Mode int

const (
	Phone Mode = iota
	Tablet
)

func (m Mode) String() string {
	switch m {
	case Tablet:
		return "tablet"
	default:
		return "phone"
	}
}

// Select picks Tablet when widthDP is strictly greater than Breakpoint.
func Select(widthDP int) Mode {
	if widthDP > Breakpoint {
		return Tablet
	}
	return Phone
}

// ToDP converts terminal columns to density-independent units.
func ToDP(columns, cellDP int) int {
	return columns * cellDP
}

// ToColumns converts dp to whole terminal columns, rounding up so a fixed
// width never shrinks below its dp size. Always at least one column.
func ToColumns(dp, cellDP int) int {
	if cellDP <= 0 {
		return dp
	}
	cols := (dp + cellDP - 1) / cellDP
	if cols < 1 {
		return 1
	}
	return cols
}
