package poker

import "fmt"

// Ordering is the result of comparing two hands, from the perspective of the first
type Ordering int

// ordering constants
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		panic(fmt.Sprintf("unknown ordering: %d", o))
	}
}

// Reverse flips the perspective of the ordering
func (o Ordering) Reverse() Ordering {
	return -o
}

// MarshalText encodes the ordering as its label
func (o Ordering) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func orderingOf(n int) Ordering {
	switch {
	case n < 0:
		return Less
	case n > 0:
		return Greater
	default:
		return Equal
	}
}

func compareRanks(a, b int) Ordering {
	return orderingOf(a - b)
}
