package finance

import "slices"

// step is one named transformation of a derived table.
//
// A step receives its own copy of the lines, so it can update them in place
// without touching the input of previous steps.
type step[L any] struct {
	name  string
	apply func([]L) []L
}

// run applies steps in order to a copy of lines.
func run[L any](lines []L, steps ...step[L]) []L {
	for _, s := range steps {
		lines = s.apply(slices.Clone(lines))
	}
	return lines
}
