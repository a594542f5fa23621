package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Days returns the number of days elapsed from From to To.
func (r Range) Days() int { return r.To.Sub(r.From) }

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
