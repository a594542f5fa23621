package date

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[float64])
	d1, v1 := New(2021, 7, 1), 21.5
	d2, v2 := New(2020, 7, 1), 20.5

	// Appending two values in reverse order must keep the history sorted.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[0] != d2 || h.days[1] != d1 {
		t.Errorf("history days = %v want [%v %v]", h.days, d2, d1)
	}
	if h.values[0] != v2 || h.values[1] != v1 {
		t.Errorf("history values = %v want [%v %v]", h.values, v2, v1)
	}

	// overwrite
	h.Append(d1, 22)
	if got, _ := h.Get(d1); got != 22 || h.Len() != 2 {
		t.Errorf("Append(d1, 22) = %v (len %d) want 22 (len 2)", got, h.Len())
	}
}

func TestLatest(t *testing.T) {
	h := new(History[float64])
	if day, v := h.Latest(); !day.IsZero() || v != 0 {
		t.Errorf("empty Latest() = %v, %v want zero values", day, v)
	}
	h.Append(New(2021, 3, 2), 10).Append(New(2021, 3, 3), 11).Append(New(2021, 3, 1), 9)
	day, v := h.Latest()
	if day != New(2021, 3, 3) || v != 11 {
		t.Errorf("Latest() = %v, %v want 2021-03-03, 11", day, v)
	}
	if days := h.Days(); days[0] != New(2021, 3, 1) {
		t.Errorf("Days()[0] = %v want 2021-03-01", days[0])
	}
}
