package countdown

// Selection is the duration the user is dialing in before a countdown
// starts. Fields are not validated; the pickers only offer valid ranges.
type Selection struct {
	Hours   int
	Minutes int
	Seconds int
}

func (s Selection) WithHours(h int) Selection {
	s.Hours = h
	return s
}

func (s Selection) WithMinutes(m int) Selection {
	s.Minutes = m
	return s
}

func (s Selection) WithSeconds(sec int) Selection {
	s.Seconds = sec
	return s
}

// TotalSeconds converts the selection into whole seconds. The result is
// meaningless when Total reports an overflow.
func (s Selection) TotalSeconds() int {
	n, _ := s.Total()
	return n
}

// Total converts the selection into whole seconds. ok is false when the
// result does not fit in an int.
func (s Selection) Total() (n int, ok bool) {
	h, okH := mulInt(s.Hours, 3600)
	m, okM := mulInt(s.Minutes, 60)
	n, okHM := addInt(h, m)
	n, okS := addInt(n, s.Seconds)
	return n, okH && okM && okHM && okS
}

// mulInt multiplies by a positive factor.
func mulInt(a, factor int) (int, bool) {
	c := a * factor
	return c, c/factor == a
}

func addInt(a, b int) (int, bool) {
	c := a + b
	return c, (c > a) == (b > 0)
}

func (s Selection) IsZero() bool {
	return s.TotalSeconds() == 0
}
