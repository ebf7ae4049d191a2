package boyermoore

// Iter is a stateful iterator over the matches of a pattern in one text.
type Iter struct {
	m     *Matcher
	text  []byte
	shift int
}

// Iter returns an iterator over all matches of the pattern in text,
// including overlapping ones.
func (m *Matcher) Iter(text []byte) *Iter {
	return &Iter{m: m, text: text}
}

// Next returns the offset of the next match, or -1 when there is none.
func (it *Iter) Next() int {
	last := len(it.text) - len(it.m.pattern)
	if len(it.m.pattern) == 0 {
		return -1
	}
	for it.shift <= last {
		st := it.m.advanceAt(it.text, it.shift)
		at := it.shift
		it.shift += st.Advance
		if st.Kind == StepMatch {
			return at
		}
	}
	return -1
}

// Find returns the offset of the first match of the pattern in text, or -1
// when there is none. An empty pattern never matches.
func (m *Matcher) Find(text []byte) int {
	return m.Iter(text).Next()
}

// FindAll returns the offsets of all matches of the pattern in text,
// including overlapping ones, or nil when there are none.
func (m *Matcher) FindAll(text []byte) []int {
	var offsets []int
	it := m.Iter(text)
	for at := it.Next(); at >= 0; at = it.Next() {
		offsets = append(offsets, at)
	}
	return offsets
}

// FindAllString is FindAll for string texts.
func (m *Matcher) FindAllString(text string) []int {
	return m.FindAll([]byte(text))
}
