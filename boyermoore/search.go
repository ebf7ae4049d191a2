package boyermoore

import "errors"

// ErrNoWindow is returned by Search when the pattern is empty or longer than
// the text. No alignment window exists, so no search was performed and there
// are trivially no matches.
var ErrNoWindow = errors.New("boyermoore: pattern is empty or longer than the text")

// Result is the outcome of a search over one text.
type Result struct {
	Matches []int // match offsets in ascending order
	Skipped int   // characters skipped by shifts that kept the window in bounds
	Found   bool
}

// Search scans text for the compiled pattern and returns every match offset,
// including overlapping ones. It returns ErrNoWindow when the pattern is
// empty or text is shorter than the pattern.
func (m *Matcher) Search(text []byte) (Result, error) {
	return m.search(text, nil)
}

// SearchWithTrace is Search with a per-step observer attached.
func (m *Matcher) SearchWithTrace(text []byte, tr Tracer) (Result, error) {
	return m.search(text, tr)
}

func (m *Matcher) search(text []byte, tr Tracer) (Result, error) {
	var res Result

	last := len(text) - len(m.pattern)
	if len(m.pattern) == 0 || last < 0 {
		return res, ErrNoWindow
	}

	shift := 0
	for num := 1; shift <= last; num++ {
		st := m.advanceAt(text, shift)
		st.Number = num
		st.Shift = shift

		if st.Kind == StepMatch {
			res.Matches = append(res.Matches, shift)
		}
		shift += st.Advance

		// Shifts that run the window past the end of the text do not
		// count toward the skipped total.
		if st.Advance > 1 && shift <= last {
			res.Skipped += st.Advance - 1
		}
		if tr != nil {
			tr.Step(st)
		}
	}

	res.Found = len(res.Matches) > 0
	return res, nil
}
