package boyermoore

// StepKind tells whether an alignment attempt ended in a match or a mismatch.
type StepKind int

const (
	StepMismatch StepKind = iota
	StepMatch
)

// Heuristic identifies the shift rule that decided a step's advance.
type Heuristic int

const (
	HeuristicBadChar Heuristic = iota
	HeuristicGoodSuffix
)

// String returns the display label of the heuristic.
func (h Heuristic) String() string {
	if h == HeuristicGoodSuffix {
		return "Good Suffix"
	}
	return "Bad Character"
}

// Step describes one alignment attempt of a search.
type Step struct {
	Number          int      // 1-based attempt counter
	Shift           int      // window offset when the attempt started
	Kind            StepKind // mismatch or full match
	MismatchIndex   int      // pattern index of the mismatched byte, -1 on a match
	BadCharShift    int      // bad character rule advance, 0 on a match
	GoodSuffixShift int      // good suffix rule advance
	Heuristic       Heuristic
	Advance         int // positions the window moved right
}

// Tracer receives one Step per alignment attempt during a traced search.
// Tracing is observational only: the search result does not depend on it.
type Tracer interface {
	Step(Step)
}

// Steps collects steps and implements Tracer.
type Steps []Step

// Step implements Tracer, appending every step.
func (s *Steps) Step(st Step) {
	*s = append(*s, st)
}

// advanceAt runs a single alignment attempt with the window at shift,
// comparing right to left, and returns the step with its decision fields
// filled in. Number and Shift are left for the caller. The bad character
// rule wins ties, and its advance is clamped to a minimum of 1.
func (m *Matcher) advanceAt(text []byte, shift int) Step {
	j := len(m.pattern) - 1
	for j >= 0 && m.pattern[j] == text[shift+j] {
		j--
	}

	if j < 0 {
		adv := m.goodSuffix[0]
		return Step{
			Kind:            StepMatch,
			MismatchIndex:   -1,
			GoodSuffixShift: adv,
			Heuristic:       HeuristicGoodSuffix,
			Advance:         adv,
		}
	}

	bc := j - m.badChar[text[shift+j]]
	if bc < 1 {
		bc = 1
	}
	gs := m.goodSuffix[j+1]

	st := Step{
		Kind:            StepMismatch,
		MismatchIndex:   j,
		BadCharShift:    bc,
		GoodSuffixShift: gs,
		Heuristic:       HeuristicBadChar,
		Advance:         bc,
	}
	if gs > bc {
		st.Heuristic = HeuristicGoodSuffix
		st.Advance = gs
	}
	return st
}
