// Package casefile parses search scenario files: named cases that pair a
// text with a pattern and, optionally, the expected match offsets and
// skipped character count.
package casefile

// Case is one search scenario.
type Case struct {
	Name      string
	Text      string
	Pattern   string
	Expect    []int // expected match offsets, ascending
	HasExpect bool
	Skipped   *int // expected skipped character count, nil when unasserted
}

// File holds the cases parsed from one input.
type File struct {
	Cases []*Case
}
