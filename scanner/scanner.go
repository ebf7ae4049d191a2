// Package scanner applies a compiled search pattern to buffers and files.
package scanner

import (
	"errors"

	"github.com/sansecio/bmgo/boyermoore"
)

// Scanner holds a pattern compiled for repeated scans.
type Scanner struct {
	matcher *boyermoore.Matcher
}

// New compiles pattern into a Scanner. The pattern must not be empty: an
// empty pattern can never match any input.
func New(pattern []byte) (*Scanner, error) {
	if len(pattern) == 0 {
		return nil, errors.New("scanner: empty pattern")
	}
	return &Scanner{matcher: boyermoore.Compile(pattern)}, nil
}

// NewString compiles a string pattern into a Scanner.
func NewString(pattern string) (*Scanner, error) {
	return New([]byte(pattern))
}

// Pattern returns a copy of the compiled pattern.
func (s *Scanner) Pattern() []byte {
	return s.matcher.Pattern()
}

// Matcher exposes the underlying compiled matcher.
func (s *Scanner) Matcher() *boyermoore.Matcher {
	return s.matcher
}
