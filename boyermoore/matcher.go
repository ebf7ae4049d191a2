// Package boyermoore implements exact substring search with the Boyer-Moore
// algorithm. A pattern is compiled once into its bad character and good
// suffix shift tables and can then be scanned against any number of texts,
// reporting every occurrence including overlapping ones.
package boyermoore

// Matcher is a pattern compiled for searching. It is immutable after Compile
// and safe for concurrent use by multiple goroutines.
type Matcher struct {
	pattern    []byte
	badChar    [alphabetSize]int
	goodSuffix []int
}

// Compile builds the search tables for pattern. The pattern bytes are copied.
func Compile(pattern []byte) *Matcher {
	p := make([]byte, len(pattern))
	copy(p, pattern)
	return &Matcher{
		pattern:    p,
		badChar:    badCharTable(p),
		goodSuffix: goodSuffixTable(p),
	}
}

// CompileString builds the search tables for a string pattern.
func CompileString(pattern string) *Matcher {
	return Compile([]byte(pattern))
}

// Pattern returns a copy of the compiled pattern.
func (m *Matcher) Pattern() []byte {
	p := make([]byte, len(m.pattern))
	copy(p, m.pattern)
	return p
}

// Len returns the pattern length in bytes.
func (m *Matcher) Len() int {
	return len(m.pattern)
}
