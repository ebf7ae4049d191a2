package scanner

import (
	"fmt"
	"os"

	"github.com/sansecio/bmgo/boyermoore"
)

// FileMatch describes the occurrences of the pattern within one file.
type FileMatch struct {
	Path    string
	Offsets []int
	Skipped int
}

// ScanMem scans a byte buffer. A buffer shorter than the pattern yields an
// empty result.
func (s *Scanner) ScanMem(buf []byte) boyermoore.Result {
	res, err := s.matcher.Search(buf)
	if err != nil {
		return boyermoore.Result{}
	}
	return res
}

// ScanFile reads path into memory and scans it.
func (s *Scanner) ScanFile(path string) (FileMatch, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return FileMatch{}, fmt.Errorf("reading %s: %w", path, err)
	}
	res := s.ScanMem(buf)
	return FileMatch{Path: path, Offsets: res.Matches, Skipped: res.Skipped}, nil
}
