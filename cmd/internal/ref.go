package internal

import "bytes"

// RefFindAll returns every occurrence of pattern in text, overlapping ones
// included, by stepping bytes.Index one byte at a time.
func RefFindAll(text, pattern []byte) []int {
	if len(pattern) == 0 || len(text) < len(pattern) {
		return nil
	}
	var offsets []int
	off := 0
	for {
		i := bytes.Index(text[off:], pattern)
		if i < 0 {
			return offsets
		}
		offsets = append(offsets, off+i)
		off += i + 1
	}
}
