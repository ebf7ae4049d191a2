package boyermoore

import (
	"slices"
	"testing"
)

func FuzzFindAll(f *testing.F) {
	f.Add([]byte("AAAAAAB"), []byte("AB"))
	f.Add([]byte("AAAA"), []byte("AA"))
	f.Add([]byte("ABCABC"), []byte("ABC"))
	f.Add([]byte("ABCDEF"), []byte("XYZ"))
	f.Add([]byte(""), []byte(""))
	f.Add([]byte("\x00\xff\x00\xff"), []byte("\xff\x00"))

	f.Fuzz(func(t *testing.T, text, pattern []byte) {
		got := Compile(pattern).FindAll(text)
		want := refFindAll(text, pattern)
		if !slices.Equal(got, want) {
			t.Errorf("FindAll(%q, %q) = %v, want %v", text, pattern, got, want)
		}
	})
}

func FuzzSearchSkipped(f *testing.F) {
	f.Add([]byte("ABCABC"), []byte("ABC"))
	f.Add([]byte("AAAAAAB"), []byte("AB"))

	f.Fuzz(func(t *testing.T, text, pattern []byte) {
		m := Compile(pattern)
		res, err := m.Search(text)
		if err != nil {
			if len(pattern) != 0 && len(text) >= len(pattern) {
				t.Fatalf("Search() error = %v for a valid window", err)
			}
			return
		}
		if res.Skipped < 0 || res.Skipped > len(text) {
			t.Errorf("Skipped = %d outside [0, %d]", res.Skipped, len(text))
		}
		if res.Found != (len(res.Matches) > 0) {
			t.Errorf("Found = %v with %d matches", res.Found, len(res.Matches))
		}
		for i := 1; i < len(res.Matches); i++ {
			if res.Matches[i] <= res.Matches[i-1] {
				t.Errorf("Matches not strictly ascending: %v", res.Matches)
			}
		}
	})
}
