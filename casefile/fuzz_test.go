package casefile

import "testing"

func FuzzParse(f *testing.F) {
	seeds := []string{
		`case basic { text = "AAAA" pattern = "AA" }`,
		`case expects { text = "AAAAAAB" pattern = "AB" expect = [5] }`,
		`case full { text = "ABCABC" pattern = "ABC" expect = [0, 3] skipped = 2 }`,
		`case empty_expect { text = "ABCDEF" pattern = "XYZ" expect = [] }`,
		`case escapes { text = "a\nb\x41" pattern = "\x00" }`,
		`// comment
		case commented { text = "A" pattern = "A" }`,
		`case one { text = "A" pattern = "A" }
		case two { text = "B" pattern = "B" }`,
	}

	for _, s := range seeds {
		f.Add(s)
	}

	p, err := New()
	if err != nil {
		f.Fatalf("New() error = %v", err)
	}

	f.Fuzz(func(t *testing.T, input string) {
		p.Parse(input) //nolint:errcheck
	})
}
