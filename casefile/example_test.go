package casefile_test

import (
	"fmt"

	"github.com/sansecio/bmgo/casefile"
)

func ExampleParser_Parse() {
	p, err := casefile.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	f, err := p.Parse(`
case overlapping {
    text    = "AAAA"
    pattern = "AA"
    expect  = [0, 1, 2]
}
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	c := f.Cases[0]
	fmt.Printf("Parsed %d case(s)\n", len(f.Cases))
	fmt.Printf("%s: %q in %q at %v\n", c.Name, c.Pattern, c.Text, c.Expect)
	// Output:
	// Parsed 1 case(s)
	// overlapping: "AA" in "AAAA" at [0 1 2]
}
