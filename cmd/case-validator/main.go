package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/sansecio/bmgo/boyermoore"
	"github.com/sansecio/bmgo/casefile"
	"github.com/sansecio/bmgo/trace"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: case-validator <file.cases> [...]\n")
		os.Exit(1)
	}

	p, err := casefile.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building parser: %v\n", err)
		os.Exit(1)
	}

	debug := os.Getenv("DEBUG_CASE")

	var checked, failed int

	for _, path := range os.Args[1:] {
		f, err := p.ParseFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", path, err)
			os.Exit(1)
		}

		for _, c := range f.Cases {
			checked++
			if !validate(path, c, debug) {
				failed++
			}
		}
	}

	fmt.Printf("\nvalidated %d cases, %d failed\n", checked, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func validate(path string, c *casefile.Case, debug string) bool {
	m := boyermoore.CompileString(c.Pattern)
	res, err := m.Search([]byte(c.Text))
	if err != nil {
		res = boyermoore.Result{} // no search window: trivially no matches
	}

	if debug != "" && c.Name == debug {
		fmt.Fprintf(os.Stderr, "DEBUG %s:\n", c.Name)
		trace.Search(os.Stderr, []byte(c.Text), []byte(c.Pattern))
	}

	ok := true
	if c.HasExpect && !slices.Equal(res.Matches, c.Expect) {
		fmt.Printf("%s: case %q: matches = %v, want %v\n", path, c.Name, res.Matches, c.Expect)
		ok = false
	}
	if c.Skipped != nil && res.Skipped != *c.Skipped {
		fmt.Printf("%s: case %q: skipped = %d, want %d\n", path, c.Name, res.Skipped, *c.Skipped)
		ok = false
	}
	return ok
}
