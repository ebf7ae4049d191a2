package main

import (
	"fmt"
	"os"

	"github.com/sansecio/bmgo/trace"
)

func main() {
	if len(os.Args) != 1 && len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s [<text> <pattern>]\n", os.Args[0])
		os.Exit(1)
	}

	text := "AAAAAAB"
	pattern := "AB"
	if len(os.Args) == 3 {
		text = os.Args[1]
		pattern = os.Args[2]
	}

	fmt.Printf("Text:    %s\n", text)
	fmt.Printf("Pattern: %s\n", pattern)
	fmt.Println("----------------------------------")

	trace.Search(os.Stdout, []byte(text), []byte(pattern))
}
