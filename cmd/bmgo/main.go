package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sansecio/bmgo/scanner"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: bmgo <pattern> <path>\n")
		os.Exit(1)
	}

	pattern := os.Args[1]
	scanPath := os.Args[2]

	s, err := scanner.NewString(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error compiling pattern: %v\n", err)
		os.Exit(1)
	}

	var scanned, matched, occurrences int

	err = filepath.WalkDir(scanPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}

		scanned++

		fm, err := s.ScanFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error scanning %s: %v\n", path, err)
			return nil
		}

		if len(fm.Offsets) > 0 {
			matched++
			occurrences += len(fm.Offsets)
			fmt.Println(path)
		}

		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error walking path: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "scanned %d files, %d matched (%d occurrences)\n", scanned, matched, occurrences)
}
