//go:build yara

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	yara "github.com/hillu/go-yara/v4"

	"github.com/sansecio/bmgo/cmd/internal"
	"github.com/sansecio/bmgo/scanner"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: yara-diff <pattern> <path>\n")
		os.Exit(1)
	}

	pattern := []byte(os.Args[1])
	scanPath := os.Args[2]

	s, err := scanner.New(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error compiling pattern: %v\n", err)
		os.Exit(1)
	}

	rules, err := internal.GoYaraRules(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error compiling go-yara rules: %v\n", err)
		os.Exit(1)
	}

	var scanned, agreed int
	diffs := internal.Tally{}

	err = filepath.WalkDir(scanPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			return nil
		}

		scanned++

		// Full scan, not fast mode: fast mode may stop after the first
		// occurrence of a string and the offset sets would never agree.
		var matches yara.MatchRules
		if err := rules.ScanMem(data, 0, 30*time.Second, &matches); err != nil {
			fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", path, err)
			return nil
		}

		var yaraOffsets []int
		for _, m := range matches {
			for _, ms := range m.Strings {
				yaraOffsets = append(yaraOffsets, int(ms.Offset))
			}
		}
		slices.Sort(yaraOffsets)

		bmOffsets := s.ScanMem(data).Matches

		if slices.Equal(yaraOffsets, bmOffsets) {
			agreed++
			return nil
		}

		for _, off := range yaraOffsets {
			if !slices.Contains(bmOffsets, off) {
				diffs.Add("go-yara only")
			}
		}
		for _, off := range bmOffsets {
			if !slices.Contains(yaraOffsets, off) {
				diffs.Add("boyermoore only")
			}
		}
		fmt.Printf("%s: go-yara %v, boyermoore %v\n", path, yaraOffsets, bmOffsets)

		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking path: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nscanned %d files, %d agreed, %d disagreed\n", scanned, agreed, scanned-agreed)
	if len(diffs) > 0 {
		fmt.Printf("differing offsets by source (%d total):\n", diffs.Total())
		for _, label := range diffs.Labels() {
			fmt.Printf("  %s: %d\n", label, diffs[label])
		}
		os.Exit(1)
	}
}
