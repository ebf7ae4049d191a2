package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	stdregexp "regexp"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
	re2 "github.com/wasilibs/go-re2"
	gore2 "github.com/wasilibs/go-re2/experimental"

	"github.com/sansecio/bmgo/boyermoore"
	"github.com/sansecio/bmgo/cmd/internal"
)

type finder interface {
	Count(data []byte) int
}

type compileFunc func(pattern string) (finder, error)

type bmFinder struct{ m *boyermoore.Matcher }

func (f bmFinder) Count(data []byte) int { return len(f.m.FindAll(data)) }

type bytesFinder struct{ pattern []byte }

func (f bytesFinder) Count(data []byte) int { return len(internal.RefFindAll(data, f.pattern)) }

type regexpFinder struct{ re *stdregexp.Regexp }

func (f regexpFinder) Count(data []byte) int { return len(f.re.FindAllIndex(data, -1)) }

type re2Finder struct{ re *re2.Regexp }

func (f re2Finder) Count(data []byte) int { return len(f.re.FindAllIndex(data, -1)) }

type acFinder struct{ ac ahocorasick.AhoCorasick }

// FindAll takes a string; the conversion cost lands in the measurement.
func (f acFinder) Count(data []byte) int { return len(f.ac.FindAll(string(data))) }

var engines = map[string]compileFunc{
	"boyermoore": func(s string) (finder, error) {
		return bmFinder{boyermoore.CompileString(s)}, nil
	},
	"bytes": func(s string) (finder, error) {
		return bytesFinder{[]byte(s)}, nil
	},
	"regexp": func(s string) (finder, error) {
		re, err := stdregexp.Compile(stdregexp.QuoteMeta(s))
		if err != nil {
			return nil, err
		}
		return regexpFinder{re}, nil
	},
	"go-re2": func(s string) (finder, error) {
		re, err := gore2.CompileLatin1(stdregexp.QuoteMeta(s))
		if err != nil {
			return nil, err
		}
		return re2Finder{re}, nil
	},
	"aho-corasick": func(s string) (finder, error) {
		builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
			MatchKind: ahocorasick.LeftMostLongestMatch,
			DFA:       true,
		})
		return acFinder{builder.Build([]string{s})}, nil
	},
}

var cpuProfile = flag.Bool("cpu-profile", false, "write cpu profiles for each engine")

func main() {
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "Usage: engine-bench [-cpu-profile] <file> <pattern>\n")
		os.Exit(1)
	}

	filePath := flag.Arg(0)
	pattern := flag.Arg(1)

	data, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File: %s (%d bytes)\n", filePath, len(data))
	fmt.Printf("Pattern: %s\n\n", pattern)

	counts := make(map[string]int)
	results := make(map[string]time.Duration)
	order := []string{"boyermoore", "bytes", "regexp", "go-re2", "aho-corasick"}

	for _, name := range order {
		compile := engines[name]

		var profileFile *os.File
		if *cpuProfile {
			profileFile, err = os.Create(name + ".pprof")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating profile for %s: %v\n", name, err)
				os.Exit(1)
			}
		}

		f, err := compile(pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error compiling pattern with %s: %v\n", name, err)
			os.Exit(1)
		}

		if profileFile != nil {
			if err := pprof.StartCPUProfile(profileFile); err != nil {
				fmt.Fprintf(os.Stderr, "Error starting CPU profile: %v\n", err)
				os.Exit(1)
			}
		}

		start := time.Now()
		counts[name] = f.Count(data)
		duration := time.Since(start)

		if profileFile != nil {
			pprof.StopCPUProfile()
			_ = profileFile.Close()
		}

		results[name] = duration
	}

	// Print table. Counts follow each engine's own semantics: boyermoore and
	// bytes report overlapping occurrences, the other engines do not.
	fmt.Println("Engine        Matches  Duration (µs)")
	fmt.Println("------------  -------  -------------")
	for _, name := range order {
		fmt.Printf("%-12s  %7d  %13.2f\n", name, counts[name], float64(results[name].Microseconds()))
	}
}
