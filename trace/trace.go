// Package trace renders search steps in the classic step-by-step textbook
// layout: one block per alignment attempt with the shift decision that ended
// it, followed by the new alignment of the pattern under the text.
package trace

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sansecio/bmgo/boyermoore"
)

const stepRule = "--------------------------------------------------------"

// Printer writes one block per search step. It implements boyermoore.Tracer.
type Printer struct {
	w       io.Writer
	text    []byte
	pattern []byte
}

// NewPrinter returns a Printer that renders a search of pattern in text to w.
func NewPrinter(w io.Writer, text, pattern []byte) *Printer {
	return &Printer{w: w, text: text, pattern: pattern}
}

// Step implements boyermoore.Tracer. Shift details and the alignment diagram
// are only rendered while the advanced window still fits inside the text.
func (p *Printer) Step(st boyermoore.Step) {
	last := len(p.text) - len(p.pattern)
	next := st.Shift + st.Advance

	fmt.Fprintf(p.w, "Step %d: Pattern aligned at index %d\n", st.Number, st.Shift)

	if st.Kind == boyermoore.StepMatch {
		fmt.Fprintf(p.w, "Pattern found at index: %d\n", st.Shift)
		if next <= last {
			fmt.Fprintf(p.w, "- Shifting right by: %d      - Chosen Heuristic: %s\n", st.Advance, st.Heuristic)
		}
	} else {
		fmt.Fprintf(p.w, "- Bad character shift: %d      - Good suffix shift: %d      - Heuristic Chosen: %s      - Shifting right by: %d\n",
			st.BadCharShift, st.GoodSuffixShift, st.Heuristic, st.Advance)
	}

	if next <= last {
		fmt.Fprintf(p.w, "\nText:    %s\n", p.text)
		fmt.Fprintf(p.w, "Pattern: %s%s\n", strings.Repeat(" ", next), p.pattern)
		fmt.Fprintln(p.w, stepRule)
	}
}

// Search runs a fully traced search of pattern in text, writing the step
// blocks and the closing summary to w, and returns the engine result.
func Search(w io.Writer, text, pattern []byte) (boyermoore.Result, error) {
	m := boyermoore.Compile(pattern)

	res, err := m.SearchWithTrace(text, NewPrinter(w, text, pattern))
	if err != nil {
		if errors.Is(err, boyermoore.ErrNoWindow) {
			fmt.Fprintln(w, "Pattern is empty or longer than the text.")
		}
		return res, err
	}

	if !res.Found {
		fmt.Fprintln(w, "Pattern not found in the text.")
	}

	fmt.Fprintln(w, "\n================================================")
	fmt.Fprint(w, "The pattern matched the text at index: ")
	for _, at := range res.Matches {
		fmt.Fprintf(w, "%d ", at)
	}
	fmt.Fprintf(w, "\nTotal Skipped Characters: %d\n", res.Skipped)

	return res, nil
}
