package casefile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Parser parses case files.
type Parser struct {
	parser *participle.Parser[file]
}

// New creates a new case file parser.
func New() (*Parser, error) {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Whitespace", Pattern: `[\s]+`},
		{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
		{Name: "Int", Pattern: `-?[0-9]+`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `[\[\]{}=,]`},
	})

	p, err := participle.Build[file](
		participle.Lexer(lex),
		participle.Elide("Whitespace", "LineComment"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("building parser: %w", err)
	}

	return &Parser{parser: p}, nil
}

// Parse parses cases from a string.
func (p *Parser) Parse(input string) (*File, error) {
	f, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, err
	}
	return convert(f)
}

// ParseFile parses cases from a file.
func (p *Parser) ParseFile(filename string) (*File, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	f, err := p.parser.ParseBytes(filename, content)
	if err != nil {
		return nil, err
	}
	return convert(f)
}

func convert(f *file) (*File, error) {
	out := &File{Cases: make([]*Case, 0, len(f.Cases))}
	for _, cg := range f.Cases {
		c, err := convertCase(cg)
		if err != nil {
			return nil, err
		}
		out.Cases = append(out.Cases, c)
	}
	return out, nil
}

func convertCase(cg *caseGrammar) (*Case, error) {
	c := &Case{Name: cg.Name}
	var hasText, hasPattern bool

	for _, e := range cg.Entries {
		switch {
		case e.Text != nil:
			if hasText {
				return nil, fmt.Errorf("case %q: duplicate text field", cg.Name)
			}
			c.Text = unquoteString(*e.Text)
			hasText = true

		case e.Pattern != nil:
			if hasPattern {
				return nil, fmt.Errorf("case %q: duplicate pattern field", cg.Name)
			}
			c.Pattern = unquoteString(*e.Pattern)
			hasPattern = true

		case e.Expect != nil:
			if c.HasExpect {
				return nil, fmt.Errorf("case %q: duplicate expect field", cg.Name)
			}
			for _, v := range e.Expect.Offsets {
				if v < 0 {
					return nil, fmt.Errorf("case %q: negative offset %d", cg.Name, v)
				}
				c.Expect = append(c.Expect, int(v))
			}
			c.HasExpect = true

		case e.Skipped != nil:
			if c.Skipped != nil {
				return nil, fmt.Errorf("case %q: duplicate skipped field", cg.Name)
			}
			if *e.Skipped < 0 {
				return nil, fmt.Errorf("case %q: negative skipped count %d", cg.Name, *e.Skipped)
			}
			v := int(*e.Skipped)
			c.Skipped = &v
		}
	}

	if !hasText {
		return nil, fmt.Errorf("case %q: missing text field", cg.Name)
	}
	if !hasPattern {
		return nil, fmt.Errorf("case %q: missing pattern field", cg.Name)
	}
	return c, nil
}

func unquoteString(s string) string {
	if len(s) < 2 {
		return s
	}
	s = s[1 : len(s)-1]

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'x':
			if i+2 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
					b.WriteByte(byte(v))
					i += 2
					continue
				}
			}
			b.WriteByte('\\')
			b.WriteByte(s[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
