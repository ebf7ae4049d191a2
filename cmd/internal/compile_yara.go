//go:build yara

package internal

import (
	"fmt"
	"strings"

	yara "github.com/hillu/go-yara/v4"
)

// GoYaraRules compiles a single-rule set matching pattern as a hex string,
// so every byte value round-trips without escaping.
func GoYaraRules(pattern []byte) (*yara.Rules, error) {
	var hex strings.Builder
	for _, b := range pattern {
		fmt.Fprintf(&hex, "%02X ", b)
	}
	src := fmt.Sprintf("rule pattern { strings: $p = { %s} condition: $p }", hex.String())

	compiler, err := yara.NewCompiler()
	if err != nil {
		return nil, err
	}
	if err := compiler.AddString(src, ""); err != nil {
		return nil, err
	}
	return compiler.GetRules()
}
