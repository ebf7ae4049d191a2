package casefile

// Grammar structs for participle parser.
// These define the case file grammar using struct tags.

type file struct {
	Cases []*caseGrammar `parser:"@@*"`
}

type caseGrammar struct {
	Name    string          `parser:"'case' @Ident '{'"`
	Entries []*entryGrammar `parser:"@@* '}'"`
}

type entryGrammar struct {
	Text    *string     `parser:"  'text' '=' @String"`
	Pattern *string     `parser:"| 'pattern' '=' @String"`
	Expect  *expectList `parser:"| 'expect' '=' @@"`
	Skipped *int64      `parser:"| 'skipped' '=' @Int"`
}

type expectList struct {
	Offsets []int64 `parser:"'[' ( @Int ( ',' @Int )* )? ']'"`
}
