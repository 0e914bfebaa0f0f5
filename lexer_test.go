package lambdatron

import "testing"

func tokenKinds(tokens []*Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Typ
	}
	return out
}

func TestLexClassification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{"integer", "42", []TokenType{TokenInteger}},
		{"signed integer", "-7", []TokenType{TokenInteger}},
		{"plus integer", "+7", []TokenType{TokenInteger}},
		{"float", "3.25", []TokenType{TokenFloat}},
		{"nil", "nil", []TokenType{TokenNil}},
		{"bools", "true false", []TokenType{TokenBool, TokenBool}},
		{"keyword", ":abc", []TokenType{TokenKeyword}},
		{"identifier", "abc", []TokenType{TokenIdentifier}},
		{"dash is identifier", "-", []TokenType{TokenIdentifier}},
		{"dotted builtin", ".+", []TokenType{TokenBuiltIn}},
		{"special form", "if", []TokenType{TokenSpecial}},
		{"string", `"hi"`, []TokenType{TokenStringLiteral}},
		{"char", `\a`, []TokenType{TokenCharLiteral}},
		{"regex", `#"a+b"`, []TokenType{TokenRegexPattern}},
		{"list", "(a)", []TokenType{TokenSyntax, TokenIdentifier, TokenSyntax}},
		{"commas are whitespace", "1,2", []TokenType{TokenInteger, TokenInteger}},
		{"comment consumed", "1 ; two\n3", []TokenType{TokenInteger, TokenInteger}},
		{"unquote splice is one token", "~@", []TokenType{TokenSyntax}},
		{"number with two dots is identifier", "1.2.3", []TokenType{TokenIdentifier}},
		{"bare dot is identifier", ".", []TokenType{TokenIdentifier}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := lex(tt.input)
			if err != nil {
				t.Fatalf("lex(%q) failed: %v", tt.input, err)
			}
			got := tokenKinds(tokens)
			if len(got) != len(tt.want) {
				t.Fatalf("lex(%q) = %v tokens, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("lex(%q) token %d = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexCharLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`\a`, "a"},
		{`\(`, "("},
		{`\space`, " "},
		{`\tab`, "\t"},
		{`\newline`, "\n"},
		{`\return`, "\r"},
		{`\backspace`, "\b"},
		{`\formfeed`, "\f"},
		{`\u0041`, "A"},
		{`\o101`, "A"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := lex(tt.input)
			if err != nil {
				t.Fatalf("lex(%q) failed: %v", tt.input, err)
			}
			if len(tokens) != 1 || tokens[0].Typ != TokenCharLiteral {
				t.Fatalf("lex(%q) = %v, want one char literal", tt.input, tokens)
			}
			if tokens[0].Val != tt.want {
				t.Errorf("lex(%q) = %q, want %q", tt.input, tokens[0].Val, tt.want)
			}
		})
	}
}

func TestLexStringEscapes(t *testing.T) {
	tokens, err := lex(`"a\nb\tc\"d\\e"`)
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	want := "a\nb\tc\"d\\e"
	if tokens[0].Val != want {
		t.Errorf("string value = %q, want %q", tokens[0].Val, want)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ReadErrorKind
	}{
		{"invalid dispatch macro", "#x", ErrInvalidDispatchMacro},
		{"non-terminated string", `"abc`, ErrNonTerminatedString},
		{"non-terminated regex", `#"abc`, ErrNonTerminatedString},
		{"invalid string escape", `"a\qb"`, ErrInvalidStringEscapeSequence},
		{"bare colon", ":", ErrInvalidKeyword},
		{"invalid named char", `\abc`, ErrInvalidCharacter},
		{"invalid unicode digits", `\uZZZZ`, ErrInvalidUnicode},
		{"octal out of range", `\o777`, ErrInvalidOctal},
		{"octal bad digit", `\o99`, ErrInvalidCharacter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lex(tt.input)
			if err == nil {
				t.Fatalf("lex(%q) succeeded, want %v", tt.input, readErrorNames[tt.want])
			}
			if err.Kind != tt.want {
				t.Errorf("lex(%q) error = %v, want %v", tt.input, readErrorNames[err.Kind], readErrorNames[tt.want])
			}
		})
	}
}

func TestLexDispatchMacros(t *testing.T) {
	for _, input := range []string{"#{", "#'", "#(", "#_"} {
		tokens, err := lex(input)
		if err != nil {
			t.Fatalf("lex(%q) failed: %v", input, err)
		}
		if len(tokens) != 1 || tokens[0].Typ != TokenSyntax || tokens[0].Val != input {
			t.Errorf("lex(%q) = %v, want one syntax token", input, tokens)
		}
	}
}
