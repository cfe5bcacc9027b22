package lexer

import (
	"testing"
)

func TestNextToken(t *testing.T) {
	input := `facts == 'a' AND numbers > 2 OR NOT (flags != true) AND score <= 1.5 AND name >= "m"`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{IDENTIFIER, "facts"},
		{EQ, "=="},
		{STRING, "a"},
		{AND, "AND"},
		{IDENTIFIER, "numbers"},
		{GT, ">"},
		{NUMBER, "2"},
		{OR, "OR"},
		{NOT, "NOT"},
		{PAREN_OPEN, "("},
		{IDENTIFIER, "flags"},
		{NEQ, "!="},
		{TRUE, "true"},
		{PAREN_CLOSE, ")"},
		{AND, "AND"},
		{IDENTIFIER, "score"},
		{LTE, "<="},
		{NUMBER, "1.5"},
		{AND, "AND"},
		{IDENTIFIER, "name"},
		{GTE, ">="},
		{STRING, "m"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (literal %q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestLowercaseKeywords(t *testing.T) {
	tokens, err := Tokenize("a and b or not c")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}

	want := []TokenType{IDENTIFIER, AND, IDENTIFIER, OR, NOT, IDENTIFIER}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, w := range want {
		if tokens[i].Type != w {
			t.Errorf("tokens[%d]: expected %v, got %v", i, w, tokens[i].Type)
		}
	}
}

func TestTokenizeIllegal(t *testing.T) {
	if _, err := Tokenize("numbers # 2"); err == nil {
		t.Fatalf("expected error for illegal character")
	}
	// A bare = is not an operator
	if _, err := Tokenize("numbers = 2"); err == nil {
		t.Fatalf("expected error for single =")
	}
}
