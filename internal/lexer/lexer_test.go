package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := `let var c = 0;
	c := c + 10;
	`

	tests := []struct {
		expectedLiteral string
		expectedType    TokenType
	}{
		{"let", LET},
		{"var", VAR},
		{"c", IDENT},
		{"=", EQ},
		{"0", INT},
		{";", SEMICOLON},
		{"c", IDENT},
		{":=", ASSIGN},
		{"c", IDENT},
		{"+", PLUS},
		{"10", INT},
		{";", SEMICOLON},
		{"", EOF},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := "function type struct List Map of to output not and or cpy self if then else while true false"

	tests := []TokenType{
		FUNCTION, TYPE, STRUCT, LIST, MAP, OF, TO, OUTPUT, NOT, AND, OR, CPY, SELF,
		IF, THEN, ELSE, WHILE, TRUE, FALSE, EOF,
	}

	l := New(input)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - expected=%s, got=%s", i, want, tok.Type)
		}
	}
}

func TestOperatorsAndDelimiters(t *testing.T) {
	input := "( ) [ ] { } #{ ; , : . .. = <> < <= > >= := + - * /"

	tests := []TokenType{
		LPAREN, RPAREN, LBRACK, RBRACK, LBRACE, RBRACE, HASHBRACE, SEMICOLON, COMMA,
		COLON, DOT, DOTDOT, EQ, NOT_EQ, LESS, LESS_EQ, GREATER, GREATER_EQ, ASSIGN,
		PLUS, MINUS, ASTERISK, SLASH, EOF,
	}

	l := New(input)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - expected=%s, got=%s (literal=%q)", i, want, tok.Type, tok.Literal)
		}
	}
}

func TestStringLiteralKeepsQuotes(t *testing.T) {
	l := New(`'Hello World'`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	if tok.Literal != "'Hello World'" {
		t.Fatalf("expected literal to retain quotes, got %q", tok.Literal)
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{"123", INT},
		{"123.45", FLOAT},
		{"0", INT},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.typ {
			t.Errorf("input %q: expected %s, got %s", tt.input, tt.typ, tok.Type)
		}
		if tok.Literal != tt.input {
			t.Errorf("input %q: literal = %q", tt.input, tok.Literal)
		}
	}
}

func TestComments(t *testing.T) {
	input := `1 // line comment
	+ /* block
	comment */ 2`

	l := New(input)
	tok := l.NextToken()
	if tok.Type != INT || tok.Literal != "1" {
		t.Fatalf("expected INT 1, got %s %q", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != PLUS {
		t.Fatalf("expected PLUS, got %s", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != INT || tok.Literal != "2" {
		t.Fatalf("expected INT 2, got %s %q", tok.Type, tok.Literal)
	}
}

func TestUnterminatedStringIsError(t *testing.T) {
	l := New(`'oops`)
	l.NextToken()
	if len(l.Errors()) == 0 {
		t.Fatal("expected an error for unterminated string")
	}
}

func TestPositionTracking(t *testing.T) {
	l := New("let\nx = 1")
	tok := l.NextToken() // let
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Fatalf("expected 1:1, got %s", tok.Pos)
	}
	tok = l.NextToken() // x
	if tok.Pos.Line != 2 || tok.Pos.Column != 1 {
		t.Fatalf("expected 2:1, got %s", tok.Pos)
	}
}
