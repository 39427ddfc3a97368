package ast

import (
	"testing"

	"github.com/ccdavis/lift-lang/internal/lexer"
)

func TestProgramString(t *testing.T) {
	prog := &Program{
		Expressions: []Expression{
			&LetBinding{
				Token: lexer.Token{Type: lexer.LET, Literal: "let"},
				Name:  "x",
				Value: &IntLiteral{Token: lexer.Token{Literal: "5"}, Value: 5},
			},
		},
	}

	if got, want := prog.String(), "let x = 5"; got != want {
		t.Errorf("Program.String() = %q, want %q", got, want)
	}
}

func TestBinaryExprString(t *testing.T) {
	expr := &BinaryExpr{
		Token:    lexer.Token{Literal: "+"},
		Left:     &IntLiteral{Token: lexer.Token{Literal: "1"}, Value: 1},
		Operator: "+",
		Right:    &IntLiteral{Token: lexer.Token{Literal: "2"}, Value: 2},
	}
	if got, want := expr.String(), "(1 + 2)"; got != want {
		t.Errorf("BinaryExpr.String() = %q, want %q", got, want)
	}
}

func TestStrLiteralStripped(t *testing.T) {
	s := &StrLiteral{Token: lexer.Token{Literal: "'hi'"}, Value: "'hi'"}
	if got := s.Stripped(); got != "hi" {
		t.Errorf("Stripped() = %q, want %q", got, "hi")
	}
}
