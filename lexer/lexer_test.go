package lexer

import (
	"testing"

	"yalcc/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestScanProgramHeader(t *testing.T) {
	tokens, err := New("Prog P Is End").Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := kinds(tokens)
	want := []token.Kind{token.PROG, token.PROGNAME, token.IS, token.END, token.EOS}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
	if tokens[1].Value != "P" {
		t.Errorf("program name value = %v, want P", tokens[1].Value)
	}
}

func TestVarNameAfterProgNameIsOrdinary(t *testing.T) {
	tokens, err := New("Prog P Is x = 1; End").Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var varTok token.Token
	for _, tok := range tokens {
		if tok.Kind == token.VARNAME {
			varTok = tok
			break
		}
	}
	if varTok.Value != "x" {
		t.Fatalf("expected VARNAME x, got %+v", varTok)
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		input string
		want  token.Kind
	}{
		{"==", token.EQUAL},
		{"<=", token.SMALEQ},
		{"<", token.SMALLER},
		{"->", token.IMPLIES},
		{"-", token.MINUS},
		{"=", token.ASSIGN},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := New(tt.input).Scan()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tokens[0].Kind != tt.want {
				t.Errorf("got %s, want %s", tokens[0].Kind, tt.want)
			}
		})
	}
}

func TestNumberLiteral(t *testing.T) {
	tokens, err := New("12345").Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Kind != token.NUMBER {
		t.Fatalf("expected NUMBER, got %s", tokens[0].Kind)
	}
	if tokens[0].Value != int32(12345) {
		t.Fatalf("got %v, want 12345", tokens[0].Value)
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	tokens, err := New("x\ny").Scan()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Line != 1 {
		t.Errorf("first token line = %d, want 1", tokens[0].Line)
	}
	if tokens[1].Line != 2 {
		t.Errorf("second token line = %d, want 2", tokens[1].Line)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	_, err := New("x @ y").Scan()
	if err == nil {
		t.Fatal("expected a LexicalError, got nil")
	}
	if _, ok := err.(LexicalError); !ok {
		t.Fatalf("expected LexicalError, got %T", err)
	}
}

func TestNonASCIILetterIsRejected(t *testing.T) {
	// A non-ASCII letter must never be folded into a VARNAME: it would
	// otherwise be copied verbatim into an LLVM local identifier, which
	// only allows [a-zA-Z$._][a-zA-Z$._0-9]*.
	_, err := New("café = 1").Scan()
	if err == nil {
		t.Fatal("expected a LexicalError for a non-ASCII identifier character, got nil")
	}
	if _, ok := err.(LexicalError); !ok {
		t.Fatalf("expected LexicalError, got %T", err)
	}
}
