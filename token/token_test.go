package token

import "testing"

func TestTokenString(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{"varname", NewLiteral(VARNAME, "x", 1, 0), "x"},
		{"number", NewLiteral(NUMBER, int32(42), 1, 0), "42"},
		{"keyword", New(PROG, 1, 0), "PROG"},
		{"eos", New(EOS, 1, 0), "end of input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeywordsDoesNotContainProgName(t *testing.T) {
	if _, ok := Keywords["PROGNAME"]; ok {
		t.Fatalf("Keywords must not map PROGNAME: it is lexer-context dependent, not a spelling")
	}
	if len(Keywords) != 10 {
		t.Fatalf("expected 10 keywords, got %d", len(Keywords))
	}
}
