package lang

import (
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/buildfile/lang/lex"
)

func TestSyntaxErrorFormat(t *testing.T) {
	_, _, err := parse(t, "cflags = -O2\nrule cc extra\n")

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error %T is not a *SyntaxError", err)
	}

	want := "line 2: missing newline: expected newline, got identifier\n" +
		"  2 | rule cc extra\n" +
		"              ^\n"
	if got := se.Error(); got != want {
		t.Errorf("Error() =\n%s\nwant\n%s", got, want)
	}
}

func TestSnippet(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		want   string
	}{
		{
			name:   "first column",
			input:  "abc\n",
			offset: 0,
			want:   "  1 | abc\n      ^\n",
		},
		{
			name:   "second line",
			input:  "a\nbcd\n",
			offset: 3,
			want:   "  2 | bcd\n       ^\n",
		},
		{
			name:   "no trailing newline",
			input:  "a\nbcd",
			offset: 5,
			want:   "  2 | bcd\n         ^\n",
		},
		{
			name:   "carriage return trimmed",
			input:  "ab\r\n",
			offset: 1,
			want:   "  1 | ab\n       ^\n",
		},
		{
			name:   "out of range",
			input:  "a",
			offset: 5,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := snippet([]byte(tt.input), tt.offset); got != tt.want {
				t.Errorf("snippet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSyntaxErrorUnwrap(t *testing.T) {
	_, _, err := parse(t, "x = $\r\n")

	if !errors.Is(err, ErrLex) || !errors.Is(err, lex.ErrUnknownToken) {
		t.Errorf("error = %v, want lexical unknown token", err)
	}

	if errors.Is(err, ErrAST) {
		t.Errorf("error = %v matches unrelated sentinel %v", err, ErrAST)
	}

	if !strings.HasPrefix(err.Error(), "line 1: lexical error") {
		t.Errorf("Error() = %q", err.Error())
	}
}
