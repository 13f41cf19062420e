package field_test

// split_test.go checks the bracket and quote aware splitter used for tags

import (
	"strings"
	"testing"

	"github.com/andrewwphillips/gqlbuild/internal/field"
)

func TestSplit(t *testing.T) {
	data := map[string]struct {
		in      string
		sep     byte
		out     []string // nil means an error is expected
		problem string   // substring expected in the error message
	}{
		"Empty":         {"", ',', []string{""}, ""},
		"One":           {"a", ',', []string{"a"}, ""},
		"Simple":        {"a,b,c", ',', []string{"a", "b", "c"}, ""},
		"Spaces":        {" a , b ", ',', []string{"a", "b"}, ""},
		"Trailing":      {"a,", ',', []string{"a", ""}, ""},
		"Round":         {"a,b(c,d),e", ',', []string{"a", "b(c,d)", "e"}, ""},
		"Square":        {"a=[1,2],b=3", ',', []string{"a=[1,2]", "b=3"}, ""},
		"Brace":         {"a={x:1,y:2},b", ',', []string{"a={x:1,y:2}", "b"}, ""},
		"Nested":        {"args(a=[1,{x:2}],b=3),scalar", ',', []string{"args(a=[1,{x:2}],b=3)", "scalar"}, ""},
		"InString":      {`a="x,y",b`, ',', []string{`a="x,y"`, "b"}, ""},
		"BracketInStr":  {`a="(",b`, ',', []string{`a="("`, "b"}, ""},
		"EqualsSep":     {"a=1", '=', []string{"a", "1"}, ""},
		"UnmatchedOpen": {"a(b,c", ',', nil, "left bracket"},
		"UnmatchedShut": {"a)b", ',', nil, "right bracket"},
		"UnmatchedSq":   {"a[b", ',', nil, "left square"},
		"UnmatchedBr":   {"a}b", ',', nil, "right brace"},
		"BadString":     {`a="b`, ',', nil, "unterminated"},
	}

	for name, d := range data {
		got, err := field.Split(d.in, d.sep)
		if d.out == nil {
			ok := err != nil && strings.Contains(err.Error(), d.problem)
			Assertf(t, ok, "Split: %14s: expected error mentioning %q, got %v (%v)", name, d.problem, got, err)
			continue
		}
		Assertf(t, err == nil, "Split: %14s: expected no error, got %v", name, err)
		if err != nil {
			continue
		}
		same := len(got) == len(d.out)
		if same {
			for i := range got {
				same = same && got[i] == d.out[i]
			}
		}
		Assertf(t, same, "Split: %14s: expected %q got %q", name, d.out, got)
	}
}

func Assertf(t *testing.T, succeeded bool, format string, args ...interface{}) {
	const (
		succeed = "✓" // tick
		failed  = "X"      //"✗" // cross
	)

	t.Helper()
	if !succeeded {
		t.Errorf("%s\t"+format, append([]interface{}{failed}, args...)...)
	} else {
		t.Logf("%s\t"+format, append([]interface{}{succeed}, args...)...)
	}
}
