package slug_test

import (
	"strings"
	"testing"

	"askforge/internal/core/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"How do I reverse a string?", "how-do-i-reverse-a-string"},
		{"  Is there an R function?  ", "is-there-an-r-function"},
		{"Café au lait — naïve approach", "cafe-au-lait-naive-approach"},
		{"C++ vs Go: which is faster???", "c-vs-go-which-is-faster"},
		{"100% CPU usage", "100-cpu-usage"},
		{"???", "untitled"},
		{"", "untitled"},
	}
	for _, c := range cases {
		if got := slug.Make(c.in); got != c.want {
			t.Fatalf("Make(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMakeCapsLength(t *testing.T) {
	long := strings.Repeat("word ", 50)
	got := slug.Make(long)
	if len(got) > 80 {
		t.Fatalf("slug too long: %d", len(got))
	}
	if strings.HasSuffix(got, "-") || strings.HasPrefix(got, "-") {
		t.Fatalf("slug has dangling hyphen: %q", got)
	}
}
