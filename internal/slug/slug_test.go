package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain words", in: "Web Development", want: "web-development"},
		{name: "c plus plus", in: "C++", want: "c-plus-plus"},
		{name: "c sharp", in: "C#", want: "c-sharp"},
		{name: "f star", in: "F*", want: "f-star"},
		{name: "single plus", in: "Google+ API", want: "google-plus-api"},
		{name: "punctuation stripped", in: "Node.js (JavaScript)", want: "nodejs-javascript"},
		{name: "whitespace runs", in: "Machine   Learning", want: "machine-learning"},
		{name: "leading and trailing", in: "  #Go!  ", want: "sharpgo"},
		{name: "empty", in: "", want: ""},
		{name: "only symbols", in: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{
		"C++", "C#", "Web Development", "Objective-C", "F*",
		"Lisp & Scheme", "  spaced   out  ", "ASP.NET Core",
	}
	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once), "slug of %q must be stable", in)
	}
}
