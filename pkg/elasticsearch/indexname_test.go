package elasticsearch

import (
	"strings"
	"testing"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple", input: "logs", want: true},
		{name: "dash_and_underscore_inside", input: "valid-name_1", want: true},
		{name: "dots_inside", input: "logs.2026.08", want: true},
		{name: "max_length", input: strings.Repeat("a", 255), want: true},

		{name: "empty", input: "", want: false},
		{name: "single_dot", input: ".", want: false},
		{name: "double_dot", input: "..", want: false},
		{name: "too_long", input: strings.Repeat("a", 256), want: false},
		{name: "leading_dash", input: "-abc", want: false},
		{name: "leading_underscore", input: "_abc", want: false},
		{name: "leading_plus", input: "+abc", want: false},
		{name: "leading_dot", input: ".abc", want: false},
		{name: "asterisk", input: "ab*c", want: false},
		{name: "space", input: "bad name", want: false},
		{name: "slash", input: "a/b", want: false},
		{name: "backslash", input: `a\b`, want: false},
		{name: "question_mark", input: "a?b", want: false},
		{name: "quote", input: `a"b`, want: false},
		{name: "angle_brackets", input: "a<b>", want: false},
		{name: "pipe", input: "a|b", want: false},
		{name: "comma", input: "a,b", want: false},
		{name: "colon", input: "a:b", want: false},
		{name: "hash", input: "a#b", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidName(tt.input); got != tt.want {
				t.Errorf("IsValidName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
