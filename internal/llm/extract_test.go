package llm

import "testing"

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare json untouched",
			in:   `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "json fence",
			in:   "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "plain fence",
			in:   "```\n[1, 2]\n```",
			want: `[1, 2]`,
		},
		{
			name: "fence with leading prose",
			in:   "Here are the questions:\n```json\n[{\"q\": \"x\"}]\n```",
			want: `[{"q": "x"}]`,
		},
		{
			name: "fence with trailing prose",
			in:   "```json\n{\"a\": 1}\n```\nLet me know if you need more.",
			want: `{"a": 1}`,
		},
		{
			name: "unterminated fence",
			in:   "```json\n{\"a\": 1}",
			want: `{"a": 1}`,
		},
		{
			name: "surrounding whitespace",
			in:   "\n\n  {\"a\": 1}  \n",
			want: `{"a": 1}`,
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractJSON(tc.in); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
