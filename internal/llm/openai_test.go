package llm

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json",
			input: `{"days": []}`,
			want:  `{"days": []}`,
		},
		{
			name:  "json code block",
			input: "Here you go:\n```json\n{\"days\": []}\n```\nEnjoy!",
			want:  `{"days": []}`,
		},
		{
			name:  "plain code block",
			input: "```\n{\"days\": []}\n```",
			want:  `{"days": []}`,
		},
		{
			name:  "surrounding whitespace",
			input: "\n  {\"days\": []}  \n",
			want:  `{"days": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.input); got != tt.want {
				t.Errorf("extractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}
