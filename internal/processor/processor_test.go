package processor

import (
	"testing"
)

func TestProcess(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "simple message",
			message: "hi",
			want:    "The received message is: 'hi'",
		},
		{
			name:    "empty message",
			message: "",
			want:    "The received message is: ''",
		},
		{
			name:    "single quotes are not escaped",
			message: "it's",
			want:    "The received message is: 'it's'",
		},
		{
			name:    "double quotes are not escaped",
			message: `say "ping"`,
			want:    `The received message is: 'say "ping"'`,
		},
		{
			name:    "newlines are kept",
			message: "line one\nline two",
			want:    "The received message is: 'line one\nline two'",
		},
		{
			name:    "surrounding whitespace is kept",
			message: "  padded\t",
			want:    "The received message is: '  padded\t'",
		},
		{
			name:    "unicode",
			message: "héllo 世界",
			want:    "The received message is: 'héllo 世界'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Process(tt.message); got != tt.want {
				t.Errorf("Process(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestProcessIsDeterministic(t *testing.T) {
	inputs := []string{"", "ping", "a'b", "x\ny"}

	for _, in := range inputs {
		first := Process(in)
		second := Process(in)
		if first != second {
			t.Errorf("Process(%q) returned %q then %q", in, first, second)
		}
	}
}
