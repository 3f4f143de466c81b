package lambda

import (
	"encoding/json"
	"testing"
)

func TestOutputJSONHasExactlyTwoKeys(t *testing.T) {
	data, err := json.Marshal(NewOutput(200, "The received message is: 'ping'"))
	if err != nil {
		t.Fatalf("Failed to marshal output: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Failed to unmarshal output: %v", err)
	}

	if len(fields) != 2 {
		t.Errorf("Expected 2 keys, got %d: %v", len(fields), fields)
	}
	if fields["statusCode"] != float64(200) {
		t.Errorf("Expected statusCode 200, got %v", fields["statusCode"])
	}
	if fields["body"] != "The received message is: 'ping'" {
		t.Errorf("Unexpected body %v", fields["body"])
	}
}

func TestOutputStatusClasses(t *testing.T) {
	tests := []struct {
		status      int
		ok          bool
		clientError bool
	}{
		{status: 200, ok: true},
		{status: 204, ok: true},
		{status: 400, clientError: true},
		{status: 409, clientError: true},
		{status: 500},
	}

	for _, tt := range tests {
		out := NewOutput(tt.status, "")
		if out.OK() != tt.ok {
			t.Errorf("status %d: OK() = %v, want %v", tt.status, out.OK(), tt.ok)
		}
		if out.IsClientError() != tt.clientError {
			t.Errorf("status %d: IsClientError() = %v, want %v", tt.status, out.IsClientError(), tt.clientError)
		}
	}
}
