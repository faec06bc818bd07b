package httputil

import "testing"

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "magma message",
			body: `{"message":"subscriber IMSI001010000000001 already exists"}`,
			want: "subscriber IMSI001010000000001 already exists",
		},
		{
			name: "problem detail",
			body: `{"type":"about:blank","title":"Bad Gateway","status":502,"detail":"upstream down"}`,
			want: "upstream down",
		},
		{
			name: "problem title only",
			body: `{"type":"about:blank","title":"Bad Gateway","status":502}`,
			want: "Bad Gateway",
		},
		{
			name: "plain text",
			body: "internal error\n",
			want: "internal error",
		},
		{
			name: "json without known fields",
			body: `{"code":1}`,
			want: `{"code":1}`,
		},
		{
			name: "empty",
			body: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage([]byte(tt.body)); got != tt.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
