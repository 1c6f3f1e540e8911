package output

import (
	"bytes"
	"testing"
)

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  string
		isTTY bool
		want  bool
	}{
		{name: "never on tty", mode: "never", isTTY: true, want: false},
		{name: "always when piped", mode: "always", isTTY: false, want: true},
		{name: "auto follows tty", mode: "auto", isTTY: true, want: true},
		{name: "auto follows non-tty", mode: "auto", isTTY: false, want: false},
		{name: "unknown falls back to auto", mode: "rainbow", isTTY: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveColorMode(tt.mode, tt.isTTY); got != tt.want {
				t.Errorf("ResolveColorMode(%q, %v) = %v, want %v", tt.mode, tt.isTTY, got, tt.want)
			}
		})
	}
}

func TestIsTTYForBuffer(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("a bytes.Buffer is not a TTY")
	}
}
