//go:build !integration

package logger

import "testing"

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		namespace string
		pattern   string
		want      bool
	}{
		{"lint:validator", "*", true},
		{"lint:validator", "lint:validator", true},
		{"lint:validator", "lint:*", true},
		{"lint:validator", "*:validator", true},
		{"lint:validator", "lint*validator", true},
		{"lint:validator", "rules:*", false},
		{"lint:validator", "", false},
		{"lint:validator", "lint", false},
	}

	for _, tt := range tests {
		if got := matchPattern(tt.namespace, tt.pattern); got != tt.want {
			t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.namespace, tt.pattern, got, tt.want)
		}
	}
}

func TestComputeEnabledExclusion(t *testing.T) {
	orig := debugEnv
	defer func() { debugEnv = orig }()

	debugEnv = "lint:*,-lint:autofix"
	if !computeEnabled("lint:validator") {
		t.Error("expected lint:validator to be enabled")
	}
	if computeEnabled("lint:autofix") {
		t.Error("expected lint:autofix to be excluded")
	}
}

func TestDisabledLoggerDoesNotEmit(t *testing.T) {
	orig := debugEnv
	defer func() { debugEnv = orig }()

	debugEnv = ""
	log := New("lint:off")
	if log.Enabled() {
		t.Error("expected logger to be disabled with empty DEBUG")
	}
	// Must be a no-op, not a panic.
	log.Printf("should not appear: %d", 42)
	log.Print("should not appear")
}
