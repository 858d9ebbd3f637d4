package version

import (
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	if got := Short(); got != Version {
		t.Errorf("Short() = %q, want %q", got, Version)
	}
}

func TestFull(t *testing.T) {
	full := Full()
	for _, part := range []string{Version, Commit, Date} {
		if !strings.Contains(full, part) {
			t.Errorf("Full() = %q, missing %q", full, part)
		}
	}
}
