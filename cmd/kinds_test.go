package cmd

import (
	"strings"
	"testing"
)

func TestKindsE2E(t *testing.T) {
	resetFlags()

	out, err := execute(t, "kinds")
	if err != nil {
		t.Fatalf("kinds command failed: %v", err)
	}

	for _, want := range []string{
		"memcache-request",
		"timeouts",
		"retries",
		"worst-runtimes",
		"worst-runtimes-per-trace",
		"expensive-endpoints",
		"{service} made {sum} redundant memcache requests",
		"{service} timed out in calls to the following services:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("kinds output missing %q\nGot:\n%s", want, out)
		}
	}
}
