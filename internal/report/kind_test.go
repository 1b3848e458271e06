package report

import (
	"strings"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"timeouts", Timeouts},
		{"Timeouts", Timeouts},
		{"retries", Retries},
		{"memcache-request", MemcacheRequest},
		{"MemcacheRequest", MemcacheRequest},
		{"worst-runtimes", WorstRuntimes},
		{"WorstRuntimes", WorstRuntimes},
		{"worst-runtimes-per-trace", WorstRuntimesPerTrace},
		{"WorstRuntimesPerTrace", WorstRuntimesPerTrace},
		{"expensive-endpoints", ExpensiveEndpoints},
		{"ExpensiveEndpoints", ExpensiveEndpoints},
		{"  timeouts  ", Timeouts},
		{"worst_runtimes", WorstRuntimes},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if err != nil {
				t.Fatalf("ParseKind(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseKind_Unknown(t *testing.T) {
	_, err := ParseKind("popular-keys")
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if !strings.Contains(err.Error(), "valid:") {
		t.Errorf("error should list valid kinds, got %q", err)
	}
}

func TestAllKinds_Covered(t *testing.T) {
	for _, k := range AllKinds() {
		if _, ok := kindSpecs[k]; !ok {
			t.Errorf("kind %q has no spec entry", k)
		}
	}
	if len(AllKinds()) != len(kindSpecs) {
		t.Errorf("AllKinds lists %d kinds, spec table has %d", len(AllKinds()), len(kindSpecs))
	}
}

func TestHeaderPattern(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Timeouts, "{service} timed out in calls to the following services:"},
		{WorstRuntimes, "Service {service} took the longest for these spans:"},
		{MemcacheRequest, "{service} made {sum} redundant memcache requests"},
	}
	for _, tt := range tests {
		if got := HeaderPattern(tt.kind); got != tt.want {
			t.Errorf("HeaderPattern(%q) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
