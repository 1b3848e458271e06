package report

import (
	"fmt"
	"strings"
)

// Kind identifies one of the fixed per-service report categories this tool
// can emit. The set is closed: upstream aggregation jobs only produce these.
type Kind string

const (
	MemcacheRequest       Kind = "memcache-request"
	Timeouts              Kind = "timeouts"
	Retries               Kind = "retries"
	WorstRuntimes         Kind = "worst-runtimes"
	WorstRuntimesPerTrace Kind = "worst-runtimes-per-trace"
	ExpensiveEndpoints    Kind = "expensive-endpoints"
)

// AllKinds returns every report kind in presentation order.
func AllKinds() []Kind {
	return []Kind{
		MemcacheRequest,
		Timeouts,
		Retries,
		WorstRuntimes,
		WorstRuntimesPerTrace,
		ExpensiveEndpoints,
	}
}

// KindIDs returns the hyphenated kind identifiers, for flag help and errors.
func KindIDs() []string {
	ids := make([]string, 0, len(AllKinds()))
	for _, k := range AllKinds() {
		ids = append(ids, string(k))
	}
	return ids
}

// ParseKind resolves a kind from its hyphenated id ("worst-runtimes") or the
// upstream job-name spelling ("WorstRuntimes"), case-insensitively.
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", "")
	key = strings.ReplaceAll(key, "_", "")
	for _, k := range AllKinds() {
		if key == strings.ReplaceAll(string(k), "-", "") {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown report kind %q (valid: %s)", s, strings.Join(KindIDs(), ", "))
}
