package settings

import (
	"strings"

	"github.com/unkn0wn-root/textwrap/internal/config"
)

// EnvName returns the environment variable that overrides key, e.g.
// "penalties.nline" -> TEXTWRAP_PENALTIES_NLINE.
func EnvName(key string) string {
	r := strings.NewReplacer("-", "_", ".", "_")
	return config.EnvPrefix + strings.ToUpper(r.Replace(strings.TrimSpace(key)))
}

// FromEnv collects the known keys set in the environment. Empty
// variables count as unset.
func FromEnv(getenv func(string) string) map[string]string {
	if getenv == nil {
		return nil
	}
	out := make(map[string]string)
	for _, key := range Keys() {
		if val := getenv(EnvName(key)); val != "" {
			out[key] = val
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Merge overlays scopes left to right; later scopes win.
func Merge(scopes ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, scope := range scopes {
		for k, v := range scope {
			out[strings.ToLower(strings.TrimSpace(k))] = v
		}
	}
	return out
}

// ParseAssignments turns "key=value" pairs, as given to --set, into a
// scope.
func ParseAssignments(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, usageErr("expected key=value, got %q", p)
		}
		out[strings.ToLower(k)] = v
	}
	return out, nil
}
