// Package settings turns the flat key/value assignments gathered from the
// config file, TEXTWRAP_* environment variables and --set flags into
// wrap.Options. Keys are matched case-insensitively.
package settings

import (
	"maps"
	"slices"
	"strings"
)

// Matcher reports whether a normalized key belongs to a handler.
type Matcher func(key string) bool

// ApplyFunc stores one option value, rejecting values it cannot parse.
type ApplyFunc func(key, val string) error

// Handler owns a group of option keys, such as the layout keys or the
// penalties.* family.
type Handler struct {
	Match Matcher
	Apply ApplyFunc
}

// Applier routes option keys to the handlers that own them.
type Applier struct {
	handlers []Handler
}

// New builds an Applier. Earlier handlers win when two match a key.
func New(handlers ...Handler) Applier {
	return Applier{handlers: handlers}
}

// ApplyAll hands every key to the first handler matching it and returns
// the keys no handler claimed, so the caller can warn about them. Keys
// are applied in sorted order, which keeps "indent" ahead of
// "initial-indent" whatever order the sources listed them in.
func (a Applier) ApplyAll(settings map[string]string) (map[string]string, error) {
	if len(settings) == 0 || len(a.handlers) == 0 {
		return settings, nil
	}
	norm := make(map[string]string, len(settings))
	for k, v := range settings {
		if key := normKey(k); key != "" {
			norm[key] = v
		}
	}
	keys := slices.Sorted(maps.Keys(norm))

	left := make(map[string]string)
	for _, key := range keys {
		h, ok := a.handlerFor(key)
		if !ok {
			left[key] = norm[key]
			continue
		}
		if h.Apply == nil {
			continue
		}
		if err := h.Apply(key, norm[key]); err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (a Applier) handlerFor(key string) (Handler, bool) {
	for _, h := range a.handlers {
		if h.Match != nil && h.Match(key) {
			return h, true
		}
	}
	return Handler{}, false
}

// PrefixMatcher claims every key starting with one of prefixes, for key
// families like "penalties.".
func PrefixMatcher(prefixes ...string) Matcher {
	return func(key string) bool {
		key = normKey(key)
		return slices.ContainsFunc(prefixes, func(p string) bool {
			return strings.HasPrefix(key, normKey(p))
		})
	}
}

// ExactMatcher claims the listed keys only.
func ExactMatcher(keys ...string) Matcher {
	return func(key string) bool {
		key = normKey(key)
		return slices.ContainsFunc(keys, func(k string) bool {
			return key == normKey(k)
		})
	}
}

func normKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
