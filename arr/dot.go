package arr

import (
	"errors"
	"strings"
)

// ErrInvalidPath is returned by [ParsePath] for an empty path or a path with
// an empty segment ("a..b", ".a", "a.").
var ErrInvalidPath = errors.New("arr: invalid dot path")

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation paths for map[string]any
//
// A Path is parsed once and can then be evaluated against any number of
// nested map[string]any values without re-splitting the key:
//
//	p, _ := ParsePath("owner.address.city")
//	v, ok := p.Lookup(m)
// ─────────────────────────────────────────────────────────────────────────────

// Path is a parsed dot-notation key.
type Path struct {
	raw      string
	segments []string
}

// ParsePath splits key on "." and validates every segment.
func ParsePath(key string) (Path, error) {
	if key == "" {
		return Path{}, ErrInvalidPath
	}
	segments := strings.Split(key, ".")
	for _, seg := range segments {
		if seg == "" {
			return Path{}, ErrInvalidPath
		}
	}
	return Path{raw: key, segments: segments}, nil
}

// MustParsePath is like [ParsePath] but panics on error.
func MustParsePath(key string) Path {
	p, err := ParsePath(key)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the original dot-notation key.
func (p Path) String() string { return p.raw }

// Depth returns the number of segments.
func (p Path) Depth() int { return len(p.segments) }

// Lookup walks m along the path. It reports false when a segment is missing
// or an intermediate value is not a map[string]any.
func (p Path) Lookup(m map[string]any) (any, bool) {
	if len(p.segments) == 0 {
		return nil, false
	}
	current := m
	last := len(p.segments) - 1
	for i, seg := range p.segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == last {
			return val, true
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// Get retrieves a value from m using a dot-notation key.
// Returns def[0] (or nil) when the key does not exist or is malformed.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, key string, def ...any) any {
	p, err := ParsePath(key)
	if err == nil {
		if v, ok := p.Lookup(m); ok {
			return v
		}
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether the dot-notation key exists in m.
func Has(m map[string]any, key string) bool {
	p, err := ParsePath(key)
	if err != nil {
		return false
	}
	_, ok := p.Lookup(m)
	return ok
}

// Set writes value into m at the dot-notation key, creating intermediate
// maps as needed. Malformed keys are ignored.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, key string, value any) {
	p, err := ParsePath(key)
	if err != nil {
		return
	}
	current := m
	last := len(p.segments) - 1
	for _, seg := range p.segments[:last] {
		nested, ok := current[seg].(map[string]any)
		if !ok {
			nested = make(map[string]any)
			current[seg] = nested
		}
		current = nested
	}
	current[p.segments[last]] = value
}
