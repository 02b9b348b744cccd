// Package raw is the bootstrap env reader used before the logger exists.
// It must not import the logger package
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Lookup resolves a fully-qualified key, reporting whether it was set
type Lookup func(key string) (string, bool)

// Conf is a namespaced view over a key/value source (e.g. "ORIFICE_", "LOG_")
type Conf struct {
	prefix string
	lookup Lookup
}

// New returns a root Conf over the process environment
func New() Conf { return Conf{lookup: os.LookupEnv} }

// FromMap returns a root Conf over a fixed map; used by tests and by flag overlays
func FromMap(m map[string]string) Conf {
	return Conf{lookup: func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}}
}

// Prefix returns a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p, lookup: c.lookup} }

// Key composes the fully-qualified key
func (c Conf) Key(k string) string { return c.prefix + k }

// Value returns the trimmed value for key, or "" when unset
func (c Conf) Value(key string) string {
	if c.lookup == nil {
		return ""
	}
	v, _ := c.lookup(c.Key(key))
	return strings.TrimSpace(v)
}

// Get returns the value or def if empty
func (c Conf) Get(key, def string) string {
	if v := c.Value(key); v != "" {
		return v
	}
	return def
}

// GetBool parses "1|true|yes" as true; anything else set is false
func (c Conf) GetBool(key string, def bool) bool {
	v := strings.ToLower(c.Value(key))
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}

// GetInt parses a non-negative integer; anything else -> def
func (c Conf) GetInt(key string, def int) int {
	s := c.Value(key)
	if s == "" {
		return def
	}
	n := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return def
		}
		n = n*10 + int(ch-'0')
	}
	return n
}

// GetFloat parses a finite float; anything else -> def
func (c Conf) GetFloat(key string, def float64) float64 {
	s := c.Value(key)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != f {
		return def
	}
	return f
}
