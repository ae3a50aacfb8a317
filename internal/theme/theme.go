// Package theme models named token tables supplied by the hosting application.
//
// A Theme maps symbolic token names ("color-success", "gradient-primary") to
// literal style values. Themes are read-only to the rest of the engine; the
// host swaps them wholesale through a Provider.
package theme

import (
	"sort"
	"strings"
	"sync/atomic"
)

// DefaultName is the theme populated by :root blocks.
const DefaultName = "default"

// Theme is a named token table.
type Theme struct {
	Name   string
	Tokens map[string]string // "color-success" -> "#16a34a" (no leading --)
	Source string            // File the theme was read from, if any
}

// New creates a theme, normalizing token keys.
func New(name string, tokens map[string]string) Theme {
	t := Theme{Name: name, Tokens: make(map[string]string, len(tokens))}
	for k, v := range tokens {
		t.Tokens[NormalizeToken(k)] = v
	}
	return t
}

// Lookup returns the literal value for a token. Both "color-primary" and
// "--color-primary" address the same entry.
func (t Theme) Lookup(token string) (string, bool) {
	if t.Tokens == nil {
		return "", false
	}
	v, ok := t.Tokens[NormalizeToken(token)]
	return v, ok
}

// Len returns the number of tokens in the theme.
func (t Theme) Len() int {
	return len(t.Tokens)
}

// Keys returns the token names sorted.
func (t Theme) Keys() []string {
	keys := make([]string, 0, len(t.Tokens))
	for k := range t.Tokens {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeToken strips surrounding whitespace and a leading "--".
func NormalizeToken(token string) string {
	return strings.TrimPrefix(strings.TrimSpace(token), "--")
}

// Set holds themes by name.
type Set map[string]Theme

// Get returns the named theme. An empty name selects DefaultName.
func (s Set) Get(name string) (Theme, bool) {
	if name == "" {
		name = DefaultName
	}
	t, ok := s[name]
	return t, ok
}

// Names returns DefaultName first when present, then the other theme
// names sorted.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		if name != DefaultName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := s[DefaultName]; ok {
		names = append([]string{DefaultName}, names...)
	}
	return names
}

// Provider holds the active theme. The host may call Swap at any time;
// readers always observe either the old or the new theme, never a mix.
type Provider struct {
	current atomic.Pointer[Theme]
}

// NewProvider returns a provider serving t.
func NewProvider(t Theme) *Provider {
	p := &Provider{}
	p.current.Store(&t)
	return p
}

// Current returns the active theme. A nil provider serves an empty theme.
func (p *Provider) Current() Theme {
	if p == nil {
		return Theme{}
	}
	if t := p.current.Load(); t != nil {
		return *t
	}
	return Theme{}
}

// Swap replaces the active theme and returns the previous one.
func (p *Provider) Swap(t Theme) Theme {
	prev := p.current.Swap(&t)
	if prev == nil {
		return Theme{}
	}
	return *prev
}
