package style

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/yacobolo/uikit/internal/theme"
)

// maxTokenDepth bounds token-to-token references (--a: var(--b)).
const maxTokenDepth = 8

// Source supplies the active theme. *theme.Provider implements it.
type Source interface {
	Current() theme.Theme
}

// Static serves one fixed theme.
type Static theme.Theme

// Current implements Source.
func (s Static) Current() theme.Theme { return theme.Theme(s) }

// Resolution describes how an input was resolved.
type Resolution struct {
	Value   string
	OK      bool   // false only for unset inputs
	Missing string // Token name that was not found in the theme, if any
}

// Resolver maps inputs to concrete values against the active theme. It holds
// no cache: every call reads the source, so a theme swap is visible on the
// next resolution.
type Resolver struct {
	source Source
	log    zerolog.Logger
}

// NewResolver creates a resolver reading themes from src. A nil logger
// disables logging.
func NewResolver(src Source, log *zerolog.Logger) *Resolver {
	r := &Resolver{source: src, log: zerolog.Nop()}
	if log != nil {
		r.log = *log
	}
	return r
}

// Pinned returns a resolver bound to the theme active right now. Widgets pin
// once per render pass so all properties of one pass see the same theme.
func (r *Resolver) Pinned() *Resolver {
	return &Resolver{source: Static(r.theme()), log: r.log}
}

// Theme returns the theme the resolver currently reads.
func (r *Resolver) Theme() theme.Theme {
	return r.theme()
}

func (r *Resolver) theme() theme.Theme {
	if r == nil || r.source == nil {
		return theme.Theme{}
	}
	return r.source.Current()
}

// Resolve returns the concrete value for in, or ok=false when in is unset.
// Unknown tokens resolve to the input text unchanged.
func (r *Resolver) Resolve(in Input) (string, bool) {
	res := r.Explain(in)
	return res.Value, res.OK
}

// ResolveString parses raw and resolves it.
func (r *Resolver) ResolveString(raw string) (string, bool) {
	return r.Resolve(Parse(raw))
}

// Explain resolves in and reports which token, if any, was missing.
func (r *Resolver) Explain(in Input) Resolution {
	switch in.Kind {
	case KindUnset:
		return Resolution{}
	case KindLiteral, KindGradient:
		return Resolution{Value: in.Value, OK: true}
	case KindToken:
		return r.lookup(in.Value)
	}
	return Resolution{}
}

func (r *Resolver) lookup(raw string) Resolution {
	th := r.theme()
	seen := make(map[string]bool)

	current := raw
	for depth := 0; depth < maxTokenDepth; depth++ {
		name := tokenName(current)
		if seen[name] {
			r.log.Debug().Str("token", name).Msg("token reference cycle")
			return Resolution{Value: raw, OK: true, Missing: name}
		}
		seen[name] = true

		v, ok := th.Lookup(name)
		if !ok {
			r.log.Debug().Str("token", name).Str("theme", th.Name).Msg("token not found in theme")
			if depth == 0 {
				return Resolution{Value: raw, OK: true, Missing: name}
			}
			// Broken chain: keep the last concrete text we reached
			return Resolution{Value: current, OK: true, Missing: name}
		}

		next := Parse(v)
		if next.Kind != KindToken || !strings.HasPrefix(strings.ToLower(next.Value), "var(") {
			return Resolution{Value: v, OK: true}
		}
		current = next.Value
	}
	return Resolution{Value: current, OK: true}
}

// tokenName extracts the theme key from a token reference:
//
//	color-primary                 -> color-primary
//	--color-primary               -> color-primary
//	var(--color-primary, #fff)    -> color-primary
func tokenName(ref string) string {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(strings.ToLower(ref), "var(") {
		ref = strings.TrimSuffix(ref[len("var("):], ")")
		if i := strings.IndexByte(ref, ','); i >= 0 {
			ref = ref[:i]
		}
	}
	return theme.NormalizeToken(ref)
}
