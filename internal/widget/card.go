package widget

import "github.com/yacobolo/uikit/internal/style"

var cardDefinition = definition{
	component: "card",
	variants:  []string{"default", "outline", "ghost"},
	paint:     []string{"background", "border", "header", "text"},
	shapes:    map[string]string{"radius": "radius-lg", "shadow": "shadow-none"},
}

// CardConfig configures a Card.
type CardConfig struct {
	ID string `validate:"required"`
	Appearance
	Elevated    bool
	Interactive bool
}

// Card is a styled surface with no state of its own.
type Card struct {
	cfg      CardConfig
	resolver *style.Resolver
}

// NewCard validates cfg and creates a card.
func NewCard(cfg CardConfig, r *style.Resolver) (*Card, error) {
	if err := validate(cardDefinition, cfg.ID, cfg, cfg.Appearance); err != nil {
		return nil, err
	}
	return &Card{cfg: cfg, resolver: r}, nil
}

// Attributes resolves the root attributes against the current theme.
// Elevated cards default to a medium shadow.
func (c *Card) Attributes() (style.Attributes, error) {
	shapes := map[string]string{}
	if c.cfg.Elevated {
		shapes["shadow"] = "shadow-md"
	}
	return cardDefinition.attributes(c.resolver, c.cfg.Appearance, shapes,
		flag(c.cfg.Elevated, "card--elevated"),
		flag(c.cfg.Interactive, "card--interactive"),
	)
}
