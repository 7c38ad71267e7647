// Package catalog holds the stone definitions, the override rule attached to each stone,
// and the species to stone mapping used by self-fusion auto-equip.
package catalog

import (
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/KirkDiggler/megastones/internal/domain/shared"
	megaerr "github.com/KirkDiggler/megastones/internal/errors"
)

// Rule is the override a stone applies to its target species
type Rule struct {
	// Species is the species token the stone is for
	Species string

	// Types replaces the two type slots; an empty slot keeps the original
	Types [2]shared.ElementType

	// Ability replaces the creature's ability when set
	Ability shared.Ability

	// Add holds additive stat deltas, applied first
	Add map[shared.Stat]int

	// Mul holds multiplicative stat factors, applied after every delta
	Mul map[shared.Stat]float64
}

// Stone is a catalog item definition. Price is always 0, stones are never sold.
type Stone struct {
	Token       string
	Name        string
	Description string
	Price       int
	Rule        Rule
}

// Catalog is immutable once built
type Catalog struct {
	stones    []*Stone
	byToken   map[string]*Stone
	bySpecies map[string][]string
}

// New validates stones and the species mapping and builds a catalog.
// Tokens must be unique, every rule needs a target species and every mapped stone must exist.
func New(stones []Stone, species map[string][]string) (*Catalog, error) {
	c := &Catalog{
		stones:    make([]*Stone, 0, len(stones)),
		byToken:   make(map[string]*Stone, len(stones)),
		bySpecies: make(map[string][]string, len(species)),
	}

	for i := range stones {
		s := stones[i]
		if s.Token == "" {
			return nil, megaerr.Validationf("stone at position %d has no token", i)
		}
		if _, exists := c.byToken[s.Token]; exists {
			return nil, megaerr.Validationf("duplicate stone token %s", s.Token).
				WithMeta("token", s.Token)
		}
		if s.Rule.Species == "" {
			return nil, megaerr.Validationf("stone %s has no target species", s.Token).
				WithMeta("token", s.Token)
		}
		s.Price = 0
		c.stones = append(c.stones, &s)
		c.byToken[s.Token] = &s
	}

	for sp, tokens := range species {
		if len(tokens) == 0 {
			continue
		}
		for _, token := range tokens {
			if _, ok := c.byToken[token]; !ok {
				err := megaerr.Validationf("species %s maps to unknown stone %s", sp, token).
					WithMeta("species", sp).
					WithMeta("token", token)
				if near, _ := c.Suggest(token); near != "" {
					err = err.WithMeta("suggestion", near)
				}
				return nil, err
			}
		}
		c.bySpecies[sp] = append([]string(nil), tokens...)
	}

	return c, nil
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(builtinStones, builtinSpecies)
	if err != nil {
		panic("catalog: built-in table is invalid: " + err.Error())
	}
	return c
}

// Stones returns every stone in registration order
func (c *Catalog) Stones() []*Stone {
	return c.stones
}

// Tokens returns every stone token in registration order
func (c *Catalog) Tokens() []string {
	tokens := make([]string, len(c.stones))
	for i, s := range c.stones {
		tokens[i] = s.Token
	}
	return tokens
}

// Stone looks a stone up by token
func (c *Catalog) Stone(token string) (*Stone, bool) {
	s, ok := c.byToken[token]
	return s, ok
}

// Has reports whether token is a catalog key
func (c *Catalog) Has(token string) bool {
	_, ok := c.byToken[token]
	return ok
}

// StonesFor returns the ordered stones for a species; the first one is the primary.
// The returned slice is a copy.
func (c *Catalog) StonesFor(species string) []string {
	tokens, ok := c.bySpecies[species]
	if !ok {
		return nil
	}
	return append([]string(nil), tokens...)
}

// Species returns every species with a mapping, sorted
func (c *Catalog) Species() []string {
	out := make([]string, 0, len(c.bySpecies))
	for sp := range c.bySpecies {
		out = append(out, sp)
	}
	sort.Strings(out)
	return out
}

// Suggest returns the stone token closest to token by edit distance.
// Nothing is suggested when the best distance is more than a third of the token length.
func (c *Catalog) Suggest(token string) (string, int) {
	best, bestDist := "", -1
	for _, s := range c.stones {
		d := levenshtein.ComputeDistance(token, s.Token)
		if bestDist < 0 || d < bestDist {
			best, bestDist = s.Token, d
		}
	}
	if best == "" || bestDist > len(token)/3 {
		return "", -1
	}
	return best, bestDist
}
