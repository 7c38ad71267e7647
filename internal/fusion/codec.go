// Package fusion decodes composite fusion species codes such as B6H1 (body dex 6, head dex 1)
// and maps the halves back to species tokens.
package fusion

import (
	"regexp"
	"strconv"

	"github.com/KirkDiggler/megastones/internal/repositories/species"
)

var codePattern = regexp.MustCompile(`^[Bb]([0-9]+)[Hh]([0-9]+)$`)

// Code is a decoded fusion: the body and head species indexes
type Code struct {
	Body int
	Head int
}

// Decode parses "B<digits>H<digits>" case-insensitively. Any other text, including
// digit groups too large to fit an int, is not a fusion.
func Decode(speciesCode string) (Code, bool) {
	m := codePattern.FindStringSubmatch(speciesCode)
	if m == nil {
		return Code{}, false
	}

	body, err := strconv.ParseUint(m[1], 10, 31)
	if err != nil {
		return Code{}, false
	}
	head, err := strconv.ParseUint(m[2], 10, 31)
	if err != nil {
		return Code{}, false
	}

	return Code{Body: int(body), Head: int(head)}, true
}

// String renders the canonical upper case form
func (c Code) String() string {
	return "B" + strconv.Itoa(c.Body) + "H" + strconv.Itoa(c.Head)
}

// Codec resolves fusion halves through the host species table
type Codec struct {
	species species.Table
}

// NewCodec creates a codec over a species table
func NewCodec(table species.Table) *Codec {
	return &Codec{species: table}
}

// DexToSpecies maps a species index to its token
func (c *Codec) DexToSpecies(dex int) (string, bool) {
	if c == nil || c.species == nil || dex <= 0 {
		return "", false
	}
	rec, ok := c.species.Get(dex)
	if !ok || rec == nil || rec.Token == "" {
		return "", false
	}
	return rec.Token, true
}

// HeadSpecies returns the head species token of a fusion code
func (c *Codec) HeadSpecies(speciesCode string) (string, bool) {
	code, ok := Decode(speciesCode)
	if !ok {
		return "", false
	}
	return c.DexToSpecies(code.Head)
}

// BodySpecies returns the body species token of a fusion code
func (c *Codec) BodySpecies(speciesCode string) (string, bool) {
	code, ok := Decode(speciesCode)
	if !ok {
		return "", false
	}
	return c.DexToSpecies(code.Body)
}

// Halves returns both species tokens. ok is false when the code is not a fusion
// or either half is missing from the species table.
func (c *Codec) Halves(speciesCode string) (head, body string, ok bool) {
	code, isFusion := Decode(speciesCode)
	if !isFusion {
		return "", "", false
	}
	head, headOK := c.DexToSpecies(code.Head)
	body, bodyOK := c.DexToSpecies(code.Body)
	if !headOK || !bodyOK {
		return "", "", false
	}
	return head, body, true
}

// SelfFusionSpecies returns the species of a fusion whose head and body are the same
func (c *Codec) SelfFusionSpecies(speciesCode string) (string, bool) {
	head, body, ok := c.Halves(speciesCode)
	if !ok || head != body {
		return "", false
	}
	return head, true
}
