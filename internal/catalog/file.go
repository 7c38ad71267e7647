package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/megastones/internal/domain/shared"
	megaerr "github.com/KirkDiggler/megastones/internal/errors"
)

// stoneFile is the YAML shape of a catalog extension:
//
//	stones:
//	  - token: MEOWSTICITE
//	    name: Meowsticite
//	    species: MEOWSTIC
//	    types: [PSYCHIC, FAIRY]
//	    ability: TRACE
//	    add: {ATTACK: 20, SPATK: 30}
//	    mul: {SPEED: 1.1}
//	species:
//	  MEOWSTIC: [MEOWSTICITE]
type stoneFile struct {
	Stones  []stoneEntry        `yaml:"stones"`
	Species map[string][]string `yaml:"species"`
}

type stoneEntry struct {
	Token       string             `yaml:"token"`
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Species     string             `yaml:"species"`
	Types       []string           `yaml:"types"`
	Ability     string             `yaml:"ability"`
	Add         map[string]int     `yaml:"add"`
	Mul         map[string]float64 `yaml:"mul"`
}

// LoadWithExtension returns the built-in catalog merged with the YAML file at path.
// An empty path returns the built-in catalog unchanged.
func LoadWithExtension(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog extension %s: %w", path, err)
	}

	return Extend(builtinStones, builtinSpecies, data)
}

// Extend parses a YAML extension and builds a catalog from base plus the extension.
// Species entries in the extension replace the base mapping for that species.
func Extend(baseStones []Stone, baseSpecies map[string][]string, data []byte) (*Catalog, error) {
	var file stoneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, megaerr.WrapWithCode(err, megaerr.CodeValidation, "failed to parse catalog extension")
	}

	stones := make([]Stone, 0, len(baseStones)+len(file.Stones))
	stones = append(stones, baseStones...)
	for _, entry := range file.Stones {
		stone, err := entry.toStone()
		if err != nil {
			return nil, err
		}
		stones = append(stones, stone)
	}

	species := make(map[string][]string, len(baseSpecies)+len(file.Species))
	for sp, tokens := range baseSpecies {
		species[sp] = tokens
	}
	for sp, tokens := range file.Species {
		species[sp] = tokens
	}

	return New(stones, species)
}

func (e stoneEntry) toStone() (Stone, error) {
	if len(e.Types) > 2 {
		return Stone{}, megaerr.Validationf("stone %s lists %d types, at most 2 allowed", e.Token, len(e.Types))
	}

	var types [2]shared.ElementType
	for i, t := range e.Types {
		types[i] = shared.ElementType(t)
	}
	// A single listed type is a mono-type override
	if len(e.Types) == 1 {
		types[1] = types[0]
	}

	rule := Rule{
		Species: e.Species,
		Types:   types,
		Ability: shared.Ability(e.Ability),
	}
	if len(e.Add) > 0 {
		rule.Add = make(map[shared.Stat]int, len(e.Add))
		for k, v := range e.Add {
			rule.Add[shared.NormalizeStat(shared.Stat(k))] += v
		}
	}
	if len(e.Mul) > 0 {
		rule.Mul = make(map[shared.Stat]float64, len(e.Mul))
		for k, v := range e.Mul {
			rule.Mul[shared.NormalizeStat(shared.Stat(k))] = v
		}
	}

	name := e.Name
	if name == "" {
		name = e.Token
	}
	desc := e.Description
	if desc == "" {
		desc = mysterious(e.Species)
	}

	return Stone{
		Token:       e.Token,
		Name:        name,
		Description: desc,
		Rule:        rule,
	}, nil
}
