package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/megastones/internal/domain/creature"
	"github.com/KirkDiggler/megastones/internal/domain/shared"
	"github.com/KirkDiggler/megastones/internal/repositories/items"
	"github.com/KirkDiggler/megastones/internal/repositories/species"
)

// session is the harness input: the host's species table, the items it already has
// and the player's party
type session struct {
	Species []species.Species `yaml:"species"`
	Items   []sessionItem     `yaml:"items"`
	Party   []sessionMember   `yaml:"party"`
}

type sessionItem struct {
	Token    string `yaml:"token"`
	IDNumber int    `yaml:"id_number"`
	Name     string `yaml:"name"`
}

type sessionMember struct {
	Name    string         `yaml:"name"`
	Species string         `yaml:"species"`
	Item    any            `yaml:"item"`
	Types   []string       `yaml:"types"`
	Ability string         `yaml:"ability"`
	Stats   map[string]int `yaml:"stats"`
	Egg     bool           `yaml:"egg"`
}

func loadSession(path string) (*session, error) {
	if path == "" {
		return nil, fmt.Errorf("MEGASTONES_SESSION_PATH is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session %s: %w", path, err)
	}
	return parseSession(data)
}

func parseSession(data []byte) (*session, error) {
	var s session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	for i, m := range s.Party {
		if m.Species == "" {
			return nil, fmt.Errorf("party member %d has no species", i)
		}
		if len(m.Types) > 2 {
			return nil, fmt.Errorf("party member %d lists %d types", i, len(m.Types))
		}
	}
	return &s, nil
}

func (s *session) speciesTable() (*species.InMemoryTable, error) {
	table := species.NewInMemoryTable()
	for _, rec := range s.Species {
		if err := table.Put(rec); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func (s *session) itemDefinitions() []*items.Definition {
	defs := make([]*items.Definition, 0, len(s.Items))
	for _, it := range s.Items {
		defs = append(defs, &items.Definition{
			Token:      it.Token,
			IDNumber:   it.IDNumber,
			Name:       it.Name,
			NamePlural: it.Name + "s",
			Pocket:     1,
		})
	}
	return defs
}

func (m sessionMember) creature(ownerID string) *creature.Creature {
	c := &creature.Creature{
		OwnerID: ownerID,
		Name:    m.Name,
		Species: m.Species,
		Item:    m.Item,
		Ability: shared.Ability(m.Ability),
		IsEgg:   m.Egg,
		Base:    shared.StatSet{},
	}
	if len(m.Types) > 0 {
		c.PrimaryType = shared.ElementType(m.Types[0])
	}
	if len(m.Types) > 1 {
		c.SecondaryType = shared.ElementType(m.Types[1])
	}
	for k, v := range m.Stats {
		c.Base[shared.NormalizeStat(shared.Stat(k))] = v
	}
	return c
}
