package testutils

import (
	"github.com/KirkDiggler/megastones/internal/domain/creature"
	"github.com/KirkDiggler/megastones/internal/domain/shared"
	"github.com/KirkDiggler/megastones/internal/repositories/species"
)

// SpeciesTable returns the national dex entries the tests use
func SpeciesTable() *species.InMemoryTable {
	return species.NewInMemoryTable(
		species.Species{Dex: 6, Token: "CHARIZARD", Name: "Charizard"},
		species.Species{Dex: 25, Token: "PIKACHU", Name: "Pikachu"},
		species.Species{Dex: 26, Token: "RAICHU", Name: "Raichu"},
		species.Species{Dex: 94, Token: "GENGAR", Name: "Gengar"},
		species.Species{Dex: 150, Token: "MEWTWO", Name: "Mewtwo"},
		species.Species{Dex: 359, Token: "ABSOL", Name: "Absol"},
		species.Species{Dex: 445, Token: "GARCHOMP", Name: "Garchomp"},
		species.Species{Dex: 448, Token: "LUCARIO", Name: "Lucario"},
	)
}

// CreateTestCreature creates a party member with plain stats
func CreateTestCreature(ownerID, name, speciesCode string) *creature.Creature {
	return &creature.Creature{
		OwnerID: ownerID,
		Name:    name,
		Species: speciesCode,
		Base: shared.StatSet{
			shared.StatHP:             78,
			shared.StatAttack:         84,
			shared.StatDefense:        78,
			shared.StatSpecialAttack:  109,
			shared.StatSpecialDefense: 85,
			shared.StatSpeed:          100,
		},
		PrimaryType:   "FIRE",
		SecondaryType: "FLYING",
		Ability:       "BLAZE",
	}
}
