package items

//go:generate mockgen -destination=mock/mock.go -package=mockitems -source=interface.go

import (
	"context"
)

// Definition is a host item record
type Definition struct {
	Token       string `json:"id"`
	IDNumber    int    `json:"id_number"`
	Name        string `json:"name"`
	NamePlural  string `json:"name_plural"`
	Pocket      int    `json:"pocket"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	FieldUse    int    `json:"field_use"`
	BattleUse   int    `json:"battle_use"`
	Type        int    `json:"type"`
	Move        string `json:"move,omitempty"`
}

// ItemToken lets a definition stand in for a held item value
func (d *Definition) ItemToken() string {
	return d.Token
}

// Store is the host item store
type Store interface {
	// Exists reports whether an item with this token is registered
	Exists(ctx context.Context, token string) (bool, error)

	// Get retrieves an item by token
	Get(ctx context.Context, token string) (*Definition, error)

	// Register stores a new item definition
	Register(ctx context.Context, def *Definition) error

	// All enumerates every registered definition
	All(ctx context.Context) ([]*Definition, error)
}
