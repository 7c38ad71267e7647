package bag

//go:generate mockgen -destination=mock/mock.go -package=mockbag -source=interface.go

import "context"

// MaxPerSlot caps how many of one item a bag holds
const MaxPerSlot = 999

// Depositor puts items into the player's storage
type Depositor interface {
	// StoreItem adds qty units of token
	StoreItem(ctx context.Context, token string, qty int) error
}
