package messages

//go:generate mockgen -destination=mock/mock.go -package=mockmessages -source=interface.go

import "context"

// Table names one of the host text lookup tables
type Table string

const (
	ItemNames        Table = "item_names"
	ItemPlurals      Table = "item_plurals"
	ItemDescriptions Table = "item_descriptions"
)

// Catalog is the host text catalog, keyed by the numeric item id
type Catalog interface {
	// Set stores text for id in table
	Set(ctx context.Context, table Table, id int, text string) error

	// Get returns the text for id in table
	Get(ctx context.Context, table Table, id int) (string, error)
}
