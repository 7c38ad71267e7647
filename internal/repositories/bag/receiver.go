package bag

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/megastones/internal/diagnostics"
)

// Receiver is the noisy deposit path: it stores through Bag and then tells the player.
// Auto-equip tries it only after every silent depositor failed.
type Receiver struct {
	Bag    Depositor
	Notify func(message string)
}

// NewReceiver announces deposits through sink
func NewReceiver(bag Depositor, sink diagnostics.Sink) *Receiver {
	if sink == nil {
		sink = diagnostics.Nop{}
	}
	return &Receiver{
		Bag:    bag,
		Notify: func(message string) { sink.Logf("%s", message) },
	}
}

func (r *Receiver) StoreItem(ctx context.Context, token string, qty int) error {
	if r.Bag == nil {
		return fmt.Errorf("receiver has no bag")
	}
	if err := r.Bag.StoreItem(ctx, token, qty); err != nil {
		return err
	}
	if r.Notify != nil {
		r.Notify(fmt.Sprintf("Obtained %d x %s.", qty, token))
	}
	return nil
}
