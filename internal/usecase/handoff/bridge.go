package handoff

import (
	"context"
	"encoding/json"

	"ticket-monarch/internal/domain/booking"
	"ticket-monarch/internal/infra"
	"ticket-monarch/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	SelectionKey = "bookingSelection"
	OrderKey     = "orderDetails"
)

// KV is the per-visitor durable store behind the bridge. Get must report a
// miss as an infra.StoreError of kind KindNotFound.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Batcher is implemented by stores that can apply several writes and
// deletes as one unit.
type Batcher interface {
	Batch(ctx context.Context, set map[string][]byte, del []string) error
}

// Bridge carries the booking selection and the order details between pages
// of one visitor. Each record is overwritten wholesale.
type Bridge struct {
	kv      KV
	visitor uuid.UUID
}

func NewBridge(kv KV, visitor uuid.UUID) *Bridge {
	return &Bridge{kv: kv, visitor: visitor}
}

func (b *Bridge) Visitor() uuid.UUID {
	return b.visitor
}

func (b *Bridge) ReadSelection(ctx context.Context) (booking.Selection, error) {
	var sel booking.Selection
	if err := b.read(ctx, SelectionKey, &sel); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.Selection{}, errs.ErrSelectionNotFound
		}
		return booking.Selection{}, err
	}
	return sel, nil
}

func (b *Bridge) WriteSelection(ctx context.Context, sel booking.Selection) error {
	return b.write(ctx, SelectionKey, sel)
}

func (b *Bridge) ClearSelection(ctx context.Context) error {
	return b.delete(ctx, SelectionKey)
}

func (b *Bridge) ReadOrder(ctx context.Context) (booking.OrderDetails, error) {
	var order booking.OrderDetails
	if err := b.read(ctx, OrderKey, &order); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.OrderDetails{}, errs.ErrOrderNotFound
		}
		return booking.OrderDetails{}, err
	}
	return order, nil
}

func (b *Bridge) WriteOrder(ctx context.Context, order booking.OrderDetails) error {
	return b.write(ctx, OrderKey, order)
}

// CompleteOrder stores the order and drops the selection it was made from.
// Stores implementing Batcher do both at once; others write the order first
// so a failure never loses a paid order.
func (b *Bridge) CompleteOrder(ctx context.Context, order booking.OrderDetails) error {
	batcher, ok := b.kv.(Batcher)
	if !ok {
		if err := b.WriteOrder(ctx, order); err != nil {
			return err
		}
		return b.ClearSelection(ctx)
	}

	raw, err := json.Marshal(order)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "encode order"), errs.ErrStoreOperationFailed)
	}
	set := map[string][]byte{b.key(OrderKey): raw}
	if err := batcher.Batch(ctx, set, []string{b.key(SelectionKey)}); err != nil {
		return errs.Mark(errs.Wrap(err, "complete order"), errs.ErrStoreOperationFailed)
	}
	return nil
}

func (b *Bridge) ClearOrder(ctx context.Context) error {
	return b.delete(ctx, OrderKey)
}

func (b *Bridge) key(name string) string {
	return "funnel:" + b.visitor.String() + ":" + name
}

func (b *Bridge) read(ctx context.Context, name string, dst any) error {
	raw, err := b.kv.Get(ctx, b.key(name))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		return errs.Mark(errs.Wrapf(err, "read %s", name), errs.ErrStoreOperationFailed)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errs.Mark(errs.Wrapf(err, "decode %s", name), errs.ErrStoreOperationFailed)
	}
	return nil
}

func (b *Bridge) write(ctx context.Context, name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "encode %s", name), errs.ErrStoreOperationFailed)
	}
	if err := b.kv.Set(ctx, b.key(name), raw); err != nil {
		return errs.Mark(errs.Wrapf(err, "write %s", name), errs.ErrStoreOperationFailed)
	}
	return nil
}

// delete treats a missing record as already deleted.
func (b *Bridge) delete(ctx context.Context, name string) error {
	if err := b.kv.Delete(ctx, b.key(name)); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Wrapf(err, "delete %s", name), errs.ErrStoreOperationFailed)
	}
	return nil
}
