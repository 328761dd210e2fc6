//go:build unit

package handoff_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticket-monarch/internal/domain/booking"
	"ticket-monarch/internal/infra"
	"ticket-monarch/internal/infra/kvstore"
	"ticket-monarch/internal/pkg/clock"
	"ticket-monarch/internal/pkg/errs"
	"ticket-monarch/internal/usecase/handoff"
	"ticket-monarch/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BridgeTestSuite struct {
	suite.Suite
	store  *kvstore.MemoryStore
	bridge *handoff.Bridge
}

func (s *BridgeTestSuite) SetupTest() {
	s.store = kvstore.NewMemoryStore(clock.NewMockClock(time.Now()), 0)
	s.bridge = handoff.NewBridge(s.store, uuid.New())
}

func TestBridgeSuite(t *testing.T) {
	suite.Run(t, new(BridgeTestSuite))
}

func (s *BridgeTestSuite) TestSelectionRoundTrip() {
	ctx := s.T().Context()
	_, err := s.bridge.ReadSelection(ctx)
	s.ErrorIs(err, errs.ErrSelectionNotFound)

	sel := builder.NewSelectionBuilder().Build()
	s.Require().NoError(s.bridge.WriteSelection(ctx, sel))

	got, err := s.bridge.ReadSelection(ctx)
	s.Require().NoError(err)
	if diff := cmp.Diff(sel, got); diff != "" {
		s.T().Errorf("selection mismatch (-want +got):\n%s", diff)
	}

	s.Require().NoError(s.bridge.ClearSelection(ctx))
	_, err = s.bridge.ReadSelection(ctx)
	s.ErrorIs(err, errs.ErrSelectionNotFound)
	s.NoError(s.bridge.ClearSelection(ctx), "clearing twice is fine")
}

func (s *BridgeTestSuite) TestOrderRoundTrip() {
	ctx := s.T().Context()
	order := builder.NewSelectionBuilder().BuildOrder(builder.NewFormBuilder().Build(), time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))

	s.Require().NoError(s.bridge.WriteOrder(ctx, order))
	got, err := s.bridge.ReadOrder(ctx)
	s.Require().NoError(err)
	if diff := cmp.Diff(order, got); diff != "" {
		s.T().Errorf("order mismatch (-want +got):\n%s", diff)
	}

	s.Require().NoError(s.bridge.ClearOrder(ctx))
	_, err = s.bridge.ReadOrder(ctx)
	s.ErrorIs(err, errs.ErrOrderNotFound)
}

func (s *BridgeTestSuite) TestCompleteOrder() {
	ctx := s.T().Context()
	sel := builder.NewSelectionBuilder().Build()
	s.Require().NoError(s.bridge.WriteSelection(ctx, sel))

	order := builder.NewSelectionBuilder().BuildOrder(builder.NewFormBuilder().Build(), time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	s.Require().NoError(s.bridge.CompleteOrder(ctx, order))

	_, err := s.bridge.ReadSelection(ctx)
	s.ErrorIs(err, errs.ErrSelectionNotFound)
	got, err := s.bridge.ReadOrder(ctx)
	s.Require().NoError(err)
	if diff := cmp.Diff(order, got); diff != "" {
		s.T().Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func (s *BridgeTestSuite) TestVisitorsAreIsolated() {
	ctx := s.T().Context()
	s.Require().NoError(s.bridge.WriteSelection(ctx, builder.NewSelectionBuilder().Build()))

	other := handoff.NewBridge(s.store, uuid.New())
	_, err := other.ReadSelection(ctx)
	s.ErrorIs(err, errs.ErrSelectionNotFound)
}

func (s *BridgeTestSuite) TestCorruptRecord() {
	ctx := s.T().Context()
	key := "funnel:" + s.bridge.Visitor().String() + ":" + handoff.SelectionKey
	s.Require().NoError(s.store.Set(ctx, key, []byte("{not json")))

	_, err := s.bridge.ReadSelection(ctx)
	s.ErrorIs(err, errs.ErrStoreOperationFailed)
}

type failingKV struct{ err error }

func (f failingKV) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingKV) Set(context.Context, string, []byte) error    { return f.err }
func (f failingKV) Delete(context.Context, string) error         { return f.err }

func TestBridgeStoreFailures(t *testing.T) {
	ctx := t.Context()
	storeErr := infra.WrapStoreErr(nil, infra.KindCacheFailure, "redis down", errors.New("dial tcp: refused"))
	b := handoff.NewBridge(failingKV{err: storeErr}, uuid.New())

	_, err := b.ReadSelection(ctx)
	assert.ErrorIs(t, err, errs.ErrStoreOperationFailed)
	assert.True(t, infra.IsKind(err, infra.KindCacheFailure))

	err = b.WriteOrder(ctx, booking.OrderDetails{})
	assert.ErrorIs(t, err, errs.ErrStoreOperationFailed)

	err = b.ClearSelection(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStoreOperationFailed)

	err = b.CompleteOrder(ctx, booking.OrderDetails{})
	assert.ErrorIs(t, err, errs.ErrStoreOperationFailed)
}

type failingBatchKV struct {
	failingKV
	calls int
}

func (f *failingBatchKV) Batch(context.Context, map[string][]byte, []string) error {
	f.calls++
	return f.err
}

func TestCompleteOrderUsesBatch(t *testing.T) {
	kv := &failingBatchKV{failingKV: failingKV{err: errors.New("exec aborted")}}
	b := handoff.NewBridge(kv, uuid.New())

	err := b.CompleteOrder(t.Context(), booking.OrderDetails{})

	assert.ErrorIs(t, err, errs.ErrStoreOperationFailed)
	assert.Equal(t, 1, kv.calls)
}
