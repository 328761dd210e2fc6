package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ticket-monarch/internal/domain/booking"
	"ticket-monarch/internal/domain/checkout"
	"ticket-monarch/internal/infra/events"
	"ticket-monarch/internal/pkg/clock"
	"ticket-monarch/internal/usecase/checkoutform"
	"ticket-monarch/internal/usecase/handoff"

	"github.com/google/uuid"
)

type EventPublisher interface {
	Publish(ctx context.Context, event events.FunnelEvent) error
}

type SeatMap struct {
	Concert  booking.Concert
	Sections []booking.Section
}

type CheckoutPage struct {
	Selection booking.Selection
	Summary   booking.Summary
	Form      checkoutform.Snapshot
}

type FunnelUseCase interface {
	Home(ctx context.Context, visitor uuid.UUID) []booking.Concert
	SeatMap(ctx context.Context, visitor uuid.UUID, concertID int) (*SeatMap, error)
	SelectSection(ctx context.Context, visitor uuid.UUID, concertID int, section string) (*booking.Selection, error)
	OpenCheckout(ctx context.Context, visitor uuid.UUID) (*CheckoutPage, error)
	ChangeField(ctx context.Context, visitor uuid.UUID, field checkout.Field, raw string) (*checkoutform.Snapshot, error)
	Submit(ctx context.Context, visitor uuid.UUID) (*checkoutform.Snapshot, error)
	Confirmation(ctx context.Context, visitor uuid.UUID) (*booking.OrderDetails, error)
	ReturnHome(ctx context.Context, visitor uuid.UUID) error
}

type openCheckout struct {
	ctrl     *checkoutform.Controller
	lastSeen time.Time
}

type funnelUseCaseImpl struct {
	catalog   *booking.Catalog
	store     handoff.KV
	client    checkoutform.CheckoutClient
	publisher EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
	idleTTL   time.Duration

	mu       sync.Mutex
	checkout map[uuid.UUID]*openCheckout
}

// NewFunnelUseCase builds the funnel service. Controllers idle for longer
// than idleTTL are dropped the next time another visitor opens a checkout.
func NewFunnelUseCase(
	catalog *booking.Catalog,
	store handoff.KV,
	client checkoutform.CheckoutClient,
	publisher EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
	idleTTL time.Duration,
) FunnelUseCase {
	return &funnelUseCaseImpl{
		catalog:   catalog,
		store:     store,
		client:    client,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
		idleTTL:   idleTTL,
		checkout:  make(map[uuid.UUID]*openCheckout),
	}
}

func (f *funnelUseCaseImpl) Home(ctx context.Context, visitor uuid.UUID) []booking.Concert {
	f.emit(ctx, events.FunnelEvent{Type: events.TypePageView, Page: "home", VisitorID: visitor.String()})

	concerts := make([]booking.Concert, len(f.catalog.Concerts))
	copy(concerts, f.catalog.Concerts)
	return concerts
}

func (f *funnelUseCaseImpl) SeatMap(ctx context.Context, visitor uuid.UUID, concertID int) (*SeatMap, error) {
	concert, err := f.catalog.Concert(concertID)
	if err != nil {
		return nil, err
	}

	f.emit(ctx, events.FunnelEvent{Type: events.TypePageView, Page: "seats", VisitorID: visitor.String(), ConcertID: concertID})

	sections := make([]booking.Section, len(f.catalog.Sections))
	copy(sections, f.catalog.Sections)
	return &SeatMap{Concert: concert, Sections: sections}, nil
}

func (f *funnelUseCaseImpl) SelectSection(ctx context.Context, visitor uuid.UUID, concertID int, section string) (*booking.Selection, error) {
	concert, err := f.catalog.Concert(concertID)
	if err != nil {
		return nil, err
	}
	sec, err := f.catalog.Section(section)
	if err != nil {
		return nil, err
	}

	sel := booking.NewSelection(concert, sec)
	if err := handoff.NewBridge(f.store, visitor).WriteSelection(ctx, sel); err != nil {
		return nil, err
	}

	// A new selection starts a fresh checkout form.
	f.dropController(visitor)

	f.emit(ctx, events.FunnelEvent{
		Type:      events.TypeSectionSelected,
		VisitorID: visitor.String(),
		ConcertID: concertID,
		Section:   sec.Number,
	})
	return &sel, nil
}

func (f *funnelUseCaseImpl) OpenCheckout(ctx context.Context, visitor uuid.UUID) (*CheckoutPage, error) {
	ctrl, err := f.controller(ctx, visitor)
	if err != nil {
		return nil, err
	}

	sel := ctrl.Selection()
	f.emit(ctx, events.FunnelEvent{
		Type:      events.TypePageView,
		Page:      "checkout",
		VisitorID: visitor.String(),
		ConcertID: sel.Concert.ID,
		Section:   sel.Section(),
	})

	return &CheckoutPage{
		Selection: sel,
		Summary:   sel.Summary(),
		Form:      ctrl.Snapshot(),
	}, nil
}

func (f *funnelUseCaseImpl) ChangeField(ctx context.Context, visitor uuid.UUID, field checkout.Field, raw string) (*checkoutform.Snapshot, error) {
	ctrl, err := f.controller(ctx, visitor)
	if err != nil {
		return nil, err
	}
	if err := ctrl.OnFieldChange(field, raw); err != nil {
		return nil, err
	}
	snap := ctrl.Snapshot()
	return &snap, nil
}

// Submit returns the controller snapshot together with ErrValidationFailed
// or ErrSubmitInProgress so callers can still render the form.
func (f *funnelUseCaseImpl) Submit(ctx context.Context, visitor uuid.UUID) (*checkoutform.Snapshot, error) {
	ctrl, err := f.controller(ctx, visitor)
	if err != nil {
		return nil, err
	}

	sel := ctrl.Selection()
	snap, err := ctrl.OnSubmit(ctx)
	if err != nil {
		return &snap, err
	}
	// The selection is consumed; later checkout calls must read the store again.
	if snap.State.Phase == checkout.PhaseSucceeded {
		f.dropController(visitor)
	}

	f.emit(ctx, events.FunnelEvent{
		Type:      events.TypeCheckoutSubmitted,
		VisitorID: visitor.String(),
		ConcertID: sel.Concert.ID,
		Section:   sel.Section(),
		Outcome:   snap.State.Phase.String(),
	})
	return &snap, nil
}

func (f *funnelUseCaseImpl) Confirmation(ctx context.Context, visitor uuid.UUID) (*booking.OrderDetails, error) {
	order, err := handoff.NewBridge(f.store, visitor).ReadOrder(ctx)
	if err != nil {
		return nil, err
	}

	f.emit(ctx, events.FunnelEvent{
		Type:      events.TypeOrderConfirmed,
		VisitorID: visitor.String(),
		ConcertID: order.Concert.ID,
		Section:   order.Section(),
	})
	return &order, nil
}

func (f *funnelUseCaseImpl) ReturnHome(ctx context.Context, visitor uuid.UUID) error {
	if err := handoff.NewBridge(f.store, visitor).ClearOrder(ctx); err != nil {
		return err
	}
	f.dropController(visitor)

	f.emit(ctx, events.FunnelEvent{Type: events.TypeReturnedHome, VisitorID: visitor.String()})
	return nil
}

// controller returns the visitor's open checkout, creating it from the
// stored selection when none is open. A missing selection is reported as
// errs.ErrSelectionNotFound.
func (f *funnelUseCaseImpl) controller(ctx context.Context, visitor uuid.UUID) (*checkoutform.Controller, error) {
	now := f.clock.Now()

	f.mu.Lock()
	if open, ok := f.checkout[visitor]; ok {
		open.lastSeen = now
		f.mu.Unlock()
		return open.ctrl, nil
	}
	f.mu.Unlock()

	bridge := handoff.NewBridge(f.store, visitor)
	sel, err := bridge.ReadSelection(ctx)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// Another request may have opened it while the selection was read.
	if open, ok := f.checkout[visitor]; ok {
		open.lastSeen = now
		return open.ctrl, nil
	}

	f.pruneLocked(now)
	ctrl := checkoutform.NewController(sel, f.client, bridge, f.clock, f.logger.With(slog.String("visitor_id", visitor.String())))
	f.checkout[visitor] = &openCheckout{ctrl: ctrl, lastSeen: now}
	return ctrl, nil
}

func (f *funnelUseCaseImpl) dropController(visitor uuid.UUID) {
	f.mu.Lock()
	open, ok := f.checkout[visitor]
	delete(f.checkout, visitor)
	f.mu.Unlock()

	if ok {
		open.ctrl.Close()
	}
}

func (f *funnelUseCaseImpl) pruneLocked(now time.Time) {
	if f.idleTTL <= 0 {
		return
	}
	for id, open := range f.checkout {
		if now.Sub(open.lastSeen) > f.idleTTL && !open.ctrl.Snapshot().State.IsSubmitting() {
			open.ctrl.Close()
			delete(f.checkout, id)
		}
	}
}

// emit publishes best effort; a broker failure never fails the page.
func (f *funnelUseCaseImpl) emit(ctx context.Context, event events.FunnelEvent) {
	if f.publisher == nil {
		return
	}
	event.Timestamp = f.clock.Now().UTC()
	if err := f.publisher.Publish(ctx, event); err != nil {
		f.logger.Warn("failed to publish funnel event",
			slog.String("type", string(event.Type)),
			slog.String("error", err.Error()),
		)
	}
}
