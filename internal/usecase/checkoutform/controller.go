package checkoutform

import (
	"context"
	"log/slog"
	"sync"

	"ticket-monarch/internal/domain/booking"
	"ticket-monarch/internal/domain/checkout"
	"ticket-monarch/internal/infra/backend"
	"ticket-monarch/internal/pkg/clock"
	"ticket-monarch/internal/pkg/errs"
)

const (
	defaultSuccessMessage    = "Checkout successful! Your order has been processed."
	defaultFieldErrorMessage = "Please correct the errors in the form"
	defaultFailureMessage    = "Checkout failed. Please try again."
	unexpectedErrorMessage   = "An unexpected error occurred. Please try again."
)

type CheckoutClient interface {
	SubmitCheckout(ctx context.Context, values checkout.FormValues) backend.CheckoutResult
}

// OrderHandoff receives the order details once the backend accepts a
// checkout and drops the selection they were made from.
type OrderHandoff interface {
	CompleteOrder(ctx context.Context, order booking.OrderDetails) error
}

type Snapshot struct {
	Values checkout.FormValues
	Errors checkout.ValidationErrors
	State  checkout.SubmissionState
}

// Controller owns the checkout form of one visitor. Transitions are
// serialised by mu; the backend call runs unlocked while the state is
// Submitting, which is what rejects a second submit.
type Controller struct {
	mu        sync.Mutex
	values    checkout.FormValues
	errors    checkout.ValidationErrors
	state     checkout.SubmissionState
	selection booking.Selection

	client  CheckoutClient
	handoff OrderHandoff
	clock   clock.Clock
	logger  *slog.Logger

	dismiss    clock.Timer
	dismissGen uint64
	closed     bool
}

func NewController(
	selection booking.Selection,
	client CheckoutClient,
	handoff OrderHandoff,
	clk clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		values:    checkout.NewFormValues(),
		errors:    checkout.ValidationErrors{},
		state:     checkout.Idle(),
		selection: selection,
		client:    client,
		handoff:   handoff,
		clock:     clk,
		logger:    logger,
	}
}

func (c *Controller) Selection() booking.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// OnFieldChange stores the masked value and drops any error shown for the
// field without re-validating it.
func (c *Controller) OnFieldChange(field checkout.Field, raw string) error {
	if !field.IsValid() {
		return checkout.ErrUnknownField
	}
	display := checkout.FormatField(field, raw)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.values.Set(field, display); err != nil {
		return err
	}
	delete(c.errors, field)
	return nil
}

func (c *Controller) OnSubmit(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	if c.state.IsSubmitting() {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, errs.ErrSubmitInProgress
	}

	if verrs := checkout.Validate(c.values, c.clock.Now()); !verrs.IsEmpty() {
		c.errors = verrs
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, errs.ErrValidationFailed
	}

	c.stopDismissLocked()
	c.state = checkout.Submitting()
	submitted := c.values
	selection := c.selection
	c.mu.Unlock()

	result := c.client.SubmitCheckout(ctx, submitted)

	var handoffErr error
	if result.Success {
		handoffErr = c.handOff(ctx, selection, submitted)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case result.Success:
		c.values = checkout.NewFormValues()
		c.errors = checkout.ValidationErrors{}
		if handoffErr != nil {
			c.state = checkout.Failed(unexpectedErrorMessage)
		} else {
			c.state = checkout.Succeeded(orDefault(result.Message, defaultSuccessMessage))
		}
	case result.HasFieldErrors():
		c.errors = c.errors.Merge(checkout.ErrorsFromServer(result.FieldErrors))
		c.state = checkout.Failed(orDefault(result.Message, defaultFieldErrorMessage))
	default:
		c.state = checkout.Failed(orDefault(result.Message, orDefault(result.Error, defaultFailureMessage)))
	}

	c.logger.Info("checkout submitted",
		slog.String("phase", c.state.Phase.String()),
		slog.Int("field_errors", len(c.errors)),
	)

	c.scheduleDismissLocked()
	return c.snapshotLocked(), nil
}

func (c *Controller) handOff(ctx context.Context, selection booking.Selection, submitted checkout.FormValues) error {
	order := booking.NewOrderDetails(selection, submitted, c.clock.Now())
	if err := c.handoff.CompleteOrder(ctx, order); err != nil {
		c.logger.Error("failed to hand off order details", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close cancels a pending return to Idle. The controller must not be used afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopDismissLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Values: c.values,
		Errors: c.errors.Clone(),
		State:  c.state,
	}
}

func (c *Controller) stopDismissLocked() {
	if c.dismiss != nil {
		c.dismiss.Stop()
		c.dismiss = nil
	}
	c.dismissGen++
}

func (c *Controller) scheduleDismissLocked() {
	c.stopDismissLocked()
	if c.closed {
		return
	}
	gen := c.dismissGen
	c.dismiss = c.clock.AfterFunc(checkout.MessageDisplayDuration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.dismissGen {
			return
		}
		if c.state.Phase == checkout.PhaseSucceeded || c.state.Phase == checkout.PhaseFailed {
			c.state = checkout.Idle()
		}
		c.dismiss = nil
	})
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
