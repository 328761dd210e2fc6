package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"ticket-monarch/internal/domain/checkout"
)

const (
	networkErrorLabel   = "Network error"
	checkoutNetworkText = "Unable to connect to the server. Please check your connection and try again."
)

// CheckoutResult is exactly one of: success, validation failure (FieldErrors set) or generic failure.
type CheckoutResult struct {
	Success     bool
	Message     string
	Error       string
	FieldErrors []checkout.FieldError
	Data        map[string]any
}

func (r CheckoutResult) HasFieldErrors() bool {
	return len(r.FieldErrors) > 0
}

type checkoutResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Errors  []json.RawMessage `json:"errors"`
}

func (c *Client) SubmitCheckout(ctx context.Context, values checkout.FormValues) CheckoutResult {
	resp, err := c.do(ctx, http.MethodPost, "/api/checkout", values)
	if err != nil {
		c.logFailure("checkout", err)
		return checkoutNetworkFailure()
	}

	var body checkoutResponse
	if err := c.decode(resp, &body); err != nil {
		c.logFailure("checkout", err)
		return checkoutNetworkFailure()
	}

	if resp.ok() && body.Success {
		var data map[string]any
		if err := json.Unmarshal(resp.body, &data); err != nil {
			c.logFailure("checkout data", err)
			data = nil
		}
		return CheckoutResult{
			Success: true,
			Message: orDefault(body.Message, "Checkout successful!"),
			Data:    data,
		}
	}

	if resp.status == http.StatusBadRequest && body.Errors != nil {
		return CheckoutResult{
			FieldErrors: parseFieldErrors(body.Errors),
			Error:       orDefault(body.Error, "Validation failed"),
			Message:     "Please correct the errors in the form",
		}
	}

	return CheckoutResult{
		Error:   orDefault(body.Error, "An error occurred"),
		Message: orDefault(body.Message, "Failed to process checkout"),
	}
}

// parseFieldErrors accepts plain strings ("zip_code must be 5 digits") and {field, message} objects.
func parseFieldErrors(raw []json.RawMessage) []checkout.FieldError {
	out := make([]checkout.FieldError, 0, len(raw))
	for _, item := range raw {
		var text string
		if err := json.Unmarshal(item, &text); err == nil {
			fe := checkout.FieldError{Message: text}
			if f, ok := checkout.FieldFromMessage(text); ok {
				fe.Field = f.String()
			}
			out = append(out, fe)
			continue
		}
		var fe checkout.FieldError
		if err := json.Unmarshal(item, &fe); err == nil && (fe.Field != "" || fe.Message != "") {
			out = append(out, fe)
		}
	}
	return out
}

func checkoutNetworkFailure() CheckoutResult {
	return CheckoutResult{
		Error:   networkErrorLabel,
		Message: checkoutNetworkText,
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
