package backend

import (
	"context"
	"net/http"
)

type HealthResult struct {
	Success bool
	Data    map[string]any
	Error   string
}

// HealthCheck reports success for any 2xx answer carrying a JSON object.
func (c *Client) HealthCheck(ctx context.Context) HealthResult {
	resp, err := c.do(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		c.logFailure("health", err)
		return HealthResult{Error: "Unable to connect to the server"}
	}

	var data map[string]any
	if err := c.decode(resp, &data); err != nil {
		c.logFailure("health", err)
		return HealthResult{Error: "Unable to connect to the server"}
	}
	return HealthResult{Success: resp.ok(), Data: data}
}
