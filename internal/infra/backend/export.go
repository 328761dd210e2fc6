package backend

import (
	"context"
	"net/http"
)

type ExportResult struct {
	Success  bool
	Message  string
	FilePath string
	Error    string
}

type exportResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	FilePath string `json:"file_path"`
	Error    string `json:"error"`
}

func (c *Client) ExportCheckouts(ctx context.Context) ExportResult {
	resp, err := c.do(ctx, http.MethodGet, "/api/export", nil)
	if err != nil {
		c.logFailure("export", err)
		return exportNetworkFailure()
	}

	var body exportResponse
	if err := c.decode(resp, &body); err != nil {
		c.logFailure("export", err)
		return exportNetworkFailure()
	}

	if resp.ok() && body.Success {
		return ExportResult{
			Success:  true,
			Message:  orDefault(body.Message, "Data exported successfully"),
			FilePath: body.FilePath,
		}
	}
	return ExportResult{Error: orDefault(body.Error, "Failed to export data")}
}

func exportNetworkFailure() ExportResult {
	return ExportResult{
		Error:   networkErrorLabel,
		Message: "Unable to export data. Please check your connection.",
	}
}
