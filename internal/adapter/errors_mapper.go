package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/muzaparoff/rest-api-exam/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrValidation, detail)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrAuthentication, detail)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, detail)
	default:
		if resp.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("%w: http %d: %s", ErrServer, resp.StatusCode(), detail)
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
	}
}

// errorDetail extracts a readable message from the server's uniform error
// body. Bodies that are not an ErrorResponse are passed through as-is.
func errorDetail(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		if len(errResp.ValidationErrors) == 0 {
			return errResp.Message
		}

		fields := make([]string, 0, len(errResp.ValidationErrors))
		for _, fe := range errResp.ValidationErrors {
			fields = append(fields, fe.Field+": "+fe.Message)
		}
		return errResp.Message + " (" + strings.Join(fields, "; ") + ")"
	}

	return strings.TrimSpace(string(body))
}
