package support

import (
	"errors"
	"fmt"

	"github.com/FrenchMajesty/polyglot-support/clients/groq"
	"github.com/FrenchMajesty/polyglot-support/internal/retry"
)

// errorText renders a failed completion as result text. Remote failures are
// surfaced as visible, low-confidence output instead of aborting the
// pipeline, so every query still produces a QueryResult.
//
// The exhausted-retries case must be matched before the API-error case:
// ExhaustedError unwraps to the last attempt's failure, so errors.As would
// otherwise see the inner *groq.APIError and render its status instead of
// the generic terminal message.
func errorText(err error) string {
	var exhausted *retry.ExhaustedError
	var apiErr *groq.APIError
	var netErr *groq.NetworkError
	switch {
	case errors.As(err, &exhausted):
		return "API Error: Failed after retries"
	case errors.As(err, &apiErr):
		return fmt.Sprintf("API Error: %d", apiErr.StatusCode)
	case errors.As(err, &netErr):
		return fmt.Sprintf("Network Error: %v", netErr.Cause)
	default:
		return "API Error: Failed after retries"
	}
}
