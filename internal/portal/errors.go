package portal

import (
	"errors"
	"fmt"
	"sort"
)

// Precondition failures: the session lacks a value the call requires. The
// user is routed back to the screen that establishes it, not shown a
// dead-end error.
var (
	ErrNoDomain = errors.New("no tenant domain resolved")
	ErrNoToken  = errors.New("not logged in")
)

// genericRetryMessage is shown for failures with no server-provided text.
// Recovery is always user-initiated; nothing retries automatically.
const genericRetryMessage = "Something went wrong. Please try again."

// APIError is an application-level rejection from the portal: the request
// reached the server and was answered with success=false, or with a
// field-keyed validation error map.
type APIError struct {
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("portal rejected request: %s (%d field errors)", e.Message, len(e.Fields))
	}
	return "portal rejected request: " + e.Message
}

// UserMessage returns the text to display: the first field's first message
// when a validation map is present, otherwise the server message verbatim.
func (e *APIError) UserMessage() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if msgs := e.Fields[k]; len(msgs) > 0 {
				return msgs[0]
			}
		}
	}
	if e.Message != "" {
		return e.Message
	}
	return genericRetryMessage
}

// TransportError is a failure before any application-level answer: no
// response at all, or a response without a parseable envelope.
type TransportError struct {
	Op     string
	URL    string
	Status string
	Err    error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("portal %s %s: %v", e.Op, e.URL, e.Err)
	case e.Status != "":
		return fmt.Sprintf("portal %s %s: %s", e.Op, e.URL, e.Status)
	default:
		return fmt.Sprintf("portal %s %s: malformed response", e.Op, e.URL)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// UserMessage maps any flow error onto the text shown to the user, per the
// error taxonomy: application rejections verbatim (or first field message),
// transport failures as a generic retryable message, precondition failures
// as their own text.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return genericRetryMessage
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
