package types

import "fmt"

// Kind discriminates the failure classes surfaced by the client.
type Kind uint8

const (
	// KindInvalidConfiguration marks construction-time failures (missing API key,
	// bad option values). No usable client exists when this is returned.
	KindInvalidConfiguration Kind = iota + 1

	// KindRequestFailed marks transport-level failures and non-success HTTP
	// statuses. The exchange never produced a usable response.
	KindRequestFailed

	// KindDecodeFailed marks responses that arrived with a success status but
	// whose body could not be parsed as JSON.
	KindDecodeFailed
)

func (k Kind) String() string {
	switch k {
	case KindInvalidConfiguration:
		return "invalid configuration"
	case KindRequestFailed:
		return "api request failed"
	case KindDecodeFailed:
		return "response decode failed"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by the client. Callers branch on
// Kind (or the Is* helpers in the root package) instead of matching message
// strings.
type Error struct {
	Kind     Kind
	Endpoint string // endpoint name, empty for construction errors
	Status   int    // HTTP status code, zero when the exchange never completed
	Err      error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Endpoint != "" {
		msg = fmt.Sprintf("%s: %s", e.Endpoint, msg)
	}
	if e.Status != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }
