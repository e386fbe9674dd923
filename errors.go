package twitchdata

import (
	"errors"

	"github.com/streamsight/twitchdata/internal/types"
)

// Error is the error type returned by all client operations; callers branch
// on its Kind rather than matching message strings.
type Error = types.Error

// Kind discriminates the failure classes in an Error.
type Kind = types.Kind

const (
	KindInvalidConfiguration = types.KindInvalidConfiguration
	KindRequestFailed        = types.KindRequestFailed
	KindDecodeFailed         = types.KindDecodeFailed
)

// IsInvalidConfiguration reports whether err is a construction-time
// configuration failure.
func IsInvalidConfiguration(err error) bool { return hasKind(err, types.KindInvalidConfiguration) }

// IsRequestFailed reports whether err means the HTTP exchange never produced
// a usable response (transport failure or non-success status).
func IsRequestFailed(err error) bool { return hasKind(err, types.KindRequestFailed) }

// IsDecodeFailed reports whether err means the server answered successfully
// but the body was not valid JSON.
func IsDecodeFailed(err error) bool { return hasKind(err, types.KindDecodeFailed) }

func hasKind(err error, k Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == k
}
