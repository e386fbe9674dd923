package twitchdata

import (
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// installDebugHooks attaches request/response logging to the resty client.
//
// Purpose:
//   - Troubleshoot API communication problems (timeouts, unexpected statuses)
//   - Validate query-parameter and header formatting during development
//
// Security considerations:
//   - Logged URLs include channel/username query values; the RapidAPI key
//     travels in a header and is not logged.
//   - Only enable in development environments.
func installDebugHooks(rc *resty.Client) {
	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		log.Debug().Str("method", req.Method).Str("url", req.URL).Msg("HTTP request")
		return nil
	})
	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status_code", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("HTTP response")
		return nil
	})
	rc.OnError(func(req *resty.Request, err error) {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL).Msg("HTTP request failed")
	})
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Activation methods:
//   - TWITCHDATA_DEBUG=true (client-specific debug flag)
//   - DEBUG=true (general debug flag, common in development workflows)
func debugLoggingRequested() bool {
	return os.Getenv("TWITCHDATA_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
