// Package twitchdata is a client for the twitch-api8 Twitch data service on
// RapidAPI. It exposes one operation per service endpoint; each takes a
// channel name (GetViewerCard also takes a username), issues a synchronous
// GET and returns the decoded JSON payload as-is.
//
// The service defines no response schemas, so payloads are returned as
// generic values (map[string]any, []any, scalars) for the caller to
// interpret. Failures are never silent: every operation returns either the
// decoded payload or an *Error whose Kind tells a failed exchange apart from
// an unparseable body.
//
//	c, err := twitchdata.New(os.Getenv("RAPIDAPI_KEY"))
//	if err != nil {
//		// key missing or option invalid
//	}
//	defer c.Close()
//
//	info, err := c.GetStreamerInfo(ctx, "xQc")
package twitchdata
