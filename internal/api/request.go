// Package api issues the raw HTTP exchanges against the twitch-api8 service.
package api

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-resty/resty/v2"

	"github.com/streamsight/twitchdata/internal/types"
)

// bodySnippetLimit bounds how much of an error body makes it into messages.
const bodySnippetLimit = 256

// Get performs one synchronous GET against the named endpoint with params
// encoded as the query string. The resty client carries the base URL and the
// RapidAPI headers; nothing here mutates it.
//
// The returned payload is the decoded JSON value as-is: map, slice, string,
// number, bool or nil. Any successfully decoded body counts as success, empty
// objects and null included.
func Get(ctx context.Context, rc *resty.Client, endpoint string, params map[string]string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := rc.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/" + endpoint)
	if err != nil {
		return nil, &types.Error{Kind: types.KindRequestFailed, Endpoint: endpoint, Err: err}
	}
	if !resp.IsSuccess() {
		apiErr := &types.Error{
			Kind:     types.KindRequestFailed,
			Endpoint: endpoint,
			Status:   resp.StatusCode(),
		}
		if s := bodySnippet(resp.Body()); s != "" {
			apiErr.Err = errors.New(s)
		}
		return nil, apiErr
	}

	var payload any
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, &types.Error{Kind: types.KindDecodeFailed, Endpoint: endpoint, Err: err}
	}
	return payload, nil
}

func bodySnippet(b []byte) string {
	if len(b) > bodySnippetLimit {
		b = b[:bodySnippetLimit]
	}
	return string(b)
}
