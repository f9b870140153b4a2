package prism

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// requests dispatches API calls with a fully-formed URL and a fixed header
// set, shared by all resource clients. Every endpoint path carries a
// trailing slash, which OptPath cannot produce, so paths are built verbatim
// and sent through the client as raw requests.
type requests struct {
	*client.Client
	url   string
	token string
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// do sends a request with a JSON body when in is set, and decodes the
// response into out. All requests accept JSON; the streaming reply endpoint
// builds its own request with a different accept type.
func (r *requests) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimSuffix(r.url, "/")+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", client.ContentTypeJson)
	}
	req.Header.Set("Accept", client.ContentTypeJson)
	req.Header.Set("Authorization", r.token)

	return r.Request(req, out)
}
