package prism

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ReplyClient submits prompts and receives replies, either buffered or
// streamed
type ReplyClient struct {
	*requests
}

// Reply is the raw response to a buffered reply request. No JSON
// normalization is applied; the body is returned as received so the caller
// can parse it, or inspect the headers.
type Reply struct {
	Header http.Header
	Body   []byte
}

// ReplyStream is a single-pass, forward-only text stream of an in-progress
// reply. Chunks are observed in the order the server produced them. The
// stream is consumed once; cancel the request context to abort it.
type ReplyStream struct {
	body io.ReadCloser
	buf  []byte
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// ContentTypeResponseStream is the accept type for streamed replies
	ContentTypeResponseStream = "text/response-stream"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

type reqReply struct {
	UserPrompt     string `json:"user_prompt"`
	ConversationId *int64 `json:"conversation_id,omitempty"`
	KnowledgeBase  string `json:"knowledge_base,omitempty"`
	MaxTokens      *uint  `json:"max_tokens,omitempty"`
	NumResults     *uint  `json:"num_results,omitempty"`
	Model          string `json:"model,omitempty"`
}

// Create submits a prompt and returns the buffered reply. The reply body is
// returned as received; an empty body is an error.
func (c *ReplyClient) Create(ctx context.Context, prompt string, opts ...Opt) (*Reply, error) {
	// Apply options
	body, err := reqReplyWithOpts(prompt, opts...)
	if err != nil {
		return nil, err
	}

	// Request -> Response
	var reply Reply
	if err := c.do(ctx, http.MethodPost, "/response/", body, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Stream submits a prompt and returns the reply as an open text stream.
// The parameter set is the same as Create. The returned stream must be
// closed by the caller.
func (c *ReplyClient) Stream(ctx context.Context, prompt string, opts ...Opt) (*ReplyStream, error) {
	// Apply options
	body, err := reqReplyWithOpts(prompt, opts...)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	// The shared dispatcher buffers responses, so the streaming request
	// goes over the raw *http.Client with the same headers.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimSuffix(c.url, "/")+"/response_stream/", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", client.ContentTypeJson)
	req.Header.Set("Accept", ContentTypeResponseStream)
	req.Header.Set("Authorization", c.token)

	resp, err := c.Client.Client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, httpresponse.Err(resp.StatusCode)
	}
	if resp.ContentLength == 0 {
		resp.Body.Close()
		return nil, ErrEmptyResponse
	}

	// Return the open stream
	return &ReplyStream{body: resp.Body}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - REPLY

// Decode unmarshals the reply body into v
func (r *Reply) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

func (r *Reply) String() string {
	return string(r.Body)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - REPLY STREAM

// Next returns the next chunk of text from the stream, or io.EOF once the
// stream has been fully consumed
func (s *ReplyStream) Next() (string, error) {
	if s.buf == nil {
		s.buf = make([]byte, 4096)
	}
	for {
		n, err := s.body.Read(s.buf)
		if n > 0 {
			return string(s.buf[:n]), nil
		}
		if err != nil {
			return "", err
		}
	}
}

// Read implements io.Reader over the remainder of the stream
func (s *ReplyStream) Read(p []byte) (int, error) {
	return s.body.Read(p)
}

// Text consumes the remainder of the stream, invoking fn for each chunk in
// arrival order, then closes the stream
func (s *ReplyStream) Text(fn func(string) error) error {
	defer s.body.Close()
	for {
		chunk, err := s.Next()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if fn != nil {
			if err := fn(chunk); err != nil {
				return err
			}
		}
	}
}

// Close the stream without consuming the remainder
func (s *ReplyStream) Close() error {
	return s.body.Close()
}

///////////////////////////////////////////////////////////////////////////////
// UNMARSHALER

func (r *Reply) Unmarshal(header http.Header, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return ErrEmptyResponse
	}
	r.Header = header
	r.Body = data
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func reqReplyWithOpts(prompt string, opts ...Opt) (reqReply, error) {
	opt, err := ApplyOpts(opts...)
	if err != nil {
		return reqReply{}, err
	}
	return reqReply{
		UserPrompt:     prompt,
		ConversationId: opt.conversation,
		KnowledgeBase:  opt.knowledgeBase,
		MaxTokens:      opt.maxTokens,
		NumResults:     opt.numResults,
		Model:          opt.model,
	}, nil
}
