package prism

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// KnowledgeClient manages knowledge items within a knowledge base
type KnowledgeClient struct {
	*requests
}

// Knowledge is one ingested unit belonging to exactly one knowledge base.
// Available indicates whether ingestion has completed.
type Knowledge struct {
	Id        int64  `json:"id"`
	Name      string `json:"name"`
	Created   string `json:"created"`
	Updated   string `json:"updated"`
	Available bool   `json:"availability"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Knowledge creation methods
const (
	MethodURL  = "url"
	MethodText = "text"
)

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (k Knowledge) String() string {
	data, err := json.MarshalIndent(k, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

type reqKnowledgeFromURL struct {
	Name         string `json:"name"`
	Url          string `json:"url"`
	Recursion    bool   `json:"recursion,omitempty"`
	MaxRecursion *uint  `json:"max_recursion,omitempty"`
	OnlyBaseUrl  bool   `json:"only_base_url,omitempty"`
}

type reqKnowledgeFromText struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Create a knowledge item in a knowledge base. The method selects the
// creation mode: MethodURL requires WithURL and accepts WithRecursion,
// WithMaxRecursion and WithOnlyBaseURL; MethodText requires WithText.
// Validation failures are returned before any network call is made.
// The server responds with the updated knowledge base.
func (c *KnowledgeClient) Create(ctx context.Context, knowledgeBase int64, method, name string, opts ...Opt) (*KnowledgeBase, error) {
	// Apply options
	opt, err := ApplyOpts(opts...)
	if err != nil {
		return nil, err
	}

	switch method {
	case MethodURL:
		return c.createFromURL(ctx, knowledgeBase, name, opt)
	case MethodText:
		return c.createFromText(ctx, knowledgeBase, name, opt)
	}
	return nil, ErrBadParameter.Withf("unsupported method %q, expected one of: %q, %q", method, MethodURL, MethodText)
}

// CreateFromURL creates a knowledge item by ingesting a URL
func (c *KnowledgeClient) CreateFromURL(ctx context.Context, knowledgeBase int64, name, url string, opts ...Opt) (*KnowledgeBase, error) {
	return c.Create(ctx, knowledgeBase, MethodURL, name, append(opts, WithURL(url))...)
}

// CreateFromText creates a knowledge item from raw text
func (c *KnowledgeClient) CreateFromText(ctx context.Context, knowledgeBase int64, name, text string, opts ...Opt) (*KnowledgeBase, error) {
	return c.Create(ctx, knowledgeBase, MethodText, name, append(opts, WithText(text))...)
}

// Get a knowledge item by its identifier
func (c *KnowledgeClient) Get(ctx context.Context, id int64) (*Knowledge, error) {
	var response Knowledge
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/knowledge/%d/", id), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Delete a knowledge item by its identifier, returning the server message
func (c *KnowledgeClient) Delete(ctx context.Context, id int64) (string, error) {
	var response message
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/knowledge/%d/", id), nil, &response); err != nil {
		return "", err
	}
	return string(response), nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *KnowledgeClient) createFromURL(ctx context.Context, knowledgeBase int64, name string, opt *Opts) (*KnowledgeBase, error) {
	// The source URL must be supplied and absolute
	if opt.url == "" {
		return nil, ErrBadParameter.With("missing url")
	} else if u, err := url.ParseRequestURI(opt.url); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrBadParameter.Withf("malformed url %q", opt.url)
	}

	var response KnowledgeBase
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/users/knowledge_base/%d/knowledge_from_url/", knowledgeBase), reqKnowledgeFromURL{
		Name:         name,
		Url:          opt.url,
		Recursion:    opt.recursion,
		MaxRecursion: opt.maxRecursion,
		OnlyBaseUrl:  opt.onlyBaseURL,
	}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *KnowledgeClient) createFromText(ctx context.Context, knowledgeBase int64, name string, opt *Opts) (*KnowledgeBase, error) {
	if opt.text == "" {
		return nil, ErrBadParameter.With("missing text")
	}

	var response KnowledgeBase
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/users/knowledge_base/%d/knowledge_from_text/", knowledgeBase), reqKnowledgeFromText{
		Name: name,
		Text: opt.text,
	}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
