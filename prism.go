/*
prism implements an API client for the Prism AI knowledge base and reply
service (https://api.prism-ai.ch)
*/
package prism

import (
	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is the facade for the Prism AI API. It embeds the shared HTTP
// client and exposes one sub-client per resource family. All sub-clients
// share the same endpoint and headers, so the client is safe for
// concurrent use.
type Client struct {
	*client.Client

	// Knowledge base management
	KnowledgeBases *KnowledgeBaseClient

	// Knowledge items within a knowledge base
	Knowledge *KnowledgeClient

	// Prompt and reply, buffered or streamed
	Replies *ReplyClient
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://api.prism-ai.ch"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client with an API key, against the default endpoint
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	return NewWithEndpoint(endPoint, apiKey, opts...)
}

// Create a new client with an API key, against a specific endpoint
func NewWithEndpoint(endpoint, apiKey string, opts ...client.ClientOpt) (*Client, error) {
	// Check for missing API key
	if apiKey == "" {
		return nil, ErrBadParameter.With("missing API key")
	}

	// Create client
	opts = append(opts, client.OptEndpoint(endpoint))
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// All sub-clients share one dispatcher, which keeps the endpoint and
	// credential so every request is built with its exact path and headers
	requests := &requests{Client: client, url: endpoint, token: apiKey}
	return &Client{
		Client:         client,
		KnowledgeBases: &KnowledgeBaseClient{requests},
		Knowledge:      &KnowledgeClient{requests},
		Replies:        &ReplyClient{requests},
	}, nil
}
