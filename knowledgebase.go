package prism

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// KnowledgeBaseClient manages knowledge bases. Identifiers are assigned by
// the server and forwarded as-is; the server decides their validity.
type KnowledgeBaseClient struct {
	*requests
}

// KnowledgeBase is a named, server-owned collection of knowledge items
type KnowledgeBase struct {
	Id         int64       `json:"id"`
	OwnerId    int64       `json:"owner_id"`
	Name       string      `json:"name"`
	Created    string      `json:"created"`
	Updated    string      `json:"updated"`
	Knowledges []Knowledge `json:"knowledges"`
}

// message decodes a server message payload, which is either a bare JSON
// string or an object with a message field
type message string

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (k KnowledgeBase) String() string {
	data, err := json.MarshalIndent(k, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

type reqCreateKnowledgeBase struct {
	Name string `json:"name"`
}

// Create a new knowledge base with the given name
func (c *KnowledgeBaseClient) Create(ctx context.Context, name string) (*KnowledgeBase, error) {
	var response KnowledgeBase
	if err := c.do(ctx, http.MethodPost, "/users/knowledge_base/", reqCreateKnowledgeBase{
		Name: name,
	}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Get a knowledge base by its identifier
func (c *KnowledgeBaseClient) Get(ctx context.Context, id int64) (*KnowledgeBase, error) {
	var response KnowledgeBase
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/knowledge_base/%d/", id), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Delete a knowledge base by its identifier, returning the server message
func (c *KnowledgeBaseClient) Delete(ctx context.Context, id int64) (string, error) {
	var response message
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/knowledge_base/%d/", id), nil, &response); err != nil {
		return "", err
	}
	return string(response), nil
}

///////////////////////////////////////////////////////////////////////////////
// UNMARSHALER

func (m *message) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*m = message(str)
		return nil
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*m = message(obj.Message)
	return nil
}
