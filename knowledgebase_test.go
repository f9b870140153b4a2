package prism_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	assert "github.com/stretchr/testify/assert"

	prism "github.com/mutablelogic/go-prism"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

func newClient(t *testing.T, serverURL string) *prism.Client {
	t.Helper()
	client, err := prism.NewWithEndpoint(serverURL, "test-key")
	if err != nil {
		t.Fatal(err)
	}
	return client
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_knowledgebase_001(t *testing.T) {
	assert := assert.New(t)

	// Create passes the server document through unchanged, addressed to the
	// exact collection path
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/users/knowledge_base/" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		assert.Equal("application/json", r.Header.Get("Accept"))
		assert.Equal("application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		assert.Equal("kb1", body["name"])
		assert.Len(body, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"owner_id":5,"name":"kb1","created":"t1","updated":"t1","knowledges":[]}`))
	}))
	defer srv.Close()

	kb, err := newClient(t, srv.URL).KnowledgeBases.Create(context.Background(), "kb1")
	if !assert.NoError(err) {
		t.SkipNow()
	}
	assert.Equal(int64(1), kb.Id)
	assert.Equal(int64(5), kb.OwnerId)
	assert.Equal("kb1", kb.Name)
	assert.Equal("t1", kb.Created)
	assert.Equal("t1", kb.Updated)
	assert.Len(kb.Knowledges, 0)
}

func Test_knowledgebase_002(t *testing.T) {
	assert := assert.New(t)

	// Get returns the knowledge base with its items
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/users/knowledge_base/42/" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		assert.Equal("test-key", r.Header.Get("Authorization"))
		assert.Equal("application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":42,"owner_id":5,"name":"docs","created":"t1","updated":"t2","knowledges":[{"id":7,"name":"page","created":"t1","updated":"t1","availability":true}]}`))
	}))
	defer srv.Close()

	kb, err := newClient(t, srv.URL).KnowledgeBases.Get(context.Background(), 42)
	if !assert.NoError(err) {
		t.SkipNow()
	}
	assert.Equal(int64(42), kb.Id)
	if assert.Len(kb.Knowledges, 1) {
		assert.Equal(int64(7), kb.Knowledges[0].Id)
		assert.True(kb.Knowledges[0].Available)
	}
}

func Test_knowledgebase_003(t *testing.T) {
	assert := assert.New(t)

	// A 404 surfaces as an error carrying the HTTP status
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).KnowledgeBases.Get(context.Background(), 42)
	assert.Error(err)

	var httpErr httpresponse.Err
	if assert.True(errors.As(err, &httpErr)) {
		assert.Equal(http.StatusNotFound, int(httpErr))
	}
}

func Test_knowledgebase_004(t *testing.T) {
	assert := assert.New(t)

	// Delete addresses the exact item path and returns the server message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/knowledge_base/9/" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		assert.Equal("application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Knowledge base deleted."}`))
	}))
	defer srv.Close()

	message, err := newClient(t, srv.URL).KnowledgeBases.Delete(context.Background(), 9)
	if !assert.NoError(err) {
		t.SkipNow()
	}
	assert.Equal("Knowledge base deleted.", message)
}

func Test_knowledgebase_005(t *testing.T) {
	assert := assert.New(t)

	// Negative and zero identifiers are forwarded as-is
	var requested string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).KnowledgeBases.Get(context.Background(), -1)
	assert.Error(err)
	assert.Equal("/users/knowledge_base/-1/", requested)
}

func Test_knowledgebase_006(t *testing.T) {
	assert := assert.New(t)

	// Every knowledge base operation sends its path with the trailing slash
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodDelete {
			w.Write([]byte(`{"message":"ok"}`))
		} else {
			w.Write([]byte(`{"id":1,"owner_id":5,"name":"kb1","created":"t1","updated":"t1","knowledges":[]}`))
		}
	}))
	defer srv.Close()
	client := newClient(t, srv.URL)

	_, err := client.KnowledgeBases.Create(context.Background(), "kb1")
	assert.NoError(err)
	_, err = client.KnowledgeBases.Get(context.Background(), 1)
	assert.NoError(err)
	_, err = client.KnowledgeBases.Delete(context.Background(), 1)
	assert.NoError(err)

	assert.Equal([]string{
		"/users/knowledge_base/",
		"/users/knowledge_base/1/",
		"/knowledge_base/1/",
	}, paths)
}
