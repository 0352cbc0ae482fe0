package apiclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstsource-health/firstsource-core/internal/domain/entities"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL+"/", srv.Client())
	require.NoError(t, err)
	return client
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New("ftp://example.org", nil)
	assert.Error(t, err)

	_, err = New("://bad", nil)
	assert.Error(t, err)
}

func TestClient_ListArticles(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/articles", r.URL.Path)
		assert.Equal(t, "nutrition", r.URL.Query().Get("category"))
		assert.Equal(t, "popular", r.URL.Query().Get("sort"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]entities.Article{{ID: "a", Title: "Food", Views: 3}})
	})

	articles, err := client.ListArticles(t.Context(), "nutrition", "popular")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "a", articles[0].ID)
	assert.Equal(t, int64(3), articles[0].Views)
}

func TestClient_ListArticles_OmitsEmptyParams(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`[]`))
	})

	articles, err := client.ListArticles(t.Context(), "", "")
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestClient_RegisterView(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/articles/abc/view", r.URL.Path)
		_ = json.NewEncoder(w).Encode(entities.Article{ID: "abc", Views: 9})
	})

	got, err := client.RegisterView(t.Context(), "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.Views)
}

func TestClient_RegisterView_NotFound(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Article not found"}`))
	})

	_, err := client.RegisterView(t.Context(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Article not found", apiErr.Message)
}

func TestClient_ServerError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`oops`))
	})

	_, err := client.ListMyths(t.Context())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Internal Server Error", apiErr.Message)
	assert.False(t, IsNotFound(err))
}

func TestClient_Chat(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello", body["message"])
		_, _ = w.Write([]byte(`{"topic":"general","reply":{"id":"1","text":"hi","isUser":false}}`))
	})

	reply, err := client.Chat(t.Context(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "general", reply.Topic)
	assert.Equal(t, "hi", reply.Reply.Text)
}
