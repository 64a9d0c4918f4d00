package datastore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestGetBuildsQueryAndHeaders(t *testing.T) {
	var captured *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		json.NewEncoder(w).Encode([]row{{ID: "t1", Title: "review labs"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service-key")

	var rows []row
	err := c.From("tasks").
		Select("*").
		Eq("status", "pending").
		Order("created_at", false).
		Limit(20).
		Get(context.Background(), &rows)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "review labs", rows[0].Title)

	require.NotNil(t, captured)
	assert.Equal(t, "/rest/v1/tasks", captured.URL.Path)
	q := captured.URL.Query()
	assert.Equal(t, "*", q.Get("select"))
	assert.Equal(t, "eq.pending", q.Get("status"))
	assert.Equal(t, "created_at.desc", q.Get("order"))
	assert.Equal(t, "20", q.Get("limit"))

	assert.Equal(t, "service-key", captured.Header.Get("apikey"))
	assert.Equal(t, "Bearer service-key", captured.Header.Get("Authorization"))
	assert.Empty(t, captured.Header.Get("Prefer"))
}

func TestInsertAsksForSingleObjectRepresentation(t *testing.T) {
	var captured *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		var in row
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = "t2"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service-key")

	var stored row
	err := c.From("tasks").Insert(context.Background(), row{Title: "call pharmacy"}, &stored)
	require.NoError(t, err)
	assert.Equal(t, "t2", stored.ID)

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.Equal(t, "return=representation", captured.Header.Get("Prefer"))
	assert.Equal(t, "application/vnd.pgrst.object+json", captured.Header.Get("Accept"))
}

func TestUpdatePatchesFilteredRows(t *testing.T) {
	var captured *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		json.NewEncoder(w).Encode(row{ID: "t1", Title: "done"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service-key")

	var updated row
	err := c.From("tasks").Eq("id", "t1").Update(context.Background(), map[string]string{"title": "done"}, &updated)
	require.NoError(t, err)
	assert.Equal(t, "done", updated.Title)

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodPatch, captured.Method)
	assert.Equal(t, "eq.t1", captured.URL.Query().Get("id"))
}

func TestNon2xxSurfacesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service-key")

	var rows []row
	err := c.From("tasks").Get(context.Background(), &rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "permission denied")
}
