package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BuzzLyutic/todo-dashboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_Snapshot(t *testing.T) {
	ts := time.Date(2026, 10, 17, 6, 30, 0, 0, time.UTC)
	snap := model.NewSnapshot(ts, []model.Task{
		{ID: "work.md-0", Title: "Ship feature", SourceFile: "work.md", Priority: model.PriorityHigh},
		{ID: "work.md-1", Title: "Review PR", SourceFile: "work.md", Completed: true},
	})

	w := httptest.NewRecorder()
	JSON(w, httptest.NewRequest(http.MethodGet, "/api/todos", nil), http.StatusOK, snap)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.JSONEq(t, `"2026-10-17T06:30:00Z"`, string(raw["generatedAt"]))
	assert.JSONEq(t, `[
		{"id":"work.md-0","title":"Ship feature","completed":false,"file":"work.md","priority":"high"},
		{"id":"work.md-1","title":"Review PR","completed":true,"file":"work.md"}
	]`, string(raw["todos"]))
}

func TestJSON_EmptySnapshotKeepsArray(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, httptest.NewRequest(http.MethodGet, "/api/todos", nil), http.StatusOK, model.NewSnapshot(time.Time{}, nil))

	assert.Contains(t, w.Body.String(), `"todos":[]`)
}

func TestError_SnapshotNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	NoStore(w)
	Error(w, httptest.NewRequest(http.MethodGet, "/data/todos.json", nil), http.StatusNotFound, "snapshot not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-store, max-age=0", w.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"error":"snapshot not found"}`, w.Body.String())
}

func TestNoStore(t *testing.T) {
	w := httptest.NewRecorder()

	NoStore(w)

	assert.Equal(t, "no-store, max-age=0", w.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
}

func TestRaw(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		contentType string
		body        []byte
	}{
		{
			name:        "artifact passes through untouched",
			path:        "/data/todos.json",
			contentType: "application/json",
			body:        []byte("{\n  \"generatedAt\": \"2026-10-17T00:00:00Z\",\n  \"todos\": []\n}"),
		},
		{
			name:        "manifest",
			path:        "/manifest.webmanifest",
			contentType: "application/manifest+json",
			body:        []byte(`{"name":"Todo Dashboard","display":"standalone"}`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			Raw(w, httptest.NewRequest(http.MethodGet, tt.path, nil), http.StatusOK, tt.contentType, tt.body)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			assert.Equal(t, tt.body, w.Body.Bytes())
		})
	}
}
