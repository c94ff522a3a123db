package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BuzzLyutic/todo-dashboard/internal/model"
)

// WriteNotes создает временную папку с заметками
func WriteNotes(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write note %s: %v", name, err)
		}
	}
	return dir
}

// FixedClock возвращает часы, которые всегда показывают ts
func FixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

// SampleSnapshot: 3 pending + 2 completed, interleaved
func SampleSnapshot(generatedAt time.Time) model.Snapshot {
	return model.NewSnapshot(generatedAt, []model.Task{
		{ID: "work.md-0", Title: "Ship feature", SourceFile: "work.md", Priority: model.PriorityHigh},
		{ID: "work.md-1", Title: "Review PR", Completed: true, SourceFile: "work.md"},
		{ID: "work.md-2", Title: "Write docs", SourceFile: "work.md", Priority: model.PriorityMedium},
		{ID: "home.md-0", Title: "Buy milk", Completed: true, SourceFile: "home.md"},
		{ID: "home.md-3", Title: "Call plumber", SourceFile: "home.md"},
	})
}
