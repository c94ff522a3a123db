// Package dashboard is the read-only display layer over a task snapshot.
package dashboard

import (
	"context"
	"time"

	"github.com/BuzzLyutic/todo-dashboard/internal/model"
)

// Source is anything that can hand the dashboard a fresh snapshot.
type Source interface {
	Load(ctx context.Context) (model.Snapshot, error)
}

type View struct {
	HasSnapshot    bool         `json:"hasSnapshot"`
	GeneratedAt    *time.Time   `json:"generatedAt,omitempty"`
	Pending        []model.Task `json:"pending"`
	Completed      []model.Task `json:"completed"`
	PendingCount   int          `json:"pendingCount"`
	CompletedCount int          `json:"completedCount"`
}

// Partition splits tasks by completion, keeping snapshot order in both groups.
func Partition(s model.Snapshot) View {
	generatedAt := s.GeneratedAt
	v := View{
		HasSnapshot: true,
		GeneratedAt: &generatedAt,
		Pending:     make([]model.Task, 0),
		Completed:   make([]model.Task, 0),
	}

	for _, t := range s.Tasks {
		if t.Completed {
			v.Completed = append(v.Completed, t)
		} else {
			v.Pending = append(v.Pending, t)
		}
	}

	v.PendingCount = len(v.Pending)
	v.CompletedCount = len(v.Completed)
	return v
}

// Empty is what the page shows when the snapshot could not be loaded.
func Empty() View {
	return View{
		Pending:   make([]model.Task, 0),
		Completed: make([]model.Task, 0),
	}
}
