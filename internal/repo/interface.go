package repo

import (
	"context"

	"github.com/BuzzLyutic/todo-dashboard/internal/model"
)

// SnapshotRepository определяет интерфейс для хранения снапшота задач
type SnapshotRepository interface {
	Save(ctx context.Context, s model.Snapshot) error
	Load(ctx context.Context) (model.Snapshot, error)
}
