package service

import (
	"context"
	"fmt"
	"time"

	"github.com/BuzzLyutic/todo-dashboard/internal/extract"
	"github.com/BuzzLyutic/todo-dashboard/internal/model"
	"github.com/BuzzLyutic/todo-dashboard/internal/repo"
)

type TaskExtractor interface {
	Extract() ([]extract.FileResult, error)
}

// Report описывает один прогон синхронизации
type Report struct {
	Snapshot model.Snapshot
	Files    []extract.FileResult
}

type SyncService struct {
	extractor TaskExtractor
	repo      repo.SnapshotRepository
	now       func() time.Time
}

func NewSyncService(extractor TaskExtractor, repo repo.SnapshotRepository) *SyncService {
	return &SyncService{
		extractor: extractor,
		repo:      repo,
		now:       time.Now,
	}
}

func (s *SyncService) SetClock(now func() time.Time) {
	s.now = now
}

// Run either writes a complete snapshot or writes nothing.
func (s *SyncService) Run(ctx context.Context) (Report, error) {
	files, err := s.extractor.Extract() // Сначала читаем все заметки, до записи
	if err != nil {
		return Report{}, fmt.Errorf("extract tasks: %w", err)
	}

	snap := model.NewSnapshot(s.now().UTC(), extract.Flatten(files))

	// Старый снапшот полностью заменяется новым
	if err := s.repo.Save(ctx, snap); err != nil {
		return Report{}, fmt.Errorf("save snapshot: %w", err)
	}

	return Report{Snapshot: snap, Files: files}, nil
}
