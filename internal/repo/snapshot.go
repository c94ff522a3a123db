package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BuzzLyutic/todo-dashboard/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
	ErrorCorrupt  = errors.New("corrupt snapshot")
)

type FileRepo struct { // Репозиторий поверх одного JSON-файла
	path string
}

func NewFileRepo(path string) *FileRepo { // Конструктор
	return &FileRepo{
		path: path,
	}
}

func (r *FileRepo) Path() string {
	return r.path
}

// Save перезаписывает файл целиком, без атомарного rename
func (r *FileRepo) Save(ctx context.Context, s model.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", r.path, err)
	}
	return nil
}

func (r *FileRepo) Load(ctx context.Context) (model.Snapshot, error) {
	var s model.Snapshot
	if err := ctx.Err(); err != nil {
		return s, err
	}

	data, err := r.ReadRaw()
	if err != nil {
		return s, err
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", ErrorCorrupt, err)
	}
	if s.Tasks == nil {
		s.Tasks = []model.Task{}
	}
	return s, nil
}

// ReadRaw отдает файл как есть, для раздачи артефакта по HTTP
func (r *FileRepo) ReadRaw() ([]byte, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", r.path, err)
	}
	return data, nil
}
