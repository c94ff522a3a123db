package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BuzzLyutic/todo-dashboard/internal/model"
)

const NoteExt = ".md"

type FileResult struct {
	Name  string
	Tasks []model.Task
}

type Extractor struct {
	dir    string
	onFile func(FileResult)
}

func NewExtractor(dir string) *Extractor {
	return &Extractor{dir: dir}
}

func (e *Extractor) Dir() string {
	return e.dir
}

// OnFile registers a callback invoked as soon as each note is parsed,
// before the next one is read.
func (e *Extractor) OnFile(fn func(FileResult)) {
	e.onFile = fn
}

// Extract reads every note in the directory sequentially. Any read error,
// for the directory or for a single note, aborts the whole run.
func (e *Extractor) Extract() ([]FileResult, error) {
	entries, err := os.ReadDir(e.dir)
	if err != nil {
		return nil, fmt.Errorf("read notes dir %s: %w", e.dir, err)
	}

	results := make([]FileResult, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, NoteExt) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(e.dir, name))
		if err != nil {
			return nil, fmt.Errorf("read note %s: %w", name, err)
		}

		res := FileResult{
			Name:  name,
			Tasks: ParseNote(string(content), name),
		}
		if e.onFile != nil {
			e.onFile(res)
		}
		results = append(results, res)
	}

	return results, nil
}

// Flatten keeps file order, then line order.
func Flatten(results []FileResult) []model.Task {
	tasks := make([]model.Task, 0)
	for _, r := range results {
		tasks = append(tasks, r.Tasks...)
	}
	return tasks
}
