package model

import "time"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	// PriorityLow допустим в снапшоте, но парсер его никогда не выставляет
	PriorityLow Priority = "low"
)

type Task struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Completed  bool     `json:"completed"`
	SourceFile string   `json:"file" validate:"required"`
	Priority   Priority `json:"priority,omitempty" validate:"omitempty,priority"`
}

type Snapshot struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Tasks       []Task    `json:"todos" validate:"dive"`
}

// NewSnapshot never leaves Tasks nil so the artifact always carries "todos": [].
func NewSnapshot(generatedAt time.Time, tasks []Task) Snapshot {
	if tasks == nil {
		tasks = []Task{}
	}
	return Snapshot{
		GeneratedAt: generatedAt,
		Tasks:       tasks,
	}
}
