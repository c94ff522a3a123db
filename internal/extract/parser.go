// Package extract turns markdown notes into task records.
package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/BuzzLyutic/todo-dashboard/internal/model"
)

const (
	MarkerHigh   = "#high"
	MarkerFire   = "🔥"
	MarkerMedium = "#medium"
)

// Пробелы в юникодном смысле: NBSP, U+3000, BOM в начале файла
const space = `[\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]`

// - [ ] text / - [x] text, с любым отступом; заголовок обрывается на разделителе строк
var checkboxRe = regexp.MustCompile(`^` + space + `*-` + space + `+\[([ xX])\]` + space + `+([^\r\n\x{2028}\x{2029}]+)`)

// ParseNote returns the tasks found in one note, in line order.
// Lines that are not checkbox items are skipped.
func ParseNote(content, filename string) []model.Task {
	lines := strings.Split(content, "\n")
	tasks := make([]model.Task, 0)

	for i, line := range lines {
		match := checkboxRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		title, priority := ParsePriority(trimSpace(match[2]))
		tasks = append(tasks, model.Task{
			ID:         TaskID(filename, i),
			Title:      title,
			Completed:  strings.EqualFold(match[1], "x"),
			SourceFile: filename,
			Priority:   priority,
		})
	}

	return tasks
}

// ParsePriority detects a priority marker in a raw title and returns the
// title with the markers of the winning priority removed.
// High is checked before medium; nothing ever yields low.
func ParsePriority(raw string) (string, model.Priority) {
	switch {
	case strings.Contains(raw, MarkerHigh) || strings.Contains(raw, MarkerFire):
		return stripMarkers(raw, MarkerHigh, MarkerFire), model.PriorityHigh
	case strings.Contains(raw, MarkerMedium):
		return stripMarkers(raw, MarkerMedium), model.PriorityMedium
	default:
		return raw, ""
	}
}

// stripMarkers repeats until nothing changes, so "#hi#highgh" cannot leave a
// fresh "#high" behind.
func stripMarkers(s string, markers ...string) string {
	for {
		prev := s
		for _, m := range markers {
			s = strings.ReplaceAll(s, m, "")
		}
		if s == prev {
			return trimSpace(s)
		}
	}
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// TaskID is unique within a snapshot but shifts when lines are inserted above the task.
func TaskID(filename string, lineIndex int) string {
	return fmt.Sprintf("%s-%d", filename, lineIndex)
}
