package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/BuzzLyutic/todo-dashboard/internal/repo"
	"github.com/BuzzLyutic/todo-dashboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setEnv(t *testing.T, notesDir, snapshotPath string) {
	t.Helper()
	t.Setenv("TODO_CONFIG", "")
	t.Setenv("NOTES_DIR", notesDir)
	t.Setenv("SNAPSHOT_PATH", snapshotPath)
}

func TestRootCmd_Sync(t *testing.T) {
	notes := testutil.WriteNotes(t, map[string]string{
		"work.md":  "- [ ] Ship feature #high\n- [x] Review PR\n",
		"empty.md": "nothing to do here\n",
		"misc.txt": "- [ ] skipped",
	})
	out := filepath.Join(t.TempDir(), "public", "data", "todos.json")
	setEnv(t, notes, out)

	var stdout bytes.Buffer
	cmd := newRootCmd(&stdout, zap.NewNop())
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Contains(t, stdout.String(), "Scanning: "+notes)
	assert.Contains(t, stdout.String(), "✓ empty.md: 0 tasks")
	assert.Contains(t, stdout.String(), "✓ work.md: 2 tasks")
	assert.Contains(t, stdout.String(), "Synced 2 todos to "+out)

	snap, err := repo.NewFileRepo(out).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Tasks, 2)
	assert.Equal(t, "Ship feature", snap.Tasks[0].Title)
	assert.False(t, snap.GeneratedAt.IsZero())
}

func TestRootCmd_MissingNotesDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "todos.json")
	setEnv(t, filepath.Join(t.TempDir(), "missing"), out)

	var stdout bytes.Buffer
	cmd := newRootCmd(&stdout, zap.NewNop())
	cmd.SetArgs([]string{})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no snapshot must be written")
}

func TestRootCmd_FailedNoteAfterProgress(t *testing.T) {
	notes := testutil.WriteNotes(t, map[string]string{
		"a.md": "- [ ] first",
		"b.md": "- [ ] second\n- [x] third",
	})
	require.NoError(t, os.Symlink(filepath.Join(notes, "gone"), filepath.Join(notes, "c.md")))
	out := filepath.Join(t.TempDir(), "todos.json")
	setEnv(t, notes, out)

	var stdout bytes.Buffer
	cmd := newRootCmd(&stdout, zap.NewNop())
	cmd.SetArgs([]string{})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c.md")

	assert.Contains(t, stdout.String(), "✓ a.md: 1 tasks")
	assert.Contains(t, stdout.String(), "✓ b.md: 2 tasks")
	assert.NotContains(t, stdout.String(), "c.md")
	assert.NotContains(t, stdout.String(), "Synced")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	setEnv(t, t.TempDir(), filepath.Join(t.TempDir(), "todos.json"))

	cmd := newRootCmd(&bytes.Buffer{}, zap.NewNop())
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
