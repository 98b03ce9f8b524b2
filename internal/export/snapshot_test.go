package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
)

type staticLister []model.Task

func (s staticLister) List() []model.Task { return s }

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func tasks() staticLister {
	return staticLister{
		{ID: 1, Name: "write spec", Deadline: "friday", Status: constants.StatusInProcess, Priority: constants.PriorityHigh, CreatorID: 1, ExecutorID: 2},
		{ID: 4, Name: "ship", Status: constants.StatusUndefined, Priority: constants.PriorityLow},
	}
}

func TestWriter_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	w, err := NewWriter(path, FormatJSON)
	require.NoError(t, err)
	w.now = func() time.Time { return fixedNow }

	snap, err := w.Write(tasks())
	require.NoError(t, err)

	_, err = uuid.Parse(snap.ID)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, snap.ID, doc["snapshot_id"])
	assert.Equal(t, "2026-03-14T09:26:53Z", doc["generated_at"])
	assert.EqualValues(t, 2, doc["count"])

	list := doc["tasks"].([]any)
	first := list[0].(map[string]any)
	assert.Equal(t, "in_process", first["status"])
	assert.Equal(t, "high", first["priority"])
	assert.EqualValues(t, 2, first["executor_id"])
	second := list[1].(map[string]any)
	assert.Equal(t, "undefined", second["status"])
}

func TestWriter_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasks.yaml")
	w, err := NewWriter(path, FormatYAML)
	require.NoError(t, err)

	_, err = w.Write(tasks())
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, yaml.Unmarshal(raw, &snap))
	assert.Equal(t, 2, snap.Count)
	require.Len(t, snap.Tasks, 2)
	assert.Equal(t, []model.Task(tasks()), snap.Tasks)
}

func TestWriter_EmptyListWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	w, err := NewWriter(path, FormatJSON)
	require.NoError(t, err)

	_, err = w.Write(staticLister(nil))
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tasks": []`)
}

func TestWriter_ReplacesPreviousSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	w, err := NewWriter(path, FormatJSON)
	require.NoError(t, err)
	_, err = w.Write(tasks())
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "old", string(raw))
}

func TestNewWriter_RejectsUnknownFormat(t *testing.T) {
	_, err := NewWriter("tasks.xml", "xml")
	assert.Error(t, err)
}
