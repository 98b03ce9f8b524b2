// Package export writes the end-of-session snapshot of every task to a file.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	model "task-tracker.com/task-tracker/internal/models"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Snapshot struct {
	ID          string       `json:"snapshot_id" yaml:"snapshot_id"`
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at"`
	Count       int          `json:"count" yaml:"count"`
	Tasks       []model.Task `json:"tasks" yaml:"tasks"`
}

// TaskLister is satisfied by the task registry.
type TaskLister interface {
	List() []model.Task
}

type Writer struct {
	path   string
	format string
	now    func() time.Time
}

func NewWriter(path, format string) (*Writer, error) {
	switch format {
	case FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", format)
	}

	return &Writer{
		path:   path,
		format: format,
		now:    time.Now,
	}, nil
}

// Write dumps the tasks of src. The file is replaced atomically so readers
// never see half a snapshot.
func (w *Writer) Write(src TaskLister) (*Snapshot, error) {
	tasks := src.List()
	if tasks == nil {
		tasks = []model.Task{}
	}

	snap := &Snapshot{
		ID:          uuid.NewString(),
		GeneratedAt: w.now().UTC().Truncate(time.Second),
		Count:       len(tasks),
		Tasks:       tasks,
	}

	data, err := w.encode(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	if err := writeFileAtomic(w.path, data); err != nil {
		return nil, fmt.Errorf("write snapshot %s: %w", w.path, err)
	}

	return snap, nil
}

func (w *Writer) encode(snap *Snapshot) ([]byte, error) {
	if w.format == FormatYAML {
		return yaml.Marshal(snap)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
