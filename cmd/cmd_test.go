package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// resetFlags puts every flag back to its default so runs do not leak into
// each other through the package-level flag variables.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type harness struct {
	t        *testing.T
	db       string
	snapshot string
}

func newHarness(t *testing.T) *harness {
	dir := t.TempDir()
	t.Setenv("TRACKER_SNAPSHOT_PATH", filepath.Join(dir, "tasks.json"))
	t.Setenv("TRACKER_LOG_LEVEL", "error")
	return &harness{
		t:        t,
		db:       filepath.Join(dir, "tracker.db"),
		snapshot: filepath.Join(dir, "tasks.json"),
	}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	stdout, _, err := h.runStreams(args...)
	return stdout, err
}

func (h *harness) runStreams(args ...string) (string, string, error) {
	h.t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	err := run(append([]string{"--db", h.db}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestCommands_EndToEnd(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("create", "--name", "write spec", "--deadline", "friday",
		"--status", "unready", "--priority", "high", "--creator", "1", "--executor", "1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.Contains(out, "created task 1 at position 0") {
		t.Errorf("create output = %q", out)
	}

	if _, err := h.run("set", "0", "status", "in_process"); err != nil {
		t.Fatalf("set: %v", err)
	}

	out, err = h.run("show", "0")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"write spec", "in_process", "high", "friday"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}

	raw, err := os.ReadFile(h.snapshot)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	var snap struct {
		Count int `json:"count"`
		Tasks []struct {
			ID     uint   `json:"id"`
			Status string `json:"status"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal(raw, &snap); err != nil {
		t.Fatalf("snapshot is not json: %v", err)
	}
	if snap.Count != 1 || snap.Tasks[0].Status != "in_process" {
		t.Errorf("snapshot = %+v", snap)
	}

	if _, err := h.run("delete", "0"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	out, err = h.run("list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.TrimSpace(out) != "no tasks" {
		t.Errorf("list output = %q, want no tasks", out)
	}
}

func TestCommands_Errors(t *testing.T) {
	h := newHarness(t)

	if _, err := h.run("create", "--name", "a"); err != nil {
		t.Fatalf("create: %v", err)
	}

	tests := []struct {
		name string
		args []string
		want *apperrors.Exception
		code int
	}{
		{"position out of range", []string{"show", "5"}, apperrors.ErrNotFound, 4},
		{"position not a number", []string{"delete", "first"}, apperrors.ErrNotFound, 4},
		{"unknown field", []string{"set", "0", "id", "9"}, apperrors.ErrInvalid, 2},
		{"blank name", []string{"set", "0", "name", " "}, apperrors.ErrInvalid, 2},
		{"missing name", []string{"create"}, apperrors.ErrInvalid, 2},
		{"unknown id", []string{"show", "--id", "99"}, apperrors.ErrNotFound, 4},
		{"no selector", []string{"show"}, apperrors.ErrInvalid, 2},
		{"id and position", []string{"set", "--id", "1", "0", "status", "done"}, apperrors.ErrInvalid, 2},
		{"delete id and position", []string{"delete", "--id", "1", "0"}, apperrors.ErrInvalid, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.run(tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if got := apperrors.ExitCode(err); got != tt.code {
				t.Errorf("ExitCode = %d, want %d", got, tt.code)
			}
		})
	}
}

func TestCommands_SelectByID(t *testing.T) {
	h := newHarness(t)

	for _, name := range []string{"first", "second"} {
		if _, err := h.run("create", "--name", name); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	if _, err := h.run("delete", "0"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// "second" now sits at position 0 but keeps id 2
	out, err := h.run("show", "--id", "2")
	if err != nil {
		t.Fatalf("show --id: %v", err)
	}
	if !regexp.MustCompile(`name:\s+second\n`).MatchString(out) {
		t.Errorf("show --id 2 output:\n%s", out)
	}

	_, err = h.run("show", "--id", "1")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("show deleted id: error = %v, want ErrNotFound", err)
	}
	if got := apperrors.ExitCode(err); got != 4 {
		t.Errorf("ExitCode = %d, want 4", got)
	}

	out, err = h.run("set", "--id", "2", "priority", "low")
	if err != nil {
		t.Fatalf("set --id: %v", err)
	}
	if !strings.Contains(out, `task 2: priority is now "low"`) {
		t.Errorf("set output = %q", out)
	}

	out, err = h.run("delete", "--id", "2")
	if err != nil {
		t.Fatalf("delete --id: %v", err)
	}
	if !strings.Contains(out, "deleted task 2 (second)") {
		t.Errorf("delete output = %q", out)
	}
}

func TestCommands_SetWarnsOnUnknownEnumText(t *testing.T) {
	h := newHarness(t)

	if _, err := h.run("create", "--name", "a"); err != nil {
		t.Fatalf("create: %v", err)
	}

	out, stderr, err := h.runStreams("set", "0", "status", "finished")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if !strings.Contains(out, `status is now "undefined"`) {
		t.Errorf("set output = %q", out)
	}
	if !strings.Contains(stderr, `warning: "finished" is not a known status`) {
		t.Errorf("stderr = %q, want a warning", stderr)
	}

	_, stderr, err = h.runStreams("set", "0", "priority", "high")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if strings.Contains(stderr, "warning") {
		t.Errorf("known priority warned: %q", stderr)
	}
}

func TestCommands_CreateUsesConfiguredUsers(t *testing.T) {
	h := newHarness(t)
	t.Setenv("TRACKER_DEFAULTS_CREATOR_ID", "7")

	if _, err := h.run("create", "--name", "a", "--executor", "3"); err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := h.run("show", "0")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !regexp.MustCompile(`creator:\s+7\n`).MatchString(out) {
		t.Errorf("show output missing creator 7:\n%s", out)
	}
	if !regexp.MustCompile(`executor:\s+3\n`).MatchString(out) {
		t.Errorf("show output missing executor 3:\n%s", out)
	}
}

func TestCommands_ExportYAML(t *testing.T) {
	h := newHarness(t)
	out := filepath.Join(t.TempDir(), "snap.yaml")

	if _, err := h.run("create", "--name", "a"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := h.run("export", "--out", out, "--format", "yaml"); err != nil {
		t.Fatalf("export: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "snapshot_id:") || !strings.Contains(string(raw), "name: a") {
		t.Errorf("yaml snapshot = %s", raw)
	}
}

func TestCommands_UnavailableStorageIsFatal(t *testing.T) {
	h := newHarness(t)
	h.db = filepath.Join(t.TempDir(), "no-such-dir", "tracker.db")

	_, err := h.run("list")
	if !errors.Is(err, apperrors.ErrStorageUnavailable) {
		t.Fatalf("error = %v, want ErrStorageUnavailable", err)
	}
	if !apperrors.IsFatal(err) {
		t.Error("IsFatal = false")
	}
}
