package constants

import "database/sql/driver"

// TaskStatus is the progress of a task. The zero value is StatusUndefined.
type TaskStatus uint8

const (
	StatusUndefined TaskStatus = iota
	StatusUnready
	StatusInProcess
	StatusDone
)

var taskStatusNames = [...]string{
	StatusUndefined: "undefined",
	StatusUnready:   "unready",
	StatusInProcess: "in_process",
	StatusDone:      "done",
}

// ParseTaskStatus decodes the canonical text of a status. It never fails:
// anything it does not recognise is StatusUndefined.
func ParseTaskStatus(s string) TaskStatus {
	switch s {
	case "unready":
		return StatusUnready
	case "in_process":
		return StatusInProcess
	case "done":
		return StatusDone
	default:
		return StatusUndefined
	}
}

func TaskStatuses() []TaskStatus {
	return []TaskStatus{StatusUnready, StatusInProcess, StatusDone}
}

func (s TaskStatus) String() string {
	if int(s) < len(taskStatusNames) {
		return taskStatusNames[s]
	}
	return taskStatusNames[StatusUndefined]
}

func (s TaskStatus) IsDefined() bool {
	return s >= StatusUnready && s <= StatusDone
}

func (s TaskStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *TaskStatus) UnmarshalText(text []byte) error {
	*s = ParseTaskStatus(string(text))
	return nil
}

func (s TaskStatus) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan reads a stored status. NULL and unknown text decode to StatusUndefined.
func (s *TaskStatus) Scan(value any) error {
	*s = ParseTaskStatus(scanText(value))
	return nil
}
