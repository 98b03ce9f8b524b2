package constants

import "database/sql/driver"

// TaskPriority is the urgency of a task. The zero value is PriorityUndefined.
type TaskPriority uint8

const (
	PriorityUndefined TaskPriority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

var taskPriorityNames = [...]string{
	PriorityUndefined: "undefined",
	PriorityLow:       "low",
	PriorityMedium:    "medium",
	PriorityHigh:      "high",
}

// ParseTaskPriority decodes the canonical text of a priority, falling back to
// PriorityUndefined.
func ParseTaskPriority(s string) TaskPriority {
	switch s {
	case "low":
		return PriorityLow
	case "medium":
		return PriorityMedium
	case "high":
		return PriorityHigh
	default:
		return PriorityUndefined
	}
}

func TaskPriorities() []TaskPriority {
	return []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh}
}

func (p TaskPriority) String() string {
	if int(p) < len(taskPriorityNames) {
		return taskPriorityNames[p]
	}
	return taskPriorityNames[PriorityUndefined]
}

func (p TaskPriority) IsDefined() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

func (p TaskPriority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *TaskPriority) UnmarshalText(text []byte) error {
	*p = ParseTaskPriority(string(text))
	return nil
}

func (p TaskPriority) Value() (driver.Value, error) {
	return p.String(), nil
}

func (p *TaskPriority) Scan(value any) error {
	*p = ParseTaskPriority(scanText(value))
	return nil
}
