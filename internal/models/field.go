package model

import (
	"fmt"
	"strconv"
	"strings"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

// Field identifies one mutable column of a task. It is the only way to name a
// column for a partial update, so column names never come from user text.
type Field uint8

const (
	FieldName Field = iota + 1
	FieldDescription
	FieldDeadline
	FieldStatus
	FieldPriority
	FieldCreatorID
	FieldExecutorID
)

var fieldColumns = map[Field]string{
	FieldName:        "name",
	FieldDescription: "description",
	FieldDeadline:    "deadline",
	FieldStatus:      "status",
	FieldPriority:    "priority",
	FieldCreatorID:   "creator_id",
	FieldExecutorID:  "executor_id",
}

func Fields() []Field {
	return []Field{
		FieldName,
		FieldDescription,
		FieldDeadline,
		FieldStatus,
		FieldPriority,
		FieldCreatorID,
		FieldExecutorID,
	}
}

func ParseField(s string) (Field, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Fields() {
		if fieldColumns[f] == name {
			return f, nil
		}
	}
	return 0, apperrors.Wrap(apperrors.ErrInvalid, "parse field", fmt.Errorf("unknown field %q", s))
}

// Column returns the column name, or "" for a value outside the enumeration.
func (f Field) Column() string {
	return fieldColumns[f]
}

func (f Field) String() string {
	if c := f.Column(); c != "" {
		return c
	}
	return fmt.Sprintf("Field(%d)", uint8(f))
}

func (f Field) IsValid() bool {
	_, ok := fieldColumns[f]
	return ok
}

// Apply parses raw into the typed value of f and stores it on t. Status and
// priority use the total decoders; ids must be unsigned integers.
func (t *Task) Apply(f Field, raw string) error {
	switch f {
	case FieldName:
		t.Name = raw
	case FieldDescription:
		t.Description = raw
	case FieldDeadline:
		t.Deadline = raw
	case FieldStatus:
		t.Status = constants.ParseTaskStatus(strings.TrimSpace(raw))
	case FieldPriority:
		t.Priority = constants.ParseTaskPriority(strings.TrimSpace(raw))
	case FieldCreatorID, FieldExecutorID:
		id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInvalid, "apply "+f.String(), fmt.Errorf("%q is not a user id", raw))
		}
		if f == FieldCreatorID {
			t.CreatorID = uint(id)
		} else {
			t.ExecutorID = uint(id)
		}
	default:
		return apperrors.Wrap(apperrors.ErrInvalid, "apply", fmt.Errorf("unknown field %s", f))
	}
	return nil
}

// FieldValue returns the current value of f on t, typed for storage.
func (t Task) FieldValue(f Field) any {
	switch f {
	case FieldName:
		return t.Name
	case FieldDescription:
		return t.Description
	case FieldDeadline:
		return t.Deadline
	case FieldStatus:
		return t.Status
	case FieldPriority:
		return t.Priority
	case FieldCreatorID:
		return t.CreatorID
	case FieldExecutorID:
		return t.ExecutorID
	default:
		return nil
	}
}
