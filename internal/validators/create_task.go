package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}
	return v
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func ValidateCreateTaskRequest(in *model.TaskInput) error {
	if err := validate.Struct(in); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalid, "create task", describe(err))
	}
	return nil
}

// ValidateFieldEdit checks t after f has been changed on it.
func ValidateFieldEdit(f model.Field, t *model.Task) error {
	if f != model.FieldName {
		return nil
	}
	if err := validate.Var(t.Name, "required,notblank"); err != nil {
		return apperrors.Wrap(apperrors.ErrInvalid, "edit name", errors.New("name is required"))
	}
	return nil
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "notblank":
			msgs = append(msgs, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
