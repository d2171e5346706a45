package task

import (
	"strings"
	"time"
)

// Messages shown inline next to the offending form field.
const (
	MsgTextRequired     = "Write something descriptive about this task."
	MsgDeadlineRequired = "Without a deadline, a task would not be a task."
)

// Draft is an unvalidated create/update payload. A nil ID means create.
// Done is only exposed by the form when updating; a task is never created
// already done.
type Draft struct {
	ID       *int
	Text     string
	Deadline *time.Time
	Done     bool
}

// FieldError ties a validation message to the field it belongs to.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

type FieldErrors []FieldError

func (es FieldErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// ByField returns the message for a field, or "" when the field is fine.
func (es FieldErrors) ByField(field string) string {
	for _, e := range es {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// Validate checks the draft and returns the normalized task on success:
// text trimmed, deadline carried as given, done as-is. All field errors are
// reported at once so the form can annotate every offending input.
func (d Draft) Validate() (ToDo, error) {
	var errs FieldErrors
	text := strings.TrimSpace(d.Text)
	if text == "" {
		errs = append(errs, FieldError{Field: "text", Message: MsgTextRequired})
	}
	if d.Deadline == nil || d.Deadline.IsZero() {
		errs = append(errs, FieldError{Field: "deadline", Message: MsgDeadlineRequired})
	}
	if len(errs) > 0 {
		return ToDo{}, errs
	}
	t := ToDo{Text: text, Deadline: *d.Deadline, Done: d.Done}
	if d.ID != nil {
		t.ID = *d.ID
	}
	return t, nil
}
