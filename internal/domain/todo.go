package domain

import "fmt"

// ErrMissingTitle is returned when a todo is created without a title key.
var ErrMissingTitle = fmt.Errorf("%w: title is required", ErrValidation)

// Todo is a single task entry held by the registry.
// ID is assigned by the registry on creation and never changes afterwards.
type Todo struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TodoDraft carries the creation input with defaults already applied.
type TodoDraft struct {
	Title       string
	Description string
	Completed   bool
}

// NewTodoDraft builds a draft from optional creation fields.
// title must be present; description defaults to "" and completed to false.
func NewTodoDraft(title, description *string, completed *bool) (TodoDraft, error) {
	if title == nil {
		return TodoDraft{}, ErrMissingTitle
	}

	draft := TodoDraft{Title: *title}
	if description != nil {
		draft.Description = *description
	}
	if completed != nil {
		draft.Completed = *completed
	}
	return draft, nil
}

// Build turns the draft into a Todo with the given ID.
func (d TodoDraft) Build(id int64) Todo {
	return Todo{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Completed:   d.Completed,
	}
}

// TodoPatch describes a partial update. A nil field means the key was absent
// from the request and the stored value is left untouched.
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

// Apply writes the present fields onto t. The ID is never modified.
func (p TodoPatch) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}

// Fields lists the names of the fields the patch touches, in JSON key form.
func (p TodoPatch) Fields() []string {
	fields := make([]string, 0, 3)
	if p.Title != nil {
		fields = append(fields, "title")
	}
	if p.Description != nil {
		fields = append(fields, "description")
	}
	if p.Completed != nil {
		fields = append(fields, "completed")
	}
	return fields
}
