// Package model holds the todo entry and the ordered list that owns entries.
package model

import (
	"encoding/json"
	"fmt"
)

// Markers rendered between the brackets of a todo line.
const (
	MarkerDone   = "X"
	MarkerUndone = " "
)

// Todo is a single titled entry with a done flag.
// The title is fixed at construction; only the flag changes.
type Todo struct {
	title string
	done  bool
}

// NewTodo returns an undone entry.
func NewTodo(title string) *Todo {
	return &Todo{title: title}
}

func (t *Todo) Title() string     { return t.title }
func (t *Todo) Done() bool        { return t.done }
func (t *Todo) SetDone(done bool) { t.done = done }

// Equal reports structural equality: same title and same flag.
func (t *Todo) Equal(other *Todo) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.title == other.title && t.done == other.done
}

// String renders "[X] title" or "[ ] title".
func (t *Todo) String() string {
	marker := MarkerUndone
	if t.done {
		marker = MarkerDone
	}
	return fmt.Sprintf("[%s] %s", marker, t.title)
}

type todoJSON struct {
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

func (t *Todo) MarshalJSON() ([]byte, error) {
	return json.Marshal(todoJSON{Title: t.title, Done: t.done})
}

func (t *Todo) UnmarshalJSON(b []byte) error {
	var v todoJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("json unmarshal todo: %w", err)
	}
	t.title, t.done = v.Title, v.Done
	return nil
}
