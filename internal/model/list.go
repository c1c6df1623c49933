package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"strings"
)

// TodoList is an ordered collection of todos under one title.
// Insertion order is kept by every operation.
//
// A TodoList is not safe for concurrent use; guard it externally if it is
// shared between goroutines.
type TodoList struct {
	title string
	todos []*Todo
}

// NewTodoList returns a list holding todos in the given order.
func NewTodoList(title string, todos ...*Todo) (*TodoList, error) {
	l := &TodoList{title: title}
	for _, t := range todos {
		if err := l.Add(t); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *TodoList) Title() string { return l.title }

// Len is the number of entries.
func (l *TodoList) Len() int { return len(l.todos) }

// Add appends t. A nil todo is rejected and the list is left untouched.
func (l *TodoList) Add(t *Todo) error {
	if t == nil {
		return &OpError{Op: "add", Err: ErrTypeMismatch}
	}
	l.todos = append(l.todos, t)
	return nil
}

// resolve maps a possibly negative index onto the backing slice.
// Negative indices count from the end: -1 is the last entry.
func (l *TodoList) resolve(op string, idx int) (int, error) {
	n := len(l.todos)
	i := idx
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, &OpError{Op: op, Index: idx, Len: n, Err: ErrOutOfRange}
	}
	return i, nil
}

func (l *TodoList) at(op string, idx int) (*Todo, error) {
	i, err := l.resolve(op, idx)
	if err != nil {
		return nil, err
	}
	return l.todos[i], nil
}

func (l *TodoList) First() (*Todo, error) { return l.at("first", 0) }
func (l *TodoList) Last() (*Todo, error)  { return l.at("last", -1) }

// TodoAt returns the entry at idx.
func (l *TodoList) TodoAt(idx int) (*Todo, error) { return l.at("todo_at", idx) }

// ToList returns a new slice of the entries. The slice is independent of the
// list; the todos it points to are not.
func (l *TodoList) ToList() []*Todo {
	out := make([]*Todo, len(l.todos))
	copy(out, l.todos)
	return out
}

func (l *TodoList) MarkDoneAt(idx int) error   { return l.setDoneAt("mark_done_at", idx, true) }
func (l *TodoList) MarkUndoneAt(idx int) error { return l.setDoneAt("mark_undone_at", idx, false) }

func (l *TodoList) setDoneAt(op string, idx int, done bool) error {
	t, err := l.at(op, idx)
	if err != nil {
		return err
	}
	t.SetDone(done)
	return nil
}

// MarkDone sets the first entry titled title as done.
func (l *TodoList) MarkDone(title string) error { return l.setDone("mark_done", title, true) }

// MarkUndone clears the done flag of the first entry titled title.
func (l *TodoList) MarkUndone(title string) error { return l.setDone("mark_undone", title, false) }

func (l *TodoList) setDone(op, title string, done bool) error {
	t, err := l.findByTitle(op, title)
	if err != nil {
		return err
	}
	t.SetDone(done)
	return nil
}

// MarkAllDone sets every entry as done, duplicate titles included.
func (l *TodoList) MarkAllDone() { l.Each(func(t *Todo) { t.SetDone(true) }) }

// MarkAllUndone clears every entry's done flag.
func (l *TodoList) MarkAllUndone() { l.Each(func(t *Todo) { t.SetDone(false) }) }

// AllDone reports whether every entry is done. An empty list is all done.
func (l *TodoList) AllDone() bool {
	for _, t := range l.todos {
		if !t.Done() {
			return false
		}
	}
	return true
}

// RemoveAt drops the entry at idx; later entries shift down by one.
func (l *TodoList) RemoveAt(idx int) error {
	i, err := l.resolve("remove_at", idx)
	if err != nil {
		return err
	}
	copy(l.todos[i:], l.todos[i+1:])
	l.todos[len(l.todos)-1] = nil
	l.todos = l.todos[:len(l.todos)-1]
	return nil
}

// Each calls fn for every entry in order.
func (l *TodoList) Each(fn func(*Todo)) {
	for _, t := range l.todos {
		fn(t)
	}
}

// All iterates entries with their positions.
func (l *TodoList) All() iter.Seq2[int, *Todo] {
	return func(yield func(int, *Todo) bool) {
		for i, t := range l.todos {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Select returns a list with the same title holding the entries for which
// keep returns true. The entries are shared with l, not copied, so marking
// one through either list is visible through both.
func (l *TodoList) Select(keep func(*Todo) bool) *TodoList {
	out := &TodoList{title: l.title}
	for _, t := range l.todos {
		if keep(t) {
			out.todos = append(out.todos, t)
		}
	}
	return out
}

// FindByTitle returns the first entry titled title.
func (l *TodoList) FindByTitle(title string) (*Todo, error) {
	return l.findByTitle("find_by_title", title)
}

func (l *TodoList) findByTitle(op, title string) (*Todo, error) {
	matches := l.Select(func(t *Todo) bool { return t.Title() == title })
	t, err := matches.TodoAt(0)
	if err != nil {
		return nil, &OpError{Op: op, Title: title, Err: fmt.Errorf("%w: %w", ErrNotFound, errors.Unwrap(err))}
	}
	return t, nil
}

func (l *TodoList) DoneTodos() *TodoList {
	return l.Select(func(t *Todo) bool { return t.Done() })
}

func (l *TodoList) UndoneTodos() *TodoList {
	return l.Select(func(t *Todo) bool { return !t.Done() })
}

// String renders the header line followed by one line per entry.
func (l *TodoList) String() string {
	lines := make([]string, 0, len(l.todos)+1)
	lines = append(lines, fmt.Sprintf("----- %s -----", l.title))
	for _, t := range l.todos {
		lines = append(lines, t.String())
	}
	return strings.Join(lines, "\n")
}

type listJSON struct {
	Title string  `json:"title"`
	Todos []*Todo `json:"todos"`
}

func (l *TodoList) MarshalJSON() ([]byte, error) {
	todos := l.todos
	if todos == nil {
		todos = []*Todo{}
	}
	return json.Marshal(listJSON{Title: l.title, Todos: todos})
}

func (l *TodoList) UnmarshalJSON(b []byte) error {
	var v listJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("json unmarshal todo list: %w", err)
	}
	fresh := &TodoList{title: v.Title}
	for _, t := range v.Todos {
		if err := fresh.Add(t); err != nil {
			return fmt.Errorf("json unmarshal todo list: %w", err)
		}
	}
	*l = *fresh
	return nil
}
