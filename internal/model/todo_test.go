package model_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/model"
)

func TestNewTodo_StartsUndone(t *testing.T) {
	t.Parallel()

	td := model.NewTodo("Buy milk")
	assert.Equal(t, "Buy milk", td.Title())
	assert.False(t, td.Done())
}

func TestTodo_String(t *testing.T) {
	t.Parallel()

	td := model.NewTodo("Clean room")
	assert.Equal(t, "[ ] Clean room", td.String())

	td.SetDone(true)
	assert.Equal(t, "[X] Clean room", td.String())
	assert.Equal(t, "[X] Clean room", fmt.Sprint(td))
}

func TestTodo_Equal(t *testing.T) {
	t.Parallel()

	done := func(title string) *model.Todo {
		td := model.NewTodo(title)
		td.SetDone(true)
		return td
	}

	tests := []struct {
		name string
		a, b *model.Todo
		want bool
	}{
		{name: "same title and flag", a: model.NewTodo("a"), b: model.NewTodo("a"), want: true},
		{name: "both done", a: done("a"), b: done("a"), want: true},
		{name: "different flag", a: model.NewTodo("a"), b: done("a"), want: false},
		{name: "different title", a: model.NewTodo("a"), b: model.NewTodo("b"), want: false},
		{name: "nil other", a: model.NewTodo("a"), b: nil, want: false},
		{name: "both nil", a: nil, b: nil, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestTodo_JSON(t *testing.T) {
	t.Parallel()

	td := model.NewTodo("Go to gym")
	td.SetDone(true)

	b, err := json.Marshal(td)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Go to gym","done":true}`, string(b))

	var back model.Todo
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Read","done":false}`), &back))
	assert.Equal(t, "Read", back.Title())
	assert.False(t, back.Done())

	require.Error(t, json.Unmarshal([]byte(`{"title":1}`), &back))
}
