package main

import (
	"strings"
	"time"

	"gioui.org/widget"
	lorem "github.com/drhodes/golorem"
	"github.com/google/uuid"

	"git.sr.ht/~gioverse/swipeable"
)

// Todo is one entry of the list.
type Todo struct {
	Key         swipeable.RowID
	Title       string
	Description string
	Created     time.Time
	// Share holds the click state of the row's text action.
	Share widget.Clickable
}

// ID implements swipeable.Row.
func (t *Todo) ID() swipeable.RowID {
	return t.Key
}

// NewTodo creates a to-do with a fresh random ID.
func NewTodo(title, description string) *Todo {
	return &Todo{
		Key:         swipeable.RowID(uuid.NewString()),
		Title:       title,
		Description: description,
		Created:     time.Now(),
	}
}

// Header is the stateless title row at the top of the list.
type Header struct{}

// ID implements swipeable.Row.
func (Header) ID() swipeable.RowID {
	return swipeable.NoID
}

// Generate returns the fixed to-dos followed by n generated ones.
func Generate(n int) []*Todo {
	todos := []*Todo{
		NewTodo("Build an open-source library", "Time to give back to the community!"),
		NewTodo("Get life together", "Reminder: it's okay to cry during therapy."),
		NewTodo("Love my friends", "Remember the good times and cherish the present!"),
		NewTodo("Buy grande iced caramel macchiato", "Saving money is overrated, anyway."),
	}
	for ii := 0; ii < n; ii++ {
		var description string
		if ii%3 != 0 {
			description = lorem.Sentence(4, 12)
		}
		todos = append(todos, NewTodo(title(lorem.Sentence(2, 5)), description))
	}
	return todos
}

// title trims the sentence punctuation lorem adds.
func title(s string) string {
	return strings.TrimRight(s, ".!?")
}
