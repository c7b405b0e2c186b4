/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package today

import (
	"github.com/botobag/graphqlservice/graphql/introspection"
	"github.com/botobag/graphqlservice/graphql/response"
	"github.com/botobag/graphqlservice/graphql/service"
)

// TaskState is the progress of a task.
type TaskState int

// Enum values of TaskState
const (
	TaskStateNew TaskState = iota
	TaskStateStarted
	TaskStateComplete
	TaskStateUnassigned
)

var taskStates = []struct {
	name              string
	deprecationReason *string
}{
	TaskStateNew:        {"New", nil},
	TaskStateStarted:    {"Started", nil},
	TaskStateComplete:   {"Complete", nil},
	TaskStateUnassigned: {"Unassigned", introspection.Deprecated("Need to deprecate an enum value")},
}

// TaskStateNames returns the names of the TaskState values in order.
func TaskStateNames() []string {
	names := make([]string, len(taskStates))
	for i, state := range taskStates {
		names[i] = state.name
	}
	return names
}

// String implements fmt.Stringer.
func (state TaskState) String() string {
	if state < 0 || int(state) >= len(taskStates) {
		return "TaskState(?)"
	}
	return taskStates[state].name
}

// Value returns state as an enum value.
func (state TaskState) Value() response.Value {
	return response.NewEnum(state.String())
}

// ConvertTaskState converts an enum value named by the argument name.
func ConvertTaskState(name string, value response.Value) (TaskState, error) {
	i, err := service.ConvertEnum(name, value, TaskStateNames())
	if err != nil {
		return 0, err
	}
	return TaskState(i), nil
}

// CompleteTaskInput is the input of the completeTask mutation.
type CompleteTaskInput struct {
	ID []byte

	// IsComplete defaults to true.
	IsComplete bool

	ClientMutationID *string
}

// ConvertCompleteTaskInput converts the value of a CompleteTaskInput object.
func ConvertCompleteTaskInput(value response.Value) (CompleteTaskInput, error) {
	var input CompleteTaskInput

	id, err := service.ArgumentID(value, "id")
	if err != nil {
		return input, err
	}
	input.ID = id

	isComplete, err := service.OptionalArgumentBool(value, "isComplete")
	if err != nil {
		return input, err
	}
	input.IsComplete = isComplete == nil || *isComplete

	input.ClientMutationID, err = service.OptionalArgumentString(value, "clientMutationId")
	if err != nil {
		return input, err
	}

	return input, nil
}
