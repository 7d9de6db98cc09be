// Package board derives the drag-and-drop board view from the task
// collection. Everything here is a pure function of its input; the board
// never talks to the network and never mutates the cache.
package board

import (
	"taskmaster/internal/model"
)

// Columns is the grouped-by-status view the board renders: one entry per
// known status, each holding the tasks of that status in cache order.
type Columns map[model.Status][]model.Task

// Group partitions the snapshot by status. Tasks with an absent or unknown
// status land in To-Do. Every known status is present in the result even
// when its group is empty, and the input is left untouched.
func Group(tasks []model.Task) Columns {
	grouped := make(Columns, len(model.Statuses()))
	for _, status := range model.Statuses() {
		grouped[status] = []model.Task{}
	}

	for _, task := range tasks {
		status := task.Status
		if !status.Valid() {
			status = model.StatusToDo
		}
		grouped[status] = append(grouped[status], task)
	}
	return grouped
}
