package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskmaster/internal/board"
	"taskmaster/internal/model"
)

func TestGroup_EmptyInputYieldsFourEmptyGroups(t *testing.T) {
	grouped := board.Group(nil)

	assert.Len(t, grouped, 4)
	for _, status := range model.Statuses() {
		assert.Empty(t, grouped[status])
	}
}

func TestGroup_PartitionsEveryTaskExactlyOnce(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Status: model.StatusToDo},
		{ID: "2", Status: model.StatusInProgress},
		{ID: "3", Status: model.StatusInProgress},
		{ID: "4", Status: model.StatusBlocked},
		{ID: "5", Status: model.StatusCompleted},
		{ID: "6", Status: ""},        // absent status
		{ID: "7", Status: "Archive"}, // unknown status
	}

	grouped := board.Group(tasks)

	total := 0
	seen := map[string]int{}
	for _, status := range model.Statuses() {
		total += len(grouped[status])
		for _, task := range grouped[status] {
			seen[task.ID]++
		}
	}
	assert.Equal(t, len(tasks), total)
	for id, count := range seen {
		assert.Equalf(t, 1, count, "task %s appears in %d groups", id, count)
	}
}

func TestGroup_DefaultsUnknownStatusToToDo(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Status: ""},
		{ID: "2", Status: "Someday"},
	}

	grouped := board.Group(tasks)

	assert.Len(t, grouped[model.StatusToDo], 2)
}

func TestGroup_PreservesRelativeOrderWithinGroups(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Status: model.StatusToDo},
		{ID: "2", Status: model.StatusBlocked},
		{ID: "3", Status: model.StatusToDo},
		{ID: "4", Status: model.StatusToDo},
	}

	grouped := board.Group(tasks)

	ids := []string{}
	for _, task := range grouped[model.StatusToDo] {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"1", "3", "4"}, ids)
}

func TestGroup_DoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{{ID: "1", Status: "Someday"}}

	board.Group(tasks)

	assert.Equal(t, model.Status("Someday"), tasks[0].Status)
}
