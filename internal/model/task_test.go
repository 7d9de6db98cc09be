package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskmaster/internal/model"
)

func TestApplyTo_OverwritesOnlyCarriedFields(t *testing.T) {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	task := model.Task{
		ID:          "1",
		Title:       "Original",
		Description: "desc",
		Status:      model.StatusToDo,
		Priority:    model.PriorityLow,
		Owner:       &model.User{ID: "u1"},
		CreatedAt:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}

	newTitle := "Renamed"
	newStatus := model.StatusBlocked
	update := model.TaskUpdate{
		Title:   &newTitle,
		Status:  &newStatus,
		DueDate: &due,
	}
	update.ApplyTo(&task)

	assert.Equal(t, "Renamed", task.Title)
	assert.Equal(t, model.StatusBlocked, task.Status)
	assert.Equal(t, &due, task.DueDate)
	// Untouched fields survive the merge.
	assert.Equal(t, "desc", task.Description)
	assert.Equal(t, model.PriorityLow, task.Priority)
	assert.Equal(t, "u1", task.Owner.ID)
}

func TestApplyTo_EmptyUpdateChangesNothing(t *testing.T) {
	task := model.Task{ID: "1", Title: "A", Status: model.StatusToDo}
	before := task

	model.TaskUpdate{}.ApplyTo(&task)

	assert.Equal(t, before, task)
}

func TestApplyTo_AssignedToReplacesMembership(t *testing.T) {
	task := model.Task{ID: "1", AssignedTo: []model.User{{ID: "u1"}, {ID: "u2"}}}

	model.TaskUpdate{AssignedTo: []string{"u3"}}.ApplyTo(&task)

	assert.Len(t, task.AssignedTo, 1)
	assert.Equal(t, "u3", task.AssignedTo[0].ID)
}

func TestStatusValidity(t *testing.T) {
	for _, status := range model.Statuses() {
		assert.True(t, status.Valid())
	}
	assert.False(t, model.Status("").Valid())
	assert.False(t, model.Status("Archive").Valid())
}

func TestStatusUpdate_CarriesOnlyStatus(t *testing.T) {
	update := model.StatusUpdate(model.StatusInProgress)

	assert.Equal(t, model.StatusInProgress, *update.Status)
	assert.Nil(t, update.Title)
	assert.Nil(t, update.Description)
	assert.Nil(t, update.Priority)
	assert.Nil(t, update.DueDate)
	assert.Nil(t, update.AssignedTo)
}
