package board_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"taskmaster/internal/board"
	"taskmaster/internal/model"
)

type fakeState struct {
	tasks map[string]model.Task
}

func (s *fakeState) Task(id string) (model.Task, bool) {
	task, ok := s.tasks[id]
	return task, ok
}

type recordingUpdater struct {
	calls   []model.TaskUpdate
	taskIDs []string
	result  bool
}

func (u *recordingUpdater) UpdateTask(_ context.Context, id string, update model.TaskUpdate) bool {
	u.taskIDs = append(u.taskIDs, id)
	u.calls = append(u.calls, update)
	return u.result
}

func setupDrag(tasks ...model.Task) (*board.DragHandler, *recordingUpdater) {
	state := &fakeState{tasks: map[string]model.Task{}}
	for _, task := range tasks {
		state.tasks[task.ID] = task
	}
	updater := &recordingUpdater{result: true}
	return board.NewDragHandler(state, updater), updater
}

func TestHandleDrop_IssuesStatusOnlyUpdate(t *testing.T) {
	// Arrange
	handler, updater := setupDrag(model.Task{ID: "1", Title: "A", Status: model.StatusToDo})
	gesture := board.Gesture{
		TaskID:      "1",
		Source:      model.StatusToDo,
		Destination: model.StatusInProgress,
	}

	// Act
	issued := handler.HandleDrop(context.Background(), gesture)

	// Assert: exactly one mutation, carrying the new status and nothing else
	assert.True(t, issued)
	assert.Equal(t, []string{"1"}, updater.taskIDs)
	assert.Len(t, updater.calls, 1)
	update := updater.calls[0]
	assert.NotNil(t, update.Status)
	assert.Equal(t, model.StatusInProgress, *update.Status)
	assert.Nil(t, update.Title)
	assert.Nil(t, update.Description)
	assert.Nil(t, update.Priority)
	assert.Nil(t, update.DueDate)
	assert.Nil(t, update.AssignedTo)
}

func TestHandleDrop_NoDestinationIsNoop(t *testing.T) {
	handler, updater := setupDrag(model.Task{ID: "1", Status: model.StatusToDo})

	issued := handler.HandleDrop(context.Background(), board.Gesture{
		TaskID: "1",
		Source: model.StatusToDo,
	})

	assert.False(t, issued)
	assert.Empty(t, updater.calls)
}

func TestHandleDrop_SameColumnIsNoop(t *testing.T) {
	handler, updater := setupDrag(model.Task{ID: "1", Status: model.StatusToDo})

	issued := handler.HandleDrop(context.Background(), board.Gesture{
		TaskID:      "1",
		Source:      model.StatusToDo,
		Destination: model.StatusToDo,
	})

	assert.False(t, issued)
	assert.Empty(t, updater.calls)
}

func TestHandleDrop_UnresolvableTaskIsSilentlyIgnored(t *testing.T) {
	// A stale snapshot may reference a task that is gone; not an error.
	handler, updater := setupDrag()

	issued := handler.HandleDrop(context.Background(), board.Gesture{
		TaskID:      "missing",
		Source:      model.StatusToDo,
		Destination: model.StatusBlocked,
	})

	assert.False(t, issued)
	assert.Empty(t, updater.calls)
}

func TestHandleDrop_TaskAlreadyAtDestinationIsNoop(t *testing.T) {
	handler, updater := setupDrag(model.Task{ID: "1", Status: model.StatusInProgress})

	issued := handler.HandleDrop(context.Background(), board.Gesture{
		TaskID:      "1",
		Source:      model.StatusToDo,
		Destination: model.StatusInProgress,
	})

	assert.False(t, issued)
	assert.Empty(t, updater.calls)
}
