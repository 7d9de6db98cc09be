package board

import (
	"context"

	"taskmaster/internal/model"
)

// Gesture is the result of one drag-and-drop interaction: the column the
// task was lifted from, the column it was dropped on (empty when it was
// dropped outside any column), and the dragged task's id.
type Gesture struct {
	TaskID      string
	Source      model.Status
	Destination model.Status
}

// TaskReader resolves a task from the current cache snapshot.
type TaskReader interface {
	Task(id string) (model.Task, bool)
}

// Updater issues a status-change mutation. *store.Store satisfies it.
type Updater interface {
	UpdateTask(ctx context.Context, id string, update model.TaskUpdate) bool
}

// DragHandler translates drag gestures into status-change mutations.
type DragHandler struct {
	tasks   TaskReader
	updates Updater
}

func NewDragHandler(tasks TaskReader, updates Updater) *DragHandler {
	return &DragHandler{tasks: tasks, updates: updates}
}

// HandleDrop applies the gesture's column transition. It reports whether a
// mutation was issued; gestures that change nothing are dropped silently:
//
//   - no destination (dropped outside the board)
//   - source and destination columns are the same
//   - the dragged id is no longer in the cache (stale snapshot — the next
//     render reflects true state, so this is a benign race, not an error)
//   - the task already carries the destination status
//
// A real transition issues an update containing only the new status; no
// other field is touched.
func (h *DragHandler) HandleDrop(ctx context.Context, g Gesture) bool {
	if g.Destination == "" || g.Source == g.Destination {
		return false
	}

	task, ok := h.tasks.Task(g.TaskID)
	if !ok || task.Status == g.Destination {
		return false
	}

	return h.updates.UpdateTask(ctx, g.TaskID, model.StatusUpdate(g.Destination))
}
