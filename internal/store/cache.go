package store

import (
	"sync"

	"taskmaster/internal/model"
)

// Cache is the authoritative in-memory task collection for the current
// session. It performs no I/O and holds at most one task per id. Only the
// Store mutates it; everything else consumes snapshots.
//
// Tasks keep their relative order: list order on ReplaceAll, append order
// for new ids, in-place replacement for known ids. The board projection
// relies on this.
type Cache struct {
	mu    sync.RWMutex
	tasks []model.Task
}

func NewCache() *Cache {
	return &Cache{}
}

// List returns a snapshot of the collection. Callers must not mutate the
// returned tasks.
func (c *Cache) List() []model.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot := make([]model.Task, len(c.tasks))
	copy(snapshot, c.tasks)
	return snapshot
}

// Get returns the task with the given id, if present.
func (c *Cache) Get(id string) (model.Task, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Len returns the number of cached tasks.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tasks)
}

// ReplaceAll swaps the whole collection for the given list, preserving its
// order. Duplicate ids keep the first occurrence so the uniqueness
// invariant holds even against a misbehaving server.
func (c *Cache) ReplaceAll(tasks []model.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]struct{}, len(tasks))
	next := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		next = append(next, t)
	}
	c.tasks = next
}

// Clear empties the collection.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = nil
}

// Upsert replaces the task with the same id in place, or appends when the
// id is new. An incoming task without comments inherits the comments
// already cached for that id, so a partial server representation never
// drops the comment sub-resource.
func (c *Cache) Upsert(task model.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.tasks {
		if existing.ID != task.ID {
			continue
		}
		if task.Comments == nil {
			task.Comments = existing.Comments
		}
		c.tasks[i] = task
		return
	}
	c.tasks = append(c.tasks, task)
}

// Remove deletes the task with the given id. Removing an absent id is a
// no-op.
func (c *Cache) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, t := range c.tasks {
		if t.ID == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return
		}
	}
}

// PatchComments appends a comment to the identified task's comment
// sequence. A no-op when the task is not cached.
func (c *Cache) PatchComments(id string, comment model.Comment) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.tasks {
		if c.tasks[i].ID == id {
			comments := make([]model.Comment, 0, len(c.tasks[i].Comments)+1)
			comments = append(comments, c.tasks[i].Comments...)
			c.tasks[i].Comments = append(comments, comment)
			return
		}
	}
}
