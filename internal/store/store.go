package store

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"taskmaster/internal/api"
	"taskmaster/internal/model"
)

// RemoteService is the RPC surface the store reconciles against.
// *api.Client satisfies it.
type RemoteService interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (*model.Task, error)
	CreateTask(ctx context.Context, draft model.TaskDraft) (*model.Task, error)
	UpdateTask(ctx context.Context, id string, update model.TaskUpdate) (*model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	AddComment(ctx context.Context, taskID, content string) (*model.Comment, error)
}

// SessionState is the slice of the session the store depends on.
// *auth.Session satisfies it.
type SessionState interface {
	Authenticated() bool
	OnChange(fn func())
}

// Fallback messages for failures that carry no structured payload.
const (
	msgFetchTasks    = "Failed to fetch tasks."
	msgFetchTask     = "Failed to fetch task."
	msgCreateTask    = "Failed to create task."
	msgUpdateTask    = "Failed to update task."
	msgDeleteTask    = "Failed to delete task."
	msgAddComment    = "Failed to add comment."
	msgTitleRequired = "Title is required."
)

var validate = validator.New()

// Store is the mutation coordinator: it owns the task cache, applies
// optimistic mutations, and reconciles them with server responses. It is
// constructed at session start and its cache empties when the session
// identity goes away.
//
// Operations may run concurrently. The loading flag is shared across all of
// them (true while any operation is in flight) and the error slot holds
// only the most recent failure; a caller that wants the cause of its own
// call must read Err immediately after the call reports failure.
type Store struct {
	remote  RemoteService
	session SessionState
	cache   *Cache

	mu       sync.Mutex
	inflight int
	lastErr  string
}

func NewStore(remote RemoteService, session SessionState) *Store {
	s := &Store{
		remote:  remote,
		session: session,
		cache:   NewCache(),
	}
	session.OnChange(func() {
		if !session.Authenticated() {
			s.cache.Clear()
		}
	})
	return s
}

// Tasks returns a snapshot of the cached collection.
func (s *Store) Tasks() []model.Task {
	return s.cache.List()
}

// Task returns one cached task by id.
func (s *Store) Task(id string) (model.Task, bool) {
	return s.cache.Get(id)
}

// Loading reports whether any operation is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// Err returns the most recent operation failure, or "" when the last
// operation that touched the slot succeeded.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// FetchTasks replaces the cache with the server's task list. Without an
// authenticated session it clears the cache and returns without a network
// call; that is a guard, not an error. On failure the previous cache
// contents stay intact and the failure is recorded.
func (s *Store) FetchTasks(ctx context.Context) error {
	if !s.session.Authenticated() {
		s.cache.Clear()
		return nil
	}

	done := s.begin()
	defer done()

	tasks, err := s.remote.ListTasks(ctx)
	if err != nil {
		s.fail(msgFetchTasks, err)
		return err
	}
	s.cache.ReplaceAll(tasks)
	return nil
}

// FetchTaskByID retrieves one task without touching the cache. Returns nil
// on failure (recorded) or when there is no session (silent guard).
func (s *Store) FetchTaskByID(ctx context.Context, id string) *model.Task {
	if !s.session.Authenticated() {
		return nil
	}

	done := s.begin()
	defer done()

	task, err := s.remote.GetTask(ctx, id)
	if err != nil {
		s.fail(msgFetchTask, err)
		return nil
	}
	return task
}

// CreateTask validates the draft, submits it, and appends the created task
// (with its server-assigned identity) to the cache. Nothing is added
// optimistically: before the server responds there is no identity to add
// under. Reports success.
func (s *Store) CreateTask(ctx context.Context, draft model.TaskDraft) bool {
	done := s.begin()
	defer done()

	if err := validate.Struct(draft); err != nil {
		s.fail(msgTitleRequired, nil)
		return false
	}

	task, err := s.remote.CreateTask(ctx, draft)
	if err != nil {
		s.fail(msgCreateTask, err)
		return false
	}
	s.cache.Upsert(*task)
	return true
}

// UpdateTask applies the partial update to the cached task immediately so
// the UI reflects it with zero latency, then submits it. On success the
// cached task is replaced with the authoritative server response. On
// failure the optimistic merge is not rolled back in place; a full refetch
// resynchronizes the cache with server truth instead. Reports success.
func (s *Store) UpdateTask(ctx context.Context, id string, update model.TaskUpdate) bool {
	done := s.begin()

	if current, ok := s.cache.Get(id); ok {
		update.ApplyTo(&current)
		s.cache.Upsert(current)
	}

	task, err := s.remote.UpdateTask(ctx, id, update)
	if err != nil {
		done()
		log.WithField("task", id).Warn("update failed, resynchronizing from server")
		_ = s.FetchTasks(ctx)
		s.fail(api.Message(err, msgUpdateTask), nil)
		return false
	}
	s.cache.Upsert(*task)
	done()
	return true
}

// DeleteTask removes the task remotely first, and from the cache only once
// the server acknowledged. On failure the task was never removed, so the
// cache needs no repair. Reports success.
func (s *Store) DeleteTask(ctx context.Context, id string) bool {
	done := s.begin()
	defer done()

	if err := s.remote.DeleteTask(ctx, id); err != nil {
		s.fail(msgDeleteTask, err)
		return false
	}
	s.cache.Remove(id)
	return true
}

// AddComment posts the comment and, on success, appends the server-returned
// comment (with resolved author and timestamp) to the cached task. Returns
// nil on failure.
func (s *Store) AddComment(ctx context.Context, taskID, content string) *model.Comment {
	done := s.begin()
	defer done()

	comment, err := s.remote.AddComment(ctx, taskID, content)
	if err != nil {
		s.fail(msgAddComment, err)
		return nil
	}
	s.cache.PatchComments(taskID, *comment)
	return comment
}

// begin marks an operation in flight and clears the error slot; the
// returned func marks completion and must run on every exit path.
func (s *Store) begin() func() {
	s.mu.Lock()
	s.inflight++
	s.lastErr = ""
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.inflight--
			s.mu.Unlock()
		})
	}
}

func (s *Store) fail(fallback string, err error) {
	msg := fallback
	if err != nil {
		msg = api.Message(err, fallback)
		log.WithError(err).Warn(fallback)
	}
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}
