package store_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taskmaster/internal/model"
)

// Mock of the remote task service
type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) ListTasks(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	tasks := args.Get(0)
	if tasks == nil {
		return nil, args.Error(1)
	}
	return tasks.([]model.Task), args.Error(1)
}

func (m *MockRemote) GetTask(ctx context.Context, id string) (*model.Task, error) {
	args := m.Called(ctx, id)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockRemote) CreateTask(ctx context.Context, draft model.TaskDraft) (*model.Task, error) {
	args := m.Called(ctx, draft)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockRemote) UpdateTask(ctx context.Context, id string, update model.TaskUpdate) (*model.Task, error) {
	args := m.Called(ctx, id, update)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockRemote) DeleteTask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRemote) AddComment(ctx context.Context, taskID, content string) (*model.Comment, error) {
	args := m.Called(ctx, taskID, content)
	comment := args.Get(0)
	if comment == nil {
		return nil, args.Error(1)
	}
	return comment.(*model.Comment), args.Error(1)
}

// Session stub: authenticated state plus listener notification, enough to
// drive the store's identity guard and logout transition.
type fakeSession struct {
	authenticated bool
	listeners     []func()
}

func (s *fakeSession) Authenticated() bool { return s.authenticated }

func (s *fakeSession) OnChange(fn func()) { s.listeners = append(s.listeners, fn) }

func (s *fakeSession) logout() {
	s.authenticated = false
	for _, fn := range s.listeners {
		fn()
	}
}
