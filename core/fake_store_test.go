package core_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Harisshabbir76/todo/core"
)

type fakeStore struct {
	mu sync.RWMutex

	nextUserID int64
	nextTodoID int64

	users map[int64]core.User
	todos map[int64]core.Todo

	pingErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextUserID: 1,
		nextTodoID: 1,
		users:      make(map[int64]core.User),
		todos:      make(map[int64]core.Todo),
	}
}

func cloneTodo(t core.Todo) core.Todo {
	out := t
	if t.UserID != nil {
		uid := *t.UserID
		out.UserID = &uid
	}
	return out
}

// put injects a row directly, bypassing the service. Used to seed todos
// with a chosen creation time.
func (s *fakeStore) put(t core.Todo) core.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == 0 {
		t.ID = s.nextTodoID
		s.nextTodoID++
	}
	s.todos[t.ID] = cloneTodo(t)
	return t
}

func (s *fakeStore) todoCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.todos)
}

func (s *fakeStore) Ping(context.Context) error {
	return s.pingErr
}

func (s *fakeStore) CreateUser(_ context.Context, username, email, passwordHash string) (core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return core.User{}, core.ErrEmailTaken
		}
	}

	id := s.nextUserID
	s.nextUserID++

	user := core.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.users[id] = user

	return user, nil
}

func (s *fakeStore) GetUserByEmail(_ context.Context, email string) (core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return core.User{}, core.ErrNotFound
}

func (s *fakeStore) CreateTodo(_ context.Context, title, description string, owner core.Ownership) (core.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextTodoID
	s.nextTodoID++

	todo := core.Todo{
		ID:          id,
		Title:       title,
		Description: description,
		UserID:      owner.Column(),
		CreatedAt:   time.Now(),
	}
	s.todos[id] = cloneTodo(todo)

	return todo, nil
}

func (s *fakeStore) ListTodosByUser(_ context.Context, userID int64) ([]core.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.Todo
	for _, t := range s.todos {
		if t.UserID != nil && *t.UserID == userID {
			out = append(out, cloneTodo(t))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *fakeStore) ListGuestTodos(_ context.Context, notBefore time.Time) ([]core.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []core.Todo
	for _, t := range s.todos {
		if t.UserID == nil && t.CreatedAt.After(notBefore) {
			out = append(out, cloneTodo(t))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *fakeStore) UpdateTodo(_ context.Context, id int64, title, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.todos[id]
	if !ok {
		return core.ErrNotFound
	}
	t.Title = title
	t.Description = description
	s.todos[id] = t
	return nil
}

func (s *fakeStore) SetTodoCompleted(_ context.Context, id int64, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.todos[id]
	if !ok {
		return core.ErrNotFound
	}
	t.IsCompleted = completed
	s.todos[id] = t
	return nil
}

func (s *fakeStore) DeleteTodo(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return core.ErrNotFound
	}
	delete(s.todos, id)
	return nil
}

func (s *fakeStore) DeleteGuestTodosBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, t := range s.todos {
		if t.UserID == nil && t.CreatedAt.Before(cutoff) {
			delete(s.todos, id)
			deleted++
		}
	}
	return deleted, nil
}

func sortNewestFirst(todos []core.Todo) {
	sort.Slice(todos, func(i, j int) bool {
		if todos[i].CreatedAt.Equal(todos[j].CreatedAt) {
			return todos[i].ID > todos[j].ID
		}
		return todos[i].CreatedAt.After(todos[j].CreatedAt)
	})
}
