package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/freelance-directory/api/internal/core/domain"
	"github.com/freelance-directory/api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu        sync.Mutex
	users     map[string]*domain.User
	nextID    int
	deleteErr error
	deletes   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) put(u *domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = cloneUser(u)
}

func (r *stubUserRepo) has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[id]
	return ok
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("u%d", r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes++
	if r.deleteErr != nil {
		return false, r.deleteErr
	}
	_, ok := r.users[id]
	delete(r.users, id)
	return ok, nil
}

func (r *stubUserRepo) deleteCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deletes
}

type stubFreelancerRepo struct {
	mu        sync.Mutex
	items     map[string]*domain.Freelancer
	nextID    int
	deleteErr error
	deletes   int
}

func newStubFreelancerRepo() *stubFreelancerRepo {
	return &stubFreelancerRepo{items: make(map[string]*domain.Freelancer)}
}

func cloneFreelancer(f *domain.Freelancer) *domain.Freelancer {
	clone := *f
	return &clone
}

func (r *stubFreelancerRepo) put(f *domain.Freelancer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[f.ID] = cloneFreelancer(f)
}

func (r *stubFreelancerRepo) has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[id]
	return ok
}

func (r *stubFreelancerRepo) FindByID(_ context.Context, id string) (*domain.Freelancer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.items[id]
	if !ok {
		return nil, domain.ErrFreelancerNotFound
	}
	return cloneFreelancer(f), nil
}

func (r *stubFreelancerRepo) FindByUserID(_ context.Context, userID string) (*domain.Freelancer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.items {
		if f.UserID == userID {
			return cloneFreelancer(f), nil
		}
	}
	return nil, domain.ErrFreelancerNotFound
}

func (r *stubFreelancerRepo) List(_ context.Context) ([]*domain.Freelancer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Freelancer, 0, len(r.items))
	for _, f := range r.items {
		out = append(out, cloneFreelancer(f))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubFreelancerRepo) Create(_ context.Context, f *domain.Freelancer) (*domain.Freelancer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Phone == f.Phone {
			return nil, domain.ErrDuplicatePhone
		}
	}
	r.nextID++
	created := cloneFreelancer(f)
	created.ID = fmt.Sprintf("f%d", r.nextID)
	r.items[created.ID] = cloneFreelancer(created)
	return created, nil
}

func (r *stubFreelancerRepo) Update(_ context.Context, f *domain.Freelancer) (*domain.Freelancer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[f.ID]; !ok {
		return nil, domain.ErrFreelancerNotFound
	}
	r.items[f.ID] = cloneFreelancer(f)
	return cloneFreelancer(f), nil
}

func (r *stubFreelancerRepo) DeleteByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes++
	if r.deleteErr != nil {
		return false, r.deleteErr
	}
	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

func (r *stubFreelancerRepo) deleteCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deletes
}

// ---------------------------------------------------------------------------
// Lock and event stubs
// ---------------------------------------------------------------------------

type stubLock struct {
	mu         sync.Mutex
	held       map[string]bool
	acquireErr error
	released   []string
}

func newStubLock() *stubLock {
	return &stubLock{held: make(map[string]bool)}
}

func (l *stubLock) Acquire(_ context.Context, id string) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.acquireErr != nil {
		return "", false, l.acquireErr
	}
	if l.held[id] {
		return "", false, nil
	}
	l.held[id] = true
	return "token-" + id, true, nil
}

func (l *stubLock) Release(_ context.Context, id, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if token != "token-"+id {
		return errors.New("release with foreign token")
	}
	delete(l.held, id)
	l.released = append(l.released, id)
	return nil
}

type recordingSink struct {
	mu     sync.Mutex
	events []ports.DirectoryEvent
}

func (s *recordingSink) Enqueue(e ports.DirectoryEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *recordingSink) types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Type)
	}
	return out
}
