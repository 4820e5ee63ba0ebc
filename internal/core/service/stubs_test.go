package service

import (
	"context"
	"sync"

	"github.com/kukuhtri1999/BodySync/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func (r *stubUserRepo) emailTaken(email string, except int64) bool {
	for id, u := range r.users {
		if u.Email == email && id != except {
			return true
		}
	}
	return false
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.emailTaken(user.Email, 0) {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	c := cloneUser(user)
	c.ID = r.nextID
	r.users[c.ID] = c
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	if r.emailTaken(user.Email, user.ID) {
		return nil, domain.ErrEmailTaken
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// ---------------------------------------------------------------------------
// Workouts (references checked against the users/activities sets)
// ---------------------------------------------------------------------------

type stubWorkoutRepo struct {
	users      map[int64]bool
	activities map[int64]bool
	nextID     int64
	rows       map[int64]domain.Workout
	creates    int
}

func newStubWorkoutRepo() *stubWorkoutRepo {
	return &stubWorkoutRepo{
		users:      map[int64]bool{},
		activities: map[int64]bool{},
		rows:       map[int64]domain.Workout{},
	}
}

func (r *stubWorkoutRepo) checkRefs(w *domain.Workout) error {
	if !r.users[w.UserID] {
		return domain.ErrUserNotFound
	}
	if !r.activities[w.ActivityID] {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *stubWorkoutRepo) Create(_ context.Context, w *domain.Workout) (*domain.Workout, error) {
	if err := r.checkRefs(w); err != nil {
		return nil, err
	}
	r.creates++
	r.nextID++
	c := *w
	c.ID = r.nextID
	r.rows[c.ID] = c
	return &c, nil
}

func (r *stubWorkoutRepo) FindByID(_ context.Context, id int64) (*domain.Workout, error) {
	w, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrWorkoutNotFound
	}
	return &w, nil
}

func (r *stubWorkoutRepo) List(_ context.Context) ([]domain.Workout, error) {
	return r.filter(func(domain.Workout) bool { return true }), nil
}

func (r *stubWorkoutRepo) ListByUser(_ context.Context, userID int64) ([]domain.Workout, error) {
	if !r.users[userID] {
		return nil, domain.ErrUserNotFound
	}
	return r.filter(func(w domain.Workout) bool { return w.UserID == userID }), nil
}

func (r *stubWorkoutRepo) ListByActivity(_ context.Context, activityID int64) ([]domain.Workout, error) {
	if !r.activities[activityID] {
		return nil, domain.ErrActivityNotFound
	}
	return r.filter(func(w domain.Workout) bool { return w.ActivityID == activityID }), nil
}

func (r *stubWorkoutRepo) filter(keep func(domain.Workout) bool) []domain.Workout {
	out := []domain.Workout{}
	for id := int64(1); id <= r.nextID; id++ {
		if w, ok := r.rows[id]; ok && keep(w) {
			out = append(out, w)
		}
	}
	return out
}

func (r *stubWorkoutRepo) Update(_ context.Context, w *domain.Workout) (*domain.Workout, error) {
	if _, ok := r.rows[w.ID]; !ok {
		return nil, domain.ErrWorkoutNotFound
	}
	if err := r.checkRefs(w); err != nil {
		return nil, err
	}
	r.rows[w.ID] = *w
	c := *w
	return &c, nil
}

func (r *stubWorkoutRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrWorkoutNotFound
	}
	delete(r.rows, id)
	return nil
}

// ---------------------------------------------------------------------------
// Idempotency store and audit recorder
// ---------------------------------------------------------------------------

type stubIdemStore struct {
	entries     map[string]int64
	lookupErr   error
	rememberErr error
}

func newStubIdemStore() *stubIdemStore {
	return &stubIdemStore{entries: map[string]int64{}}
}

func (s *stubIdemStore) Lookup(_ context.Context, scope, key string) (int64, bool, error) {
	if s.lookupErr != nil {
		return 0, false, s.lookupErr
	}
	id, ok := s.entries[scope+":"+key]
	return id, ok, nil
}

func (s *stubIdemStore) Remember(_ context.Context, scope, key string, id int64) error {
	if s.rememberErr != nil {
		return s.rememberErr
	}
	if _, ok := s.entries[scope+":"+key]; !ok {
		s.entries[scope+":"+key] = id
	}
	return nil
}

type stubRecorder struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *stubRecorder) Record(e domain.AuditEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *stubRecorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Entity+":"+e.Action)
	}
	return out
}
