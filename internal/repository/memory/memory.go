// Package memory holds in-memory repository implementations backing the
// service and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/waibhq/waib/internal/models"
	"github.com/waibhq/waib/internal/repository"
)

type Users struct {
	mu    sync.Mutex
	users []models.User
}

func NewUsers() *Users { return &Users{} }

func (r *Users) Create(_ context.Context, username, email, hash string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	r.users = append(r.users, u)
	return u, nil
}

func (r *Users) GetByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (r *Users) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Delete removes a user so tests can simulate a stale session.
func (r *Users) Delete(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.users[:0]
	for _, u := range r.users {
		if u.Username != username {
			out = append(out, u)
		}
	}
	r.users = out
}

type Templates struct {
	mu     sync.Mutex
	nextID int64
	items  []models.Template
}

func NewTemplates() *Templates { return &Templates{nextID: 1} }

func (r *Templates) ListByPriceBand(_ context.Context, band models.PriceBand) ([]models.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Template
	for _, t := range r.items {
		if band.Matches(t.Price) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out, nil
}

func (r *Templates) Showcase(_ context.Context, limit int) ([]models.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]models.Template(nil), r.items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *Templates) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *Templates) CreateBatch(_ context.Context, ts []models.Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range ts {
		t.ID = r.nextID
		r.nextID++
		r.items = append(r.items, t)
	}
	return nil
}

type ContactMessages struct {
	mu       sync.Mutex
	nextID   int64
	Messages []models.ContactMessage
}

func NewContactMessages() *ContactMessages { return &ContactMessages{nextID: 1} }

func (r *ContactMessages) Create(_ context.Context, m models.ContactMessage) (models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.nextID
	m.CreatedAt = time.Now().UTC()
	r.nextID++
	r.Messages = append(r.Messages, m)
	return m, nil
}
