package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// fakeUserStore is an in-memory UserStore for tests.
type fakeUserStore struct {
	nextID  int64
	byEmail map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserStore) Create(_ context.Context, u *domain.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return repository.ErrEmailTaken
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func TestAuthService_Authenticate(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "user@example.com", "correct-password")
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	user, err := svc.Authenticate(ctx, "user@example.com", "correct-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}
	if user.ID != created.ID {
		t.Errorf("expected user id %d, got %d", created.ID, user.ID)
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_AuthenticateOpacity(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, "user@example.com", "correct-password"); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	unknownUser, unknownErr := svc.Authenticate(ctx, "nonexistent@example.com", "whatever")
	wrongUser, wrongErr := svc.Authenticate(ctx, "user@example.com", "wrong-password")

	if unknownUser != wrongUser {
		t.Errorf("outcomes differ: unknown email %v, wrong password %v", unknownUser, wrongUser)
	}
	if unknownErr != wrongErr {
		t.Errorf("errors differ: unknown email %v, wrong password %v", unknownErr, wrongErr)
	}
	if unknownUser != nil || unknownErr != nil {
		t.Errorf("expected nil, nil for failed authentication, got %v, %v", unknownUser, unknownErr)
	}
}

func TestAuthService_CreateUser(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "new@example.com", "password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.PasswordHash == "" {
		t.Error("expected non-empty password hash")
	}
	if user.PasswordHash == "password123" {
		t.Error("password hash must not equal the plaintext")
	}
	if !user.IsActive {
		t.Error("new users should be active")
	}
	if !CheckPassword(user.PasswordHash, "password123") {
		t.Error("stored hash should verify against the original password")
	}
}

func TestAuthService_CreateUserDuplicate(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, "dup@example.com", "password123"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.CreateUser(ctx, "dup@example.com", "password456")
	if !errors.Is(err, repository.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got: %v", err)
	}
}
