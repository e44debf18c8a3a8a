package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"petconnect/internal/platform/logger"
)

type fakeUserRepo struct {
	byID map[string]User
	seed map[string]User
}

func newFakeUserRepo(seed ...User) *fakeUserRepo {
	f := &fakeUserRepo{byID: map[string]User{}, seed: map[string]User{}}
	for _, u := range seed {
		f.byID[u.ID] = u
		f.seed[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (User, error) {
	u, ok := f.byID[id]
	if !ok {
		return User{}, errors.New("not found")
	}
	return u, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]User, error) {
	out := make([]User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return errors.New("not found")
	}
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Restore(_ context.Context, id string) (User, error) {
	orig, ok := f.seed[id]
	if !ok {
		return User{}, errors.New("not found")
	}
	f.byID[id] = orig
	return orig, nil
}

type recordingRefresher struct {
	calls []string
}

func (r *recordingRefresher) RefreshAuthor(_ context.Context, userID, name, avatar string) error {
	r.calls = append(r.calls, userID+":"+name)
	return nil
}

func testLogger() logger.Logger {
	return logger.New(logger.Options{Level: logger.Error})
}

func strptr(s string) *string { return &s }

func TestUpdateProfilePropagatesOnlyOnIdentityChange(t *testing.T) {
	repo := newFakeUserRepo(User{ID: "u1", Name: "Alex", Avatar: "av1"})
	ref := &recordingRefresher{}
	svc := NewService(repo, testLogger(), ref)
	ctx := context.Background()

	// Cambiar solo la bio no toca snapshots ajenos.
	if _, err := svc.UpdateProfile(ctx, "u1", UpdateInput{Bio: strptr("nueva bio")}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if len(ref.calls) != 0 {
		t.Fatalf("no debía propagar: %v", ref.calls)
	}

	// Cambiar el nombre sí.
	if _, err := svc.UpdateProfile(ctx, "u1", UpdateInput{Name: strptr("Alexandra")}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if len(ref.calls) != 1 || ref.calls[0] != "u1:Alexandra" {
		t.Fatalf("calls = %v", ref.calls)
	}

	// Mismo nombre otra vez: sin cambio de identidad, sin propagación.
	if _, err := svc.UpdateProfile(ctx, "u1", UpdateInput{Name: strptr("Alexandra")}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if len(ref.calls) != 1 {
		t.Fatalf("no debía propagar de nuevo: %v", ref.calls)
	}
}

func TestUpdateProfileRejectsEmptyName(t *testing.T) {
	repo := newFakeUserRepo(User{ID: "u1", Name: "Alex"})
	svc := NewService(repo, testLogger())

	if _, err := svc.UpdateProfile(context.Background(), "u1", UpdateInput{Name: strptr("  ")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if u, _ := repo.GetByID(context.Background(), "u1"); u.Name != "Alex" {
		t.Fatalf("el nombre no debía cambiar")
	}
}

func TestResetAccountRestoresSeedAndPropagates(t *testing.T) {
	repo := newFakeUserRepo(User{ID: "u1", Name: "Alex", Avatar: "av1"})
	ref := &recordingRefresher{}
	svc := NewService(repo, testLogger(), ref)
	ctx := context.Background()

	if _, err := svc.UpdateProfile(ctx, "u1", UpdateInput{Name: strptr("Alexandra")}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	u, err := svc.ResetAccount(ctx, "u1")
	if err != nil {
		t.Fatalf("ResetAccount: %v", err)
	}
	if u.Name != "Alex" {
		t.Fatalf("name = %q, want seed Alex", u.Name)
	}

	// Propagó el cambio y luego la vuelta atrás.
	if len(ref.calls) != 2 || ref.calls[1] != "u1:Alex" {
		t.Fatalf("calls = %v", ref.calls)
	}
}

func TestUpdateProfileTouchesUpdatedAt(t *testing.T) {
	created := time.Now().Add(-24 * time.Hour)
	repo := newFakeUserRepo(User{ID: "u1", Name: "Alex", CreatedAt: created, UpdatedAt: created})
	svc := NewService(repo, testLogger())

	later := time.Now()
	svc.now = func() time.Time { return later }

	u, err := svc.UpdateProfile(context.Background(), "u1", UpdateInput{Bio: strptr("x")})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if !u.UpdatedAt.Equal(later) {
		t.Fatalf("UpdatedAt sin tocar")
	}
	if !u.CreatedAt.Equal(created) {
		t.Fatalf("CreatedAt no debe cambiar")
	}
}
