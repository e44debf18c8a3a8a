package listings

import (
	"context"
	"errors"
	"testing"

	"petconnect/internal/domain/engagement"
	"petconnect/internal/platform/logger"
)

type fakeListingRepo struct {
	byID map[string]Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{byID: map[string]Listing{}}
}

func (f *fakeListingRepo) Create(_ context.Context, l Listing) error {
	f.byID[l.ID] = l
	return nil
}

func (f *fakeListingRepo) GetByID(_ context.Context, id string) (Listing, error) {
	l, ok := f.byID[id]
	if !ok {
		return Listing{}, errors.New("not found")
	}
	return l, nil
}

func (f *fakeListingRepo) Update(_ context.Context, l Listing) error {
	if _, ok := f.byID[l.ID]; !ok {
		return errors.New("not found")
	}
	f.byID[l.ID] = l
	return nil
}

func (f *fakeListingRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return errors.New("not found")
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeListingRepo) List(_ context.Context) ([]Listing, error) {
	out := make([]Listing, 0, len(f.byID))
	for _, l := range f.byID {
		out = append(out, l)
	}
	return out, nil
}

func newTestService() (*Service, *fakeListingRepo) {
	repo := newFakeListingRepo()
	return NewService(repo, logger.New(logger.Options{Level: logger.Error})), repo
}

func maria() engagement.Author {
	return engagement.Author{ID: "u2", Name: "Maria"}
}

func TestCreateValidatesType(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), maria(), CreateInput{
		Name: "Dog Walking",
		Type: "Subscription",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	l, err := svc.Create(context.Background(), maria(), CreateInput{
		Name:  "Dog Walking",
		Price: "$25",
		Type:  "Service",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.Type != TypeService || l.Owner.ID != "u2" {
		t.Fatalf("listing inesperado: %+v", l)
	}
}

func TestUpdateEnforcesOwnership(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	l, err := svc.Create(ctx, maria(), CreateInput{Name: "Dog Walking", Type: "Service"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	price := "$30"
	if _, err := svc.Update(ctx, l.ID, "u1", UpdateInput{Price: &price}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}

	got, err := svc.Update(ctx, l.ID, "u2", UpdateInput{Price: &price})
	if err != nil {
		t.Fatalf("Update por el dueño: %v", err)
	}
	if got.Price != "$30" {
		t.Fatalf("price = %q", got.Price)
	}
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	l, _ := svc.Create(ctx, maria(), CreateInput{Name: "Dog Walking", Type: "Service"})

	if err := svc.Delete(ctx, l.ID, "u1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(ctx, l.ID, "u2"); err != nil {
		t.Fatalf("Delete por el dueño: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("el listing debía desaparecer")
	}
}
