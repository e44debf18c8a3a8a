package places

import (
	"context"
	"errors"
	"testing"

	"petconnect/internal/domain/engagement"
)

type fakePlaceRepo struct {
	items map[string]Place
	order []string
}

func newFakePlaceRepo(seed []Place) *fakePlaceRepo {
	r := &fakePlaceRepo{items: map[string]Place{}}
	for _, p := range seed {
		r.items[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *fakePlaceRepo) GetByID(_ context.Context, id string) (Place, error) {
	p, ok := r.items[id]
	if !ok {
		return Place{}, errors.New("no row")
	}
	return p, nil
}

func (r *fakePlaceRepo) Update(_ context.Context, p Place) error {
	if _, ok := r.items[p.ID]; !ok {
		return errors.New("no row")
	}
	r.items[p.ID] = p
	return nil
}

func (r *fakePlaceRepo) List(_ context.Context) ([]Place, error) {
	out := make([]Place, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func seedPlaces() []Place {
	return []Place{
		{ID: "l1", Name: "Central Bark Cafe", BusinessService: false, Likes: 4},
		{ID: "l2", Name: "Happy Tails Park", BusinessService: false},
		{ID: "l4", Name: "City Vet Clinic", BusinessService: true},
	}
}

func TestPlacesList_PartitionsByBusinessFlag(t *testing.T) {
	svc := NewService(newFakePlaceRepo(seedPlaces()))
	ctx := context.Background()

	all, err := svc.List(ctx, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("sin filtro esperaba 3, got %d", len(all))
	}

	biz := true
	got, err := svc.List(ctx, &biz)
	if err != nil {
		t.Fatalf("List(business): %v", err)
	}
	if len(got) != 1 || got[0].ID != "l4" {
		t.Fatalf("tab de negocios esperaba solo l4, got %+v", got)
	}

	biz = false
	got, err = svc.List(ctx, &biz)
	if err != nil {
		t.Fatalf("List(!business): %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("tab pet-friendly esperaba 2, got %d", len(got))
	}
}

func TestPlacesAdjustLikes_ClampsAtZero(t *testing.T) {
	repo := newFakePlaceRepo(seedPlaces())
	svc := NewService(repo)
	ctx := context.Background()

	n, err := svc.AdjustLikes(ctx, "l2", -1)
	if err != nil {
		t.Fatalf("AdjustLikes: %v", err)
	}
	if n != 0 {
		t.Fatalf("esperaba clamp en 0, got %d", n)
	}

	if _, err := svc.AdjustLikes(ctx, "nope", 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("esperaba ErrNotFound, got %v", err)
	}
}

func TestPlacesAppendComment_Persists(t *testing.T) {
	repo := newFakePlaceRepo(seedPlaces())
	svc := NewService(repo)
	ctx := context.Background()

	c := engagement.Comment{ID: "cm9", Author: engagement.Author{ID: "u2", Name: "Maria"}, Text: "Great patio"}
	if err := svc.AppendComment(ctx, "l1", c); err != nil {
		t.Fatalf("AppendComment: %v", err)
	}
	got, _ := repo.GetByID(ctx, "l1")
	if len(got.Comments) != 1 || got.Comments[0].Text != "Great patio" {
		t.Fatalf("comentario no persistido: %+v", got.Comments)
	}
}
