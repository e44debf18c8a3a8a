package feed

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"petconnect/internal/domain/engagement"
	"petconnect/internal/platform/logger"
)

type fakePostRepo struct {
	byID map[string]Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{byID: map[string]Post{}}
}

func (f *fakePostRepo) Create(_ context.Context, p Post) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id string) (Post, error) {
	p, ok := f.byID[id]
	if !ok {
		return Post{}, errors.New("not found")
	}
	return p, nil
}

func (f *fakePostRepo) Update(_ context.Context, p Post) error {
	if _, ok := f.byID[p.ID]; !ok {
		return errors.New("not found")
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return errors.New("not found")
	}
	delete(f.byID, id)
	return nil
}

func (f *fakePostRepo) List(_ context.Context) ([]Post, error) {
	out := make([]Post, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakePetDirectory struct {
	pets map[string]PetInfo // petID -> info
	own  map[string]string  // petID -> ownerUserID
}

func (f fakePetDirectory) OwnedPet(_ context.Context, ownerUserID, petID string) (PetInfo, error) {
	pi, ok := f.pets[petID]
	if !ok || f.own[petID] != ownerUserID {
		return PetInfo{}, errors.New("not owned")
	}
	return pi, nil
}

func newTestService(repo *fakePostRepo) *Service {
	dir := fakePetDirectory{
		pets: map[string]PetInfo{"p1": {ID: "p1", Name: "Buddy", Breed: "Golden Retriever"}},
		own:  map[string]string{"p1": "u1"},
	}
	return NewService(repo, dir, logger.New(logger.Options{Level: logger.Error}))
}

func alex() engagement.Author {
	return engagement.Author{ID: "u1", Name: "Alex Johnson"}
}

func TestCreatePostFrontOfFeedWithZeroLikes(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	base := time.Now()
	repo.byID["old"] = Post{ID: "old", CreatedAt: base.Add(-time.Hour)}

	svc.now = func() time.Time { return base }

	p, err := svc.Create(ctx, alex(), "Hello!", "p1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Likes != 0 || len(p.Comments) != 0 {
		t.Fatalf("post nuevo debe arrancar sin likes ni comentarios: %+v", p)
	}
	if p.Pet.Name != "Buddy" {
		t.Fatalf("snapshot de mascota incompleto: %+v", p.Pet)
	}

	items, _ := svc.List(ctx)
	if len(items) != 2 || items[0].ID != p.ID {
		t.Fatalf("el post nuevo debe encabezar el feed")
	}
}

func TestCreatePostRejectsForeignPet(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), engagement.Author{ID: "u2", Name: "Maria"}, "mine now", "p1")
	if !errors.Is(err, ErrPetNotOwned) {
		t.Fatalf("err = %v, want ErrPetNotOwned", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("el feed debe quedar intacto tras un rechazo")
	}
}

func TestRemoveByPetDropsAllTaggedPosts(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	repo.byID["a"] = Post{ID: "a", Pet: PetTag{ID: "p1"}}
	repo.byID["b"] = Post{ID: "b", Pet: PetTag{ID: "p2"}}
	repo.byID["c"] = Post{ID: "c", Pet: PetTag{ID: "p1"}}

	if err := svc.RemoveByPet(ctx, "p1"); err != nil {
		t.Fatalf("RemoveByPet: %v", err)
	}

	items, _ := svc.List(ctx)
	if len(items) != 1 || items[0].ID != "b" {
		t.Fatalf("solo debía sobrevivir b, got %+v", items)
	}
}

func TestRefreshPetTagUpdatesEverySnapshot(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	repo.byID["a"] = Post{ID: "a", Pet: PetTag{ID: "p1", Name: "Buddy"}}
	repo.byID["b"] = Post{ID: "b", Pet: PetTag{ID: "p1", Name: "Buddy"}}

	if err := svc.RefreshPetTag(ctx, "p1", "Buddy Jr", "Golden Retriever", "av"); err != nil {
		t.Fatalf("RefreshPetTag: %v", err)
	}
	for _, id := range []string{"a", "b"} {
		if repo.byID[id].Pet.Name != "Buddy Jr" {
			t.Fatalf("post %s con snapshot viejo", id)
		}
	}
}

func TestRefreshAuthorTouchesPostsAndComments(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	repo.byID["a"] = Post{
		ID:     "a",
		Author: engagement.Author{ID: "u1", Name: "Alex"},
		Comments: []engagement.Comment{
			{ID: "c1", Author: engagement.Author{ID: "u2", Name: "Maria"}},
			{ID: "c2", Author: engagement.Author{ID: "u1", Name: "Alex"}},
		},
	}

	if err := svc.RefreshAuthor(ctx, "u1", "Alexandra", "av2"); err != nil {
		t.Fatalf("RefreshAuthor: %v", err)
	}

	p := repo.byID["a"]
	if p.Author.Name != "Alexandra" {
		t.Fatalf("autor del post sin refrescar")
	}
	if p.Comments[0].Author.Name != "Maria" {
		t.Fatalf("comentario ajeno no debía cambiar")
	}
	if p.Comments[1].Author.Name != "Alexandra" {
		t.Fatalf("comentario propio sin refrescar")
	}
}

func TestAdjustLikesClampsAtZero(t *testing.T) {
	repo := newFakePostRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	repo.byID["a"] = Post{ID: "a", Likes: 0}

	likes, err := svc.AdjustLikes(ctx, "a", -1)
	if err != nil {
		t.Fatalf("AdjustLikes: %v", err)
	}
	if likes != 0 {
		t.Fatalf("likes = %d, nunca debe ir bajo cero", likes)
	}
}
