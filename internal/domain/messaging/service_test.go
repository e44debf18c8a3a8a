package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"petconnect/internal/domain/engagement"
	"petconnect/internal/platform/logger"
)

type fakeConvRepo struct {
	byID map[string]Conversation
}

func newFakeConvRepo() *fakeConvRepo {
	return &fakeConvRepo{byID: map[string]Conversation{}}
}

func (f *fakeConvRepo) Create(_ context.Context, c Conversation) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeConvRepo) GetByID(_ context.Context, id string) (Conversation, error) {
	c, ok := f.byID[id]
	if !ok {
		return Conversation{}, errors.New("not found")
	}
	return c, nil
}

func (f *fakeConvRepo) Update(_ context.Context, c Conversation) error {
	if _, ok := f.byID[c.ID]; !ok {
		return errors.New("not found")
	}
	f.byID[c.ID] = c
	return nil
}

func (f *fakeConvRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return errors.New("not found")
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeConvRepo) List(_ context.Context) ([]Conversation, error) {
	out := make([]Conversation, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

type fakeDirectory struct {
	known map[string]string // userID -> name
}

func (f fakeDirectory) AuthorSnapshot(_ context.Context, userID string) (engagement.Author, error) {
	name, ok := f.known[userID]
	if !ok {
		return engagement.Author{}, errors.New("unknown user")
	}
	return engagement.Author{ID: userID, Name: name}, nil
}

func newTestService(repo *fakeConvRepo) *Service {
	dir := fakeDirectory{known: map[string]string{
		"u1": "Alex Johnson",
		"u2": "Maria",
		"u3": "John Doe",
	}}
	return NewService(repo, dir, logger.New(logger.Options{Level: logger.Error}))
}

func TestSendMessageUpdatesPreviewAndActivity(t *testing.T) {
	repo := newFakeConvRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	old := time.Now().Add(-time.Hour)
	repo.byID["c1"] = Conversation{ID: "c1", LastMessage: "viejo", LastActivity: old}

	sent := time.Now()
	svc.now = func() time.Time { return sent }

	m, err := svc.SendMessage(ctx, "u1", "c1", "  hola!  ")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if m.Text != "hola!" {
		t.Fatalf("text = %q, want trimmed", m.Text)
	}
	if m.Author.ID != "u1" || m.Author.Name != "Alex Johnson" {
		t.Fatalf("snapshot del remitente incompleto: %+v", m.Author)
	}

	c := repo.byID["c1"]
	if c.LastMessage != "hola!" {
		t.Fatalf("preview sin pisar: %q", c.LastMessage)
	}
	if !c.LastActivity.Equal(sent) {
		t.Fatalf("LastActivity sin pisar")
	}
	if len(c.Messages) != 1 {
		t.Fatalf("mensajes = %d, want 1", len(c.Messages))
	}
}

func TestSendMessageEmptyTextIsNoOp(t *testing.T) {
	repo := newFakeConvRepo()
	svc := newTestService(repo)

	repo.byID["c1"] = Conversation{ID: "c1", LastMessage: "previo"}

	_, err := svc.SendMessage(context.Background(), "u1", "c1", "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if c := repo.byID["c1"]; c.LastMessage != "previo" || len(c.Messages) != 0 {
		t.Fatalf("la conversación debía quedar intacta: %+v", c)
	}
}

func TestCreateGroupDeduplicatesAndDropsUnknown(t *testing.T) {
	repo := newFakeConvRepo()
	svc := newTestService(repo)

	c, err := svc.CreateGroup(context.Background(), "u1", "Dog Lovers", "", []string{
		"u2", "u2", "u1", "ghost", "u3",
	})
	if err != nil {
		t.Fatalf("CreateGroup: %v", err)
	}

	if len(c.Members) != 3 {
		t.Fatalf("members = %d, want 3 (creador + u2 + u3)", len(c.Members))
	}
	if !c.HasMember("u1") {
		t.Fatalf("el creador siempre entra")
	}
	if c.HasMember("ghost") {
		t.Fatalf("un id desconocido no puede entrar")
	}
	if c.LastMessage != "Group created" {
		t.Fatalf("preview inicial = %q", c.LastMessage)
	}
	if !c.IsGroup {
		t.Fatalf("debe marcarse como grupo")
	}
}

func TestAddMemberIsIdempotent(t *testing.T) {
	repo := newFakeConvRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	repo.byID["g1"] = Conversation{
		ID: "g1", IsGroup: true,
		Members: []Member{{ID: "u2", Name: "Maria"}},
	}

	if err := svc.AddMember(ctx, "g1", "u1"); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if err := svc.AddMember(ctx, "g1", "u1"); err != nil {
		t.Fatalf("AddMember repetido: %v", err)
	}

	count := 0
	for _, m := range repo.byID["g1"].Members {
		if m.ID == "u1" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("u1 aparece %d veces, want 1", count)
	}
}

func TestMarkReadZeroesUnread(t *testing.T) {
	repo := newFakeConvRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	repo.byID["c1"] = Conversation{ID: "c1", Unread: 5}

	if err := svc.MarkRead(ctx, "c1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if repo.byID["c1"].Unread != 0 {
		t.Fatalf("unread = %d", repo.byID["c1"].Unread)
	}
}
