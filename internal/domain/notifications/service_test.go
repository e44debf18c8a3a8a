package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"petconnect/internal/platform/logger"
)

type fakeNotifRepo struct {
	byID map[string]Notification
}

func newFakeNotifRepo(seed ...Notification) *fakeNotifRepo {
	f := &fakeNotifRepo{byID: map[string]Notification{}}
	for _, n := range seed {
		f.byID[n.ID] = n
	}
	return f
}

func (f *fakeNotifRepo) GetByID(_ context.Context, id string) (Notification, error) {
	n, ok := f.byID[id]
	if !ok {
		return Notification{}, errors.New("not found")
	}
	return n, nil
}

func (f *fakeNotifRepo) Update(_ context.Context, n Notification) error {
	if _, ok := f.byID[n.ID]; !ok {
		return errors.New("not found")
	}
	f.byID[n.ID] = n
	return nil
}

func (f *fakeNotifRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return errors.New("not found")
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeNotifRepo) List(_ context.Context) ([]Notification, error) {
	out := make([]Notification, 0, len(f.byID))
	for _, n := range f.byID {
		out = append(out, n)
	}
	return out, nil
}

type fakeGroups struct {
	added map[string][]string // conversationID -> userIDs
	err   error
}

func (f *fakeGroups) AddMember(_ context.Context, conversationID, userID string) error {
	if f.err != nil {
		return f.err
	}
	if f.added == nil {
		f.added = map[string][]string{}
	}
	f.added[conversationID] = append(f.added[conversationID], userID)
	return nil
}

func testLogger() logger.Logger {
	return logger.New(logger.Options{Level: logger.Error})
}

func TestMarkAllReadIsMonotonic(t *testing.T) {
	now := time.Now()
	repo := newFakeNotifRepo(
		Notification{ID: "n1", Type: TypeNewMessage, CreatedAt: now},
		Notification{ID: "n2", Type: TypePostLike, CreatedAt: now},
		Notification{ID: "n3", Type: TypeNewFollower, IsRead: true, CreatedAt: now},
	)
	svc := NewService(repo, &fakeGroups{}, testLogger())
	ctx := context.Background()

	marked, err := svc.MarkAllRead(ctx)
	if err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	if marked != 2 {
		t.Fatalf("marked = %d, want 2", marked)
	}

	unread, _ := svc.UnreadCount(ctx)
	if unread != 0 {
		t.Fatalf("unread = %d", unread)
	}

	// Segunda pasada: nada que marcar, nada que desmarcar.
	marked, err = svc.MarkAllRead(ctx)
	if err != nil || marked != 0 {
		t.Fatalf("segunda pasada: marked=%d err=%v", marked, err)
	}
}

func TestAcceptInviteAddsMemberAndConsumesNotification(t *testing.T) {
	repo := newFakeNotifRepo(Notification{
		ID: "n4", Type: TypeGroupInvite, GroupID: "c2", GroupName: "Dog Lovers Group",
	})
	groups := &fakeGroups{}
	svc := NewService(repo, groups, testLogger())
	ctx := context.Background()

	if err := svc.AcceptInvite(ctx, "n4", "u1"); err != nil {
		t.Fatalf("AcceptInvite: %v", err)
	}
	if got := groups.added["c2"]; len(got) != 1 || got[0] != "u1" {
		t.Fatalf("added = %v", groups.added)
	}
	if _, ok := repo.byID["n4"]; ok {
		t.Fatalf("la invitación debía consumirse")
	}

	if err := svc.AcceptInvite(ctx, "n4", "u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("segunda aceptación err = %v, want ErrNotFound", err)
	}
}

func TestAcceptInviteRejectsNonInvite(t *testing.T) {
	repo := newFakeNotifRepo(Notification{ID: "n1", Type: TypeNewMessage})
	svc := NewService(repo, &fakeGroups{}, testLogger())

	if err := svc.AcceptInvite(context.Background(), "n1", "u1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestAcceptInviteWithoutGroupIDKeepsNotification(t *testing.T) {
	repo := newFakeNotifRepo(Notification{ID: "n9", Type: TypeGroupInvite})
	svc := NewService(repo, &fakeGroups{}, testLogger())

	if err := svc.AcceptInvite(context.Background(), "n9", "u1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if _, ok := repo.byID["n9"]; !ok {
		t.Fatalf("la invitación malformada debe quedar intacta")
	}
}

func TestAcceptInviteGroupFailureKeepsNotification(t *testing.T) {
	repo := newFakeNotifRepo(Notification{ID: "n4", Type: TypeGroupInvite, GroupID: "c2"})
	svc := NewService(repo, &fakeGroups{err: errors.New("group gone")}, testLogger())

	if err := svc.AcceptInvite(context.Background(), "n4", "u1"); err == nil {
		t.Fatalf("esperaba error si el grupo rechaza")
	}
	if _, ok := repo.byID["n4"]; !ok {
		t.Fatalf("si no entró al grupo, la invitación no se consume")
	}
}

func TestRejectInviteOnlyDeletes(t *testing.T) {
	repo := newFakeNotifRepo(Notification{ID: "n4", Type: TypeGroupInvite, GroupID: "c2"})
	groups := &fakeGroups{}
	svc := NewService(repo, groups, testLogger())

	if err := svc.RejectInvite(context.Background(), "n4"); err != nil {
		t.Fatalf("RejectInvite: %v", err)
	}
	if len(groups.added) != 0 {
		t.Fatalf("reject no debe tocar grupos")
	}
	if _, ok := repo.byID["n4"]; ok {
		t.Fatalf("la invitación debía borrarse")
	}
}
