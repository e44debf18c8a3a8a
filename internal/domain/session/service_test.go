package session

import (
	"context"
	"testing"

	"petconnect/internal/platform/logger"
)

type fakeStateRepo struct {
	states map[string]State
}

func newFakeStateRepo() *fakeStateRepo {
	return &fakeStateRepo{states: map[string]State{}}
}

func (f *fakeStateRepo) Get(_ context.Context, userID string) (State, error) {
	st, ok := f.states[userID]
	if !ok {
		return State{}, ErrNoState
	}
	return st, nil
}

func (f *fakeStateRepo) Put(_ context.Context, s State) error {
	f.states[s.UserID] = s
	return nil
}

type fakeInbox struct {
	calls int
}

func (f *fakeInbox) MarkAllRead(_ context.Context) (int, error) {
	f.calls++
	return 2, nil
}

func testLogger() logger.Logger {
	return logger.New(logger.Options{Level: logger.Error})
}

func TestCurrentWithoutHistoryStartsAtHome(t *testing.T) {
	svc := NewService(newFakeStateRepo(), &fakeInbox{}, testLogger())

	st, err := svc.Current(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if st.Screen != ScreenHome {
		t.Fatalf("screen = %s, want %s", st.Screen, ScreenHome)
	}
	if st.LoggedIn {
		t.Fatalf("esperaba sesión sin login")
	}
}

func TestLoginThenLogoutResetsState(t *testing.T) {
	repo := newFakeStateRepo()
	svc := NewService(repo, &fakeInbox{}, testLogger())
	ctx := context.Background()

	st, err := svc.Login(ctx, "u1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !st.LoggedIn || st.Screen != ScreenHome {
		t.Fatalf("estado post-login inesperado: %+v", st)
	}

	// Navegar a un chat para ensuciar los punteros de contexto.
	if _, err := svc.Navigate(ctx, "u1", ScreenChat, "c1"); err != nil {
		t.Fatalf("Navigate: %v", err)
	}

	if err := svc.Logout(ctx, "u1"); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	st, err = svc.Current(ctx, "u1")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if st.LoggedIn || st.Screen != ScreenHome || st.ActiveConversationID != "" {
		t.Fatalf("logout no reseteó el estado: %+v", st)
	}
}

func TestNavigateSetsContextPointer(t *testing.T) {
	svc := NewService(newFakeStateRepo(), &fakeInbox{}, testLogger())

	st, err := svc.Navigate(context.Background(), "u1", ScreenPetDetail, "p1")
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if st.Screen != ScreenPetDetail {
		t.Fatalf("screen = %s, want %s", st.Screen, ScreenPetDetail)
	}
	if st.SelectedPetID != "p1" {
		t.Fatalf("SelectedPetID = %q, want p1", st.SelectedPetID)
	}
}

func TestNavigateDetailWithoutContextFallsBack(t *testing.T) {
	svc := NewService(newFakeStateRepo(), &fakeInbox{}, testLogger())
	ctx := context.Background()

	cases := []struct {
		screen Screen
		want   Screen
	}{
		{ScreenEditPet, ScreenProfile},
		{ScreenPetDetail, ScreenProfile},
		{ScreenEditService, ScreenProfile},
		{ScreenChat, ScreenMessages},
	}
	for _, tc := range cases {
		st, err := svc.Navigate(ctx, "fresh-"+string(tc.screen), tc.screen, "")
		if err != nil {
			t.Fatalf("Navigate(%s): %v", tc.screen, err)
		}
		if st.Screen != tc.want {
			t.Fatalf("Navigate(%s) = %s, want fallback %s", tc.screen, st.Screen, tc.want)
		}
	}
}

func TestNavigateReusesPreviousContext(t *testing.T) {
	svc := NewService(newFakeStateRepo(), &fakeInbox{}, testLogger())
	ctx := context.Background()

	if _, err := svc.Navigate(ctx, "u1", ScreenPetDetail, "p1"); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if _, err := svc.Navigate(ctx, "u1", ScreenHome, ""); err != nil {
		t.Fatalf("Navigate: %v", err)
	}

	// Sin contextID: el puntero anterior sigue vigente.
	st, err := svc.Navigate(ctx, "u1", ScreenPetDetail, "")
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if st.Screen != ScreenPetDetail || st.SelectedPetID != "p1" {
		t.Fatalf("esperaba reusar p1, got %+v", st)
	}
}

func TestTogglePanelMarksReadOnlyOnOpen(t *testing.T) {
	inbox := &fakeInbox{}
	svc := NewService(newFakeStateRepo(), inbox, testLogger())
	ctx := context.Background()

	st, err := svc.TogglePanel(ctx, "u1")
	if err != nil {
		t.Fatalf("TogglePanel: %v", err)
	}
	if !st.NotificationsOpen {
		t.Fatalf("esperaba panel abierto")
	}
	if inbox.calls != 1 {
		t.Fatalf("MarkAllRead calls = %d, want 1", inbox.calls)
	}

	st, err = svc.TogglePanel(ctx, "u1")
	if err != nil {
		t.Fatalf("TogglePanel: %v", err)
	}
	if st.NotificationsOpen {
		t.Fatalf("esperaba panel cerrado")
	}
	if inbox.calls != 1 {
		t.Fatalf("cerrar el panel no debe marcar leídas, calls = %d", inbox.calls)
	}
}
