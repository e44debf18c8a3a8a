package stories

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Story, error) {
	return s.repo.List(ctx)
}

// RefreshAuthor implementa users.AuthorRefresher.
func (s *Service) RefreshAuthor(ctx context.Context, userID, name, avatar string) error {
	items, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, st := range items {
		if st.Author.ID != userID {
			continue
		}
		st.Author.Name = name
		st.Author.Avatar = avatar
		if err := s.repo.Update(ctx, st); err != nil {
			return err
		}
	}
	return nil
}
