package category

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Category {
	return s.repo.List()
}

func (s *Service) GetByName(name string) (Category, error) {
	return s.repo.GetByName(name)
}
