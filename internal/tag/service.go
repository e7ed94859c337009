package tag

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Tag {
	return s.repo.List()
}

func (s *Service) NamesForProduct(productID int) []string {
	return s.repo.NamesForProduct(productID)
}

func (s *Service) NamesForPost(postID int) []string {
	return s.repo.NamesForPost(postID)
}
