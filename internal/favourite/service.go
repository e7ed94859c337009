package favourite

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Toggle flips the favourite state for (user, product) and reports whether
// the product is now liked.
func (s *Service) Toggle(userID, productID int) (bool, error) {
	if userID <= 0 || productID <= 0 {
		return false, ErrNotFound
	}
	return s.repo.Toggle(userID, productID)
}

func (s *Service) ProductIDs(userID int) ([]int, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.ProductIDs(userID)
}
