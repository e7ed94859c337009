package product

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Featured() []Product {
	return s.repo.Featured()
}

func (s *Service) BestSelling(limit int) []Product {
	return s.repo.BestSelling(limit)
}

func (s *Service) NewestArrivals(limit int) []Product {
	return s.repo.NewestArrivals(limit)
}

// Search filters the catalog. "all" as category means no category filter; an
// empty search means no name filter. Name matching is case-insensitive
// containment.
func (s *Service) Search(search, categoryName string) []Product {
	switch {
	case search != "" && (categoryName == "all" || categoryName == ""):
		return s.repo.SearchByName(search)
	case search == "" && categoryName != "" && categoryName != "all":
		return s.repo.ListByCategoryName(categoryName)
	case search == "":
		return s.repo.List()
	default:
		return s.repo.SearchByNameAndCategory(search, categoryName)
	}
}

// Annotate marks each product with whether the requesting user has
// favourited it.
func Annotate(products []Product, favouriteIDs []int) []Product {
	liked := make(map[int]struct{}, len(favouriteIDs))
	for _, id := range favouriteIDs {
		liked[id] = struct{}{}
	}
	for i := range products {
		_, ok := liked[products[i].ID]
		products[i].IsLiked = ok
	}
	return products
}

// Describe assembles the product page view model.
func (s *Service) Describe(id int) (Detail, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return Detail{}, err
	}

	reviews := s.repo.ReviewsByProduct(id)
	detail := Detail{
		Product:     p,
		Images:      s.repo.ImagesByProduct(id),
		Reviews:     reviews,
		ReviewCount: len(reviews),
	}

	if len(reviews) > 0 {
		sum := 0
		for _, rev := range reviews {
			sum += rev.Rating
		}
		detail.AverageRating = sum / len(reviews)
	}

	if pct, ok := p.DiscountPercentage(); ok {
		detail.DiscountPercentage = &pct
	}

	return detail, nil
}

func (s *Service) AddReview(review Review) (Review, error) {
	return s.repo.AddReview(review)
}
