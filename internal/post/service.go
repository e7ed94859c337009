package post

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Post {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Post, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Comments(postID int) []Comment {
	return s.repo.CommentsByPost(postID)
}

func (s *Service) AddComment(comment Comment) (Comment, error) {
	return s.repo.AddComment(comment)
}
