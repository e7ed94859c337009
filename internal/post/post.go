package post

// Post is a blog entry. CategoryName is joined in for listing; the comment
// count is derived.
type Post struct {
	ID            int      `json:"postId"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	CategoryID    *int     `json:"categoryId,omitempty"`
	CategoryName  *string  `json:"categoryName,omitempty"`
	FeaturedImage *string  `json:"featuredImage,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	CommentCount  int      `json:"commentCount"`
}

// Comment is a user comment on a post.
type Comment struct {
	ID        int    `json:"commentId"`
	PostID    int    `json:"postId"`
	UserID    int    `json:"userId"`
	UserName  string `json:"userName,omitempty"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
}
