package favourite

// Favourite is a user-scoped bookmark on a product; existence means liked.
type Favourite struct {
	ID        int `json:"favouriteId"`
	UserID    int `json:"userId"`
	ProductID int `json:"productId"`
}
