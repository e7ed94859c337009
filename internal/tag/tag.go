package tag

// Tag is a shared label attached to products and posts through their join
// tables.
type Tag struct {
	ID   int    `json:"tagId"`
	Name string `json:"name"`
}
