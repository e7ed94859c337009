package category

// Category is a product category. Image is the optional promotional image
// path shown on the storefront.
type Category struct {
	ID    int     `json:"categoryId"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}
