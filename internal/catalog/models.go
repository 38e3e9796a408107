package catalog

// Category is the product category block returned by the catalog.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"category_name"`
	Slug string `json:"slug"`
}

// Brand identifies a product's brand.
type Brand struct {
	Name string `json:"brand_name"`
	Slug string `json:"slug"`
}

// Product is the subset of the catalog product the search service passes
// through to the storefront.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"product_name"`
	Description string   `json:"product_description"`
	Discount    float64  `json:"product_discount"`
	Slug        string   `json:"slug"`
	Category    Category `json:"product_category"`
	Brand       Brand    `json:"brand"`
	Rating      string   `json:"get_rating_info,omitempty"`
}

// Page is one page of catalog search results.
type Page struct {
	Count    int       `json:"count"`
	Next     *string   `json:"next"`
	Previous *string   `json:"previous"`
	Results  []Product `json:"results"`
}

// Query filters a catalog search. An empty Category searches the whole
// catalog.
type Query struct {
	ProductName string
	Category    string
	Page        int
	PageSize    int
}
