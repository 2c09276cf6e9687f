package dto

type CreateProductInput struct {
	Name     string
	Price    float64
	ImageURL string // Optional; empty means no image reference
}

type UpdateProductInput struct {
	ID       int64
	Name     string
	Price    float64
	ImageURL string
}
