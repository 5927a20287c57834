package request

// ProductRequest represents a product create or update request
type ProductRequest struct {
	Name  string  `json:"name" binding:"required,max=255"`
	Price *int64  `json:"price" binding:"required,min=0"`
	Image *string `json:"image"`
}
