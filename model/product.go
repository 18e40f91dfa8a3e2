package model

type Product struct {
	ID          string  `json:"productId"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type UpdateProductRequest struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}
