package dtos

// ProductRequest is the inbound create/update payload. Price travels as a
// string to avoid float rounding on the wire.
type ProductRequest struct {
	Code        string `json:"code" validate:"omitempty,max=64"`
	Name        string `json:"name" validate:"required,max=255"`
	Price       string `json:"price" validate:"required"`
	Description string `json:"description" validate:"omitempty,max=4096"`
	Category    string `json:"category" validate:"omitempty,max=128"`
	IsActive    *bool  `json:"is_active"`
}

type ProductResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code,omitempty"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	IsActive    bool   `json:"is_active"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}
