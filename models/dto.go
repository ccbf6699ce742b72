package models

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type CreateProductRequest struct {
	Name        string `json:"name" form:"name"`
	Category    string `json:"category" form:"category"`
	Price       string `json:"price" form:"price"`
	Description string `json:"description" form:"description"`
	Stock       string `json:"stock" form:"stock"`
	Image       string `json:"image" form:"image"`
}

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	// Pointer so a missing amount is distinguishable from zero.
	AmountPaid *int   `json:"amount_paid"`
	Notes      string `json:"notes"`
}

type EmailReportRequest struct {
	Email string `json:"email" binding:"required,email"`
}
