package models

import "time"

// Transaction is a finalized sale. It is never mutated or deleted after
// creation.
type Transaction struct {
	ID         int64             `json:"id"`
	Items      []TransactionItem `json:"items"`
	Total      int               `json:"total"`
	AmountPaid int               `json:"amount_paid"`
	Change     int               `json:"change"`
	Cashier    string            `json:"cashier,omitempty"`
	Notes      string            `json:"notes,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// TransactionItem is a snapshot of a cart line at sale time. Name and
// price are captured here so later product edits do not rewrite history.
type TransactionItem struct {
	ID           int64  `json:"id,omitempty"`
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductPrice int    `json:"product_price"`
	Quantity     int    `json:"quantity"`
	Subtotal     int    `json:"subtotal"`
}

type CartItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     int    `json:"price"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
}

func (i CartItem) Subtotal() int {
	return i.Price * i.Quantity
}
