package services

import (
	"context"
	"log"
	"time"

	"pos-kasir/models"
	"pos-kasir/repositories"
)

// CheckoutResult is a structured outcome; callers branch on Code instead
// of catching errors for expected conditions like a short payment.
type CheckoutResult struct {
	Success     bool                `json:"success"`
	Code        string              `json:"code,omitempty"`
	Message     string              `json:"message,omitempty"`
	Change      int                 `json:"change"`
	Transaction *models.Transaction `json:"transaction,omitempty"`
}

type CheckoutService struct {
	store repositories.Store
	cart  *CartService
	auth  *AuthService
}

func NewCheckoutService(store repositories.Store, cart *CartService, auth *AuthService) *CheckoutService {
	return &CheckoutService{store: store, cart: cart, auth: auth}
}

// ValidatePayment checks the tendered amount against the total. It never
// mutates the cart.
func ValidatePayment(total, amountPaid int) (ok bool, code, message string) {
	if amountPaid < 0 {
		return false, models.CodeInvalidAmount, "Invalid payment amount"
	}
	if amountPaid < total {
		return false, models.CodeInsufficientPayment, "Insufficient payment"
	}
	return true, "", ""
}

// Checkout finalizes the sale: validates payment, snapshots the cart into
// a transaction, writes it through the store and only then clears the
// cart. On a failed write the cart is left intact so the cashier can
// retry.
func (s *CheckoutService) Checkout(ctx context.Context, amountPaid int, notes string) CheckoutResult {
	items := s.cart.Items()
	if len(items) == 0 {
		return CheckoutResult{
			Success: false,
			Code:    models.CodeValidationError,
			Message: "Cart is empty",
		}
	}

	// Total comes from the snapshot, not a second cart read: another
	// request mutating the cart in between must not desync the receipt.
	total := 0
	for _, item := range items {
		total += item.Subtotal()
	}
	if ok, code, message := ValidatePayment(total, amountPaid); !ok {
		return CheckoutResult{Success: false, Code: code, Message: message}
	}

	cashier := models.UnknownCashier
	if user, err := s.auth.CurrentUser(); err == nil && user != nil {
		cashier = user.Username
	}

	transaction := &models.Transaction{
		Items:      snapshotItems(items),
		Total:      total,
		AmountPaid: amountPaid,
		Change:     amountPaid - total,
		Cashier:    cashier,
		Notes:      notes,
		Timestamp:  time.Now(),
	}

	saved, err := s.store.AddTransaction(ctx, transaction)
	if err != nil {
		log.Printf("Checkout write failed, cart kept for retry: %v", err)
		return CheckoutResult{
			Success: false,
			Code:    models.CodeStorageFailure,
			Message: err.Error(),
		}
	}

	s.cart.Clear()

	return CheckoutResult{
		Success:     true,
		Message:     "Payment processed",
		Change:      saved.Change,
		Transaction: saved,
	}
}

func snapshotItems(items []models.CartItem) []models.TransactionItem {
	snapshot := make([]models.TransactionItem, 0, len(items))
	for _, item := range items {
		snapshot = append(snapshot, models.TransactionItem{
			ProductID:    item.ProductID,
			ProductName:  item.Name,
			ProductPrice: item.Price,
			Quantity:     item.Quantity,
			Subtotal:     item.Subtotal(),
		})
	}
	return snapshot
}
