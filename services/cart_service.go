package services

import (
	"sync"

	"pos-kasir/models"
)

// CartService holds the in-progress sale in memory. At most one entry per
// product id, quantity always >= 1 while an entry exists. No I/O.
type CartService struct {
	mu    sync.Mutex
	items []models.CartItem
}

func NewCartService() *CartService {
	return &CartService{items: []models.CartItem{}}
}

// AddToCart increments the quantity when the product is already in the
// cart, otherwise inserts it with quantity 1.
func (s *CartService) AddToCart(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  1,
	})
}

// RemoveFromCart decrements the quantity by one, dropping the entry when
// it reaches zero.
func (s *CartService) RemoveFromCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity--
			if s.items[i].Quantity <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
			}
			return
		}
	}
}

// RemoveItemFromCart drops the entry regardless of quantity.
func (s *CartService) RemoveItemFromCart(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

func (s *CartService) removeLocked(productID int64) {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity. A quantity <= 0 removes the entry,
// same as RemoveItemFromCart.
func (s *CartService) UpdateQuantity(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			return
		}
	}
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []models.CartItem{}
}

// Total is recomputed from the current entries on every call.
func (s *CartService) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Price * item.Quantity
	}
	return total
}

// Items returns a snapshot copy of the cart.
func (s *CartService) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *CartService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
