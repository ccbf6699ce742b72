package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pos-kasir/models"
)

func sampleProduct(id int64, name string, price int) models.Product {
	return models.Product{
		ID:       id,
		Name:     name,
		Category: "Kopi",
		Price:    price,
		Image:    models.PlaceholderImage,
	}
}

func TestAddToCart(t *testing.T) {
	cart := NewCartService()
	kopi := sampleProduct(1, "Kopi Susu", 15000)

	cart.AddToCart(kopi)
	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, kopi.ID, items[0].ProductID)

	// Adding the same product again merges into the existing line.
	cart.AddToCart(kopi)
	items = cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	cart.AddToCart(sampleProduct(2, "Croissant", 12000))
	assert.Equal(t, 2, cart.Len())
}

func TestRemoveFromCartDecrements(t *testing.T) {
	cart := NewCartService()
	kopi := sampleProduct(1, "Kopi Susu", 15000)
	cart.AddToCart(kopi)
	cart.AddToCart(kopi)

	cart.RemoveFromCart(kopi.ID)
	items := cart.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	// Last unit removes the line entirely.
	cart.RemoveFromCart(kopi.ID)
	assert.Equal(t, 0, cart.Len())
}

func TestRemoveFromCartUnknownProduct(t *testing.T) {
	cart := NewCartService()
	cart.AddToCart(sampleProduct(1, "Kopi Susu", 15000))

	cart.RemoveFromCart(999)
	assert.Equal(t, 1, cart.Len())
}

func TestUpdateQuantity(t *testing.T) {
	cart := NewCartService()
	kopi := sampleProduct(1, "Kopi Susu", 15000)
	cart.AddToCart(kopi)

	cart.UpdateQuantity(kopi.ID, 5)
	items := cart.Items()
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 75000, cart.Total())
}

func TestUpdateQuantityNonPositiveRemovesLine(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		cart := NewCartService()
		kopi := sampleProduct(1, "Kopi Susu", 15000)
		cart.AddToCart(kopi)

		cart.UpdateQuantity(kopi.ID, quantity)
		assert.Equal(t, 0, cart.Len(), "quantity %d should drop the line", quantity)
	}
}

func TestRemoveItemFromCart(t *testing.T) {
	cart := NewCartService()
	kopi := sampleProduct(1, "Kopi Susu", 15000)
	cart.AddToCart(kopi)
	cart.AddToCart(kopi)
	cart.AddToCart(kopi)

	// Drops the whole line regardless of quantity.
	cart.RemoveItemFromCart(kopi.ID)
	assert.Equal(t, 0, cart.Len())
}

func TestTotalRecomputed(t *testing.T) {
	cart := NewCartService()
	cart.AddToCart(sampleProduct(1, "Kopi Susu", 15000))
	cart.AddToCart(sampleProduct(1, "Kopi Susu", 15000))
	cart.AddToCart(sampleProduct(2, "Croissant", 12000))

	assert.Equal(t, 42000, cart.Total())

	cart.UpdateQuantity(2, 3)
	assert.Equal(t, 66000, cart.Total())
}

func TestClearEmptiesCart(t *testing.T) {
	cart := NewCartService()
	cart.AddToCart(sampleProduct(1, "Kopi Susu", 15000))
	cart.AddToCart(sampleProduct(2, "Croissant", 12000))

	cart.Clear()
	assert.Equal(t, 0, cart.Len())
	assert.Equal(t, 0, cart.Total())
	assert.Empty(t, cart.Items())
}

func TestItemsReturnsSnapshot(t *testing.T) {
	cart := NewCartService()
	cart.AddToCart(sampleProduct(1, "Kopi Susu", 15000))

	items := cart.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, cart.Items()[0].Quantity)
}
