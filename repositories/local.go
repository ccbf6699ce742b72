package repositories

import (
	"context"
	"time"

	"pos-kasir/models"
)

// LocalStore persists collections as JSON snapshots on disk, mirroring a
// browser local-storage setup: every mutation is a read-modify-write of
// the entire collection. No partial updates, no optimistic concurrency.
type LocalStore struct {
	kv *fileKV
}

func NewLocalStore(dataDir string) (*LocalStore, error) {
	kv, err := newFileKV(dataDir)
	if err != nil {
		return nil, err
	}
	return &LocalStore{kv: kv}, nil
}

func (s *LocalStore) Backend() string { return "local" }

func (s *LocalStore) Close() {}

func (s *LocalStore) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if _, err := s.kv.get(keyProducts, &products); err != nil {
		return nil, models.NewStorageError("get products", err)
	}
	return products, nil
}

func (s *LocalStore) FindProductByID(ctx context.Context, id int64) (*models.Product, error) {
	products, err := s.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *LocalStore) AddProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	products := []models.Product{}
	added := *product
	err := s.kv.update(keyProducts, &products, func() (interface{}, error) {
		if added.ID == 0 {
			added.ID = nextLocalID(productIDs(products))
		}
		now := time.Now()
		added.CreatedAt = now
		added.UpdatedAt = now
		added.IsActive = true
		products = append(products, added)
		return products, nil
	})
	if err != nil {
		return nil, models.NewStorageError("add product", err)
	}
	return &added, nil
}

func (s *LocalStore) UpdateProduct(ctx context.Context, id int64, patch models.ProductPatch) (*models.Product, error) {
	products := []models.Product{}
	var updated *models.Product
	err := s.kv.update(keyProducts, &products, func() (interface{}, error) {
		for i := range products {
			if products[i].ID == id {
				patch.Apply(&products[i])
				products[i].UpdatedAt = time.Now()
				p := products[i]
				updated = &p
				break
			}
		}
		return products, nil
	})
	if err != nil {
		return nil, models.NewStorageError("update product", err)
	}
	// Unknown id is a no-op, not an error.
	return updated, nil
}

func (s *LocalStore) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	products := []models.Product{}
	removed := false
	err := s.kv.update(keyProducts, &products, func() (interface{}, error) {
		kept := products[:0]
		for _, p := range products {
			if p.ID == id {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		return kept, nil
	})
	if err != nil {
		return false, models.NewStorageError("delete product", err)
	}
	return removed, nil
}

func (s *LocalStore) GetAllTransactions(ctx context.Context) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if _, err := s.kv.get(keyTransactions, &transactions); err != nil {
		return nil, models.NewStorageError("get transactions", err)
	}
	return transactions, nil
}

func (s *LocalStore) AddTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	transactions := []models.Transaction{}
	added := *transaction
	err := s.kv.update(keyTransactions, &transactions, func() (interface{}, error) {
		if added.ID == 0 {
			added.ID = nextLocalID(transactionIDs(transactions))
		}
		if added.Timestamp.IsZero() {
			added.Timestamp = time.Now()
		}
		transactions = append(transactions, added)
		return transactions, nil
	})
	if err != nil {
		return nil, models.NewStorageError("add transaction", err)
	}
	return &added, nil
}

func (s *LocalStore) GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error) {
	transactions, err := s.GetAllTransactions(ctx)
	if err != nil {
		return nil, err
	}
	filtered := []models.Transaction{}
	for _, t := range transactions {
		if !t.Timestamp.Before(start) && t.Timestamp.Before(end) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// Subscriptions are a permanent no-op on the local backend.
func (s *LocalStore) SubscribeProducts(fn func(ChangeEvent)) UnsubscribeFunc {
	return func() {}
}

func (s *LocalStore) SubscribeTransactions(fn func(ChangeEvent)) UnsubscribeFunc {
	return func() {}
}

// nextLocalID assigns millisecond-timestamp ids the way the browser
// variant did, bumping past collisions within the same millisecond.
func nextLocalID(existing map[int64]bool) int64 {
	id := time.Now().UnixMilli()
	for existing[id] {
		id++
	}
	return id
}

func productIDs(products []models.Product) map[int64]bool {
	ids := make(map[int64]bool, len(products))
	for _, p := range products {
		ids[p.ID] = true
	}
	return ids
}

func transactionIDs(transactions []models.Transaction) map[int64]bool {
	ids := make(map[int64]bool, len(transactions))
	for _, t := range transactions {
		ids[t.ID] = true
	}
	return ids
}
