package repositories

import (
	"context"
	"log"
	"time"

	"pos-kasir/config"
	"pos-kasir/models"

	"github.com/redis/go-redis/v9"
)

// Storage keys of the local backend. Stable across restarts so sessions
// and collections survive a reload.
const (
	keyProducts         = "pos_products"
	keyTransactions     = "pos_transactions"
	keyUser             = "pos_user"
	keySessionTimestamp = "pos_session_timestamp"
)

// ChangeEvent describes an insert/update/delete on a collection.
// Delivery is best effort and fire-and-forget; subscribers must not
// assume ordering relative to their own writes.
type ChangeEvent struct {
	Table string `json:"table"`
	Event string `json:"event"`
	ID    int64  `json:"id"`
}

const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
)

type UnsubscribeFunc func()

// Store unifies the local and remote backends behind one interface.
// Products and transactions are owned by the store; callers hold
// read-only copies.
type Store interface {
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	FindProductByID(ctx context.Context, id int64) (*models.Product, error)
	AddProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	// UpdateProduct merges the patch into the stored record. It returns
	// (nil, nil) when the id is unknown.
	UpdateProduct(ctx context.Context, id int64, patch models.ProductPatch) (*models.Product, error)
	// DeleteProduct reports whether a record was removed (or, on the
	// remote backend, deactivated).
	DeleteProduct(ctx context.Context, id int64) (bool, error)

	GetAllTransactions(ctx context.Context) ([]models.Transaction, error)
	AddTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
	// GetTransactionsByDateRange returns transactions whose timestamp
	// falls in [start, end).
	GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error)

	// Subscriptions are only meaningful on the remote backend with redis
	// configured; otherwise they are permanent no-ops.
	SubscribeProducts(fn func(ChangeEvent)) UnsubscribeFunc
	SubscribeTransactions(fn func(ChangeEvent)) UnsubscribeFunc

	Backend() string
	Close()
}

// Open makes the one-time backend decision for the process lifetime.
// When the remote backend cannot be initialized the store falls back
// permanently to local storage; there is no per-call retry.
func Open(cfg *config.Config, rdb *redis.Client) Store {
	if cfg.StorageMode == config.StorageModePostgres {
		pool, err := config.ConnectDB(cfg)
		if err == nil {
			return NewPostgresStore(pool, rdb)
		}
		log.Printf("Remote storage unavailable, falling back to local storage: %v", err)
	}

	local, err := NewLocalStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open local storage: %v", err)
	}
	return local
}
