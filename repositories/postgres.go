package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"pos-kasir/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	productsChannel     = "products-changes"
	transactionsChannel = "transactions-changes"
)

// PostgresStore is the remote backend. Field names are translated at this
// boundary (internal Image <-> column image_url) so the rest of the system
// stays backend-agnostic. Product deletes are soft: the record keeps its
// row and only drops out of GetAllProducts/FindProductByID.
type PostgresStore struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
}

func NewPostgresStore(pool *pgxpool.Pool, rdb *redis.Client) *PostgresStore {
	return &PostgresStore{pool: pool, rdb: rdb}
}

func (s *PostgresStore) Backend() string { return "postgres" }

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, category, price, image_url, description, stock, is_active, created_at, updated_at
	          FROM products WHERE is_active = true ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, models.NewStorageError("get products", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Image,
			&p.Description, &p.Stock, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, models.NewStorageError("get products", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("get products", err)
	}
	return products, nil
}

func (s *PostgresStore) FindProductByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `SELECT id, name, category, price, image_url, description, stock, is_active, created_at, updated_at
	          FROM products WHERE id = $1 AND is_active = true`

	var p models.Product
	err := s.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Category, &p.Price,
		&p.Image, &p.Description, &p.Stock, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewStorageError("find product", err)
	}
	return &p, nil
}

func (s *PostgresStore) AddProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	query := `
		INSERT INTO products (name, category, price, image_url, description, stock, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, true, $7, $8)
		RETURNING id, created_at, updated_at
	`
	added := *product
	now := time.Now()
	err := s.pool.QueryRow(ctx, query,
		added.Name, added.Category, added.Price, added.Image, added.Description, added.Stock, now, now,
	).Scan(&added.ID, &added.CreatedAt, &added.UpdatedAt)
	if err != nil {
		return nil, models.NewStorageError("add product", err)
	}
	added.IsActive = true

	s.publish(ctx, productsChannel, ChangeEvent{Table: "products", Event: EventInsert, ID: added.ID})
	return &added, nil
}

func (s *PostgresStore) UpdateProduct(ctx context.Context, id int64, patch models.ProductPatch) (*models.Product, error) {
	existing, err := s.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	patch.Apply(existing)
	existing.UpdatedAt = time.Now()

	query := `UPDATE products SET name = $1, category = $2, price = $3, image_url = $4,
	          description = $5, stock = $6, updated_at = $7 WHERE id = $8`
	_, err = s.pool.Exec(ctx, query,
		existing.Name, existing.Category, existing.Price, existing.Image,
		existing.Description, existing.Stock, existing.UpdatedAt, id,
	)
	if err != nil {
		return nil, models.NewStorageError("update product", err)
	}

	s.publish(ctx, productsChannel, ChangeEvent{Table: "products", Event: EventUpdate, ID: id})
	return existing, nil
}

func (s *PostgresStore) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE products SET is_active = false, updated_at = $1 WHERE id = $2 AND is_active = true`
	tag, err := s.pool.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return false, models.NewStorageError("delete product", err)
	}
	deleted := tag.RowsAffected() > 0
	if deleted {
		s.publish(ctx, productsChannel, ChangeEvent{Table: "products", Event: EventDelete, ID: id})
	}
	return deleted, nil
}

func (s *PostgresStore) GetAllTransactions(ctx context.Context) ([]models.Transaction, error) {
	query := `SELECT id, total, amount_paid, change_amount, COALESCE(cashier_id, ''), COALESCE(notes, ''), created_at
	          FROM transactions ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, models.NewStorageError("get transactions", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	index := map[int64]int{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Total, &t.AmountPaid, &t.Change, &t.Cashier, &t.Notes, &t.Timestamp); err != nil {
			return nil, models.NewStorageError("get transactions", err)
		}
		t.Items = []models.TransactionItem{}
		index[t.ID] = len(transactions)
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("get transactions", err)
	}

	if err := s.loadTransactionItems(ctx, transactions, index); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *PostgresStore) loadTransactionItems(ctx context.Context, transactions []models.Transaction, index map[int64]int) error {
	if len(transactions) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(transactions))
	for _, t := range transactions {
		ids = append(ids, t.ID)
	}

	query := `SELECT id, transaction_id, product_id, product_name, product_price, quantity, subtotal
	          FROM transaction_items WHERE transaction_id = ANY($1) ORDER BY transaction_id, id`

	rows, err := s.pool.Query(ctx, query, ids)
	if err != nil {
		return models.NewStorageError("get transaction items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.TransactionItem
		var transactionID int64
		if err := rows.Scan(&item.ID, &transactionID, &item.ProductID, &item.ProductName,
			&item.ProductPrice, &item.Quantity, &item.Subtotal); err != nil {
			return models.NewStorageError("get transaction items", err)
		}
		if i, ok := index[transactionID]; ok {
			transactions[i].Items = append(transactions[i].Items, item)
		}
	}
	return rows.Err()
}

// AddTransaction inserts the parent row and then the item rows. There is
// no spanning client-side transaction: a failure between the two writes
// leaves an orphaned parent record.
func (s *PostgresStore) AddTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	added := *transaction

	query := `
		INSERT INTO transactions (total, amount_paid, change_amount, cashier_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	timestamp := added.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	err := s.pool.QueryRow(ctx, query,
		added.Total, added.AmountPaid, added.Change, added.Cashier, added.Notes, timestamp,
	).Scan(&added.ID, &added.Timestamp)
	if err != nil {
		return nil, models.NewStorageError("add transaction", err)
	}

	itemQuery := `
		INSERT INTO transaction_items (transaction_id, product_id, product_name, product_price, quantity, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	for i := range added.Items {
		item := &added.Items[i]
		err := s.pool.QueryRow(ctx, itemQuery,
			added.ID, item.ProductID, item.ProductName, item.ProductPrice, item.Quantity, item.Subtotal,
		).Scan(&item.ID)
		if err != nil {
			return nil, models.NewStorageError("add transaction items", err)
		}
	}

	s.publish(ctx, transactionsChannel, ChangeEvent{Table: "transactions", Event: EventInsert, ID: added.ID})
	return &added, nil
}

func (s *PostgresStore) GetTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error) {
	query := `SELECT id, total, amount_paid, change_amount, COALESCE(cashier_id, ''), COALESCE(notes, ''), created_at
	          FROM transactions WHERE created_at >= $1 AND created_at < $2 ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, models.NewStorageError("get transactions by date range", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	index := map[int64]int{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Total, &t.AmountPaid, &t.Change, &t.Cashier, &t.Notes, &t.Timestamp); err != nil {
			return nil, models.NewStorageError("get transactions by date range", err)
		}
		t.Items = []models.TransactionItem{}
		index[t.ID] = len(transactions)
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("get transactions by date range", err)
	}

	if err := s.loadTransactionItems(ctx, transactions, index); err != nil {
		return nil, err
	}
	return transactions, nil
}

// publish sends a change event over redis, fire and forget. Without redis
// configured notifications are silently dropped.
func (s *PostgresStore) publish(ctx context.Context, channel string, event ChangeEvent) {
	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		log.Printf("Failed to publish change event on %s: %v", channel, err)
	}
}

func (s *PostgresStore) SubscribeProducts(fn func(ChangeEvent)) UnsubscribeFunc {
	return s.subscribe(productsChannel, fn)
}

func (s *PostgresStore) SubscribeTransactions(fn func(ChangeEvent)) UnsubscribeFunc {
	return s.subscribe(transactionsChannel, fn)
}

func (s *PostgresStore) subscribe(channel string, fn func(ChangeEvent)) UnsubscribeFunc {
	if s.rdb == nil {
		return func() {}
	}

	sub := s.rdb.Subscribe(context.Background(), channel)
	go func() {
		for msg := range sub.Channel() {
			var event ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue
			}
			fn(event)
		}
	}()

	return func() {
		_ = sub.Close()
	}
}
