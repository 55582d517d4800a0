package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-reconciler/internal/config"
	"github.com/carson-networks/budget-reconciler/internal/storage/memstore"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// Storage groups the tables the services work against. DB is nil for the
// in-memory backend.
type Storage struct {
	DB            *sql.DB
	Schema        sqlconfig.Schema
	Periods       sqlconfig.IPeriodTable
	Transactions  sqlconfig.ITransactionTable
	BudgetConfigs sqlconfig.IBudgetConfigTable
	Portfolios    sqlconfig.IPortfolioTable
	UserData      sqlconfig.IUserDataTable
}

// New opens the backend selected by env.StorageBackend.
func New(ctx context.Context, env *config.Config) (*Storage, error) {
	switch env.StorageBackend {
	case config.StorageBackendMemory:
		return NewMemoryStorage(memstore.New()), nil
	case config.StorageBackendPostgres:
		return NewStorage(ctx, env)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", env.StorageBackend)
	}
}

// NewStorage connects to PostgreSQL and detects the schema capabilities once.
func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: ping: %w", err)
	}

	exec := bob.NewDB(db)
	schema, err := sqlconfig.DetectSchema(ctx, exec)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: detect schema: %w", err)
	}

	return &Storage{
		DB:            db,
		Schema:        schema,
		Periods:       sqlconfig.NewPeriodsTable(exec),
		Transactions:  sqlconfig.NewTransactionsTable(exec, schema),
		BudgetConfigs: sqlconfig.NewBudgetConfigsTable(exec, schema),
		Portfolios:    sqlconfig.NewPortfoliosTable(exec, schema),
		UserData:      sqlconfig.NewUserDataTable(exec, schema),
	}, nil
}

// NewMemoryStorage wires every table to the given in-memory store.
func NewMemoryStorage(store *memstore.Store) *Storage {
	return &Storage{
		Schema:        store.Schema(),
		Periods:       store.Periods(),
		Transactions:  store.Transactions(),
		BudgetConfigs: store.BudgetConfigs(),
		Portfolios:    store.Portfolios(),
		UserData:      store.UserData(),
	}
}

// Close releases the database connection, if any.
func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// Ping checks the database connection. The in-memory backend is always up.
func (s *Storage) Ping(ctx context.Context) error {
	if s.DB == nil {
		return nil
	}
	return s.DB.PingContext(ctx)
}
