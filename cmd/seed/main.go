// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/auth"
	"stockledger/internal/domain/catalog/product"
	"stockledger/internal/domain/ledger"
	"stockledger/internal/infrastructure/storage/postgres"
	"stockledger/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatalw("failed to ensure schema", "error", err)
	}

	if err := seedAdminWorker(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin worker", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminWorker(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@stockledger.local"
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	workers := postgres.NewWorkerRepo(pool)

	existing, err := workers.GetByEmail(ctx, email)
	if err == nil {
		log.Infow("admin worker already exists", "email", email, "worker_id", existing.ID)
		return nil
	}
	if !apperror.IsNotFound(err) {
		return fmt.Errorf("check admin exists: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	w := auth.NewWorker(email, string(hash))
	if err := workers.Create(ctx, w); err != nil {
		return fmt.Errorf("create admin worker: %w", err)
	}

	log.Infow("admin worker created", "email", email, "worker_id", w.ID)
	return nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	products := postgres.NewProductRepo(pool)
	transactions := postgres.NewTransactionRepo(pool)

	existing, err := products.List(ctx)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	if len(existing) > 0 {
		log.Infow("demo data already present, skipping", "products", len(existing))
		return nil
	}

	code := func(s string) *string { return &s }

	demo := []*product.Product{
		product.NewProduct("Steel Brackets", code("101-001")),
		product.NewProduct("Copper Fittings", code("101-002")),
		product.NewProduct("Packing Foam", nil),
	}
	for _, p := range demo {
		if err := products.Create(ctx, p); err != nil {
			return fmt.Errorf("create product %q: %w", p.Name, err)
		}
	}
	log.Infow("demo products created", "count", len(demo))

	type movement struct {
		date     string
		product  int
		kind     ledger.Type
		quantity int64
	}

	movements := []movement{
		{"2024-01-05", 0, ledger.TypeIn, 10},
		{"2024-01-08", 1, ledger.TypeIn, 25},
		{"2024-01-15", 0, ledger.TypeOut, 3},
		{"2024-01-18", 2, ledger.TypeIn, 40},
		{"2024-01-25", 0, ledger.TypeIn, 2},
		{"2024-02-03", 1, ledger.TypeOut, 10},
		{"2024-02-14", 2, ledger.TypeOut, 15},
		{"2024-02-21", 0, ledger.TypeIn, 6},
	}
	for _, m := range movements {
		p := demo[m.product]
		t := &ledger.Transaction{
			ID:          id.New(),
			Date:        types.MustParseDay(m.date),
			ProductID:   p.ID,
			ProductName: p.Name,
			Type:        m.kind,
			Quantity:    m.quantity,
		}
		if err := transactions.Create(ctx, t); err != nil {
			return fmt.Errorf("create transaction on %s: %w", m.date, err)
		}
	}
	log.Infow("demo transactions created", "count", len(movements))

	return nil
}
