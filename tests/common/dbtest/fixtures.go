//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both a pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, first_name, last_name, phone, role)
		VALUES ($1, $2, 'Test', 'Buyer', '+2348012345678', $3)
		ON CONFLICT ((lower(email))) DO NOTHING`,
		userID, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

type VariantFixture struct {
	Color    string
	Material string
	Stock    int
}

type PhaseConfigFixture struct {
	Phase            string
	MaxQuantity      *int
	WindowDays       *int
	MinRequests      *int
	SurchargePercent *int
}

type ProductFixture struct {
	SKU        string
	Name       string
	BasePrice  int64
	Phase      string
	LaunchDate *time.Time
	Variants   []VariantFixture
	Configs    []PhaseConfigFixture
}

// SeededProduct holds the ids CreateTestProduct generated, variants in fixture order.
type SeededProduct struct {
	ID         uuid.UUID
	VariantIDs []uuid.UUID
}

func CreateTestProduct(t *testing.T, db DBLike, f ProductFixture) SeededProduct {
	t.Helper()
	ctx := context.Background()

	if f.SKU == "" {
		f.SKU = "DROP-" + strings.ToUpper(uuid.NewString()[:8])
	}
	if f.Name == "" {
		f.Name = "Test Drop"
	}
	if f.Phase == "" {
		f.Phase = "draft"
	}

	seeded := SeededProduct{ID: uuid.New()}
	_, err := db.Exec(ctx, `INSERT INTO products (id, sku, name, base_price, phase, launch_date)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		seeded.ID, f.SKU, f.Name, f.BasePrice, f.Phase, f.LaunchDate)
	require.NoError(t, err)

	for i, v := range f.Variants {
		id := uuid.New()
		_, err := db.Exec(ctx, `INSERT INTO product_variants (id, product_id, color, material, stock, position)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			id, seeded.ID, v.Color, v.Material, v.Stock, i)
		require.NoError(t, err)
		seeded.VariantIDs = append(seeded.VariantIDs, id)
	}

	for _, c := range f.Configs {
		_, err := db.Exec(ctx, `INSERT INTO product_phase_configs
			(product_id, phase, max_quantity, window_days, min_requests, surcharge_percent)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			seeded.ID, c.Phase, c.MaxQuantity, c.WindowDays, c.MinRequests, c.SurchargePercent)
		require.NoError(t, err)
	}

	return seeded
}

func IntPtr(v int) *int { return &v }

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO settings (key, value) VALUES
		    ('whatsapp_number', '+2348000000000')
		ON CONFLICT (key) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
