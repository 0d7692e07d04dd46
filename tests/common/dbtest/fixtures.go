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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultServiceID is the service seeded into every fresh database.
var DefaultServiceID = uuid.MustParse("6f1c1d9e-3a52-4c1b-9d7e-2b8f4a0c5e11")

func CreateService(t *testing.T, db DBLike, name string, durationMin, prepMin int, active bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO services (id, name, duration_min, prep_min, price, active) VALUES ($1, $2, $3, $4, 0, $5)`,
		id, name, durationMin, prepMin, active)
	require.NoError(t, err)
	return id
}

func BookingStatus(t *testing.T, db DBLike, clientToken string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), `SELECT status FROM bookings WHERE client_token = $1`, clientToken).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountActiveBookings(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM bookings WHERE status NOT IN ('cancelled', 'rejected')`).Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedReferenceData inserts the default service.
func SeedReferenceData(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), `
		INSERT INTO services (id, name, duration_min, prep_min, price, active)
		VALUES ($1, 'Consultation', 45, 15, 80.00, true)
		ON CONFLICT (id) DO NOTHING`, DefaultServiceID)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
