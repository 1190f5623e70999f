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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// LegacyRow is a registration inserted directly, bypassing admission.
type LegacyRow struct {
	ID        string
	EventKind string
	SlotLabel *string
	Email     string
	Seats     int
	// nil and "" are both read as active.
	Status *string
}

func InsertRegistration(t *testing.T, db DBLike, row LegacyRow) {
	t.Helper()

	if row.Seats == 0 {
		row.Seats = 1
	}
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO registrations (id, event_kind, slot_label, contact_email, family_name, given_name, seats, status)
		VALUES ($1, $2, $3, $4, '既存', '参加者', $5, $6)`,
		row.ID, row.EventKind, row.SlotLabel, row.Email, row.Seats, row.Status)
	require.NoError(t, err)
}

func CountSeats(t *testing.T, db DBLike, eventKind, status string) int {
	t.Helper()

	var seats int
	err := db.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(seats), 0)
		FROM registrations
		WHERE event_kind = $1 AND COALESCE(NULLIF(status, ''), 'active') = $2`,
		eventKind, status).Scan(&seats)
	require.NoError(t, err)
	return seats
}

func FetchStatus(t *testing.T, db DBLike, id string) (status string, cancelReason *string) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(NULLIF(status, ''), 'active'), cancel_reason FROM registrations WHERE id = $1", id).
		Scan(&status, &cancelReason)
	require.NoError(t, err)
	return status, cancelReason
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every public table
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
