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

func CreateTestExperience(t *testing.T, db DBLike, title string, price int64, maxParticipants int32) uuid.UUID {
	t.Helper()

	experienceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO experiences (id, title, description, location, price, duration, max_participants)
		VALUES ($1, $2, 'Test description', 'Test location', $3, '2 hours', $4)`,
		experienceID, title, price, maxParticipants)
	require.NoError(t, err)

	return experienceID
}

func CreateTestSlot(t *testing.T, db DBLike, experienceID uuid.UUID, date, timeSlot string, availableSeats, bookedSeats int32) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO slots (id, experience_id, date, time_slot, available_seats, booked_seats)
		VALUES ($1, $2, $3::date, $4, $5, $6)`,
		slotID, experienceID, date, timeSlot, availableSeats, bookedSeats)
	require.NoError(t, err)

	return slotID
}

func GetSlotBookedSeats(t *testing.T, db DBLike, slotID uuid.UUID) int32 {
	t.Helper()

	var booked int32
	err := db.QueryRow(context.Background(), "SELECT booked_seats FROM slots WHERE id = $1", slotID).Scan(&booked)
	require.NoError(t, err)
	return booked
}

func CountBookings(t *testing.T, db DBLike, slotID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM bookings WHERE slot_id = $1", slotID).Scan(&count)
	require.NoError(t, err)
	return count
}

// The catalog has no global reference rows; tests create their own
// experiences and slots.
func SeedReferenceData(_ *pgxpool.Pool) error {
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
		    AND tablename NOT IN ('schema_migrations')`)
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
