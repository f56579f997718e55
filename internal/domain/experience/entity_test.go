//go:build unit

package experience_test

import (
	"strings"
	"testing"
	"time"

	"bookit/internal/domain/experience"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExperience(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		exp, err := experience.NewExperience(uuid.New(), "Sunset Kayak Tour", 5000, 10)
		require.NoError(t, err)
		require.NotNil(t, exp)

		assert.Equal(t, "Sunset Kayak Tour", exp.Title())
		assert.Equal(t, int64(5000), exp.Price())
		assert.Equal(t, int32(10), exp.MaxParticipants())
	})

	t.Run("trims title whitespace", func(t *testing.T) {
		exp, err := experience.NewExperience(uuid.New(), "  Wine Tasting  ", 3000, 8)
		require.NoError(t, err)
		assert.Equal(t, "Wine Tasting", exp.Title())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := experience.NewExperience(uuid.New(), "   ", 5000, 10)
		assert.ErrorIs(t, err, experience.ErrEmptyTitle)
	})

	t.Run("rejects overlong title", func(t *testing.T) {
		_, err := experience.NewExperience(uuid.New(), strings.Repeat("a", experience.MaxTitleLength+1), 5000, 10)
		assert.ErrorIs(t, err, experience.ErrEmptyTitle)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := experience.NewExperience(uuid.New(), "Hiking", -1, 10)
		assert.ErrorIs(t, err, experience.ErrNegativePrice)
	})
}

func TestNewSlot(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		slot, err := experience.NewSlot(uuid.New(), uuid.New(), date, "10:00", 10, 3)
		require.NoError(t, err)

		assert.Equal(t, int32(7), slot.RemainingSeats())
		assert.True(t, slot.IsAvailable())
	})

	t.Run("rejects zero capacity", func(t *testing.T) {
		_, err := experience.NewSlot(uuid.New(), uuid.New(), date, "10:00", 0, 0)
		assert.ErrorIs(t, err, experience.ErrInvalidCapacity)
	})

	t.Run("rejects booked seats above capacity", func(t *testing.T) {
		_, err := experience.NewSlot(uuid.New(), uuid.New(), date, "10:00", 5, 6)
		assert.ErrorIs(t, err, experience.ErrSeatsOutOfRange)
	})

	t.Run("rejects negative booked seats", func(t *testing.T) {
		_, err := experience.NewSlot(uuid.New(), uuid.New(), date, "10:00", 5, -1)
		assert.ErrorIs(t, err, experience.ErrSeatsOutOfRange)
	})

	t.Run("full slot is not available", func(t *testing.T) {
		slot, err := experience.NewSlot(uuid.New(), uuid.New(), date, "10:00", 5, 5)
		require.NoError(t, err)

		assert.Equal(t, int32(0), slot.RemainingSeats())
		assert.False(t, slot.IsAvailable())
	})
}

func TestSlotReserve(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	newSlot := func(t *testing.T, available, booked int32) *experience.Slot {
		t.Helper()
		slot, err := experience.NewSlot(uuid.New(), uuid.New(), date, "10:00", available, booked)
		require.NoError(t, err)
		return slot
	}

	t.Run("reserves remaining seats exactly", func(t *testing.T) {
		slot := newSlot(t, 10, 0)

		require.NoError(t, slot.Reserve(10))
		assert.Equal(t, int32(10), slot.BookedSeats())
		assert.Equal(t, int32(0), slot.RemainingSeats())
		assert.False(t, slot.IsAvailable())
	})

	t.Run("sequential reservations accumulate", func(t *testing.T) {
		slot := newSlot(t, 10, 0)

		require.NoError(t, slot.Reserve(3))
		require.NoError(t, slot.Reserve(4))
		assert.Equal(t, int32(7), slot.BookedSeats())
	})

	t.Run("full slot rejects one more seat", func(t *testing.T) {
		slot := newSlot(t, 5, 5)

		err := slot.Reserve(1)
		var insufficient *experience.InsufficientSeatsError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, int32(0), insufficient.Remaining)
		// counter unchanged on failure
		assert.Equal(t, int32(5), slot.BookedSeats())
	})

	t.Run("partial capacity reports remaining", func(t *testing.T) {
		slot := newSlot(t, 5, 3)

		err := slot.Reserve(3)
		var insufficient *experience.InsufficientSeatsError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, int32(2), insufficient.Remaining)
		assert.Equal(t, int32(3), slot.BookedSeats())
	})

	t.Run("rejects zero participants", func(t *testing.T) {
		slot := newSlot(t, 5, 0)
		assert.ErrorIs(t, slot.Reserve(0), experience.ErrInvalidParticipants)
	})

	t.Run("rejects negative participants", func(t *testing.T) {
		slot := newSlot(t, 5, 0)
		assert.ErrorIs(t, slot.Reserve(-2), experience.ErrInvalidParticipants)
	})
}
