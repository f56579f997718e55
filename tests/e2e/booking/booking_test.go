//go:build e2e

package booking_test

import (
	"net/http"
	"sync"
	"testing"

	"bookit/internal/handler/dto/response"
	"bookit/tests/common/builder"
	"bookit/tests/common/dbtest"
	"bookit/tests/common/httptest"
	"bookit/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking persists and is readable back", func() {
		t := s.T()

		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000, 10)
		slotID := dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-15", "10:00", 10, 0)

		reqBody := builder.NewBookingBuilder().
			WithExperienceID(experienceID).
			WithSlotID(slotID).
			WithParticipants(2).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code, "should create booking, got: %s", w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEmpty(t, created.ID)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID, nil)
		require.Equal(t, http.StatusOK, dw.Code)

		var actual response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &actual))

		expected := &response.BookingResponse{
			ExperienceID:    experienceID.String(),
			ExperienceTitle: "Sunset Kayak Tour",
			SlotID:          slotID.String(),
			SlotDate:        "2026-09-15",
			SlotTime:        "10:00",
			UserName:        "Alex Carter",
			UserEmail:       "alex@example.com",
			UserPhone:       "+1-555-0100",
			Participants:    2,
			OriginalPrice:   5000,
			TotalPrice:      5000,
			Status:          "confirmed",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}

		require.Equal(t, int32(2), dbtest.GetSlotBookedSeats(t, s.DB, slotID))
	})

	s.Run("Normal case: promo fields are stored as submitted", func() {
		t := s.T()

		experienceID := dbtest.CreateTestExperience(t, s.DB, "Wine Tasting", 10000, 8)
		slotID := dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-10-01", "18:00", 8, 0)

		reqBody := builder.NewBookingBuilder().
			WithExperienceID(experienceID).
			WithSlotID(slotID).
			WithParticipants(1).
			WithPromo("SAVE10", 1000, 10000, 9000).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code, "got: %s", w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotNil(t, created.PromoCode)
		require.Equal(t, "SAVE10", *created.PromoCode)
		require.Equal(t, int64(1000), created.Discount)
		require.Equal(t, int64(9000), created.TotalPrice)
	})

	s.Run("Normal case: identical requests create distinct bookings", func() {
		t := s.T()

		experienceID := dbtest.CreateTestExperience(t, s.DB, "City Walk", 2000, 20)
		slotID := dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-20", "09:00", 20, 0)

		reqBody := builder.NewBookingBuilder().
			WithExperienceID(experienceID).
			WithSlotID(slotID).
			WithParticipants(2).
			BuildCreateRequestDTO()

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
		second := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
		require.Equal(t, http.StatusCreated, first.Code)
		require.Equal(t, http.StatusCreated, second.Code)

		require.Equal(t, 2, dbtest.CountBookings(t, s.DB, slotID))
		require.Equal(t, int32(4), dbtest.GetSlotBookedSeats(t, s.DB, slotID))
	})

	s.Run("Error case: full slot responds 409 with zero remaining seats", func() {
		t := s.T()

		experienceID := dbtest.CreateTestExperience(t, s.DB, "Cave Dive", 15000, 5)
		slotID := dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-15", "14:00", 5, 5)

		reqBody := builder.NewBookingBuilder().
			WithExperienceID(experienceID).
			WithSlotID(slotID).
			WithParticipants(1).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
		require.Equal(t, http.StatusConflict, w.Code)

		var body map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, float64(0), body["remainingSeats"])

		require.Equal(t, int32(5), dbtest.GetSlotBookedSeats(t, s.DB, slotID))
		require.Equal(t, 0, dbtest.CountBookings(t, s.DB, slotID))
	})

	s.Run("Error case: unknown slot responds 404", func() {
		t := s.T()

		experienceID := dbtest.CreateTestExperience(t, s.DB, "Ghost Tour", 3000, 10)

		reqBody := builder.NewBookingBuilder().
			WithExperienceID(experienceID).
			WithSlotID(uuid.New()).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: unknown experience responds 404", func() {
		t := s.T()

		// slot belongs to a real experience; the request references a missing one
		realExperienceID := dbtest.CreateTestExperience(t, s.DB, "Real Tour", 3000, 10)
		slotID := dbtest.CreateTestSlot(t, s.DB, realExperienceID, "2026-09-15", "10:00", 10, 0)

		reqBody := builder.NewBookingBuilder().
			WithExperienceID(uuid.New()).
			WithSlotID(slotID).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Concurrency: overlapping requests never oversell the slot", func() {
		t := s.T()

		const (
			capacity     = 5
			workers      = 4
			perBooking   = 2
			maxSuccesses = capacity / perBooking
		)

		experienceID := dbtest.CreateTestExperience(t, s.DB, "Rafting Trip", 8000, capacity)
		slotID := dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-18", "08:00", capacity, 0)

		codes := make(chan int, workers)
		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reqBody := builder.NewBookingBuilder().
					WithExperienceID(experienceID).
					WithSlotID(slotID).
					WithParticipants(perBooking).
					BuildCreateRequestDTO()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody)
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		var successes, conflicts int
		for code := range codes {
			switch code {
			case http.StatusCreated:
				successes++
			case http.StatusConflict:
				conflicts++
			default:
				t.Errorf("unexpected status code %d", code)
			}
		}

		require.Equal(t, workers, successes+conflicts)
		require.LessOrEqual(t, successes, maxSuccesses)

		booked := dbtest.GetSlotBookedSeats(t, s.DB, slotID)
		require.LessOrEqual(t, booked, int32(capacity), "slot must never be oversold")
		require.Equal(t, int32(successes*perBooking), booked, "counter must match persisted bookings")
		require.Equal(t, successes, dbtest.CountBookings(t, s.DB, slotID))
	})
}

func (s *BookingSuite) TestGetBooking() {
	s.Run("Error case: unknown booking responds 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+uuid.New().String(), nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: malformed booking id responds 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/not-a-uuid", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
