//go:build e2e

package experience_test

import (
	"net/http"
	"testing"

	"bookit/internal/handler/dto/request"
	"bookit/internal/handler/dto/response"
	"bookit/tests/common/dbtest"
	"bookit/tests/common/httptest"
	"bookit/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	experiencesURL   = "/api/experiences"
	promoValidateURL = "/api/promo/validate"
)

type ExperienceSuite struct {
	e2e.SharedSuite
}

func (s *ExperienceSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestExperienceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ExperienceSuite))
}

func (s *ExperienceSuite) TestListExperiences() {
	s.Run("Normal case: lists seeded experiences", func() {
		t := s.T()

		dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000, 10)
		dbtest.CreateTestExperience(t, s.DB, "Wine Tasting", 10000, 8)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, experiencesURL, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body response.ExperienceListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Len(t, body.Experiences, 2)
	})

	s.Run("Normal case: empty catalog yields empty list", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, experiencesURL, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body response.ExperienceListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Empty(t, body.Experiences)
	})
}

func (s *ExperienceSuite) TestGetExperience() {
	s.Run("Normal case: detail includes slots with derived availability", func() {
		t := s.T()

		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000, 10)
		dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-15", "10:00", 10, 4)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, experiencesURL+"/"+experienceID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body response.ExperienceDetailResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, experienceID.String(), body.ID)
		require.Len(t, body.Slots, 1)
		require.Equal(t, int32(6), body.Slots[0].RemainingSeats)
		require.True(t, body.Slots[0].IsAvailable)
	})

	s.Run("Error case: unknown experience responds 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, experiencesURL+"/"+uuid.New().String(), nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *ExperienceSuite) TestListSlots() {
	s.Run("Normal case: date filter narrows the slot list", func() {
		t := s.T()

		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000, 10)
		dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-15", "10:00", 10, 0)
		dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-16", "10:00", 10, 0)

		url := experiencesURL + "/" + experienceID.String() + "/slots?date=2026-09-15"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body response.SlotListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Len(t, body.Slots, 1)
		require.Equal(t, "2026-09-15", body.Slots[0].Date)
	})

	s.Run("Error case: malformed date filter responds 400", func() {
		t := s.T()

		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000, 10)

		url := experiencesURL + "/" + experienceID.String() + "/slots?date=soon"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *ExperienceSuite) TestValidatePromo() {
	s.Run("Normal case: known code returns discount breakdown", func() {
		t := s.T()

		reqBody := request.ValidatePromoRequest{Code: "save10", Price: 1000}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promoValidateURL, reqBody)
		require.Equal(t, http.StatusOK, w.Code)

		var body response.PromoValidationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.True(t, body.Valid)
		require.Equal(t, "SAVE10", body.Code)
		require.Equal(t, int64(100), body.Discount)
		require.Equal(t, int64(900), body.FinalPrice)
	})

	s.Run("Error case: unknown code responds 404", func() {
		t := s.T()

		reqBody := request.ValidatePromoRequest{Code: "BOGUS", Price: 1000}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promoValidateURL, reqBody)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
