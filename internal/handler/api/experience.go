package api

import (
	"errors"
	"net/http"

	resdto "bookit/internal/handler/dto/response"
	"bookit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExperienceHandler struct {
	experienceQueries queries.ExperienceQueries
}

func NewExperienceHandler(experienceQueries queries.ExperienceQueries) *ExperienceHandler {
	return &ExperienceHandler{
		experienceQueries: experienceQueries,
	}
}

// @Summary List experiences
// @Description List all bookable experiences
// @Tags experiences
// @Produce json
// @Success 200 {object} resdto.ExperienceListResponse
// @Router /experiences [get]
func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	views, err := h.experienceQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromExperienceViews(views))
}

// @Summary Get experience
// @Description Get an experience with its time slots
// @Tags experiences
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {object} resdto.ExperienceDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /experiences/{id} [get]
func (h *ExperienceHandler) GetExperience(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid experience ID format",
		})
		return
	}

	view, err := h.experienceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrExperienceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Experience not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromExperienceDetailView(view))
}

// @Summary List slots
// @Description List time slots for an experience, optionally filtered by date
// @Tags experiences
// @Produce json
// @Param id path string true "Experience ID"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} map[string]string
// @Router /experiences/{id}/slots [get]
func (h *ExperienceHandler) ListSlots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid experience ID format",
		})
		return
	}

	var date *string
	if raw, ok := c.GetQuery("date"); ok && raw != "" {
		date = &raw
	}

	views, err := h.experienceQueries.ListSlots(c.Request.Context(), id, date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidDateFilter):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date filter, expected YYYY-MM-DD",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}
