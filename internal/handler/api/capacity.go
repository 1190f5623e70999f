package api

import (
	"errors"
	"net/http"

	reqdto "event-registration/internal/handler/dto/request"
	resdto "event-registration/internal/handler/dto/response"
	"event-registration/internal/handler/httperr"
	"event-registration/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CapacityHandler struct {
	q queries.CapacityQueries
}

func NewCapacityHandler(q queries.CapacityQueries) *CapacityHandler {
	return &CapacityHandler{q: q}
}

// @Summary Check capacity
// @Description Remaining seats for an event or one of its slots. A failed read answers 200 with hasError and a fallback remainingSlots.
// @Tags capacity
// @Produce json
// @Param eventKind query string true "Event kind"
// @Param slotLabel query string false "Slot label"
// @Success 200 {object} resdto.CapacityResponse
// @Failure 400 {object} httperr.Response
// @Router /capacity [get]
func (h *CapacityHandler) Check(c *gin.Context) {
	var query reqdto.CapacityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, msgValidation, nil)
		return
	}

	view, err := h.q.Check(c.Request.Context(), query.EventKind, query.SlotLabel)
	if err != nil {
		if errors.Is(err, queries.ErrUnknownEvent) || errors.Is(err, queries.ErrInvalidSlot) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, msgValidation, nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeUnavailable, msgUnavailable, nil)
		return
	}

	resp, err := resdto.FromCapacityView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, msgUnavailable, nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List events
// @Description Configured events with their capacities and slots
// @Tags capacity
// @Produce json
// @Success 200 {array} resdto.EventResponse
// @Router /events [get]
func (h *CapacityHandler) Events(c *gin.Context) {
	resp, err := resdto.FromEventViews(h.q.Events(c.Request.Context()))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, msgUnavailable, nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
