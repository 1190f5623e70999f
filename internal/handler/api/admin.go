package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	reqdto "event-registration/internal/handler/dto/request"
	resdto "event-registration/internal/handler/dto/response"
	"event-registration/internal/handler/httperr"
	"event-registration/internal/pkg/clock"
	"event-registration/internal/usecase/commands"
	"event-registration/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds  commands.AdminCommands
	q     queries.RegistrationQueries
	clock clock.Clock
}

func NewAdminHandler(cmds commands.AdminCommands, q queries.RegistrationQueries, clock clock.Clock) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q, clock: clock}
}

// @Summary List registrations
// @Description Records across all statuses, optionally filtered by event, slot and status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventKind query string false "Event kind"
// @Param slotLabel query string false "Slot label"
// @Param status query string false "active | cancelled | waitlisted"
// @Success 200 {object} resdto.RegistrationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/registrations [get]
func (h *AdminHandler) List(c *gin.Context) {
	var query reqdto.ListRegistrationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, msgValidation, nil)
		return
	}

	result, err := h.q.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUnknownEvent),
			errors.Is(err, queries.ErrInvalidSlot),
			errors.Is(err, queries.ErrInvalidStatusFilter):
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, msgValidation, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeUnavailable, msgUnavailable, nil)
		}
		return
	}

	resp, err := resdto.FromListResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, msgUnavailable, nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update registration fields
// @Description Correct applicant fields of a record. Status and group members cannot be changed here.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration ID"
// @Param request body reqdto.UpdateRegistrationRequest true "Fields to update"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/registrations/{id} [put]
func (h *AdminHandler) Update(c *gin.Context) {
	var req reqdto.UpdateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, msgValidation, nil)
		return
	}

	if err := h.cmds.UpdateFields(c.Request.Context(), c.Param("id"), req.ToPatch()); err != nil {
		switch {
		case errors.Is(err, commands.ErrRegistrationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, msgNotFound, nil)
		case errors.Is(err, commands.ErrValidation), errors.Is(err, commands.ErrNothingToUpdate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, msgValidation, nil)
		case errors.Is(err, commands.ErrDuplicateEmail):
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeDuplicateEmail, msgDuplicateEmail, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeUnavailable, msgUnavailable, nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

// @Summary Export registrations
// @Description UTF-8 CSV (with BOM) of every record of an event, all statuses included
// @Tags admin
// @Produce text/csv
// @Security BearerAuth
// @Param eventKind query string true "Event kind"
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/registrations/export [get]
func (h *AdminHandler) Export(c *gin.Context) {
	var query reqdto.ExportRegistrationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, msgValidation, nil)
		return
	}

	var buf bytes.Buffer
	if err := h.q.ExportCSV(c.Request.Context(), query.EventKind, &buf); err != nil {
		if errors.Is(err, queries.ErrUnknownEvent) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, msgValidation, nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeUnavailable, msgUnavailable, nil)
		return
	}

	filename := fmt.Sprintf("registrations_%s_%s.csv", query.EventKind, h.clock.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
