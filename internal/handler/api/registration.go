package api

import (
	"errors"
	"net/http"

	reqdto "event-registration/internal/handler/dto/request"
	resdto "event-registration/internal/handler/dto/response"
	"event-registration/internal/handler/httperr"
	"event-registration/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	admission    commands.AdmissionCommands
	cancellation commands.CancellationCommands
}

func NewRegistrationHandler(admission commands.AdmissionCommands, cancellation commands.CancellationCommands) *RegistrationHandler {
	return &RegistrationHandler{
		admission:    admission,
		cancellation: cancellation,
	}
}

// @Summary Submit registration
// @Description Admit an applicant (plus named group members) to an event. A full event records the applicant on the waitlist and answers CAPACITY_EXCEEDED.
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitRegistrationRequest true "Registration request"
// @Success 201 {object} resdto.SubmitRegistrationResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /registrations [post]
func (h *RegistrationHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, msgValidation, nil)
		return
	}

	result, err := h.admission.Admit(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, msgValidation, nil)
		case errors.Is(err, commands.ErrDuplicateEmail):
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeDuplicateEmail, msgDuplicateEmail, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeUnavailable, msgUnavailable, nil)
		}
		return
	}

	if !result.Accepted {
		httperr.AbortWithError(c, http.StatusBadRequest, errCapacityExceeded, httperr.CodeCapacityExceeded, msgCapacityExceeded, nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.SubmitRegistrationResponse{ID: result.ID, Accepted: true})
}

// @Summary Cancel registration
// @Description Cancel an active registration identified by its id and contact email
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body reqdto.CancelRegistrationRequest true "Cancel request"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /registrations/cancel [post]
func (h *RegistrationHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, msgValidation, nil)
		return
	}

	if err := h.cancellation.Cancel(c.Request.Context(), req.ToInput()); err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeValidation, msgValidation, nil)
		case errors.Is(err, commands.ErrRegistrationNotFound):
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeNotFound, msgCancelFailed, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeUnavailable, msgUnavailable, nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}
