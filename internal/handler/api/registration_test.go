//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"event-registration/internal/domain/event"
	"event-registration/internal/handler/api"
	"event-registration/internal/pkg/errs"
	"event-registration/internal/usecase/commands"
	"event-registration/tests/common/builder"
	"event-registration/tests/common/httptest"
	"event-registration/tests/common/testutil"
	commandsmock "event-registration/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RegistrationHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAdmission    *commandsmock.MockAdmissionCommands
	mockCancellation *commandsmock.MockCancellationCommands
	handler          *api.RegistrationHandler
}

func (s *RegistrationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAdmission = commandsmock.NewMockAdmissionCommands(s.mockCtrl)
	s.mockCancellation = commandsmock.NewMockCancellationCommands(s.mockCtrl)
	s.handler = api.NewRegistrationHandler(s.mockAdmission, s.mockCancellation)

	s.router.POST("/registrations", s.handler.Submit)
	s.router.POST("/registrations/cancel", s.handler.Cancel)
}

func (s *RegistrationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRegistrationHandlerSuite(t *testing.T) {
	suite.Run(t, new(RegistrationHandlerTestSuite))
}

type testCaseRegistration struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *RegistrationHandlerTestSuite) TestSubmit() {
	url := "/registrations"
	reqBody := builder.NewRegistrationBuilder().BuildSubmitRequestDTO()
	accepted := &commands.AdmissionResult{Accepted: true, ID: "TOURB-A1B2C3", Seats: 1}

	s.Run("success: returns 201 with the registration id", func() {
		s.mockAdmission.EXPECT().Admit(gomock.Any(), builder.NewRegistrationBuilder().BuildAdmitInput()).
			Return(accepted, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("TOURB-A1B2C3", body["id"])
		s.Equal(true, body["accepted"])
	})

	s.Run("success: group members are forwarded", func() {
		group := builder.NewRegistrationBuilder().WithEvent(event.KindGolfOuting, "").WithMembers("佐藤 花子", "鈴木 一郎")
		s.mockAdmission.EXPECT().Admit(gomock.Any(), group.BuildAdmitInput()).
			Return(&commands.AdmissionResult{Accepted: true, ID: "GOLF-A1B2C3", Seats: 3}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, group.BuildSubmitRequestDTO(), "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	bound := []testCaseRegistration{
		{name: "family name length OK (50 chars)", mutate: testutil.Field("familyName", strings.Repeat("山", 50)), expectCode: http.StatusCreated},
		{name: "family name too long (51 chars)", mutate: testutil.Field("familyName", strings.Repeat("山", 51)), expectCode: http.StatusBadRequest},
		{name: "phone too long", mutate: testutil.Field("phone", strings.Repeat("0", 21)), expectCode: http.StatusBadRequest},
		{name: "invalid email format", mutate: testutil.Field("contactEmail", "taro.example.com"), expectCode: http.StatusBadRequest},
		{name: "too many members", mutate: testutil.Field("groupMembers", make([]map[string]string, 11)), expectCode: http.StatusBadRequest},
	}
	missing := []testCaseRegistration{
		{name: "missing field: eventKind", mutate: testutil.Field("eventKind", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: contactEmail", mutate: testutil.Field("contactEmail", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: familyName", mutate: testutil.Field("familyName", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: givenName", mutate: testutil.Field("givenName", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseRegistration{bound, missing} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusCreated {
						s.mockAdmission.EXPECT().Admit(gomock.Any(), gomock.Any()).Return(accepted, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorCode(s.T(), rec, tc.expectCode, "VALIDATION")
					}
				})
			}
		}
	})

	s.Run("error: 400 CAPACITY_EXCEEDED when waitlisted", func() {
		s.mockAdmission.EXPECT().Admit(gomock.Any(), gomock.Any()).
			Return(&commands.AdmissionResult{Accepted: false, Reason: commands.ReasonCapacityExceeded, Seats: 1}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "CAPACITY_EXCEEDED")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "定員に達した")
		s.NotContains(rec.Body.String(), `"id"`)
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
		errorCode  string
	}{
		{name: "domain validation", err: errs.Mark(errors.New("unknown slot label"), commands.ErrValidation), expectCode: http.StatusBadRequest, errorCode: "VALIDATION"},
		{name: "duplicate email", err: commands.ErrDuplicateEmail, expectCode: http.StatusBadRequest, errorCode: "DUPLICATE_EMAIL"},
		{name: "store unavailable", err: errs.Mark(errors.New("connection refused"), commands.ErrStoreUnavailable), expectCode: http.StatusInternalServerError, errorCode: "STORE_UNAVAILABLE"},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockAdmission.EXPECT().Admit(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			httptest.AssertErrorCode(s.T(), rec, tc.expectCode, tc.errorCode)
		})
	}
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *RegistrationHandlerTestSuite) TestCancel() {
	url := "/registrations/cancel"
	reqBody := map[string]any{"id": "TOURB-A1B2C3", "contactEmail": "taro.yamada@example.com", "reason": "予定変更"}

	s.Run("success: returns 200", func() {
		s.mockCancellation.EXPECT().Cancel(gomock.Any(), commands.CancelInput{
			ID: "TOURB-A1B2C3", Email: "taro.yamada@example.com", Reason: "予定変更",
		}).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body["success"])
	})

	s.Run("error: 400 on missing id", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("id", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION")
	})

	s.Run("error: 400 NOT_FOUND when nothing was cancelled", func() {
		s.mockCancellation.EXPECT().Cancel(gomock.Any(), gomock.Any()).Return(commands.ErrRegistrationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "NOT_FOUND")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "受付番号とメールアドレス")
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockCancellation.EXPECT().Cancel(gomock.Any(), gomock.Any()).
			Return(errs.Mark(errors.New("timeout"), commands.ErrStoreUnavailable)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusInternalServerError, "STORE_UNAVAILABLE")
	})
}
