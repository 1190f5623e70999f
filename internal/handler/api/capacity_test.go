//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"event-registration/internal/handler/api"
	resdto "event-registration/internal/handler/dto/response"
	"event-registration/internal/pkg/errs"
	"event-registration/internal/usecase/queries"
	"event-registration/tests/common/httptest"
	queriesmock "event-registration/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CapacityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCapacity *queriesmock.MockCapacityQueries
	handler      *api.CapacityHandler
}

func (s *CapacityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCapacity = queriesmock.NewMockCapacityQueries(s.mockCtrl)
	s.handler = api.NewCapacityHandler(s.mockCapacity)

	s.router.GET("/capacity", s.handler.Check)
	s.router.GET("/events", s.handler.Events)
}

func (s *CapacityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCapacityHandlerSuite(t *testing.T) {
	suite.Run(t, new(CapacityHandlerTestSuite))
}

func (s *CapacityHandlerTestSuite) TestCheck() {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	s.Run("success: slot capacity", func() {
		s.mockCapacity.EXPECT().Check(gomock.Any(), "facility_tour_A", "10:00-11:30").
			Return(&queries.CapacityView{
				EventKind: "facility_tour_A", SlotLabel: "10:00-11:30",
				CurrentCount: 18, MaxEntries: 20, RemainingSlots: 2, IsAvailable: true, Timestamp: now,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/capacity?eventKind=facility_tour_A&slotLabel=10:00-11:30", nil, "")

		var got resdto.CapacityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		want := resdto.CapacityResponse{
			EventKind: "facility_tour_A", SlotLabel: "10:00-11:30",
			CurrentCount: 18, MaxEntries: 20, RemainingSlots: 2, IsAvailable: true, Timestamp: now,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			s.T().Errorf("capacity response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: degraded read still answers 200 with hasError", func() {
		s.mockCapacity.EXPECT().Check(gomock.Any(), "golf_outing", "").
			Return(&queries.CapacityView{
				EventKind: "golf_outing", MaxEntries: 120, RemainingSlots: 5, IsAvailable: true, HasError: true, Timestamp: now,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/capacity?eventKind=golf_outing", nil, "")

		var got map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(true, got["hasError"])
		s.Equal(float64(5), got["remainingSlots"])
	})

	s.Run("error: 400 without eventKind", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/capacity", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION")
	})

	for _, target := range []error{queries.ErrUnknownEvent, queries.ErrInvalidSlot} {
		s.Run("error: 400 for "+target.Error(), func() {
			s.mockCapacity.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, errs.Mark(errors.New("bad input"), target)).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/capacity?eventKind=concert", nil, "")
			httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION")
		})
	}

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCapacity.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("unexpected")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/capacity?eventKind=golf_outing", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusInternalServerError, "STORE_UNAVAILABLE")
	})
}

func (s *CapacityHandlerTestSuite) TestEvents() {
	s.mockCapacity.EXPECT().Events(gomock.Any()).Return([]queries.EventView{
		{Kind: "facility_tour_A", Title: "施設見学会 A", Capacity: 40, Slots: []queries.SlotView{
			{Label: "10:00-11:30", Capacity: 20}, {Label: "13:30-15:00", Capacity: 20},
		}},
		{Kind: "golf_outing", Title: "チャリティゴルフコンペ", Capacity: 120, Group: true, MaxGroupMembers: 3},
	}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events", nil, "")

	var got []resdto.EventResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	want := []resdto.EventResponse{
		{Kind: "facility_tour_A", Title: "施設見学会 A", Capacity: 40, Slots: []resdto.SlotResponse{
			{Label: "10:00-11:30", Capacity: 20}, {Label: "13:30-15:00", Capacity: 20},
		}},
		{Kind: "golf_outing", Title: "チャリティゴルフコンペ", Capacity: 120, Group: true, MaxGroupMembers: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Errorf("events mismatch (-want +got):\n%s", diff)
	}
}
