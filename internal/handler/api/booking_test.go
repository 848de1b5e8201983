//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	"shareit/tests/common/testutil"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, clock.NewMockClock(now), config.NewTestConfig())
	s.userID = uuid.New()

	bookings := s.router.Group("/bookings", middleware.RequireIdentity())
	bookings.POST("", s.handler.Create)
	bookings.PATCH("/:bookingId", s.handler.Decide)
	bookings.GET("/:bookingId", s.handler.Get)
	bookings.GET("", s.handler.ListByBooker)
	bookings.GET("/owner", s.handler.ListByOwner)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type validationCase struct {
	name         string
	mutate       testutil.Mutation
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder(now).WithBooker(s.userID)
	view := b.BuildView()

	s.Run("success: returns 201 with the WAITING booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, b.BuildCreateRequestDTO().ToCommand()).
			Return(&commands.CreateBookingResult{BookingID: view.ID}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO(), s.userID.String())

		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(view.ID, got.ID)
		s.Equal("WAITING", got.Status)
		s.Equal(view.Item.ID, got.Item.ID)
		s.Equal(s.userID, got.Booker.ID)
	})

	validation := []validationCase{
		{name: "missing itemId", mutate: testutil.Field("itemId", nil), expectCode: http.StatusBadRequest},
		{name: "missing start", mutate: testutil.Field("start", nil), expectCode: http.StatusBadRequest},
		{name: "missing end", mutate: testutil.Field("end", nil), expectCode: http.StatusBadRequest},
		{
			name:         "start in the past",
			mutate:       testutil.Field("start", now.Add(-time.Minute).Format(time.RFC3339)),
			expectCode:   http.StatusBadRequest,
			expectInBody: "start must not be in the past",
		},
		{
			name:         "end in the past",
			mutate:       testutil.Field("end", now.Add(-time.Minute).Format(time.RFC3339)),
			expectCode:   http.StatusBadRequest,
			expectInBody: "end must be in the future",
		},
		{name: "malformed itemId", mutate: testutil.Field("itemId", "not-a-uuid"), expectCode: http.StatusBadRequest},
	}

	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			body := testutil.DtoMap(s.T(), b.BuildCreateRequestDTO(), tc.mutate)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.userID.String())

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
		})
	}

	s.Run("error: missing caller header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO(), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "X-Sharer-User-Id")
	})

	s.Run("error: malformed caller header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO(), "42")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "malformed")
	})

	useCaseErrors := []struct {
		err  error
		code int
	}{
		{err: commands.ErrOwnerBooksOwnItem, code: http.StatusNotFound},
		{err: shared.ErrItemNotFound, code: http.StatusNotFound},
		{err: commands.ErrItemUnavailable, code: http.StatusBadRequest},
		{err: commands.ErrInvalidTimeRange, code: http.StatusBadRequest},
	}
	for _, tc := range useCaseErrors {
		s.Run("error: "+tc.err.Error(), func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO(), s.userID.String())

			httptest.AssertErrorResponse(s.T(), rec, tc.code, tc.err.Error())
		})
	}
}

// ================================================================================
// TestDecide
// ================================================================================

func (s *BookingHandlerTestSuite) TestDecide() {
	view := builder.NewBookingBuilder(now).WithItem(uuid.New(), s.userID).WithStatus(booking.StatusApproved).BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: approve", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), s.userID, view.ID, true).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, s.userID.String())

		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("APPROVED", got.Status)
	})

	s.Run("error: approved is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, s.userID.String())

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/abc?approved=true", nil, s.userID.String())

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid bookingId")
	})

	s.Run("error: already decided", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), s.userID, view.ID, false).Return(commands.ErrBookingAlreadyDecided)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=false", nil, s.userID.String())

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already decided")
	})

	s.Run("error: not the owner", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), s.userID, view.ID, true).Return(commands.ErrNotItemOwner)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, s.userID.String())

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder(now).WithBooker(s.userID).BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, s.userID.String())

		var got resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(view.ID, got.ID)
	})

	s.Run("error: hidden from strangers", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(nil, shared.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, s.userID.String())

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: defaults to ALL and first page", func() {
		views := []*queries.BookingView{builder.NewBookingBuilder(now).WithBooker(s.userID).BuildView()}
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.userID, booking.RoleBooker, booking.StateAll, queries.Page{Index: 0, Size: 10}).
			Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, s.userID.String())

		var got []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Len(got, 1)
	})

	s.Run("success: owner listing with state and paging", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.userID, booking.RoleOwner, booking.StateCurrent, queries.Page{Index: 2, Size: 2}).
			Return([]*queries.BookingView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?state=current&from=4&size=2", nil, s.userID.String())

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: unknown state", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=UNSUPPORTED_STATUS", nil, s.userID.String())

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown state: UNSUPPORTED_STATUS")
	})

	invalidPaging := []string{"from=-1", "size=0", "size=-3", "from=abc"}
	for _, q := range invalidPaging {
		s.Run("error: invalid paging "+q, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?"+q, nil, s.userID.String())

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		})
	}
}
