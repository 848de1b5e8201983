//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.UserHandler
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/users", s.handler.Create)
	s.router.PATCH("/users/:userId", s.handler.Update)
	s.router.GET("/users/:userId", s.handler.Get)
	s.router.GET("/users", s.handler.List)
	s.router.DELETE("/users/:userId", s.handler.Delete)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestCreate() {
	b := builder.NewUserBuilder()
	view := b.BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildCreateRequestDTO().ToCommand()).
			Return(&commands.CreateUserResult{UserID: view.ID}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", b.BuildCreateRequestDTO(), "")

		var got resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(view.ID, got.ID)
		s.Equal(view.Email, got.Email)
	})

	s.Run("error: email already registered", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, commands.ErrEmailTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", b.BuildCreateRequestDTO(), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email already registered")
	})

	s.Run("validation: malformed email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users", map[string]any{"name": "Bob", "email": "bob"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *UserHandlerTestSuite) TestGetAndDelete() {
	view := builder.NewUserBuilder().BuildView()

	s.Run("get: missing user", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, shared.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+view.ID.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "user not found")
	})

	s.Run("list", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.UserView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "")

		var got []resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Len(got, 1)
	})

	s.Run("delete: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), view.ID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/"+view.ID.String(), nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})
}
