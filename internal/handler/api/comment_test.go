//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"itemshare/internal/handler/api"
	reqdto "itemshare/internal/handler/dto/request"
	resdto "itemshare/internal/handler/dto/response"
	"itemshare/internal/handler/middleware"
	"itemshare/internal/usecase/commands"
	"itemshare/internal/usecase/queries"
	"itemshare/tests/common/httptest"
	commandsmock "itemshare/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CommentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCommentCommands
	handler      *api.CommentHandler
}

func (s *CommentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCommentCommands(s.mockCtrl)
	s.handler = api.NewCommentHandler(s.mockCommands)

	identity := middleware.NewIdentityMiddleware()
	items := s.router.Group("/items")
	items.Use(identity.RequireUser())
	items.POST("/:itemId/comment", s.handler.Create)
}

func (s *CommentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCommentHandlerSuite(t *testing.T) {
	suite.Run(t, new(CommentHandlerTestSuite))
}

func (s *CommentHandlerTestSuite) TestCreate() {
	itemID := uuid.New()
	authorID := uuid.New()
	url := "/items/" + itemID.String() + "/comment"
	reqBody := reqdto.CreateCommentRequest{Text: "Great drill!"}

	returnView := &queries.CommentView{
		ID:         uuid.New(),
		ItemID:     itemID,
		AuthorName: "Test Booker",
		Text:       "Great drill!",
		CreatedAt:  time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	s.Run("success: returns 201 Created with CommentResponse", func() {
		s.mockCommands.EXPECT().AddComment(gomock.Any(), itemID, authorID, "Great drill!").
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, authorID)

		var response resdto.CommentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("Great drill!", response.Text)
		s.Equal("Test Booker", response.AuthorName)
	})

	s.Run("error: 400 Bad Request on malformed item id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items/not-a-uuid/comment", reqBody, authorID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid item ID")
	})

	s.Run("error: 400 Bad Request on missing text", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, authorID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"unknown author", commands.ErrUserNotFound, http.StatusNotFound, "User not found"},
			{"unknown item", commands.ErrItemNotFound, http.StatusNotFound, "Item not found"},
			{"whitespace-only text", commands.ErrEmptyComment, http.StatusBadRequest, "empty"},
			{"booking not started", commands.ErrFutureBookingOnly, http.StatusBadRequest, "not started"},
			{"never booked", commands.ErrNeverBooked, http.StatusBadRequest, "never booked"},
			{"storage failure", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddComment(gomock.Any(), itemID, authorID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, authorID)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
