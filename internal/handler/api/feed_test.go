//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"bakery-preorder/internal/handler/api"
	resdto "bakery-preorder/internal/handler/dto/response"
	"bakery-preorder/internal/pkg/errs"
	"bakery-preorder/internal/usecase/queries"
	"bakery-preorder/internal/usecase/readmodel"
	"bakery-preorder/tests/common/httptest"
	queriesmock "bakery-preorder/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FeedHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockFeedQueries
	handler     *api.FeedHandler
}

func (s *FeedHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockFeedQueries(s.mockCtrl)
	s.handler = api.NewFeedHandler(s.mockQueries)

	s.router.GET("/instagram", s.handler.List)
}

func (s *FeedHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFeedHandlerSuite(t *testing.T) {
	suite.Run(t, new(FeedHandlerTestSuite))
}

func (s *FeedHandlerTestSuite) TestList() {
	s.Run("success: returns the media list", func() {
		view := &queries.FeedView{
			Configured: true,
			Items: []readmodel.MediaView{
				{ID: "1", Caption: "焼きたてパン", MediaType: "IMAGE", MediaURL: "https://cdn.example.com/1.jpg", Permalink: "https://instagram.com/p/1"},
			},
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/instagram", nil)

		var body resdto.FeedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Configured)
		s.Require().Len(body.Items, 1)
		s.Equal("焼きたてパン", body.Items[0].Caption)
		s.Empty(body.Notice)
	})

	s.Run("success: unconfigured feed returns the setup placeholder", func() {
		view := &queries.FeedView{
			Configured: false,
			Items:      []readmodel.MediaView{},
			Notice:     "Instagramのアクセストークンが設定されていません。",
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/instagram", nil)

		var body resdto.FeedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Configured)
		s.Empty(body.Items)
		s.NotEmpty(body.Notice)
	})

	s.Run("error: 502 when the feed is unavailable", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errs.Mark(errs.New("api error"), queries.ErrFeedUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/instagram", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Failed to load social feed")
	})

	s.Run("error: 500 on unexpected failures", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errs.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/instagram", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
