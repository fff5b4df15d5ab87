//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"hotel-management/internal/handler/api"
	resdto "hotel-management/internal/handler/dto/response"
	"hotel-management/internal/handler/validation"
	"hotel-management/internal/usecase/commands"
	"hotel-management/internal/usecase/queries"
	"hotel-management/tests/common/builder"
	"hotel-management/tests/common/httptest"
	"hotel-management/tests/common/testutil"
	commandsmock "hotel-management/tests/mock/commands"
	queriesmock "hotel-management/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockRoomCommands
	mockQueries      *queriesmock.MockRoomQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
}

func (s *RoomHandlerTestSuite) SetupSuite() {
	s.Require().NoError(validation.Register())
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	h := api.NewRoomHandler(s.mockCommands, s.mockQueries, s.mockAvailability)

	s.router.GET("/api/rooms", h.List)
	s.router.POST("/api/rooms", h.Create)
	s.router.GET("/api/rooms/available", h.ListAvailable)
	s.router.POST("/api/rooms/bulk", h.BulkCreate)
	s.router.POST("/api/rooms/populate-floor", h.PopulateFloor)
	s.router.GET("/api/rooms/:id", h.Get)
	s.router.PUT("/api/rooms/:id", h.Update)
	s.router.DELETE("/api/rooms/:id", h.Delete)
	s.router.GET("/api/rooms/:id/availability", h.Availability)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestCreate() {
	url := "/api/rooms"
	b := builder.NewRoomBuilder()
	reqBody := b.BuildRequest()
	view := b.BuildView()

	cases := []struct {
		name       string
		mutate     func(m map[string]any)
		expectCode int
	}{
		{name: "price 0.01 OK", mutate: testutil.Field("price_per_night", 0.01), expectCode: http.StatusCreated},
		{name: "price 0 invalid", mutate: testutil.Field("price_per_night", 0), expectCode: http.StatusBadRequest},
		{name: "negative price invalid", mutate: testutil.Field("price_per_night", -5), expectCode: http.StatusBadRequest},
		{name: "price at ceiling OK", mutate: testutil.Field("price_per_night", 1000000), expectCode: http.StatusCreated},
		{name: "price above ceiling invalid", mutate: testutil.Field("price_per_night", 1000000.01), expectCode: http.StatusBadRequest},
		{name: "huge price invalid", mutate: testutil.Field("price_per_night", 1e300), expectCode: http.StatusBadRequest},
		{name: "room number 50 chars OK", mutate: testutil.Field("room_number", strings.Repeat("1", 50)), expectCode: http.StatusCreated},
		{name: "room number 51 chars invalid", mutate: testutil.Field("room_number", strings.Repeat("1", 51)), expectCode: http.StatusBadRequest},
		{name: "description 501 chars invalid", mutate: testutil.Field("description", strings.Repeat("d", 501)), expectCode: http.StatusBadRequest},
		{name: "missing field: room_type", mutate: testutil.Field("room_type", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: price_per_night", mutate: testutil.Field("price_per_night", nil), expectCode: http.StatusBadRequest},
		{name: "is_available omitted OK", mutate: testutil.Field("is_available", nil), expectCode: http.StatusCreated},
	}

	s.Run("success: price is stored in cents and rendered in dollars", func() {
		in := reqBody.ToInput()
		s.Equal(int64(8900), in.PricePerNightCents)
		s.mockCommands.EXPECT().Create(gomock.Any(), in).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.InDelta(89.0, body.PricePerNight, 0.001)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/rooms/" + view.ID.String()})
	})

	s.Run("validation", func() {
		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view.ID, nil)
					s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 409 on duplicate room number", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, commands.ErrDuplicateRoomNumber)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "a room with this number already exists")
	})
}

func (s *RoomHandlerTestSuite) TestListAvailable() {
	s.Run("success: only flagged rooms are returned", func() {
		flagged := builder.NewRoomBuilder().BuildView()
		s.mockQueries.EXPECT().ListAvailable(gomock.Any()).Return([]*queries.RoomView{flagged}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/available", nil)

		var body []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(flagged.ID, body[0].ID)
	})
}

func (s *RoomHandlerTestSuite) TestUpdateAndDelete() {
	b := builder.NewRoomBuilder()
	view := b.BuildView()
	url := "/api/rooms/" + view.ID.String()

	s.Run("success: update keeps the id and returns the room", func() {
		reqBody := map[string]any{
			"room_number":     "101",
			"room_type":       "Deluxe Double",
			"price_per_night": 150.5,
			"is_available":    false,
		}
		expected := commands.RoomInput{
			RoomNumber:         "101",
			RoomType:           "Deluxe Double",
			PricePerNightCents: 15050,
			IsAvailable:        false,
		}
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, expected).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: delete of a referenced room is 409", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), view.ID).Return(commands.ErrRoomReferenced)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "room has reservations")
	})

	s.Run("error: delete of a missing room is 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), view.ID).Return(commands.ErrRoomNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "room not found")
	})
}

func (s *RoomHandlerTestSuite) TestAvailability() {
	id := uuid.New()
	base := "/api/rooms/" + id.String() + "/availability"
	checkIn := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	s.Run("success: reports the single room", func() {
		s.mockAvailability.EXPECT().IsRoomAvailable(gomock.Any(), id, checkIn, checkOut).
			Return(&queries.RoomAvailabilityCheck{RoomID: id, CheckIn: checkIn, CheckOut: checkOut, IsAvailable: false}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?check_in=2025-01-04&check_out=2025-01-06", nil)

		var body resdto.RoomAvailabilityCheckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.IsAvailable)
	})

	s.Run("error: 400 when dates are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?check_in=2025-01-04", nil)
		httptest.AssertFieldError(s.T(), rec, "check_out")
	})

	s.Run("error: 400 when dates are not YYYY-MM-DD", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?check_in=04/01/2025&check_out=2025-01-06", nil)
		httptest.AssertFieldError(s.T(), rec, "check_in")
	})

	s.Run("error: 400 when check-out is not after check-in", func() {
		s.mockAvailability.EXPECT().IsRoomAvailable(gomock.Any(), id, checkOut, checkIn).Return(nil, queries.ErrInvalidDateRange)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?check_in=2025-01-06&check_out=2025-01-04", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "check-out date must be after check-in date")
	})

	s.Run("error: 404 for an unknown room", func() {
		s.mockAvailability.EXPECT().IsRoomAvailable(gomock.Any(), id, checkIn, checkOut).Return(nil, queries.ErrRoomNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?check_in=2025-01-04&check_out=2025-01-06", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "room not found")
	})
}

func (s *RoomHandlerTestSuite) TestPopulateFloor() {
	s.Run("success: defaults to floor 1 with 10 rooms", func() {
		created := []uuid.UUID{uuid.New(), uuid.New()}
		result := &commands.BulkResult{Created: created, TotalRequested: 2, TotalCreated: 2, Errors: []string{}}
		s.mockCommands.EXPECT().PopulateFloor(gomock.Any(), 1, 10).Return(result, nil)
		s.mockQueries.EXPECT().ListByIDs(gomock.Any(), created).Return([]*queries.RoomView{
			builder.NewRoomBuilder().WithNumber("101").BuildView(),
			builder.NewRoomBuilder().WithNumber("102").BuildView(),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/populate-floor", nil)

		var body resdto.BulkResultResponse[resdto.RoomResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Successfully created 2 rooms", body.Message)
		s.Len(body.Created, 2)
	})

	s.Run("error: 400 for floor out of range", func() {
		s.mockCommands.EXPECT().PopulateFloor(gomock.Any(), 21, 10).Return(nil, commands.ErrInvalidFloor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/rooms/populate-floor?floor=21", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "floor must be between 1 and")
	})
}
