//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"hotel-management/internal/handler/api"
	resdto "hotel-management/internal/handler/dto/response"
	"hotel-management/internal/handler/middleware"
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

type GuestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockGuestCommands
	mockQueries  *queriesmock.MockGuestQueries
	handler      *api.GuestHandler
}

func (s *GuestHandlerTestSuite) SetupSuite() {
	s.Require().NoError(validation.Register())
}

func (s *GuestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGuestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockGuestQueries(s.mockCtrl)
	s.handler = api.NewGuestHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/api/guests", s.handler.List)
	s.router.POST("/api/guests", s.handler.Create)
	s.router.POST("/api/guests/bulk", s.handler.BulkCreate)
	s.router.POST("/api/guests/populate", s.handler.Populate)
	s.router.GET("/api/guests/:id", s.handler.Get)
	s.router.PUT("/api/guests/:id", s.handler.Update)
	s.router.DELETE("/api/guests/:id", s.handler.Delete)
}

func (s *GuestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuestHandlerSuite(t *testing.T) {
	suite.Run(t, new(GuestHandlerTestSuite))
}

type testCaseGuest struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *GuestHandlerTestSuite) TestCreate() {
	url := "/api/guests"

	b := builder.NewGuestBuilder()
	reqBody := b.BuildRequest()
	view := b.BuildView()

	bound := []testCaseGuest{
		{name: "name length OK (100 chars)", mutate: testutil.Field("name", strings.Repeat("a", 100)), expectCode: http.StatusCreated},
		{name: "name length invalid (101 chars)", mutate: testutil.Field("name", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
		{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "phone with letters", mutate: testutil.Field("phone", "555-CALL-NOW"), expectCode: http.StatusBadRequest},
		{name: "phone with parentheses OK", mutate: testutil.Field("phone", "(555) 010-1234"), expectCode: http.StatusCreated},
	}

	missing := []testCaseGuest{
		{name: "missing field: name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: phone", mutate: testutil.Field("phone", nil), expectCode: http.StatusBadRequest},
	}

	empty := []testCaseGuest{
		{name: "empty name", mutate: testutil.Field("name", ""), expectCode: http.StatusBadRequest},
		{name: "empty email", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 with the stored guest", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToInput()).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.Email, body.Email)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/guests/" + view.ID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseGuest{bound, missing, empty} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view.ID, nil)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
					}
				})
			}
		}
	})

	s.Run("error: field details name the failing field", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", "nope"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertFieldError(s.T(), rec, "email")
	})

	s.Run("error: malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"name":`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "duplicate email",
				commandsError:  commands.ErrDuplicateEmail,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "a guest with this email already exists",
			},
			{
				name:           "unclassified error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToInput()).Return(uuid.Nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *GuestHandlerTestSuite) TestGet() {
	view := builder.NewGuestBuilder().BuildView()

	s.Run("success: returns the guest", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/guests/"+view.ID.String(), nil)

		var body resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Name, body.Name)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/guests/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when guest is missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrGuestNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/guests/"+view.ID.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "guest not found")
	})
}

func (s *GuestHandlerTestSuite) TestList() {
	s.Run("success: empty store renders []", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.GuestView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/guests", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("success: returns every guest", func() {
		views := []*queries.GuestView{
			builder.NewGuestBuilder().BuildView(),
			builder.NewGuestBuilder().WithEmail("jane@email.com").BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/guests", nil)

		var body []resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *GuestHandlerTestSuite) TestUpdate() {
	b := builder.NewGuestBuilder()
	view := b.BuildView()
	reqBody := b.BuildRequest()
	url := "/api/guests/" + view.ID.String()

	s.Run("success: returns the updated guest", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, reqBody.ToInput()).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when guest is missing", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).Return(commands.ErrGuestNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "guest not found")
	})
}

func (s *GuestHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/api/guests/" + id.String()

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 409 while reservations reference the guest", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(commands.ErrGuestReferenced)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot be deleted")
	})
}

// ================================================================================
// TestBulkCreate / TestPopulate
// ================================================================================

func (s *GuestHandlerTestSuite) TestBulkCreate() {
	url := "/api/guests/bulk"
	first := builder.NewGuestBuilder().WithEmail("a@email.com")
	second := builder.NewGuestBuilder().WithEmail("b@email.com")
	dup := builder.NewGuestBuilder().WithEmail("a@email.com")

	s.Run("success: one duplicate is reported and skipped", func() {
		reqBody := map[string]any{"guests": []any{first.BuildRequest(), second.BuildRequest(), dup.BuildRequest()}}
		result := &commands.BulkResult{
			Created:        []uuid.UUID{first.ID, second.ID},
			TotalRequested: 3,
			TotalCreated:   2,
			Errors:         []string{"Guest 3: a guest with this email already exists"},
		}
		s.mockCommands.EXPECT().BulkCreate(gomock.Any(), gomock.Len(3)).Return(result, nil)
		s.mockQueries.EXPECT().ListByIDs(gomock.Any(), result.Created).
			Return([]*queries.GuestView{first.BuildView(), second.BuildView()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BulkResultResponse[resdto.GuestResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Created 2 of 3 guests", body.Message)
		s.Equal(2, body.TotalCreated)
		s.Len(body.Created, 2)
		s.Len(body.Errors, 1)
	})

	s.Run("error: 400 on empty list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"guests": []any{}})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: nested field errors carry the index", func() {
		bad := first.BuildRequest()
		bad.Email = "broken"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"guests": []any{bad}})
		httptest.AssertFieldError(s.T(), rec, "guests[0].email")
	})
}

func (s *GuestHandlerTestSuite) TestPopulate() {
	s.Run("success: defaults count to 10", func() {
		result := &commands.BulkResult{Created: []uuid.UUID{}, TotalRequested: 10, Errors: []string{}}
		s.mockCommands.EXPECT().Populate(gomock.Any(), commands.PopulateGuestsInput{Count: 10}).Return(result, nil)
		s.mockQueries.EXPECT().ListByIDs(gomock.Any(), result.Created).Return([]*queries.GuestView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/guests/populate", nil)

		var body resdto.BulkResultResponse[resdto.GuestResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("No guests were created", body.Message)
		s.NotNil(body.Created)
	})

	s.Run("success: passes kind and seed through", func() {
		seed := uint64(7)
		in := commands.PopulateGuestsInput{Kind: "premium", Count: 10, Seed: &seed}
		result := &commands.BulkResult{Created: []uuid.UUID{}, Errors: []string{}}
		s.mockCommands.EXPECT().Populate(gomock.Any(), in).Return(result, nil)
		s.mockQueries.EXPECT().ListByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/guests/populate?kind=premium&seed=7", nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 when count is out of range", func() {
		s.mockCommands.EXPECT().Populate(gomock.Any(), gomock.Any()).Return(nil, commands.ErrInvalidPopulateCount)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/guests/populate?count=500", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "count must be between 1 and")
	})
}
