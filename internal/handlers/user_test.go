package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/neko-list/internal/models"
	"github.com/sbilibin2017/neko-list/internal/services"
	"github.com/stretchr/testify/assert"
)

// withURLParam attaches a chi route context carrying key=value.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name string
		id   string
		mockSetup    func(m *MockUserGetter)
		expectedCode int
		expectedBody string
	}{
		{
			name: "found",
			id:   "1",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.UserDB{
					ID:           1,
					Name:         "Taro",
					Email:        "taro@example.com",
					PasswordHash: "digest",
					Country:      strPtr("Japan"),
					CreatedAt:    testTime,
					UpdatedAt:    testTime,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"name":"Taro","email":"taro@example.com","country":"Japan","hobby":null,
				"created_at":"2024-06-01T09:30:00Z"}`,
		},
		{
			name: "not found",
			id:   "2",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"detail":"User not found"}`,
		},
		{
			name: "store error",
			id:   "3",
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"detail":"Internal server error"}`,
		},
		{
			name:         "non numeric id",
			id:           "abc",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"detail":"Invalid user id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/"+tt.id, nil), "id", tt.id)
			rr := httptest.NewRecorder()
			NewGetUserHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
