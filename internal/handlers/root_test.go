package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/neko-list/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestBannerHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewBannerHandler("1.2.3")(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Neko List API is running!","version":"1.2.3"}`, rr.Body.String())
}

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		checkErr     error
		expectedCode int
		expectedBody string
	}{
		{name: "healthy", expectedCode: http.StatusOK, expectedBody: `{"status":"healthy"}`},
		{
			name:         "unhealthy",
			checkErr:     errors.New("db: connection refused"),
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: `{"status":"unhealthy"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewMockHealthChecker(ctrl)
			checker.EXPECT().Check(gomock.Any()).Return(tt.checkErr)

			rr := httptest.NewRecorder()
			NewHealthHandler(checker)(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestTestHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewTestHandler()(rr, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Test endpoint working","data":"Hello from Neko List!"}`, rr.Body.String())
}

func TestFallbackHandlers(t *testing.T) {
	rr := httptest.NewRecorder()
	NotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	MethodNotAllowed(rr, httptest.NewRequest(http.MethodPatch, "/cats", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	TooManyRequests(rr, httptest.NewRequest(http.MethodPost, "/users/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.JSONEq(t, `{"detail":"Too many requests"}`, rr.Body.String())
}

func TestWriteServiceError_WrappedSentinels(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "bare validation sentinel",
			err:          fmt.Errorf("decode patch: %w", services.ErrValidation),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"detail":"Invalid request"}`,
		},
		{
			name:         "wrapped not found",
			err:          fmt.Errorf("load cat 3: %w", services.ErrCatNotFound),
			expectedCode: http.StatusNotFound,
			expectedBody: `{"detail":"Cat not found"}`,
		},
		{
			name:         "authentication required",
			err:          services.ErrAuthenticationRequired,
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"detail":"Authentication required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeServiceError(rr, tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
