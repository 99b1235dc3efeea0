package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/neko-list/internal/models"
	"github.com/sbilibin2017/neko-list/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name string
		body string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"email":"taro@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), models.LoginRequest{Email: "taro@example.com", Password: "secret123"}).
					Return(&models.UserDB{
						ID:        1,
						Name:      "Taro",
						Email:     "taro@example.com",
						Hobby:     strPtr("tea"),
						CreatedAt: testTime,
						UpdatedAt: testTime,
					}, "jwt-token", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"name":"Taro","email":"taro@example.com","country":null,"hobby":"tea",
				"created_at":"2024-06-01T09:30:00Z","updated_at":"2024-06-01T09:30:00Z",
				"access_token":"jwt-token","token_type":"bearer"}`,
		},
		{
			name: "invalid credentials",
			body: `{"email":"taro@example.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"detail":"Invalid email or password"}`,
		},
		{
			name: "internal error",
			body: `{"email":"taro@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, "", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"detail":"Internal server error"}`,
		},
		{
			name:         "invalid json",
			body:         `not json`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"detail":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
