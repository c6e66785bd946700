package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{
			name:       "Success with map data",
			statusCode: http.StatusCreated,
			message:    "Income recorded successfully",
			data:       map[string]interface{}{"amount": 2500.0, "source": "manual"},
		},
		{
			name:       "Success with nil data",
			statusCode: http.StatusOK,
			message:    "OK",
			data:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)
			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			assert.Equal(t, tt.data, response.Data)
		})
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name         string
		invoke       func(echo.Context) error
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "Bad request",
			invoke:       func(c echo.Context) error { return BadRequestResponse(c, "Invalid request payload") },
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid request payload",
		},
		{
			name:         "Unauthorized with default message",
			invoke:       func(c echo.Context) error { return UnauthorizedResponse(c, "") },
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Unauthorized",
		},
		{
			name:         "Forbidden",
			invoke:       func(c echo.Context) error { return ForbiddenResponse(c, "Invalid token") },
			expectedCode: http.StatusForbidden,
			expectedMsg:  "Invalid token",
		},
		{
			name:         "Internal server error with default message",
			invoke:       func(c echo.Context) error { return InternalServerErrorResponse(c, "") },
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := tt.invoke(c)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCode, rec.Code)

			var response ErrorResponse
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.False(t, response.Success)
			assert.Equal(t, tt.expectedMsg, response.Error)
			assert.Equal(t, tt.expectedCode, response.Code)
		})
	}
}
