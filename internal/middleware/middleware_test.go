package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/roadmap/internal/app/models/dto"
	"github.com/yigit/roadmap/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"course not found", fmt.Errorf("lookup: %w", apperrors.ErrCourseNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"major not found", apperrors.ErrMajorNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate course", apperrors.ErrCourseAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"cycle", apperrors.ErrPrerequisiteCycle, http.StatusConflict, dto.ErrorCodePrerequisiteCycle},
		{"duplicate edge", apperrors.ErrPrerequisiteExists, http.StatusConflict, dto.ErrorCodePrerequisiteExist},
		{"too large", apperrors.ErrTranscriptTooLarge, http.StatusRequestEntityTooLarge, dto.ErrorCodePayloadTooLarge},
		{"bad request", apperrors.NewBadRequestError("unknown term"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown", fmt.Errorf("connection reset"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/test", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeError(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestHandleAPIErrorCustomMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, apperrors.NewBadRequestError("unknown term \"Summer\""))

	resp := decodeError(t, w)
	assert.Equal(t, "unknown term \"Summer\"", resp.Error.Details)
}

type bindTarget struct {
	Name  string `json:"name" form:"name" binding:"required"`
	Count int    `json:"count" form:"count" binding:"omitempty,min=1"`
}

func TestBindJSON(t *testing.T) {
	r := gin.New()
	r.POST("/", BodyLimit(32), func(c *gin.Context) {
		var body bindTarget
		if !BindJSON(c, &body) {
			return
		}
		c.JSON(http.StatusOK, body)
	})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"name":"a","count":2}`, http.StatusOK},
		{"missing field", `{"count":2}`, http.StatusBadRequest},
		{"malformed", `{"name":`, http.StatusBadRequest},
		{"too large", `{"name":"` + strings.Repeat("a", 64) + `"}`, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestBindQuery(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		var q bindTarget
		if !BindQuery(c, &q) {
			return
		}
		c.String(http.StatusOK, q.Name)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?name=x", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?count=0", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, decodeError(t, w).Error.Code)
}

func TestRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), RequestLogger(zerolog.New(&buf)))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Contains(t, buf.String(), generated)
	assert.Contains(t, buf.String(), `"status":200`)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
