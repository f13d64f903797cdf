package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/formgate/formgate/internal/api/handlers"
	"github.com/formgate/formgate/internal/api/middleware"
	"github.com/formgate/formgate/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment:      "development",
		ContactRecipient: "ops@example.com",
		RateLimitRPS:     100,
		RateLimitBurst:   100,
	}

	router := gin.New()
	SetupGlobalMiddleware(router, cfg)

	m := &Middleware{Validation: middleware.NewValidationMiddleware()}
	h := &Handlers{
		Contact: handlers.NewContactHandler(cfg, m.Validation.Validate(), nil),
		Health:  handlers.NewHealthHandler(),
	}
	Setup(router, h, m)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestContactMethodNotAllowed(t *testing.T) {
	router := newTestEngine(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			w := doRequest(router, method, "/api/contact", "")

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
		})
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	router := newTestEngine(t)

	w := doRequest(router, http.MethodGet, "/api/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestHealthz(t *testing.T) {
	router := newTestEngine(t)

	w := doRequest(router, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestContactSubmissionEndToEnd(t *testing.T) {
	router := newTestEngine(t)

	w := doRequest(router, http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"jane@example.com","message":"Hello"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Message received successfully"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestContactBodyTooLarge(t *testing.T) {
	router := newTestEngine(t)

	w := doRequest(router, http.MethodPost, "/api/contact",
		`{"message":"`+strings.Repeat("x", maxBodySize+1)+`"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.JSONEq(t, `{"error":"Request body too large"}`, w.Body.String())
}
