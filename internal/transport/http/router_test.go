package httptransport

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"fiscale/internal/verify/handler"
	"fiscale/internal/verify/service"
	"fiscale/internal/verify/tracer"
)

type RouterSuite struct {
	suite.Suite
	router http.Handler
}

func (s *RouterSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc := service.New(
		service.WithLogger(logger),
		service.WithTracer(tracer.NewNoop()),
	)
	s.router = NewRouter(handler.New(svc, logger), logger, 5*time.Second)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) TestHealthz() {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *RouterSuite) TestRequestIDHeaderIsSet() {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.NotEmpty(rec.Header().Get("X-Request-ID"))
}

func (s *RouterSuite) TestClientRequestIDIsEchoed() {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal("abc-123", rec.Header().Get("X-Request-ID"))
}

func (s *RouterSuite) TestRejectsNonJSONContentType() {
	req := httptest.NewRequest(http.MethodPost, "/fiscal-codes/validate", strings.NewReader("fiscal_code=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusUnsupportedMediaType, rec.Code)
}

func (s *RouterSuite) TestVerifyRoutesAreWired() {
	req := httptest.NewRequest(http.MethodPost, "/vat-numbers/validate", strings.NewReader(`{"vat_number":"12345678903"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"is_valid":true`)
}
