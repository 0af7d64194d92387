package server

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
)

func Test_NewHTTPServer(t *testing.T) {
	cfg := HTTPConfig{
		Port:           8080,
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second,
		WriteTimeout:   2 * time.Second,
		IdleTimeout:    3 * time.Second,
		ReadHeader:     4 * time.Second,
	}
	srv := NewHTTPServer(cfg, http.NotFoundHandler())
	assert.Equal(t, ":8080", srv.Addr)
	assert.Equal(t, 1<<20, srv.MaxHeaderBytes)
	assert.Equal(t, time.Second, srv.ReadTimeout)
	assert.Equal(t, 4*time.Second, srv.ReadHeaderTimeout)
}

func Test_NewChiRouter_SetsRequestID(t *testing.T) {
	mux := NewChiRouter(slog.New(slog.DiscardHandler))
	var reqID string
	mux.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		reqID = middleware.GetReqID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.NotEmpty(t, reqID)
	assert.Equal(t, reqID, rr.Header().Get(middleware.RequestIDHeader))
}

func Test_NewGRPCServer_Registers(t *testing.T) {
	called := 0
	s := NewGRPCServer(GRPCConfig{Reflection: true}, func(*grpc.Server) { called++ }, func(*grpc.Server) { called++ })
	defer s.Stop()
	assert.Equal(t, 2, called)
	assert.Contains(t, s.GetServiceInfo(), "grpc.reflection.v1.ServerReflection")
}
