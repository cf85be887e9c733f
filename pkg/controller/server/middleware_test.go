package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/folio/pkg/controller/server"
	"github.com/m-mizutani/folio/pkg/domain/mock"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/folio/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestMiddleware(t *testing.T) {
	t.Run("preProcess adds logger and request ID to context", func(t *testing.T) {
		var capturedCtx context.Context

		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		logger := logging.From(capturedCtx)
		defaultLogger := logging.From(context.Background())
		gt.V(t, logger == defaultLogger).Equal(false)

		reqID, _ := logging.CtxRequestID(capturedCtx)
		gt.V(t, w.Header().Get("X-Request-ID")).Equal(reqID.String())
	})

	t.Run("incoming request ID is kept", func(t *testing.T) {
		var got types.RequestID

		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
			got, _ = logging.CtxRequestID(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "edge-123")
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		gt.V(t, got).Equal(types.RequestID("edge-123"))
		gt.V(t, w.Header().Get("X-Request-ID")).Equal("edge-123")
	})

	t.Run("statusCodeLogger passes status codes through", func(t *testing.T) {
		for _, code := range []int{http.StatusOK, http.StatusNotFound, http.StatusInternalServerError} {
			srv := server.New(&mock.UseCaseMock{})
			mux := srv.Mux()
			mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			gt.V(t, w.Code).Equal(code)
		}
	})
}
