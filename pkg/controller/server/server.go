package server

import (
	"bytes"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/folio/pkg/domain/interfaces"
	"github.com/m-mizutani/folio/pkg/domain/model"
	"github.com/m-mizutani/folio/pkg/domain/types"
	"github.com/m-mizutani/folio/pkg/utils/errutil"
	"github.com/m-mizutani/folio/pkg/utils/logging"
)

const contentTypeHTML = "text/html; charset=utf-8"

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is rendered by html/template or built from escaped text
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	cacheControl string
}

type Option func(*config)

// WithCacheControl sets the Cache-Control header of page and fragment
// responses. Default is "no-cache".
func WithCacheControl(value string) Option {
	return func(cfg *config) {
		cfg.cacheControl = value
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		cacheControl: "no-cache",
	}
	for _, opt := range options {
		opt(cfg)
	}

	writeHTML := func(w http.ResponseWriter, body []byte) {
		w.Header().Set("Content-Type", contentTypeHTML)
		if cfg.cacheControl != "" {
			w.Header().Set("Cache-Control", cfg.cacheControl)
		}
		safeWrite(w, http.StatusOK, body)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := uc.WritePage(r.Context(), &buf); err != nil {
			errutil.HandleError(r.Context(), "fail to render page", err)
			safeWrite(w, http.StatusInternalServerError, []byte("failed to render page"))
			return
		}
		writeHTML(w, buf.Bytes())
	})
	r.Route("/fragments", func(r chi.Router) {
		r.Get("/about", func(w http.ResponseWriter, r *http.Request) {
			slot := model.NewSlot(types.TargetAboutContent)
			uc.RenderContent(r.Context(), slot)
			writeHTML(w, []byte(slot.Get()))
		})
		r.Get("/projects", func(w http.ResponseWriter, r *http.Request) {
			slot := model.NewSlot(types.TargetProjectsList)
			uc.RenderRepoList(r.Context(), slot)
			writeHTML(w, []byte(slot.Get()))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
