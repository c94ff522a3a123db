package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-dashboard/internal/dashboard"
	"github.com/BuzzLyutic/todo-dashboard/internal/repo"
	"github.com/BuzzLyutic/todo-dashboard/internal/validation"
	"github.com/BuzzLyutic/todo-dashboard/pkg/respond"
)

// ArtifactReader отдает сырой JSON снапшота
type ArtifactReader interface {
	ReadRaw() ([]byte, error)
}

type DashboardHandler struct {
	source    dashboard.Source
	artifacts ArtifactReader
	renderer  *dashboard.Renderer
	basePath  string
	logger    *zap.Logger
}

func NewDashboardHandler(
	source dashboard.Source,
	artifacts ArtifactReader,
	renderer *dashboard.Renderer,
	basePath string,
	logger *zap.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		source:    source,
		artifacts: artifacts,
		renderer:  renderer,
		basePath:  NormalizeBasePath(basePath),
		logger:    logger,
	}
}

func (h *DashboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	page := dashboard.Page{
		BasePath: h.basePath,
		Manifest: dashboard.NewManifest(h.basePath),
		View:     h.loadView(r.Context()),
	}

	var buf bytes.Buffer // Рендерим в буфер, чтобы не отдать половину страницы
	if err := h.renderer.Render(&buf, page); err != nil {
		h.logger.Error("failed to render dashboard", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	respond.NoStore(w)
	respond.Raw(w, r, http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *DashboardHandler) Todos(w http.ResponseWriter, r *http.Request) {
	respond.NoStore(w)
	respond.JSON(w, r, http.StatusOK, h.loadView(r.Context()))
}

func (h *DashboardHandler) Artifact(w http.ResponseWriter, r *http.Request) {
	data, err := h.artifacts.ReadRaw()
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.NoStore(w)
	respond.Raw(w, r, http.StatusOK, "application/json", data)
}

func (h *DashboardHandler) Manifest(w http.ResponseWriter, r *http.Request) {
	data, err := json.Marshal(dashboard.NewManifest(h.basePath))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.Raw(w, r, http.StatusOK, "application/manifest+json", data)
}

// loadView never fails: a broken or missing snapshot becomes the empty state.
func (h *DashboardHandler) loadView(ctx context.Context) dashboard.View {
	snap, err := h.source.Load(ctx)
	if err == nil {
		err = validation.ValidateSnapshot(snap)
	}
	if err != nil {
		h.logger.Warn("failed to load todos", zap.Error(err))
		return dashboard.Empty()
	}
	return dashboard.Partition(snap)
}

func (h *DashboardHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		respond.Error(w, r, http.StatusNotFound, "snapshot not found")
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}
