package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/livegit/pkg/domain/interfaces"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/repository"
	"github.com/m-mizutani/livegit/pkg/utils/errutil"
	"github.com/m-mizutani/livegit/pkg/utils/logging"
)

type errorResponse struct {
	Error string `json:"error"`
}

type acceptedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		errutil.HandleError(ctx, "fail to marshal response", goerr.Wrap(err, "failed to marshal response"))
		w.Header().Set("Content-Type", "application/json")
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"Internal Server Error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, raw)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrValidationFailed):
		code = http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, types.ErrInvalidOption):
		code = http.StatusServiceUnavailable
	}

	if code >= http.StatusInternalServerError {
		errutil.HandleError(ctx, "fail to handle request", err)
		writeJSON(ctx, w, code, errorResponse{Error: http.StatusText(code)})
		return
	}

	logging.From(ctx).Info("request rejected", "error", err, slog.Int("status_code", code))
	writeJSON(ctx, w, code, errorResponse{Error: err.Error()})
}

func repoIDParam(r *http.Request) types.RepositoryID {
	return types.RepositoryID(chi.URLParam(r, "repoID"))
}

func wcIDParam(r *http.Request) types.WorkingCopyID {
	return types.WorkingCopyID(chi.URLParam(r, "wcID"))
}

func getResolution(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		resolution, err := uc.ResolveRepository(ctx, logging.CtxSessionID(ctx), repoIDParam(r))
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, resolution)
	}
}

func getDashboard(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		dashboard, err := uc.BuildDashboard(ctx, logging.CtxSessionID(ctx), repoIDParam(r))
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, dashboard)
	}
}

func postToggleExpanded(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sel, err := uc.ToggleExpanded(ctx, logging.CtxSessionID(ctx), repoIDParam(r), wcIDParam(r))
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, sel)
	}
}

func postToggleDiff(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sel, err := uc.ToggleDiff(ctx, logging.CtxSessionID(ctx), repoIDParam(r), wcIDParam(r), r.URL.Query().Get("file"))
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, sel)
	}
}

func postExport(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repoID := repoIDParam(r)

		// The request context is cancelled once the response is sent
		bgCtx := DetachContext(r.Context())
		go runExport(bgCtx, uc, repoID)

		writeJSON(r.Context(), w, http.StatusAccepted, acceptedResponse{
			Status:  "accepted",
			Message: "export enqueued",
		})
	}
}

func runExport(ctx context.Context, uc interfaces.UseCase, repoID types.RepositoryID) {
	logger := logging.From(ctx).With(slog.Any("repo_id", repoID))
	logger.Info("Starting activity export")

	n, err := uc.ExportActivity(ctx, repoID)
	if err != nil {
		errutil.HandleError(ctx, "background export failed", err)
		return
	}
	logger.Info("Activity export completed", slog.Int("rows", n))
}
