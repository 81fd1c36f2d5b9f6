package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mogith007/skillswap/internal/api/middleware"
	"github.com/mogith007/skillswap/internal/api/types"
	"github.com/mogith007/skillswap/internal/api/validators"
	appErr "github.com/mogith007/skillswap/pkg/errors"
	"github.com/mogith007/skillswap/pkg/logger"
	"github.com/mogith007/skillswap/pkg/pagination"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

var errInvalidJSON = appErr.New(appErr.CodeInvalid, "Invalid JSON body")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeOK(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, types.OK(data, message))
}

// writeError answers with the envelope for err. Anything that maps to 500 is logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := types.FromError(err)
	if status >= http.StatusInternalServerError {
		logger.L().Error("request failed",
			zap.String("id", middleware.GetRequestID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	writeJSON(w, status, resp)
}

func writeErrorStr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.Fail(msg))
}

// decode reads a JSON body into dst and validates it.
func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return appErr.Invalid("Validation failed", []string{"body: is required"})
		}
		return errInvalidJSON
	}
	return validators.Check(dst)
}

func pageParams(r *http.Request) pagination.Params {
	q := r.URL.Query()
	return pagination.Parse(q.Get("page"), q.Get("limit"))
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, appErr.Invalid("Validation failed", []string{name + ": must be a valid id"})
	}
	return id, nil
}
