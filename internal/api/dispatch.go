package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/salesdash/proxy-api/internal/api/shared"
	"github.com/salesdash/proxy-api/internal/downstream"
)

// downstreamErrorMessage is the fixed body every downstream failure maps to.
// Callers can rely on this shape being invariant under the downstream
// failure's own status and message; the specifics go to the log only.
const downstreamErrorMessage = "Could not process due to some error"

// respondDownstreamFailure converts any downstream failure into the single
// normalized 500 result. The originating operation name and failure detail
// are logged server-side; the client sees only the generic body.
func respondDownstreamFailure(w http.ResponseWriter, r *http.Request, operation string, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
		downstreamErrorMessage,
		fmt.Errorf("downstream operation %s failed: %w", operation, err))
}

// pathInt extracts an integer path parameter, writing a 400 response and
// returning false when the value is missing or not numeric. A failed
// extraction means no downstream call is attempted for the request.
func pathInt(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	raw := chi.URLParam(r, param)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		slog.Debug("invalid path parameter",
			"param", param,
			"value", raw,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			fmt.Sprintf("Invalid value for %s", param))
		return 0, false
	}
	return value, true
}

// decodeBody decodes and validates a JSON request body, writing a 400
// response and returning false on failure. Validation happens before any
// downstream call; field-level detail is allowed in this response because
// it describes the inbound request, never the downstream service.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return false
	}
	return true
}

// respondFetch forwards a fetch outcome: the downstream payload unmodified
// with status 200, or the normalized failure.
func respondFetch(w http.ResponseWriter, r *http.Request, operation string, payload json.RawMessage, err error) {
	if err != nil {
		respondDownstreamFailure(w, r, operation, err)
		return
	}
	shared.RespondWithRawJSON(w, r, http.StatusOK, payload)
}

// respondCommand maps a mutating outcome: the route's declared success
// status with an empty body, or the normalized failure.
func respondCommand(w http.ResponseWriter, r *http.Request, operation string, success int, err error) {
	if err != nil {
		respondDownstreamFailure(w, r, operation, err)
		return
	}
	w.WriteHeader(success)
}

// fetch builds a handler for a read operation with no request arguments.
func fetch(operation string, call func(ctx context.Context) (json.RawMessage, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := call(r.Context())
		respondFetch(w, r, operation, payload, err)
	}
}

// fetchID builds a handler for a read operation keyed by an integer path
// parameter.
func fetchID(operation, param string, call func(ctx context.Context, id int64) (json.RawMessage, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt(w, r, param)
		if !ok {
			return
		}
		payload, err := call(r.Context(), id)
		respondFetch(w, r, operation, payload, err)
	}
}

// fetchString builds a handler for a read operation keyed by a string path
// parameter.
func fetchString(operation, param string, call func(ctx context.Context, value string) (json.RawMessage, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := call(r.Context(), chi.URLParam(r, param))
		respondFetch(w, r, operation, payload, err)
	}
}

// fetchYear builds a handler for a single-year metric operation.
func fetchYear(operation string, call func(ctx context.Context, year int) (json.RawMessage, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, ok := pathInt(w, r, "year")
		if !ok {
			return
		}
		payload, err := call(r.Context(), int(year))
		respondFetch(w, r, operation, payload, err)
	}
}

// fetchYearRange builds a handler for a year-range metric operation.
func fetchYearRange(operation string, call func(ctx context.Context, startYear, endYear int) (json.RawMessage, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startYear, ok := pathInt(w, r, "startYear")
		if !ok {
			return
		}
		endYear, ok := pathInt(w, r, "endYear")
		if !ok {
			return
		}
		payload, err := call(r.Context(), int(startYear), int(endYear))
		respondFetch(w, r, operation, payload, err)
	}
}

// commandBody builds a handler for a mutating operation whose only argument
// is a validated JSON body.
func commandBody[T any](operation string, success int, call func(ctx context.Context, body T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body T
		if !decodeBody(w, r, &body) {
			return
		}
		respondCommand(w, r, operation, success, call(r.Context(), body))
	}
}

// commandID builds a handler for a mutating operation keyed by an integer
// path parameter with no body.
func commandID(operation, param string, success int, call func(ctx context.Context, id int64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt(w, r, param)
		if !ok {
			return
		}
		respondCommand(w, r, operation, success, call(r.Context(), id))
	}
}

// commandIDBody builds a handler for a mutating operation keyed by an
// integer path parameter with a validated JSON body.
func commandIDBody[T any](operation, param string, success int, call func(ctx context.Context, id int64, body T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt(w, r, param)
		if !ok {
			return
		}
		var body T
		if !decodeBody(w, r, &body) {
			return
		}
		respondCommand(w, r, operation, success, call(r.Context(), id, body))
	}
}

// patchCommand builds a handler for a partial-update route. The request body
// is an ordered patch-operation sequence, translated losslessly into the
// downstream operation format. No validation of the operations themselves
// happens here; the downstream service owns that.
func patchCommand(operation, param string, call func(ctx context.Context, id int64, ops []downstream.Operation) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathInt(w, r, param)
		if !ok {
			return
		}
		var ops []PatchOperation
		if err := shared.DecodeJSON(r, &ops); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
			return
		}
		respondCommand(w, r, operation, http.StatusNoContent,
			call(r.Context(), id, TranslatePatch(ops)))
	}
}
