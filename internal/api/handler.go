package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/healthcalc/healthcalc/internal/engine"
	"github.com/healthcalc/healthcalc/internal/i18n"
	"github.com/healthcalc/healthcalc/internal/profile"
)

// remoteTimeout bounds one delegated evaluation, including the remote call.
const remoteTimeout = 15 * time.Second

// --- route handlers ---------------------------------------------------------

// health returns GET /api/v1/health.
func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	locales := make([]string, 0, len(i18n.Supported()))
	for _, l := range i18n.Supported() {
		locales = append(locales, string(l))
	}
	jsonResp(w, http.StatusOK, HealthResponse{
		Status:        "ok",
		Variant:       s.opts.Engine.Variant().Name,
		DefaultLocale: string(s.defaultLocale()),
		Locales:       locales,
		Remote:        s.opts.Fetcher != nil && s.opts.Remote.Enabled,
		Calculators:   len(engine.Calculators()),
	})
}

// listCalculators returns GET /api/v1/calculators.
func (s *Server) listCalculators(w http.ResponseWriter, _ *http.Request) {
	jsonResp(w, http.StatusOK, CalculatorsResponse{Calculators: engine.Calculators()})
}

// evaluate returns POST /api/v1/evaluate/{id}: one calculator evaluation
// with its localized interpretation.
func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req EvaluateRequest
	if err := decodeBody(r, &req); err != nil {
		jsonErr(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	l := s.requestLocale(r, req.Locale)

	in := req.Inputs
	if req.UseProfile && s.opts.Profiles != nil {
		p, err := s.opts.Profiles.Load(r.Context())
		if err != nil {
			slog.Error("api: load profile for auto-fill", "err", err)
			jsonErr(w, http.StatusInternalServerError, "profile unavailable")
			return
		}
		in = p.AutoFill(in)
	}

	var (
		res engine.Result
		err error
	)
	if req.Remote && s.opts.Fetcher != nil && s.opts.Remote.Delegates(id) {
		ctx, cancel := context.WithTimeout(r.Context(), remoteTimeout)
		res, err = s.opts.Engine.EvaluateRemote(ctx, s.opts.Fetcher, id, in, l)
		cancel()
	} else {
		res, err = s.opts.Engine.Evaluate(id, in, l)
	}
	if err != nil {
		s.evalErr(w, r, id, err)
		return
	}

	s.opts.Metrics.ObserveEvaluation(res.Calculator, string(res.Outcome), res.Source)
	jsonResp(w, http.StatusOK, EvaluateResponse{
		EvaluationID: uuid.NewString(),
		Result:       res,
	})
}

// calculate returns GET /calculate/{path}: the flat numeric payload of the
// remote calculator contract, computed locally. Inputs are the query
// parameters.
func (s *Server) calculate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "path")

	q := r.URL.Query()
	in := make(engine.Inputs, len(q))
	for k, vs := range q {
		if len(vs) > 0 {
			in[k] = vs[0]
		}
	}
	l := s.requestLocale(r, q.Get("lang"))

	payload, res, err := s.opts.Engine.Payload(id, in, l)
	if err != nil {
		s.evalErr(w, r, id, err)
		return
	}
	s.opts.Metrics.ObserveEvaluation(res.Calculator, string(res.Outcome), res.Source)
	if payload == nil {
		jsonErr(w, http.StatusUnprocessableEntity, res.Reason)
		return
	}
	jsonResp(w, http.StatusOK, payload)
}

// getProfile returns GET /api/v1/profile.
func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.opts.Profiles.Load(r.Context())
	if err != nil {
		slog.Error("api: load profile", "err", err)
		jsonErr(w, http.StatusInternalServerError, "profile unavailable")
		return
	}
	jsonResp(w, http.StatusOK, p)
}

// putProfile handles PUT /api/v1/profile: the body is merged over the stored
// profile and the merged profile is returned.
func (s *Server) putProfile(w http.ResponseWriter, r *http.Request) {
	var update profile.Profile
	if err := decodeBody(r, &update); err != nil {
		jsonErr(w, http.StatusBadRequest, "invalid profile: "+err.Error())
		return
	}
	merged, err := s.opts.Profiles.Save(r.Context(), update)
	if err != nil {
		slog.Error("api: save profile", "err", err)
		jsonErr(w, http.StatusInternalServerError, "profile not saved")
		return
	}
	s.opts.Metrics.ObserveProfileWrite("save")
	jsonResp(w, http.StatusOK, merged)
}

// deleteProfile handles DELETE /api/v1/profile.
func (s *Server) deleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.opts.Profiles.Clear(r.Context()); err != nil {
		slog.Error("api: clear profile", "err", err)
		jsonErr(w, http.StatusInternalServerError, "profile not cleared")
		return
	}
	s.opts.Metrics.ObserveProfileWrite("clear")
	w.WriteHeader(http.StatusNoContent)
}

// --- helpers ----------------------------------------------------------------

// evalErr maps an engine error onto its status code: validation → 400,
// remote failure → 502, anything else → 500.
func (s *Server) evalErr(w http.ResponseWriter, r *http.Request, id string, err error) {
	reqID := middleware.GetReqID(r.Context())

	var ve *engine.ValidationError
	if errors.As(err, &ve) {
		s.opts.Metrics.ObserveValidationError(metricID(id))
		jsonResp(w, http.StatusBadRequest, errorResponse{Error: ve.Message, Field: ve.Field})
		return
	}
	var re *engine.RemoteError
	if errors.As(err, &re) {
		s.opts.Metrics.ObserveRemoteFailure(re.Calculator)
		slog.Warn("api: remote evaluation failed", "calculator", re.Calculator, "request_id", reqID, "err", re.Err)
		jsonErr(w, http.StatusBadGateway, re.Message)
		return
	}
	slog.Error("api: evaluation failed", "calculator", id, "request_id", reqID, "err", err)
	jsonErr(w, http.StatusInternalServerError, "internal error")
}

// metricID keeps unknown calculator names out of metric labels.
func metricID(id string) string {
	if c, ok := engine.Lookup(id); ok {
		return c.ID
	}
	return "unknown"
}

// requestLocale picks the explicit locale, then the first Accept-Language
// tag, then the server default.
func (s *Server) requestLocale(r *http.Request, explicit string) i18n.Locale {
	if explicit != "" {
		return i18n.ParseLocale(explicit)
	}
	if al := r.Header.Get("Accept-Language"); al != "" {
		tag := strings.TrimSpace(strings.SplitN(strings.SplitN(al, ",", 2)[0], ";", 2)[0])
		if tag != "" && tag != "*" {
			return i18n.ParseLocale(tag)
		}
	}
	return s.defaultLocale()
}

// decodeBody decodes a JSON request body into v. An empty body leaves v
// unchanged.
func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}
