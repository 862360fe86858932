package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/interfaces"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
	"github.com/reviewsight-lab/reviewsight/pkg/usecase"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/errutil"
	"github.com/reviewsight-lab/reviewsight/pkg/utils/safe"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) //nolint:errcheck // header already committed
}

// statusFor maps use case errors onto HTTP status codes. Validation and
// precondition failures are the client's fault.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrMissingField),
		errors.Is(err, usecase.ErrNoReviews),
		errors.Is(err, usecase.ErrEmptyText),
		errors.Is(err, interfaces.ErrSessionNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return goerr.Wrap(err, "invalid JSON body")
	}
	return nil
}

func sessionIDFrom(r *http.Request) (types.SessionID, error) {
	id := types.SessionID(chi.URLParam(r, "sessionID"))
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   s.version,
	})
}

func (s *Server) handleRegisterCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer safe.Close(ctx, r.Body)

	var req struct {
		Name     string `json:"name"`
		Location string `json:"location"`
		AppName  string `json:"app_name"`
		Domain   string `json:"domain"`
	}
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	session, err := s.uc.RegisterCompany(ctx, usecase.RegisterCompanyInput{
		Name:     req.Name,
		Location: req.Location,
		AppName:  req.AppName,
		Domain:   req.Domain,
	})
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusFor(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"session_id":    session.ID,
		"business_name": session.BusinessName,
		"location":      session.Location,
		"app_name":      session.AppName,
		"domain":        session.Domain,
		"registered_at": session.CreatedAt.UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := sessionIDFrom(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	session, err := s.uc.GetSession(ctx, id)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusFor(err))
		return
	}

	respondJSON(w, http.StatusOK, session)
}

func (s *Server) handleCollect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer safe.Close(ctx, r.Body)

	id, err := sessionIDFrom(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	var req struct {
		Platforms        []string `json:"platforms"`
		LimitPerPlatform int      `json:"limit_per_platform"`
		MinTotal         int      `json:"min_total"`
	}
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	platforms := make([]types.Platform, 0, len(req.Platforms))
	for _, p := range req.Platforms {
		platform, err := types.ParsePlatform(p)
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}
		platforms = append(platforms, platform)
	}

	result, err := s.uc.Collect(ctx, id, usecase.CollectInput{
		Platforms:        platforms,
		LimitPerPlatform: req.LimitPerPlatform,
		MinTotal:         req.MinTotal,
	})
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusFor(err))
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := sessionIDFrom(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	summary, count, err := s.uc.Analyze(ctx, id)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusFor(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"kpis":         summary,
		"review_count": count,
	})
}

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer safe.Close(ctx, r.Body)

	id, err := sessionIDFrom(r)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	var req struct {
		Format         string `json:"format"`
		IncludeReviews bool   `json:"include_reviews"`
	}
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}
	if req.Format != "" && req.Format != "json" {
		errutil.HandleHTTP(ctx, w,
			goerr.New("unsupported report format", goerr.V("format", req.Format)),
			http.StatusBadRequest)
		return
	}

	report, err := s.uc.GenerateReport(ctx, id, req.IncludeReviews)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusFor(err))
		return
	}

	respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer safe.Close(ctx, r.Body)

	var req struct {
		Text string `json:"text"`
	}
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	result, err := s.uc.ScoreSentiment(ctx, req.Text)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusFor(err))
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer safe.Close(ctx, r.Body)

	var req struct {
		Text string `json:"text"`
	}
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	topics, err := s.uc.ExtractTopics(ctx, req.Text)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusFor(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"topics": topics})
}

func (s *Server) handlePipeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer safe.Close(ctx, r.Body)

	var req struct {
		BusinessName string `json:"business_name"`
		Location     string `json:"location"`
		AppName      string `json:"app_name"`
		Domain       string `json:"domain"`
		ReviewCount  int    `json:"review_count"`
	}
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}
	if req.BusinessName == "" {
		errutil.HandleHTTP(ctx, w,
			goerr.Wrap(usecase.ErrMissingField, "business_name is required"),
			http.StatusBadRequest)
		return
	}

	result, err := s.uc.RunPipeline(ctx, usecase.PipelineInput{
		Company: companyDefaults(req.BusinessName, req.Location, req.AppName, req.Domain),
		Collect: usecase.CollectInput{MinTotal: req.ReviewCount},
	})
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusFor(err))
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// companyDefaults fills optional registration fields from the business
// name so the one-shot pipeline works from a name alone.
func companyDefaults(name, location, appName, domain string) usecase.RegisterCompanyInput {
	if location == "" {
		location = "France"
	}
	if appName == "" {
		appName = name
	}
	if domain == "" {
		domain = strings.ToLower(strings.ReplaceAll(name, " ", "")) + ".com"
	}
	return usecase.RegisterCompanyInput{
		Name:     name,
		Location: location,
		AppName:  appName,
		Domain:   domain,
	}
}
