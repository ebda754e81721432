package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/umputun/feedintake/pkg/domain"
	"github.com/umputun/feedintake/pkg/intake"
)

// apiRequest is the body of create and update calls
type apiRequest struct {
	Action string      `json:"action"` // draft or submit
	Form   domain.Form `json:"form"`
}

// apiRecord is the JSON representation of a stored request
type apiRecord struct {
	ID                string    `json:"id"`
	URL               string    `json:"url"` // web page of the request
	Status            string    `json:"status"`
	RequesterEmail    string    `json:"requester_email"`
	RequesterName     string    `json:"requester_name"`
	FeedName          string    `json:"feed_name"`
	SourceSystem      string    `json:"source_system"`
	VendorName        string    `json:"vendor_name"`
	TargetTable       string    `json:"target_table"`
	DataOwnerEmail    string    `json:"data_owner_email"`
	FileNamePattern   string    `json:"file_name_pattern"`
	LandingZonePath   string    `json:"landing_zone_path"`
	FileFormat        string    `json:"file_format"`
	Delimiter         string    `json:"delimiter"`
	HeaderRow         bool      `json:"header_row"`
	ScheduleFrequency string    `json:"schedule_frequency"`
	ScheduleTime      string    `json:"schedule_time"`
	LoadType          string    `json:"load_type"`
	SLATime           string    `json:"sla_time"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listRequestsHandler returns requests of a requester if email is set, all requests otherwise
func (s *Server) listRequestsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		list []domain.Request
		err  error
	)
	if email := r.URL.Query().Get("email"); email != "" {
		list, err = s.intake.LoadPrevious(ctx, email)
	} else {
		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			if limit, err = strconv.Atoi(limitStr); err != nil || limit < 0 {
				renderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
				return
			}
		}
		list, err = s.intake.ListAll(ctx, limit)
	}
	if err != nil {
		s.renderAPIError(w, r, err)
		return
	}

	res := make([]apiRecord, 0, len(list))
	for i := range list {
		res = append(res, s.toAPIRecord(&list[i]))
	}
	renderJSON(w, r, http.StatusOK, res)
}

// getRequestHandler returns a single request
func (s *Server) getRequestHandler(w http.ResponseWriter, r *http.Request) {
	req, err := s.intake.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.renderAPIError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, s.toAPIRecord(req))
}

// createRequestHandler saves a new request as draft or submits it
func (s *Server) createRequestHandler(w http.ResponseWriter, r *http.Request) {
	s.saveAPIRequest(w, r, "", http.StatusCreated)
}

// updateRequestHandler saves an existing request as draft or submits it
func (s *Server) updateRequestHandler(w http.ResponseWriter, r *http.Request) {
	s.saveAPIRequest(w, r, r.PathValue("id"), http.StatusOK)
}

func (s *Server) saveAPIRequest(w http.ResponseWriter, r *http.Request, id string, okCode int) {
	var body apiRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	var (
		req *domain.Request
		err error
	)
	switch body.Action {
	case intake.ActionDraft:
		req, err = s.intake.SaveDraft(r.Context(), body.Form, id)
	case intake.ActionSubmit:
		req, err = s.intake.Submit(r.Context(), body.Form, id)
	default:
		renderError(w, r, fmt.Errorf("invalid action %q, expected draft or submit", body.Action), http.StatusBadRequest)
		return
	}
	if err != nil {
		s.renderAPIError(w, r, err)
		return
	}
	renderJSON(w, r, okCode, s.toAPIRecord(req))
}

// completeRequestHandler marks a submitted request complete
func (s *Server) completeRequestHandler(w http.ResponseWriter, r *http.Request) {
	req, err := s.intake.MarkComplete(r.Context(), r.PathValue("id"))
	if err != nil {
		s.renderAPIError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, s.toAPIRecord(req))
}

// renderAPIError sends classified error. Validation problems are returned with field details,
// storage failures are logged and reported with a generic message.
func (s *Server) renderAPIError(w http.ResponseWriter, r *http.Request, err error) {
	code := errorStatus(err)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		renderJSON(w, r, code, map[string]any{"error": verr.Error(), "missing": verr.Missing, "invalid": verr.Invalid})
		return
	}
	if code == http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", r.Method, r.URL.Path, err)
		renderError(w, r, errors.New("storage failure, please try again"), code)
		return
	}
	renderError(w, r, err, code)
}

// errorStatus maps service errors to HTTP status codes
func errorStatus(err error) int {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrLocked), errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) toAPIRecord(r *domain.Request) apiRecord {
	return apiRecord{
		ID:                r.ID,
		URL:               s.config.GetBaseURL() + "/requests/" + url.PathEscape(r.ID),
		Status:            string(r.Status),
		RequesterEmail:    r.RequesterEmail,
		RequesterName:     r.RequesterName,
		FeedName:          r.FeedName,
		SourceSystem:      r.SourceSystem,
		VendorName:        r.VendorName,
		TargetTable:       r.TargetTable,
		DataOwnerEmail:    r.DataOwnerEmail,
		FileNamePattern:   r.FileNamePattern,
		LandingZonePath:   r.LandingZonePath,
		FileFormat:        r.FileFormat,
		Delimiter:         r.Delimiter,
		HeaderRow:         r.HeaderRow,
		ScheduleFrequency: r.ScheduleFrequency,
		ScheduleTime:      r.ScheduleTime,
		LoadType:          r.LoadType,
		SLATime:           r.SLATime,
		Notes:             r.Notes,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
