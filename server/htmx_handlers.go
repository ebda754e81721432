package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/umputun/feedintake/pkg/domain"
	"github.com/umputun/feedintake/pkg/intake"
)

const (
	// template names
	templatePage         = "page.html"
	templateRequestForm  = "request-form.html"
	templateRequestsList = "requests-list.html"

	nextStepHint = "Next step: write your SQL code and commit it to Git."
)

// formView is the data of the request form template
type formView struct {
	ID          string
	Status      domain.Status
	Form        domain.Form
	HeaderRow   bool
	Locked      bool
	CanComplete bool
	Message     string
	Hint        string
	Error       string
	Problems    *domain.ValidationError
	Created     string
	Updated     string

	FileFormats []string
	Frequencies []string
	LoadTypes   []string
	required    map[domain.Field]bool
}

// Label returns display label of a field, with a marker for required ones
func (v formView) Label(name string) string {
	f := domain.Field(name)
	if v.required[f] {
		return f.Label() + " *"
	}
	return f.Label()
}

// Required reports whether the field must be filled in on submit
func (v formView) Required(name string) bool {
	return v.required[domain.Field(name)]
}

// listView is the data of the sidebar template
type listView struct {
	Email    string
	Selected string
	Requests []domain.Request
	Total    int
	OOB      bool // render as htmx out-of-band swap
}

// pageView is the data of the full page template
type pageView struct {
	Version string
	Form    formView
	List    listView
}

// formPageHandler shows empty form for a new request
func (s *Server) formPageHandler(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	view := s.newFormView(domain.NewForm(email), nil)

	if isHTMX(r) {
		s.renderPartial(w, http.StatusOK, templateRequestForm, view)
		return
	}
	s.renderFullPage(w, r, http.StatusOK, view, email)
}

// requestPageHandler shows stored request for editing, read-only if complete
func (s *Server) requestPageHandler(w http.ResponseWriter, r *http.Request) {
	req, err := s.intake.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.respondWithError(w, errorStatus(err), "Failed to load request", err)
		return
	}

	view := s.newFormView(domain.FormOf(req), req)
	view.Message = actionMessage(r.URL.Query().Get("done"), req.ID)
	if view.Message != "" && r.URL.Query().Get("done") == intake.ActionSubmit {
		view.Hint = nextStepHint
	}

	if isHTMX(r) {
		s.renderPartial(w, http.StatusOK, templateRequestForm, view)
		return
	}
	s.renderFullPage(w, r, http.StatusOK, view, req.RequesterEmail)
}

// requestsListHandler renders the "my requests" sidebar for an email
func (s *Server) requestsListHandler(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	list, err := s.listView(r, email, r.URL.Query().Get("selected"))
	if err != nil {
		s.respondWithError(w, errorStatus(err), "Failed to load requests", err)
		return
	}
	s.renderPartial(w, http.StatusOK, templateRequestsList, list)
}

// saveFormHandler saves draft or submits the form, for new (no id) and existing requests
func (s *Server) saveFormHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	id := r.PathValue("id")
	form := formFromValues(r.PostForm)
	action := r.PostForm.Get("action")

	var (
		req *domain.Request
		err error
	)
	switch action {
	case intake.ActionDraft:
		req, err = s.intake.SaveDraft(r.Context(), form, id)
	case intake.ActionSubmit:
		req, err = s.intake.Submit(r.Context(), form, id)
	default:
		s.respondWithError(w, http.StatusBadRequest, "Invalid action", fmt.Errorf("unknown action %q", action))
		return
	}
	if err != nil {
		s.renderFormError(w, r, form, s.storedRequest(r, id, err), err)
		return
	}

	s.respondSaved(w, r, req, action)
}

// completeFormHandler marks submitted request complete
func (s *Server) completeFormHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	req, err := s.intake.MarkComplete(r.Context(), id)
	if err != nil {
		current := s.storedRequest(r, id, err)
		if current == nil {
			s.respondWithError(w, errorStatus(err), "Failed to complete request", err)
			return
		}
		s.renderFormError(w, r, domain.FormOf(current), current, err)
		return
	}
	s.respondSaved(w, r, req, intake.ActionComplete)
}

// respondSaved shows the saved request. htmx requests get the form partial with updated sidebar,
// regular form posts are redirected to the request page.
func (s *Server) respondSaved(w http.ResponseWriter, r *http.Request, req *domain.Request, action string) {
	location := "/requests/" + url.PathEscape(req.ID)
	if !isHTMX(r) {
		http.Redirect(w, r, location+"?done="+action, http.StatusSeeOther)
		return
	}

	view := s.newFormView(domain.FormOf(req), req)
	view.Message = actionMessage(action, req.ID)
	if action == intake.ActionSubmit {
		view.Hint = nextStepHint
	}

	w.Header().Set("HX-Push-Url", location)
	s.renderPartial(w, http.StatusOK, templateRequestForm, view)

	list, err := s.listView(r, req.RequesterEmail, req.ID)
	if err != nil {
		log.Printf("[WARN] failed to refresh requests list: %v", err)
		return
	}
	list.OOB = true
	if err := s.templates.ExecuteTemplate(w, templateRequestsList, list); err != nil {
		log.Printf("[WARN] failed to render requests list: %v", err)
	}
}

// storedRequest loads the request a failed action worked on, nil for new requests and on lookup failure
func (s *Server) storedRequest(r *http.Request, id string, actionErr error) *domain.Request {
	if id == "" || errors.Is(actionErr, domain.ErrNotFound) {
		return nil
	}
	req, err := s.intake.Get(r.Context(), id)
	if err != nil {
		log.Printf("[WARN] failed to load request %q: %v", id, err)
		return nil
	}
	return req
}

// renderFormError re-renders the form with entered values and the problem. current is the stored
// request, nil for new ones. Storage failures are reported with a generic message only.
func (s *Server) renderFormError(w http.ResponseWriter, r *http.Request, form domain.Form, current *domain.Request, err error) {
	code := errorStatus(err)
	if code == http.StatusNotFound {
		s.respondWithError(w, code, "Request not found", err)
		return
	}

	view := s.newFormView(form, current)
	if current != nil && current.Locked() {
		// locked request shows what is stored, not what was posted
		view = s.newFormView(domain.FormOf(current), current)
	}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		view.Problems = verr
		view.Error = verr.Error()
	case code == http.StatusInternalServerError:
		log.Printf("[ERROR] failed to save request: %v", err)
		view.Error = "Failed to save. Please try again."
	default:
		view.Error = err.Error()
	}

	if isHTMX(r) {
		// htmx doesn't swap error responses by default, client is configured to swap 4xx into the form
		s.renderPartial(w, code, templateRequestForm, view)
		return
	}
	email := form.RequesterEmail
	if current != nil {
		email = current.RequesterEmail
	}
	s.renderFullPage(w, r, code, view, email)
}

// newFormView makes form template data. req is nil for new requests.
func (s *Server) newFormView(form domain.Form, req *domain.Request) formView {
	view := formView{
		Form:        form,
		HeaderRow:   form.HeaderRow == nil || *form.HeaderRow,
		FileFormats: domain.FileFormats,
		Frequencies: domain.Frequencies,
		LoadTypes:   domain.LoadTypes,
		required:    map[domain.Field]bool{domain.FieldRequesterEmail: true},
	}
	for _, f := range s.intake.RequiredFields() {
		view.required[f] = true
	}
	if req != nil {
		view.ID = req.ID
		view.Status = req.Status
		view.Locked = req.Locked()
		view.CanComplete = req.Status == domain.StatusSubmitted
		view.Created = req.CreatedAt.Format("2006-01-02 15:04")
		view.Updated = req.UpdatedAt.Format("2006-01-02 15:04")
	}
	return view
}

// listView loads the latest requests of the requester, limited by intake.recent_limit
func (s *Server) listView(r *http.Request, email, selected string) (listView, error) {
	res := listView{Email: email, Selected: selected, Requests: []domain.Request{}}
	if email == "" {
		return res, nil
	}
	list, err := s.intake.LoadPrevious(r.Context(), email)
	if err != nil {
		return res, err
	}
	res.Total = len(list)
	if limit := s.config.GetIntakeConfig().RecentLimit; limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	res.Requests = list
	return res, nil
}

// renderFullPage renders the page with the form and the sidebar for the email
func (s *Server) renderFullPage(w http.ResponseWriter, r *http.Request, code int, view formView, email string) {
	list, err := s.listView(r, email, view.ID)
	if err != nil {
		// page is still usable without the sidebar
		log.Printf("[WARN] failed to load requests of %s: %v", email, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := s.templates.ExecuteTemplate(w, templatePage, pageView{Version: s.version, Form: view, List: list}); err != nil {
		log.Printf("[ERROR] failed to render page: %v", err)
	}
}

// renderPartial renders a single template, used for htmx swaps
func (s *Server) renderPartial(w http.ResponseWriter, code int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[ERROR] failed to render %s: %v", name, err)
	}
}

// respondWithError logs the error and sends plain text response
func (s *Server) respondWithError(w http.ResponseWriter, code int, message string, err error) {
	if err != nil {
		log.Printf("[WARN] %s: %v", message, err)
	}
	http.Error(w, message, code)
}

// formFromValues reads posted form values. header_row is a yes/no select, absent value keeps default.
func formFromValues(v url.Values) domain.Form {
	form := domain.Form{
		RequesterEmail:    v.Get(string(domain.FieldRequesterEmail)),
		RequesterName:     v.Get(string(domain.FieldRequesterName)),
		FeedName:          v.Get(string(domain.FieldFeedName)),
		SourceSystem:      v.Get(string(domain.FieldSourceSystem)),
		VendorName:        v.Get(string(domain.FieldVendorName)),
		TargetTable:       v.Get(string(domain.FieldTargetTable)),
		DataOwnerEmail:    v.Get(string(domain.FieldDataOwnerEmail)),
		FileNamePattern:   v.Get(string(domain.FieldFileNamePattern)),
		LandingZonePath:   v.Get(string(domain.FieldLandingZonePath)),
		FileFormat:        v.Get(string(domain.FieldFileFormat)),
		ScheduleFrequency: v.Get(string(domain.FieldScheduleFrequency)),
		ScheduleTime:      v.Get(string(domain.FieldScheduleTime)),
		LoadType:          v.Get(string(domain.FieldLoadType)),
		SLATime:           v.Get(string(domain.FieldSLATime)),
		Notes:             v.Get(string(domain.FieldNotes)),
	}
	switch strings.ToLower(strings.TrimSpace(v.Get("header_row"))) {
	case "yes", "true", "on", "1":
		yes := true
		form.HeaderRow = &yes
	case "no", "false", "off", "0":
		no := false
		form.HeaderRow = &no
	}
	return form
}

// actionMessage returns the success message shown after an action
func actionMessage(action, id string) string {
	switch action {
	case intake.ActionDraft:
		return "Draft saved! Request ID: " + id
	case intake.ActionSubmit:
		return "Request submitted! Request ID: " + id
	case intake.ActionComplete:
		return "Request marked as complete! Request ID: " + id
	default:
		return ""
	}
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
