// Package intake implements feed intake request lifecycle: saving drafts, submitting and
// completing requests, with edit-locking of complete requests.
package intake

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/umputun/feedintake/pkg/domain"
	"github.com/umputun/feedintake/pkg/metrics"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder

// actions, used for logging and metrics
const (
	ActionDraft    = "draft"
	ActionSubmit   = "submit"
	ActionComplete = "complete"
)

// Store persists intake requests
type Store interface {
	Insert(ctx context.Context, req *domain.Request) (string, error)
	Update(ctx context.Context, req *domain.Request) error
	Get(ctx context.Context, id string) (*domain.Request, error)
	QueryByEmail(ctx context.Context, email string) ([]domain.Request, error)
	ListAll(ctx context.Context, limit int) ([]domain.Request, error)
}

// Recorder receives outcome of every mutating action
type Recorder interface {
	RecordAction(action, outcome string, took time.Duration)
}

// Options for NewService
type Options struct {
	RequiredFields []domain.Field // checked on submit, defaults to domain.DefaultRequiredFields
	Recorder       Recorder       // optional
	Now            func() time.Time
}

// Service is the form controller. It keeps no per-user state, every call gets the form values
// and request id it works on.
type Service struct {
	store    Store
	required []domain.Field
	recorder Recorder
	now      func() time.Time
}

// NewService makes intake service on top of the store
func NewService(store Store, opts Options) *Service {
	s := &Service{
		store:    store,
		required: opts.RequiredFields,
		recorder: opts.Recorder,
		now:      opts.Now,
	}
	if len(s.required) == 0 {
		s.required = domain.DefaultRequiredFields
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// RequiredFields returns fields checked on submit
func (s *Service) RequiredFields() []domain.Field {
	return s.required
}

// LoadPrevious returns requests of the requester, most recently updated first.
// Blank email gives an empty list without touching the store.
func (s *Service) LoadPrevious(ctx context.Context, email string) ([]domain.Request, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return []domain.Request{}, nil
	}
	res, err := s.store.QueryByEmail(ctx, email)
	if err != nil {
		return nil, storageErr("query by email", err)
	}
	return res, nil
}

// ListAll returns requests of all requesters, most recently updated first
func (s *Service) ListAll(ctx context.Context, limit int) ([]domain.Request, error) {
	res, err := s.store.ListAll(ctx, limit)
	if err != nil {
		return nil, storageErr("list", err)
	}
	return res, nil
}

// Get returns a single request
func (s *Service) Get(ctx context.Context, id string) (*domain.Request, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrNotFound
	}
	res, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, storageErr("get", err)
	}
	return res, nil
}

// SaveDraft creates a new draft when id is empty or updates an existing draft.
// Only requester email is required.
func (s *Service) SaveDraft(ctx context.Context, form domain.Form, id string) (*domain.Request, error) {
	return s.save(ctx, ActionDraft, form, id, domain.StatusDraft, nil)
}

// Submit creates or updates a request as submitted. All required fields must be filled in,
// otherwise *domain.ValidationError is returned and nothing is written.
func (s *Service) Submit(ctx context.Context, form domain.Form, id string) (*domain.Request, error) {
	return s.save(ctx, ActionSubmit, form, id, domain.StatusSubmitted, s.required)
}

// MarkComplete moves a submitted request to complete, locking it
func (s *Service) MarkComplete(ctx context.Context, id string) (res *domain.Request, err error) {
	start := time.Now()
	defer func() { s.record(ActionComplete, start, err) }()

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckTransition(current.Status, domain.StatusComplete); err != nil {
		return nil, fmt.Errorf("complete %s: %w", id, err)
	}

	current.Status = domain.StatusComplete
	current.UpdatedAt = s.now().UTC()
	if err := s.store.Update(ctx, current); err != nil {
		return nil, storageErr("update", err)
	}
	log.Printf("[INFO] request %s marked complete", current.ID)
	return current, nil
}

// save checks editability and transition first, then validates the form and writes the request
func (s *Service) save(ctx context.Context, action string, form domain.Form, id string,
	target domain.Status, required []domain.Field) (res *domain.Request, err error) {
	start := time.Now()
	defer func() { s.record(action, start, err) }()

	req := &domain.Request{}
	if id != "" {
		if req, err = s.Get(ctx, id); err != nil {
			return nil, err
		}
	}
	if err := domain.CheckTransition(req.Status, target); err != nil {
		return nil, fmt.Errorf("%s %s: %w", action, id, err)
	}

	form = trimForm(form)
	if verr := form.Validate(required); verr != nil {
		return nil, verr
	}

	now := s.now().UTC()
	form.Apply(req)
	req.Status = target
	req.UpdatedAt = now

	if req.ID == "" {
		req.CreatedAt = now
		if _, err := s.store.Insert(ctx, req); err != nil {
			return nil, storageErr("insert", err)
		}
		log.Printf("[INFO] request %s created as %s by %s", req.ID, req.Status, req.RequesterEmail)
		return req, nil
	}

	if err := s.store.Update(ctx, req); err != nil {
		return nil, storageErr("update", err)
	}
	log.Printf("[INFO] request %s saved as %s by %s", req.ID, req.Status, req.RequesterEmail)
	return req, nil
}

// trimForm drops surrounding spaces, values are stored as entered otherwise
func trimForm(f domain.Form) domain.Form {
	for _, v := range []*string{&f.RequesterEmail, &f.RequesterName, &f.FeedName, &f.SourceSystem,
		&f.VendorName, &f.TargetTable, &f.DataOwnerEmail, &f.FileNamePattern, &f.LandingZonePath,
		&f.FileFormat, &f.ScheduleFrequency, &f.ScheduleTime, &f.LoadType, &f.SLATime, &f.Notes} {
		*v = strings.TrimSpace(*v)
	}
	return f
}

func (s *Service) record(action string, start time.Time, err error) {
	if err != nil {
		log.Printf("[WARN] %s failed: %v", action, err)
	}
	if s.recorder == nil {
		return
	}
	s.recorder.RecordAction(action, Outcome(err), time.Since(start))
}

// Outcome classifies an action result for metrics
func Outcome(err error) string {
	var serr *domain.StorageError
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.As(err, &serr):
		return metrics.OutcomeFailed
	default:
		return metrics.OutcomeRejected
	}
}

// storageErr keeps not-found as is and wraps everything else as a storage failure
func storageErr(op string, err error) error {
	var serr *domain.StorageError
	if errors.Is(err, domain.ErrNotFound) || errors.As(err, &serr) {
		return err
	}
	return &domain.StorageError{Op: op, Err: err}
}
