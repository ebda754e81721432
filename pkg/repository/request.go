package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedintake/pkg/domain"
)

// RequestRepository handles intake request database operations
type RequestRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// requestSQL represents an intake request row
type requestSQL struct {
	ID                string         `db:"id"`
	RequesterEmail    string         `db:"requester_email"`
	RequesterName     string         `db:"requester_name"`
	FeedName          string         `db:"feed_name"`
	SourceSystem      string         `db:"source_system"`
	VendorName        string         `db:"vendor_name"`
	TargetTable       string         `db:"target_table"`
	DataOwnerEmail    string         `db:"data_owner_email"`
	FileNamePattern   string         `db:"file_name_pattern"`
	LandingZonePath   string         `db:"landing_zone_path"`
	FileFormat        string         `db:"file_format"`
	Delimiter         sql.NullString `db:"delimiter"`
	HeaderRow         bool           `db:"header_row"`
	ScheduleFrequency string         `db:"schedule_frequency"`
	ScheduleTime      string         `db:"schedule_time"`
	LoadType          string         `db:"load_type"`
	SLATime           string         `db:"sla_time"`
	Notes             string         `db:"notes"`
	Status            string         `db:"status"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

const requestColumns = `id, requester_email, requester_name, feed_name, source_system, vendor_name, target_table,
	data_owner_email, file_name_pattern, landing_zone_path, file_format, delimiter, header_row, schedule_frequency,
	schedule_time, load_type, sla_time, notes, status, created_at, updated_at`

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *sqlx.DB) *RequestRepository {
	return &RequestRepository{db: db, now: time.Now}
}

// Insert assigns a new id to the request and stores all its fields
func (r *RequestRepository) Insert(ctx context.Context, req *domain.Request) (string, error) {
	row := r.toSQL(req)
	row.ID = r.newID()

	query := `
		INSERT INTO intake_requests (` + requestColumns + `)
		VALUES (:id, :requester_email, :requester_name, :feed_name, :source_system, :vendor_name, :target_table,
			:data_owner_email, :file_name_pattern, :landing_zone_path, :file_format, :delimiter, :header_row,
			:schedule_frequency, :schedule_time, :load_type, :sla_time, :notes, :status, :created_at, :updated_at)
	`
	err := newRetrier().Do(ctx, func() error {
		if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("insert request: %w", err)}
		}
		return nil
	}, errCritical)
	if err != nil {
		return "", err
	}

	req.ID = row.ID
	return row.ID, nil
}

// Update stores all mutable fields of an existing request. id and created_at are never rewritten.
func (r *RequestRepository) Update(ctx context.Context, req *domain.Request) error {
	query := `
		UPDATE intake_requests SET
			requester_email = :requester_email, requester_name = :requester_name, feed_name = :feed_name,
			source_system = :source_system, vendor_name = :vendor_name, target_table = :target_table,
			data_owner_email = :data_owner_email, file_name_pattern = :file_name_pattern,
			landing_zone_path = :landing_zone_path, file_format = :file_format, delimiter = :delimiter,
			header_row = :header_row, schedule_frequency = :schedule_frequency, schedule_time = :schedule_time,
			load_type = :load_type, sla_time = :sla_time, notes = :notes, status = :status, updated_at = :updated_at
		WHERE id = :id
	`
	row := r.toSQL(req)
	return newRetrier().Do(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update request: %w", err)}
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get affected rows: %w", err)}
		}
		if affected == 0 {
			return &criticalError{err: fmt.Errorf("update request %s: %w", req.ID, domain.ErrNotFound)}
		}
		return nil
	}, errCritical)
}

// Get retrieves a request by id
func (r *RequestRepository) Get(ctx context.Context, id string) (*domain.Request, error) {
	var row requestSQL
	err := r.db.GetContext(ctx, &row, "SELECT "+requestColumns+" FROM intake_requests WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get request %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	return r.toDomain(&row)
}

// QueryByEmail returns requests of the given requester, most recently updated first
func (r *RequestRepository) QueryByEmail(ctx context.Context, email string) ([]domain.Request, error) {
	query := "SELECT " + requestColumns + " FROM intake_requests WHERE requester_email = ? ORDER BY updated_at DESC, id DESC"
	var rows []requestSQL
	if err := r.db.SelectContext(ctx, &rows, query, email); err != nil {
		return nil, fmt.Errorf("query requests by email: %w", err)
	}
	return r.toDomainList(rows)
}

// ListAll returns requests of all requesters, most recently updated first. limit <= 0 means no limit.
func (r *RequestRepository) ListAll(ctx context.Context, limit int) ([]domain.Request, error) {
	query := "SELECT " + requestColumns + " FROM intake_requests ORDER BY updated_at DESC, id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	var rows []requestSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return r.toDomainList(rows)
}

// newID makes request id in REQ_<timestamp>_<short uuid> form
func (r *RequestRepository) newID() string {
	return fmt.Sprintf("REQ_%s_%s", r.now().Format("20060102150405"), uuid.NewString()[:8])
}

func (r *RequestRepository) toSQL(req *domain.Request) *requestSQL {
	row := &requestSQL{
		ID:                req.ID,
		RequesterEmail:    req.RequesterEmail,
		RequesterName:     req.RequesterName,
		FeedName:          req.FeedName,
		SourceSystem:      req.SourceSystem,
		VendorName:        req.VendorName,
		TargetTable:       req.TargetTable,
		DataOwnerEmail:    req.DataOwnerEmail,
		FileNamePattern:   req.FileNamePattern,
		LandingZonePath:   req.LandingZonePath,
		FileFormat:        req.FileFormat,
		HeaderRow:         req.HeaderRow,
		ScheduleFrequency: req.ScheduleFrequency,
		ScheduleTime:      req.ScheduleTime,
		LoadType:          req.LoadType,
		SLATime:           req.SLATime,
		Notes:             req.Notes,
		Status:            string(req.Status),
		CreatedAt:         req.CreatedAt.UTC(),
		UpdatedAt:         req.UpdatedAt.UTC(),
	}
	if req.Delimiter != "" {
		row.Delimiter = sql.NullString{String: req.Delimiter, Valid: true}
	}
	return row
}

func (r *RequestRepository) toDomain(row *requestSQL) (*domain.Request, error) {
	status, err := domain.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", row.ID, err)
	}
	return &domain.Request{
		ID:                row.ID,
		RequesterEmail:    row.RequesterEmail,
		RequesterName:     row.RequesterName,
		FeedName:          row.FeedName,
		SourceSystem:      row.SourceSystem,
		VendorName:        row.VendorName,
		TargetTable:       row.TargetTable,
		DataOwnerEmail:    row.DataOwnerEmail,
		FileNamePattern:   row.FileNamePattern,
		LandingZonePath:   row.LandingZonePath,
		FileFormat:        row.FileFormat,
		Delimiter:         row.Delimiter.String,
		HeaderRow:         row.HeaderRow,
		ScheduleFrequency: row.ScheduleFrequency,
		ScheduleTime:      row.ScheduleTime,
		LoadType:          row.LoadType,
		SLATime:           row.SLATime,
		Notes:             row.Notes,
		Status:            status,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}

func (r *RequestRepository) toDomainList(rows []requestSQL) ([]domain.Request, error) {
	res := make([]domain.Request, 0, len(rows))
	for i := range rows {
		req, err := r.toDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		res = append(res, *req)
	}
	return res, nil
}
