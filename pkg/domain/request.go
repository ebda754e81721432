package domain

import "time"

// Request represents a single feed intake request, one row in the intake table
type Request struct {
	ID                string
	RequesterEmail    string
	RequesterName     string
	FeedName          string
	SourceSystem      string
	VendorName        string
	TargetTable       string
	DataOwnerEmail    string
	FileNamePattern   string
	LandingZonePath   string
	FileFormat        string
	Delimiter         string
	HeaderRow         bool
	ScheduleFrequency string
	ScheduleTime      string // HH:MM
	LoadType          string
	SLATime           string // HH:MM
	Notes             string
	Status            Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Form holds user-entered values for a request. It lives only for the duration of a single
// interaction and is passed explicitly between the caller and the intake service.
type Form struct {
	RequesterEmail    string `json:"requester_email"`
	RequesterName     string `json:"requester_name"`
	FeedName          string `json:"feed_name"`
	SourceSystem      string `json:"source_system"`
	VendorName        string `json:"vendor_name"`
	TargetTable       string `json:"target_table"`
	DataOwnerEmail    string `json:"data_owner_email"`
	FileNamePattern   string `json:"file_name_pattern"`
	LandingZonePath   string `json:"landing_zone_path"`
	FileFormat        string `json:"file_format"`
	HeaderRow         *bool  `json:"header_row,omitempty"`
	ScheduleFrequency string `json:"schedule_frequency"`
	ScheduleTime      string `json:"schedule_time"`
	LoadType          string `json:"load_type"`
	SLATime           string `json:"sla_time"`
	Notes             string `json:"notes"`
}

// file formats
const (
	FormatCSV           = "CSV"
	FormatPipeDelimited = "Pipe-Delimited"
	FormatTabDelimited  = "Tab-Delimited"
	FormatJSON          = "JSON"
	FormatParquet       = "Parquet"
	FormatExcel         = "Excel"
	FormatFixedWidth    = "Fixed Width"
)

// load types
const (
	LoadFull        = "Full"
	LoadIncremental = "Incremental"
)

// default times, PST
const (
	DefaultScheduleTime = "06:00"
	DefaultSLATime      = "08:00"
)

// FileFormats lists selectable file formats in display order
var FileFormats = []string{FormatCSV, FormatPipeDelimited, FormatTabDelimited, FormatJSON, FormatParquet,
	FormatExcel, FormatFixedWidth}

// Frequencies lists selectable schedule frequencies
var Frequencies = []string{"Daily", "Weekly", "Monthly", "Ad-Hoc"}

// LoadTypes lists selectable load types
var LoadTypes = []string{LoadFull, LoadIncremental}

// DelimiterFor returns the column delimiter implied by a file format, empty for non-delimited formats
func DelimiterFor(format string) string {
	switch format {
	case FormatCSV:
		return ","
	case FormatPipeDelimited:
		return "|"
	case FormatTabDelimited:
		return `\t`
	default:
		return ""
	}
}

// NewForm returns a blank form with the defaults used for a new request
func NewForm(email string) Form {
	headerRow := true
	return Form{
		RequesterEmail: email,
		HeaderRow:      &headerRow,
		ScheduleTime:   DefaultScheduleTime,
		LoadType:       LoadFull,
		SLATime:        DefaultSLATime,
	}
}

// FormOf returns the form values of a stored request, used to re-populate the edit form
func FormOf(r *Request) Form {
	headerRow := r.HeaderRow
	return Form{
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
		HeaderRow:         &headerRow,
		ScheduleFrequency: r.ScheduleFrequency,
		ScheduleTime:      r.ScheduleTime,
		LoadType:          r.LoadType,
		SLATime:           r.SLATime,
		Notes:             r.Notes,
	}
}

// Apply copies form values onto the request, filling defaults for empty header row, load type and times.
// Delimiter is derived from the file format. Identity, status and timestamps are not touched.
func (f Form) Apply(r *Request) {
	r.RequesterEmail = f.RequesterEmail
	r.RequesterName = f.RequesterName
	r.FeedName = f.FeedName
	r.SourceSystem = f.SourceSystem
	r.VendorName = f.VendorName
	r.TargetTable = f.TargetTable
	r.DataOwnerEmail = f.DataOwnerEmail
	r.FileNamePattern = f.FileNamePattern
	r.LandingZonePath = f.LandingZonePath
	r.FileFormat = f.FileFormat
	r.Delimiter = DelimiterFor(f.FileFormat)
	r.HeaderRow = f.HeaderRow == nil || *f.HeaderRow
	r.ScheduleFrequency = f.ScheduleFrequency
	r.ScheduleTime = f.ScheduleTime
	if r.ScheduleTime == "" {
		r.ScheduleTime = DefaultScheduleTime
	}
	r.LoadType = f.LoadType
	if r.LoadType == "" {
		r.LoadType = LoadFull
	}
	r.SLATime = f.SLATime
	if r.SLATime == "" {
		r.SLATime = DefaultSLATime
	}
	r.Notes = f.Notes
}

// DisplayName returns feed name or a placeholder for unnamed drafts
func (r *Request) DisplayName() string {
	if r.FeedName == "" {
		return "Unnamed"
	}
	return r.FeedName
}

// Locked reports whether the request can no longer be edited
func (r *Request) Locked() bool {
	return r.Status == StatusComplete
}
