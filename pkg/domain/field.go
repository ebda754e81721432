package domain

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
)

// Field names a form value, matching its storage column
type Field string

// form fields
const (
	FieldFeedName          Field = "feed_name"
	FieldSourceSystem      Field = "source_system"
	FieldVendorName        Field = "vendor_name"
	FieldTargetTable       Field = "target_table"
	FieldDataOwnerEmail    Field = "data_owner_email"
	FieldFileNamePattern   Field = "file_name_pattern"
	FieldLandingZonePath   Field = "landing_zone_path"
	FieldFileFormat        Field = "file_format"
	FieldScheduleFrequency Field = "schedule_frequency"
	FieldScheduleTime      Field = "schedule_time"
	FieldLoadType          Field = "load_type"
	FieldSLATime           Field = "sla_time"
	FieldRequesterName     Field = "requester_name"
	FieldRequesterEmail    Field = "requester_email"
	FieldNotes             Field = "notes"
)

var fieldLabels = map[Field]string{
	FieldFeedName:          "Feed Name",
	FieldSourceSystem:      "Source System",
	FieldVendorName:        "Vendor",
	FieldTargetTable:       "Target Table",
	FieldDataOwnerEmail:    "Data Owner Email",
	FieldFileNamePattern:   "File Name Pattern",
	FieldLandingZonePath:   "Landing Zone Path",
	FieldFileFormat:        "File Format",
	FieldScheduleFrequency: "Schedule Frequency",
	FieldScheduleTime:      "Schedule Time",
	FieldLoadType:          "Load Type",
	FieldSLATime:           "SLA Time",
	FieldRequesterName:     "Requester Name",
	FieldRequesterEmail:    "Requester Email",
	FieldNotes:             "Additional Notes",
}

// DefaultRequiredFields is the set a request must have filled in to be submitted
var DefaultRequiredFields = []Field{
	FieldFeedName, FieldSourceSystem, FieldVendorName, FieldTargetTable, FieldDataOwnerEmail,
	FieldFileNamePattern, FieldLandingZonePath, FieldFileFormat, FieldScheduleFrequency,
	FieldRequesterName, FieldRequesterEmail,
}

var timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ParseField converts a column name to Field
func ParseField(name string) (Field, error) {
	f := Field(strings.TrimSpace(name))
	if _, ok := fieldLabels[f]; !ok {
		return "", fmt.Errorf("unknown field %q", name)
	}
	return f, nil
}

// Label returns human-readable field name
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// Value returns the form value for the field
func (f Form) Value(field Field) string {
	switch field {
	case FieldFeedName:
		return f.FeedName
	case FieldSourceSystem:
		return f.SourceSystem
	case FieldVendorName:
		return f.VendorName
	case FieldTargetTable:
		return f.TargetTable
	case FieldDataOwnerEmail:
		return f.DataOwnerEmail
	case FieldFileNamePattern:
		return f.FileNamePattern
	case FieldLandingZonePath:
		return f.LandingZonePath
	case FieldFileFormat:
		return f.FileFormat
	case FieldScheduleFrequency:
		return f.ScheduleFrequency
	case FieldScheduleTime:
		return f.ScheduleTime
	case FieldLoadType:
		return f.LoadType
	case FieldSLATime:
		return f.SLATime
	case FieldRequesterName:
		return f.RequesterName
	case FieldRequesterEmail:
		return f.RequesterEmail
	case FieldNotes:
		return f.Notes
	}
	return ""
}

// Validate checks the form. Requester email is always required, the rest of required fields are
// checked only when the request is being submitted. Option and time values are checked whenever
// they are not blank. Returns nil if the form is acceptable.
func (f Form) Validate(required []Field) *ValidationError {
	verr := &ValidationError{}

	if strings.TrimSpace(f.RequesterEmail) == "" {
		verr.Missing = append(verr.Missing, FieldRequesterEmail.Label())
	}
	for _, field := range required {
		if field == FieldRequesterEmail {
			continue
		}
		if strings.TrimSpace(f.Value(field)) == "" {
			verr.Missing = append(verr.Missing, field.Label())
		}
	}

	if f.FileFormat != "" && !slices.Contains(FileFormats, f.FileFormat) {
		verr.invalid(FieldFileFormat.Label(), fmt.Sprintf("unsupported value %q", f.FileFormat))
	}
	if f.ScheduleFrequency != "" && !slices.Contains(Frequencies, f.ScheduleFrequency) {
		verr.invalid(FieldScheduleFrequency.Label(), fmt.Sprintf("unsupported value %q", f.ScheduleFrequency))
	}
	if f.LoadType != "" && !slices.Contains(LoadTypes, f.LoadType) {
		verr.invalid(FieldLoadType.Label(), fmt.Sprintf("unsupported value %q", f.LoadType))
	}
	if f.ScheduleTime != "" && !timeRe.MatchString(f.ScheduleTime) {
		verr.invalid(FieldScheduleTime.Label(), "expected HH:MM")
	}
	if f.SLATime != "" && !timeRe.MatchString(f.SLATime) {
		verr.invalid(FieldSLATime.Label(), "expected HH:MM")
	}

	if verr.Empty() {
		return nil
	}
	return verr
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
