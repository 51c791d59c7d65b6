package problem

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
)

// Standard member names of a problem document.
const (
	MemberStatus   = "status"
	MemberType     = "type"
	MemberTitle    = "title"
	MemberDetail   = "detail"
	MemberInstance = "instance"
)

// Details is an RFC 7807 problem document.
// The zero Status means "not set"; use WithDefaults before writing it.
type Details struct {
	Status   int    // HTTP status code
	Type     string // URI reference identifying the problem type
	Title    string // Short, human-readable summary
	Detail   string // Explanation specific to this occurrence
	Instance string // URI reference identifying this occurrence

	// Extensions are additional members serialized next to the standard ones.
	// Keys that collide with a standard member are ignored.
	Extensions map[string]any
}

// New creates a problem document for the given status code.
// The title defaults to the standard status text.
func New(status int) Details {
	return Details{
		Status: status,
		Title:  http.StatusText(status),
	}
}

// WithType returns a copy of the document with the type URI set.
func (d Details) WithType(uri string) Details {
	d.Type = uri
	return d
}

// WithTitle returns a copy of the document with the title set.
func (d Details) WithTitle(title string) Details {
	d.Title = title
	return d
}

// WithDetail returns a copy of the document with the detail message set.
func (d Details) WithDetail(detail string) Details {
	d.Detail = detail
	return d
}

// WithInstance returns a copy of the document with the instance URI set.
func (d Details) WithInstance(uri string) Details {
	d.Instance = uri
	return d
}

// With returns a copy of the document with an extension member added.
// The original document's extensions are left untouched.
func (d Details) With(key string, value any) Details {
	ext := make(map[string]any, len(d.Extensions)+1)
	maps.Copy(ext, d.Extensions)
	ext[key] = value
	d.Extensions = ext
	return d
}

// Extended reports whether the document carries extension members.
func (d Details) Extended() bool {
	for key := range d.Extensions {
		if !isStandardMember(key) {
			return true
		}
	}
	return false
}

// Validate checks that the status code is a valid HTTP status.
func (d Details) Validate() error {
	if !ValidStatus(d.Status) {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, d.Status)
	}
	return nil
}

// WithDefaults returns a copy of the document with an unset or invalid status
// replaced by defaultStatus. When the document has no type (about:blank) and
// no title, the title is set to the standard status text.
func (d Details) WithDefaults(defaultStatus int) Details {
	if !ValidStatus(d.Status) {
		d.Status = defaultStatus
	}
	if d.Type == "" && d.Title == "" {
		d.Title = http.StatusText(d.Status)
	}
	return d
}

// Wire returns the flat wire representation of the document.
// Empty optional members are omitted, extension members sit at the top level.
func (d Details) Wire() map[string]any {
	wire := make(map[string]any, 5+len(d.Extensions))
	for key, value := range d.Extensions {
		if isStandardMember(key) {
			continue
		}
		wire[key] = value
	}

	wire[MemberStatus] = d.Status
	if d.Type != "" {
		wire[MemberType] = d.Type
	}
	if d.Title != "" {
		wire[MemberTitle] = d.Title
	}
	if d.Detail != "" {
		wire[MemberDetail] = d.Detail
	}
	if d.Instance != "" {
		wire[MemberInstance] = d.Instance
	}

	return wire
}

// MarshalJSON implements json.Marshaler using the flat wire representation.
func (d Details) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Wire())
}

// UnmarshalJSON implements json.Unmarshaler.
// Members other than the standard ones are collected into Extensions.
func (d *Details) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var out Details
	fields := map[string]*string{
		MemberType:     &out.Type,
		MemberTitle:    &out.Title,
		MemberDetail:   &out.Detail,
		MemberInstance: &out.Instance,
	}

	for key, value := range raw {
		if key == MemberStatus {
			if err := json.Unmarshal(value, &out.Status); err != nil {
				return fmt.Errorf("%w: status: %v", ErrInvalidDocument, err)
			}
			continue
		}

		if field, ok := fields[key]; ok {
			if err := json.Unmarshal(value, field); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidDocument, key, err)
			}
			continue
		}

		var ext any
		if err := json.Unmarshal(value, &ext); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidDocument, key, err)
		}
		if out.Extensions == nil {
			out.Extensions = make(map[string]any)
		}
		out.Extensions[key] = ext
	}

	*d = out
	return nil
}

// ValidStatus reports whether status is within the HTTP status code range.
func ValidStatus(status int) bool {
	return status >= 100 && status <= 599
}

func isStandardMember(key string) bool {
	switch key {
	case MemberStatus, MemberType, MemberTitle, MemberDetail, MemberInstance:
		return true
	}
	return false
}
