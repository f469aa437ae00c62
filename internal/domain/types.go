package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the format of from/to query parameters
const DateLayout = "2006-01-02"

// MapOfAny is persisted as JSON in the database
type MapOfAny map[string]any

// Scan implements the sql.Scanner interface
func (m *MapOfAny) Scan(val interface{}) error {
	var data []byte

	if b, ok := val.([]byte); ok {
		// the driver reuses the buffer for the next row
		data = bytes.Clone(b)
	} else if s, ok := val.(string); ok {
		data = []byte(s)
	} else if val == nil {
		return nil
	}

	return json.Unmarshal(data, m)
}

// Value implements the driver.Valuer interface
func (m MapOfAny) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// DateRange is an inclusive range of calendar days
type DateRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// FromURLParams reads from/to query parameters
func (r *DateRange) FromURLParams(queryParams url.Values) error {
	r.From = strings.TrimSpace(queryParams.Get("from"))
	r.To = strings.TrimSpace(queryParams.Get("to"))
	return r.Validate()
}

func (r DateRange) Validate() error {
	var from, to time.Time
	var err error
	if r.From != "" {
		if from, err = time.Parse(DateLayout, r.From); err != nil {
			return NewValidationError("from must be a YYYY-MM-DD date")
		}
	}
	if r.To != "" {
		if to, err = time.Parse(DateLayout, r.To); err != nil {
			return NewValidationError("to must be a YYYY-MM-DD date")
		}
	}
	if r.From != "" && r.To != "" && to.Before(from) {
		return NewValidationError("to must not be before from")
	}
	return nil
}

// IsZero reports whether neither bound is set
func (r DateRange) IsZero() bool {
	return r.From == "" && r.To == ""
}

// Bounds resolves the range in loc to a half-open [start, end) interval.
// A missing bound is returned as nil.
func (r DateRange) Bounds(loc *time.Location) (start, end *time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	if r.From != "" {
		if t, err := time.ParseInLocation(DateLayout, r.From, loc); err == nil {
			start = &t
		}
	}
	if r.To != "" {
		if t, err := time.ParseInLocation(DateLayout, r.To, loc); err == nil {
			next := t.AddDate(0, 0, 1)
			end = &next
		}
	}
	return start, end
}

// DayBounds returns the start of the day containing now in loc and the start of the next day
func DayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// ParseID parses a positive numeric row id
func ParseID(raw, field string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, NewValidationError(fmt.Sprintf("%s is required", field))
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewValidationError(fmt.Sprintf("%s must be a positive integer", field))
	}
	return id, nil
}

// ParseObjectID parses a document id given as 24 hex characters
func ParseObjectID(raw, field string) (primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return primitive.NilObjectID, NewValidationError(fmt.Sprintf("%s is required", field))
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, NewValidationError(fmt.Sprintf("%s is not a valid id", field))
	}
	return id, nil
}

// ObjectIDList is the target set of a bulk document operation
type ObjectIDList []string

// Validate rejects empty lists and malformed ids, and returns the ids deduplicated in input order
func (l ObjectIDList) Validate() ([]primitive.ObjectID, error) {
	if len(l) == 0 {
		return nil, NewValidationError("ids is required")
	}
	seen := make(map[primitive.ObjectID]struct{}, len(l))
	out := make([]primitive.ObjectID, 0, len(l))
	for _, raw := range l {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
		if err != nil {
			return nil, NewValidationError(fmt.Sprintf("invalid id: %s", raw))
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

// IDList is the target set of a bulk operation
type IDList []int64

// Validate rejects empty lists and non-positive ids, and returns the ids deduplicated in input order
func (l IDList) Validate() (IDList, error) {
	if len(l) == 0 {
		return nil, NewValidationError("ids is required")
	}
	seen := make(map[int64]struct{}, len(l))
	out := make(IDList, 0, len(l))
	for _, id := range l {
		if id <= 0 {
			return nil, NewValidationError("ids must be positive integers")
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

// GroupTotal is the summed value of every record sharing Key
type GroupTotal struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// SumByGroup sums value over items grouped by key in a single pass.
// Results are ordered by total descending, then key ascending.
func SumByGroup[T any](items []T, key func(T) string, value func(T) float64) []GroupTotal {
	index := make(map[string]int)
	totals := make([]GroupTotal, 0)

	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(totals)
			index[k] = i
			totals = append(totals, GroupTotal{Key: k})
		}
		totals[i].Total += value(item)
		totals[i].Count++
	}

	sort.SliceStable(totals, func(a, b int) bool {
		if totals[a].Total != totals[b].Total {
			return totals[a].Total > totals[b].Total
		}
		return totals[a].Key < totals[b].Key
	})

	return totals
}

// requireReference reads and checks the referenceid query parameter
func requireReference(queryParams url.Values) (string, error) {
	ref := strings.TrimSpace(queryParams.Get("referenceid"))
	if ref == "" {
		return "", NewValidationError("referenceid is required")
	}
	return ref, nil
}

func inSet(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
