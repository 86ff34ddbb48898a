package staff

import (
	"errors"
	"fmt"
	"time"
)

// ErrReconstruction marks a stored record that could not be rebuilt into an
// entity, whether a field is missing, has the wrong shape, or the stored
// values violate a business rule. It is deliberately distinct from the
// validation errors raised for fresh input: a reconstruction failure means
// the data file holds something this code would never have written.
var ErrReconstruction = errors.New("registro corrupto")

func reconstructionError(entity string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrReconstruction, entity, cause)
}

// recordReader extracts typed fields from a decoded JSON record, remembering
// the first failure so entity constructors can read every field and check the
// error once.
type recordReader struct {
	record  map[string]any
	failure error
}

func newRecordReader(record map[string]any) *recordReader {
	return &recordReader{record: record}
}

func (r *recordReader) err() error {
	return r.failure
}

func (r *recordReader) fail(field, reason string) {
	if r.failure == nil {
		r.failure = fmt.Errorf("campo %s: %s", field, reason)
	}
}

func (r *recordReader) str(field string) string {
	value, ok := r.record[field]
	if !ok || value == nil {
		r.fail(field, "ausente")
		return ""
	}
	s, ok := value.(string)
	if !ok {
		r.fail(field, "debe ser texto")
		return ""
	}
	return s
}

// optStr returns "" for an absent or null optional field.
func (r *recordReader) optStr(field string) string {
	value, ok := r.record[field]
	if !ok || value == nil {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		r.fail(field, "debe ser texto")
		return ""
	}
	return s
}

func (r *recordReader) float(field string) float64 {
	value, ok := r.record[field]
	if !ok || value == nil {
		r.fail(field, "ausente")
		return 0
	}
	f, ok := asFloat(value)
	if !ok {
		r.fail(field, "debe ser un numero")
		return 0
	}
	return f
}

func (r *recordReader) num(field string) int {
	return int(r.float(field))
}

func (r *recordReader) intList(field string) []int {
	value, ok := r.record[field]
	if !ok || value == nil {
		r.fail(field, "ausente")
		return nil
	}
	switch list := value.(type) {
	case []int:
		return append([]int(nil), list...)
	case []any:
		out := make([]int, 0, len(list))
		for _, item := range list {
			f, ok := asFloat(item)
			if !ok {
				r.fail(field, "debe ser una lista de numeros")
				return nil
			}
			out = append(out, int(f))
		}
		return out
	default:
		r.fail(field, "debe ser una lista de numeros")
		return nil
	}
}

func (r *recordReader) date(field string) time.Time {
	raw := r.str(field)
	if raw == "" {
		return time.Time{}
	}
	t, err := ParseDate(raw)
	if err != nil {
		r.fail(field, "fecha invalida")
		return time.Time{}
	}
	return t
}

// optDate returns the zero time for an absent or null optional date.
func (r *recordReader) optDate(field string) time.Time {
	raw := r.optStr(field)
	if raw == "" {
		return time.Time{}
	}
	t, err := ParseDate(raw)
	if err != nil {
		r.fail(field, "fecha invalida")
		return time.Time{}
	}
	return t
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
