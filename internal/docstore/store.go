// Package docstore implements a generic document collection persisted as a
// single JSON array file. Every operation reads the whole file, works on the
// decoded records and writes the whole file back, which keeps the files
// readable and hand-editable. The store is collection-agnostic: records are
// plain maps and the identity field is inferred from the file name.
package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"go.uber.org/zap"

	"github.com/yourusername/rrhh/internal/hospital"
)

// Record is one document of a collection.
type Record = map[string]any

// Store manages one JSON collection file.
type Store struct {
	path       string
	collection string
	idField    string
	logger     *zap.Logger
}

// Option customizes a Store during construction.
type Option func(*Store)

// WithLogger attaches a logger for diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New opens the collection at path, creating it as an empty array when it
// does not exist yet. The default identity field is derived from the file
// name: the .json extension and a trailing plural "s" are stripped and the
// remainder is prefixed with "id_", so contratos.json yields "id_contrato".
func New(path string, opts ...Option) (*Store, error) {
	collection := strings.TrimSuffix(filepath.Base(path), ".json")
	s := &Store{
		path:       path,
		collection: collection,
		idField:    "id_" + strings.TrimSuffix(collection, "s"),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.ensureFile(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the collection file location.
func (s *Store) Path() string { return s.path }

// Collection returns the collection name (file name without extension).
func (s *Store) Collection() string { return s.collection }

// IDField returns the default identity field for this collection.
func (s *Store) IDField() string { return s.idField }

func (s *Store) ensureFile() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return hospital.NewStorage("no se pudo inspeccionar %s", s.path).Wrap(err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return hospital.NewStorage("no se pudo crear el directorio de datos").Wrap(err)
	}
	if err := os.WriteFile(s.path, []byte("[]"), 0o644); err != nil {
		return hospital.NewStorage("no se pudo inicializar %s", s.path).Wrap(err)
	}
	return nil
}

// ReadAll returns every record of the collection. A missing file yields an
// empty slice. A file that no longer parses as a JSON array is treated as an
// empty collection: the problem is logged and the next write starts over,
// rather than wedging every operation behind a hand-editing session.
func (s *Store) ReadAll() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Record{}, nil
		}
		return nil, hospital.NewStorage("no se pudo leer %s", s.path).Wrap(err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("collection file is corrupt, treating as empty",
			zap.String("collection", s.collection),
			zap.String("path", s.path),
			zap.Error(err))
		return []Record{}, nil
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// WriteAll replaces the collection contents. The file is written to a
// temporary sibling first and renamed into place so a crash mid-write never
// leaves a truncated collection behind.
func (s *Store) WriteAll(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return hospital.NewStorage("no se pudo serializar la coleccion %s", s.collection).Wrap(err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return hospital.NewStorage("no se pudo crear el directorio de datos").Wrap(err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(buf.String()), 0o644); err != nil {
		return hospital.NewStorage("no se pudo escribir %s", tmp).Wrap(err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return hospital.NewStorage("no se pudo reemplazar %s", s.path).Wrap(err)
	}
	return nil
}

// Append adds one record to the end of the collection.
func (s *Store) Append(record Record) error {
	records, err := s.ReadAll()
	if err != nil {
		return err
	}
	return s.WriteAll(append(records, record))
}

// FindByID returns the first record whose identity field equals id. The
// optional idField argument overrides the inferred field name.
func (s *Store) FindByID(id int, idField ...string) (Record, bool, error) {
	field := s.resolveIDField(idField)
	records, err := s.ReadAll()
	if err != nil {
		return nil, false, err
	}
	for _, record := range records {
		if idEquals(record[field], id) {
			return record, true, nil
		}
	}
	return nil, false, nil
}

// FindByCriteria returns every record matching all criteria fields. Values
// compare by numeric value for numbers and by deep equality otherwise; an
// empty criteria map matches everything.
func (s *Store) FindByCriteria(criteria map[string]any) ([]Record, error) {
	records, err := s.ReadAll()
	if err != nil {
		return nil, err
	}
	matches := make([]Record, 0, len(records))
	for _, record := range records {
		if matchesCriteria(record, criteria) {
			matches = append(matches, record)
		}
	}
	return matches, nil
}

// Update merges fields into the first record with the given id and reports
// whether a record was found. Fields not present in the update are kept.
func (s *Store) Update(id int, fields map[string]any, idField ...string) (bool, error) {
	field := s.resolveIDField(idField)
	records, err := s.ReadAll()
	if err != nil {
		return false, err
	}
	for i, record := range records {
		if !idEquals(record[field], id) {
			continue
		}
		for k, v := range fields {
			records[i][k] = v
		}
		return true, s.WriteAll(records)
	}
	return false, nil
}

// Replace swaps the full record with the given id and reports whether a
// record was found.
func (s *Store) Replace(id int, record Record, idField ...string) (bool, error) {
	field := s.resolveIDField(idField)
	records, err := s.ReadAll()
	if err != nil {
		return false, err
	}
	for i, existing := range records {
		if !idEquals(existing[field], id) {
			continue
		}
		records[i] = record
		return true, s.WriteAll(records)
	}
	return false, nil
}

// Delete removes the first record with the given id and reports whether a
// record was found.
func (s *Store) Delete(id int, idField ...string) (bool, error) {
	field := s.resolveIDField(idField)
	records, err := s.ReadAll()
	if err != nil {
		return false, err
	}
	for i, record := range records {
		if !idEquals(record[field], id) {
			continue
		}
		records = append(records[:i], records[i+1:]...)
		return true, s.WriteAll(records)
	}
	return false, nil
}

// NextID returns the highest identity value plus one, starting at 1 for an
// empty collection. Gaps left by deletions are never reused.
func (s *Store) NextID(idField ...string) (int, error) {
	field := s.resolveIDField(idField)
	records, err := s.ReadAll()
	if err != nil {
		return 0, err
	}
	max := 0
	for _, record := range records {
		if value, ok := numericValue(record[field]); ok && int(value) > max {
			max = int(value)
		}
	}
	return max + 1, nil
}

func (s *Store) resolveIDField(override []string) string {
	if len(override) > 0 && strings.TrimSpace(override[0]) != "" {
		return override[0]
	}
	return s.idField
}

func matchesCriteria(record Record, criteria map[string]any) bool {
	for field, want := range criteria {
		got, ok := record[field]
		if !ok {
			return false
		}
		if !valuesEqual(got, want) {
			return false
		}
	}
	return true
}

// valuesEqual compares record values loosely enough to survive the JSON
// round-trip, where every number decodes as float64.
func valuesEqual(a, b any) bool {
	na, aok := numericValue(a)
	nb, bok := numericValue(b)
	if aok && bok {
		return na == nb
	}
	if aok != bok {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func idEquals(value any, id int) bool {
	n, ok := numericValue(value)
	return ok && n == float64(id)
}

func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// String implements fmt.Stringer for diagnostics.
func (s *Store) String() string {
	return fmt.Sprintf("docstore(%s)", s.collection)
}
