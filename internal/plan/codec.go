package plan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Persistence keys and file names.
const (
	// StorageKey holds the snapshot JSON in the durable store.
	StorageKey = "savedActivities"
	// GranularityKey holds the smallest unit in the durable store.
	GranularityKey = "smallestUnit"
	// ExportFileName is the default name for exported files.
	ExportFileName = "saved_activities.json"
)

// ExportFile is the shape of an exported plan.
type ExportFile struct {
	Activities   Snapshot `json:"activities"`
	SmallestUnit int      `json:"smallestUnit"`
}

// MarshalSnapshot encodes a snapshot as a JSON object of name -> hours.
func MarshalSnapshot(s Snapshot) ([]byte, error) {
	for name, h := range s {
		if !validHours(h) {
			return nil, fmt.Errorf("%s: %w, got %v", name, ErrInvalidHours, h)
		}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot decodes a stored snapshot and checks it against names.
// Names missing from the data become zero. Any problem is returned as a
// *DeserializationError.
func UnmarshalSnapshot(data []byte, names []string) (Snapshot, error) {
	var raw map[string]float64
	if err := decodeStrict(bytes.NewReader(data), &raw); err != nil {
		return nil, &DeserializationError{Source: StorageKey, Err: err}
	}
	if raw == nil {
		return nil, &DeserializationError{Source: StorageKey, Err: errors.New("expected an object")}
	}
	snap, err := checkSnapshot(raw, names)
	if err != nil {
		return nil, &DeserializationError{Source: StorageKey, Err: err}
	}
	return snap, nil
}

// EncodeExport writes snap and g in the export file format.
func EncodeExport(w io.Writer, snap Snapshot, g Granularity) error {
	if !g.Valid() {
		return fmt.Errorf("%w, got %d", ErrInvalidGranularity, int(g))
	}
	for name, h := range snap {
		if !validHours(h) {
			return fmt.Errorf("%s: %w, got %v", name, ErrInvalidHours, h)
		}
	}
	data, err := json.Marshal(ExportFile{Activities: snap, SmallestUnit: int(g)})
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// DecodeExport reads an export file. source names the input in errors.
// Every failure is a *DeserializationError.
func DecodeExport(r io.Reader, source string, names []string) (Snapshot, Granularity, error) {
	var file struct {
		Activities   map[string]float64 `json:"activities"`
		SmallestUnit *int               `json:"smallestUnit"`
	}
	if err := decodeStrict(r, &file); err != nil {
		return nil, 0, &DeserializationError{Source: source, Err: err}
	}
	if file.Activities == nil {
		return nil, 0, &DeserializationError{Source: source, Err: errors.New("missing \"activities\"")}
	}
	if file.SmallestUnit == nil {
		return nil, 0, &DeserializationError{Source: source, Err: errors.New("missing \"smallestUnit\"")}
	}
	g, err := ParseGranularity(*file.SmallestUnit)
	if err != nil {
		return nil, 0, &DeserializationError{Source: source, Err: err}
	}
	snap, err := checkSnapshot(file.Activities, names)
	if err != nil {
		return nil, 0, &DeserializationError{Source: source, Err: err}
	}
	return snap, g, nil
}

// WriteExportFile writes the export document for snap and g to path.
func WriteExportFile(path string, snap Snapshot, g Granularity) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	if err := EncodeExport(f, snap, g); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

// ReadExportFile reads the export document at path.
func ReadExportFile(path string, names []string) (Snapshot, Granularity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening import file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeExport(f, path, names)
}

// decodeStrict decodes exactly one JSON value and rejects unknown fields
// and trailing data.
func decodeStrict(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}

func checkSnapshot(raw map[string]float64, names []string) (Snapshot, error) {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}
	snap := ZeroSnapshot(names)
	for name, h := range raw {
		if !known[name] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownActivity, name)
		}
		if !validHours(h) {
			return nil, fmt.Errorf("%s: %w, got %v", name, ErrInvalidHours, h)
		}
		snap[name] = h
	}
	return snap, nil
}
