package store

import (
	"errors"
	"testing"

	"github.com/dot5enko/simple-stats-db/ops"
	"github.com/dot5enko/simple-stats-db/schema"
)

func newTestStore(t *testing.T, dir string, capacity int) *Store {
	t.Helper()

	s, err := New(Config{
		PathToStorage:   dir,
		SegmentCapacity: capacity,
	})
	if err != nil {
		t.Fatalf("unable to open store : %v", err)
	}

	return s
}

func TestStoreBoundsAcrossSeal(t *testing.T) {

	dir := t.TempDir()

	s := newTestStore(t, dir, 4)

	if err := s.CreateSeries("load", schema.Float64FieldType); err != nil {
		t.Fatalf("unable to create series : %v", err)
	}

	// first append fills exactly one segment
	if err := s.Append("load", []float64{3, -1, 4, 1}); err != nil {
		t.Fatalf("unable to append : %v", err)
	}

	// second one stays in the buffer
	if err := s.Append("load", []float64{5, -9, 2}); err != nil {
		t.Fatalf("unable to append : %v", err)
	}

	series := s.GetSeries("load")
	if len(series.Segments) != 1 {
		t.Fatalf("Expected %d sealed segments but got %d", 1, len(series.Segments))
	}

	bounds, boundsErr := s.Bounds("load")
	if boundsErr != nil {
		t.Fatalf("unable to read bounds : %v", boundsErr)
	}

	if bounds.Min != -9 {
		t.Errorf("Expected %.2f but got %.2f", -9.0, bounds.Min)
	}
	if bounds.Max != 5 {
		t.Errorf("Expected %.2f but got %.2f", 5.0, bounds.Max)
	}
}

func TestStoreCountInRangePruning(t *testing.T) {

	dir := t.TempDir()

	s := newTestStore(t, dir, 4)

	if err := s.CreateSeries("load", schema.Float64FieldType); err != nil {
		t.Fatalf("unable to create series : %v", err)
	}

	if err := s.Append("load", []float64{3, -1, 4, 1, 5, -9, 2}); err != nil {
		t.Fatalf("unable to append : %v", err)
	}

	// partial intersection with the sealed segment, plus the buffer
	count, countErr := s.CountInRange("load", 0, 5)
	if countErr != nil {
		t.Fatalf("unable to count : %v", countErr)
	}
	if count != 4 {
		t.Errorf("Expected %d but got %d", 4, count)
	}

	// full intersection counts from the header alone
	count, countErr = s.CountInRange("load", -10, 10)
	if countErr != nil {
		t.Fatalf("unable to count : %v", countErr)
	}
	if count != 7 {
		t.Errorf("Expected %d but got %d", 7, count)
	}

	// no intersection
	count, countErr = s.CountInRange("load", 100, 200)
	if countErr != nil {
		t.Fatalf("unable to count : %v", countErr)
	}
	if count != 0 {
		t.Errorf("Expected %d but got %d", 0, count)
	}
}

func TestStoreCompressedSegmentRoundtrip(t *testing.T) {

	dir := t.TempDir()

	capacity := 4096
	s := newTestStore(t, dir, capacity)

	if err := s.CreateSeries("pattern", schema.Float64FieldType); err != nil {
		t.Fatalf("unable to create series : %v", err)
	}

	values := make([]float64, capacity)
	for i := range values {
		values[i] = float64(i % 100)
	}

	if err := s.Append("pattern", values); err != nil {
		t.Fatalf("unable to append : %v", err)
	}

	series := s.GetSeries("pattern")
	if len(series.Segments) != 1 {
		t.Fatalf("Expected %d sealed segments but got %d", 1, len(series.Segments))
	}

	header, headerErr := s.segments.LoadSegmentHeader(series, series.Segments[0])
	if headerErr != nil {
		t.Fatalf("unable to load header : %v", headerErr)
	}

	if header.CompressionType != schema.CompressionLz4 {
		t.Errorf("Expected compressed segment but got compression type %d", header.CompressionType)
	}

	// partial intersection forces decompression and a real scan
	count, countErr := s.CountInRange("pattern", 10, 50)
	if countErr != nil {
		t.Fatalf("unable to count : %v", countErr)
	}

	expected := 0
	for _, v := range values {
		if v >= 10 && v < 50 {
			expected++
		}
	}

	if count != expected {
		t.Errorf("Expected %d but got %d", expected, count)
	}
}

func TestStoreReopen(t *testing.T) {

	dir := t.TempDir()

	s := newTestStore(t, dir, 4)

	if err := s.CreateSeries("load", schema.Float64FieldType); err != nil {
		t.Fatalf("unable to create series : %v", err)
	}

	if err := s.Append("load", []float64{3, -1, 4, 1, 5, -9, 2}); err != nil {
		t.Fatalf("unable to append : %v", err)
	}

	// Close seals the partially filled buffer too
	if err := s.Close(); err != nil {
		t.Fatalf("unable to close store : %v", err)
	}

	reopened := newTestStore(t, dir, 4)

	series := reopened.GetSeries("load")
	if series == nil {
		t.Fatal("series not loaded from disk")
	}
	if len(series.Segments) != 2 {
		t.Fatalf("Expected %d sealed segments but got %d", 2, len(series.Segments))
	}

	bounds, boundsErr := reopened.Bounds("load")
	if boundsErr != nil {
		t.Fatalf("unable to read bounds : %v", boundsErr)
	}

	if bounds.Min != -9 || bounds.Max != 5 {
		t.Errorf("Expected (-9, 5) but got (%.2f, %.2f)", bounds.Min, bounds.Max)
	}

	count, countErr := reopened.CountInRange("load", 0, 5)
	if countErr != nil {
		t.Fatalf("unable to count : %v", countErr)
	}
	if count != 4 {
		t.Errorf("Expected %d but got %d", 4, count)
	}
}

func TestStoreEmptySeriesBounds(t *testing.T) {

	s := newTestStore(t, t.TempDir(), 4)

	if err := s.CreateSeries("empty", schema.Float64FieldType); err != nil {
		t.Fatalf("unable to create series : %v", err)
	}

	_, err := s.Bounds("empty")
	if !errors.Is(err, ops.ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput but got %v", err)
	}
}

func TestStoreUnknownSeries(t *testing.T) {

	s := newTestStore(t, t.TempDir(), 4)

	if _, err := s.Bounds("nope"); !errors.Is(err, ErrSeriesNotFound) {
		t.Errorf("Expected ErrSeriesNotFound but got %v", err)
	}

	if err := s.Append("nope", []float64{1}); !errors.Is(err, ErrSeriesNotFound) {
		t.Errorf("Expected ErrSeriesNotFound but got %v", err)
	}
}

func TestStoreIntegerSeriesTruncates(t *testing.T) {

	s := newTestStore(t, t.TempDir(), 4)

	if err := s.CreateSeries("ticks", schema.Int64FieldType); err != nil {
		t.Fatalf("unable to create series : %v", err)
	}

	if err := s.Append("ticks", []float64{1.9, -2.9}); err != nil {
		t.Fatalf("unable to append : %v", err)
	}

	bounds, boundsErr := s.Bounds("ticks")
	if boundsErr != nil {
		t.Fatalf("unable to read bounds : %v", boundsErr)
	}

	if bounds.Min != -2 || bounds.Max != 1 {
		t.Errorf("Expected (-2, 1) but got (%.2f, %.2f)", bounds.Min, bounds.Max)
	}
}

func TestStoreDuplicateSeries(t *testing.T) {

	s := newTestStore(t, t.TempDir(), 4)

	if err := s.CreateSeries("dup", schema.Float64FieldType); err != nil {
		t.Fatalf("unable to create series : %v", err)
	}

	if err := s.CreateSeries("dup", schema.Float64FieldType); !errors.Is(err, ErrSeriesExists) {
		t.Errorf("Expected ErrSeriesExists but got %v", err)
	}
}
