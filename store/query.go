package store

import (
	"errors"
	"fmt"

	"github.com/dot5enko/simple-stats-db/ops"
	"github.com/dot5enko/simple-stats-db/schema"
)

// Bounds returns the min/max over everything appended to the series. Sealed
// segments contribute their stored header bounds, the append buffer gets one
// fresh scan; no payload is read. An empty series surfaces ops.ErrEmptyInput.
func (s *Store) Bounds(name string) (schema.BoundsFloat, error) {

	s.lock.RLock()
	defer s.lock.RUnlock()

	series, exists := s.series[name]
	if !exists {
		return schema.BoundsFloat{}, ErrSeriesNotFound
	}

	var result schema.BoundsFloat
	initialized := false

	for _, segmentUid := range series.Segments {

		header, headerErr := s.segments.LoadSegmentHeader(series, segmentUid)
		if headerErr != nil {
			return schema.BoundsFloat{}, fmt.Errorf("unable to load segment header %s : %s", segmentUid.String(), headerErr.Error())
		}

		if !initialized {
			result = header.Bounds
			initialized = true
		} else {
			result.Morph(header.Bounds)
		}
	}

	if buffered := s.active[name]; len(buffered) > 0 {

		scanned, scanErr := ops.ScanBounds(buffered)
		if scanErr != nil {
			return schema.BoundsFloat{}, scanErr
		}

		if !initialized {
			result = schema.BoundsFromScan(scanned)
			initialized = true
		} else {
			result.Morph(schema.BoundsFromScan(scanned))
		}
	}

	if !initialized {
		return schema.BoundsFloat{}, ops.ErrEmptyInput
	}

	return result, nil
}

// CountInRange counts values inside the half-open range [from, to). Segment
// header bounds prune the work: full intersections count without touching
// the payload, misses are skipped, only partial overlaps get decompressed
// and scanned.
func (s *Store) CountInRange(name string, from, to float64) (int, error) {

	s.lock.RLock()
	defer s.lock.RUnlock()

	series, exists := s.series[name]
	if !exists {
		return 0, ErrSeriesNotFound
	}

	total := 0
	var indexBuf []uint16

	for _, segmentUid := range series.Segments {

		header, headerErr := s.segments.LoadSegmentHeader(series, segmentUid)
		if headerErr != nil {
			return 0, fmt.Errorf("unable to load segment header %s : %s", segmentUid.String(), headerErr.Error())
		}

		match := header.Bounds.IntersectRange(from, to)

		switch match {

		case ops.NoIntersection:
			continue

		case ops.FullIntersection:
			total += int(header.Items)

		case ops.PartialIntersection:

			item, loadErr := s.segments.LoadSegmentValues(series, segmentUid)
			if loadErr != nil {
				return 0, loadErr
			}

			if indexBuf == nil {
				indexBuf = make([]uint16, schema.MaxSegmentRows)
			}

			total += ops.FilterInRange(item.Values, from, to, indexBuf)

		default:
			return 0, errors.New("unexpected bounds match result " + match.String())
		}
	}

	if buffered := s.active[name]; len(buffered) > 0 {

		if indexBuf == nil || len(buffered) > len(indexBuf) {
			indexBuf = make([]uint16, len(buffered))
		}

		total += ops.FilterInRange(buffered, from, to, indexBuf)
	}

	return total, nil
}
