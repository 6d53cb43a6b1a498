package store

import (
	"fmt"

	"github.com/dot5enko/simple-stats-db/schema"
)

// Append buffers values for a series and seals full segments as the buffer
// crosses the configured capacity.
func (s *Store) Append(name string, values []float64) error {

	if len(values) == 0 {
		return nil
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	series, exists := s.series[name]
	if !exists {
		return ErrSeriesNotFound
	}

	// integer series truncate on the way in, so buffered values answer
	// queries exactly like their sealed form will
	normalized := values
	switch series.Type {
	case schema.Int64FieldType:
		normalized = make([]float64, len(values))
		for i, v := range values {
			normalized[i] = float64(int64(v))
		}
	case schema.Uint64FieldType:
		normalized = make([]float64, len(values))
		for i, v := range values {
			normalized[i] = float64(uint64(v))
		}
	}

	buffered := append(s.active[name], normalized...)

	for len(buffered) >= s.cfg.SegmentCapacity {

		chunk := buffered[:s.cfg.SegmentCapacity]

		header, sealErr := s.segments.SealSegment(series, chunk)
		if sealErr != nil {
			return fmt.Errorf("unable to seal segment for %s : %s", name, sealErr.Error())
		}

		series.Segments = append(series.Segments, header.Uid)

		if persistErr := s.persistSeries(series); persistErr != nil {
			return fmt.Errorf("unable to persist series %s : %s", name, persistErr.Error())
		}

		buffered = buffered[s.cfg.SegmentCapacity:]
	}

	// keep the tail in its own backing array, sealed chunks alias the old one
	tail := make([]float64, len(buffered))
	copy(tail, buffered)

	s.active[name] = tail

	return nil
}
