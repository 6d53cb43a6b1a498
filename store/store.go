package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/dot5enko/simple-stats-db/schema"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

var (
	ErrSeriesNotFound = errors.New("series not found")
	ErrSeriesExists   = errors.New("series already exists")
)

type Config struct {
	PathToStorage string

	// rows buffered in memory before a segment is sealed
	SegmentCapacity int

	// pooled payload read buffers, bounds memory held by concurrent loads
	PayloadBuffers int
}

const DefaultSegmentCapacity = 8192
const DefaultPayloadBuffers = 8

type Store struct {
	cfg Config

	series map[string]*schema.Series
	active map[string][]float64
	lock   sync.RWMutex

	segments *SegmentManager
}

func New(cfg Config) (*Store, error) {

	if cfg.SegmentCapacity <= 0 {
		cfg.SegmentCapacity = DefaultSegmentCapacity
	}
	if cfg.SegmentCapacity > schema.MaxSegmentRows {
		cfg.SegmentCapacity = schema.MaxSegmentRows
	}
	if cfg.PayloadBuffers <= 0 {
		cfg.PayloadBuffers = DefaultPayloadBuffers
	}

	if mkdirErr := os.MkdirAll(cfg.PathToStorage, 0755); mkdirErr != nil {
		return nil, fmt.Errorf("unable to create storage folder: %s", mkdirErr.Error())
	}

	s := &Store{
		cfg:    cfg,
		series: map[string]*schema.Series{},
		active: map[string][]float64{},

		segments: NewSegmentManager(cfg.PathToStorage, cfg.PayloadBuffers),
	}

	loadErr := s.loadSeriesFromDisk()
	if loadErr != nil {
		return nil, loadErr
	}

	return s, nil
}

func (s *Store) getAbsStoragePath(segments ...string) string {

	pathSegments := []string{s.cfg.PathToStorage}
	pathSegments = append(pathSegments, segments...)

	return filepath.Join(pathSegments...)
}

func (s *Store) persistSeries(series *schema.Series) error {

	seriesPath := s.getAbsStoragePath(series.Name, "series.json")

	seriesBytes, marshalErr := json.Marshal(series)
	if marshalErr != nil {
		return marshalErr
	}

	return os.WriteFile(seriesPath, seriesBytes, 0644)
}

func (s *Store) loadSeriesFromDisk() error {

	entries, err := os.ReadDir(s.cfg.PathToStorage)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) { // no series yet
			return nil
		} else {
			log.Printf(" >>>>>>> %v", err)
			return err
		}
	}

	loadSingleSeriesFromDisk := func(dir string) error {

		seriesFilePathName := s.getAbsStoragePath(dir, "series.json")

		fullContent, contentErr := os.ReadFile(seriesFilePathName)
		if contentErr != nil {
			return contentErr
		}

		var loaded schema.Series
		if unmarshalErr := json.Unmarshal(fullContent, &loaded); unmarshalErr != nil {
			return unmarshalErr
		}

		s.series[loaded.Name] = &loaded
		slog.Info(" loaded series from disk", "series_name", loaded.Name, "segments", len(loaded.Segments))

		return nil
	}

	for _, e := range entries {
		if e.IsDir() {
			if loadErr := loadSingleSeriesFromDisk(e.Name()); loadErr != nil {
				return fmt.Errorf("unable to load series from %s : %s", e.Name(), loadErr.Error())
			}
		}
	}

	return nil
}

func (s *Store) CreateSeries(name string, typ schema.FieldType) error {

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, exists := s.series[name]; exists {
		return ErrSeriesExists
	}

	seriesPath := s.getAbsStoragePath(name)
	if mkdirErr := os.MkdirAll(seriesPath, 0755); mkdirErr != nil {
		return fmt.Errorf("unable to create series folder: `%s`", mkdirErr.Error())
	}

	series := &schema.Series{
		Name:     name,
		Uid:      uuid.NewString(),
		Type:     typ,
		Segments: []uuid.UUID{},
	}

	if storeErr := s.persistSeries(series); storeErr != nil {
		return fmt.Errorf("unable to save series config to disk : %s", storeErr.Error())
	}

	s.series[name] = series

	color.Green(" +++ created series %s [type = %s]", name, typ.String())

	return nil
}

func (s *Store) GetSeries(name string) *schema.Series {

	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.series[name]
}

// Close seals every non-empty append buffer so nothing buffered is lost
// across restarts. Partially filled segments are fine: the header carries
// the real item count.
func (s *Store) Close() error {

	s.lock.Lock()
	defer s.lock.Unlock()

	for name, buffered := range s.active {
		if len(buffered) == 0 {
			continue
		}

		series := s.series[name]

		header, sealErr := s.segments.SealSegment(series, buffered)
		if sealErr != nil {
			return fmt.Errorf("unable to seal buffered values for %s : %s", name, sealErr.Error())
		}

		series.Segments = append(series.Segments, header.Uid)

		if persistErr := s.persistSeries(series); persistErr != nil {
			return persistErr
		}

		s.active[name] = nil
	}

	return nil
}
