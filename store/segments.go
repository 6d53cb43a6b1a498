package store

import (
	"path/filepath"
	"sync"

	"github.com/dot5enko/simple-stats-db/compression"
	"github.com/dot5enko/simple-stats-db/io"
	"github.com/dot5enko/simple-stats-db/schema"
	"github.com/dot5enko/simple-stats-db/store/cache"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const maxPayloadRawSize = schema.MaxSegmentRows * 8

type SegmentCacheItem struct {
	Header *schema.SegmentHeader

	Values []float64

	RtStats *cache.CacheStats
}

type SegmentManager struct {
	storagePath string

	// decoded payload cache
	cache  map[uuid.UUID]*SegmentCacheItem
	locker sync.RWMutex

	// headers are tiny, cached separately so bounds queries never touch payloads
	headers       map[uuid.UUID]*schema.SegmentHeader
	headersLocker sync.RWMutex

	// buffers
	headerReaderBufferRing *cache.FixedSizeBufferPool
	payloadBufferRing      *cache.FixedSizeBufferPool

	loadGroup singleflight.Group
}

func NewSegmentManager(storagePath string, payloadBuffers int) *SegmentManager {

	sm := &SegmentManager{
		storagePath: storagePath,
		cache:       map[uuid.UUID]*SegmentCacheItem{},
		headers:     map[uuid.UUID]*schema.SegmentHeader{},
	}

	sm.payloadBufferRing = cache.NewFixedSizeBufferPool(payloadBuffers, compression.Lz4BlockBound(maxPayloadRawSize))
	sm.headerReaderBufferRing = cache.NewFixedSizeBufferPool(payloadBuffers*2, schema.TotalHeaderSize)

	return sm
}

func (m *SegmentManager) GetSegmentPath(s *schema.Series, id uuid.UUID) string {
	return filepath.Join(m.storagePath, s.Name, id.String()+".seg")
}

func (m *SegmentManager) GetSegmentFile(s *schema.Series, id uuid.UUID, writeAccess bool) (*io.FileReader, error) {

	segmentPath := m.GetSegmentPath(s, id)

	fileManager := io.NewFileReader(segmentPath)
	openErr := fileManager.Open(!writeAccess)

	return fileManager, openErr
}

func (m *SegmentManager) getSegmentFromCache(uid uuid.UUID) *SegmentCacheItem {

	m.locker.RLock()
	defer m.locker.RUnlock()

	if item, ok := m.cache[uid]; ok {
		item.RtStats.Reads++
		return item
	}

	return nil
}

func (m *SegmentManager) getHeaderFromCache(uid uuid.UUID) *schema.SegmentHeader {

	m.headersLocker.RLock()
	defer m.headersLocker.RUnlock()

	return m.headers[uid]
}

func (m *SegmentManager) putHeaderToCache(header *schema.SegmentHeader) {

	m.headersLocker.Lock()
	defer m.headersLocker.Unlock()

	m.headers[header.Uid] = header
}
