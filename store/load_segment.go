package store

import (
	"bytes"
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dot5enko/simple-stats-db/bits"
	"github.com/dot5enko/simple-stats-db/compression"
	"github.com/dot5enko/simple-stats-db/schema"
	"github.com/dot5enko/simple-stats-db/store/cache"
	"github.com/google/uuid"
)

func (m *SegmentManager) LoadSegmentHeader(series *schema.Series, uid uuid.UUID) (*schema.SegmentHeader, error) {

	if cached := m.getHeaderFromCache(uid); cached != nil {
		return cached, nil
	}

	headerBuf, headerBufIdx := m.headerReaderBufferRing.Get()
	defer m.headerReaderBufferRing.Return(headerBufIdx)

	fileReader, openErr := m.GetSegmentFile(series, uid, false)
	if openErr != nil {
		return nil, fmt.Errorf("unable to open segment %s : %s", uid.String(), openErr.Error())
	}

	defer fileReader.Close()

	readErr := fileReader.ReadAt(headerBuf, 0, schema.TotalHeaderSize)
	if readErr != nil {
		return nil, fmt.Errorf("unable to read segment header : %s", readErr.Error())
	}

	header := &schema.SegmentHeader{}

	parseErr := header.FromBytes(bytes.NewReader(headerBuf))
	if parseErr != nil {
		return nil, parseErr
	}

	m.putHeaderToCache(header)

	return header, nil
}

// LoadSegmentValues reads and decodes a sealed segment payload. Concurrent
// loads of the same segment are collapsed into one disk read.
func (m *SegmentManager) LoadSegmentValues(series *schema.Series, uid uuid.UUID) (*SegmentCacheItem, error) {

	cached := m.getSegmentFromCache(uid)
	if cached != nil {
		return cached, nil
	}

	v, err, _ := m.loadGroup.Do(uid.String(), func() (any, error) {

		header, headerErr := m.LoadSegmentHeader(series, uid)
		if headerErr != nil {
			return nil, headerErr
		}

		payloadBuf, payloadBufIdx := m.payloadBufferRing.Get()
		defer m.payloadBufferRing.Return(payloadBufIdx)

		fileReader, openErr := m.GetSegmentFile(series, uid, false)
		if openErr != nil {
			return nil, fmt.Errorf("unable to open segment %s : %s", uid.String(), openErr.Error())
		}

		defer fileReader.Close()

		readErr := fileReader.ReadAt(payloadBuf, schema.TotalHeaderSize, int(header.CompressedSize))
		if readErr != nil {
			return nil, fmt.Errorf("unable to read segment payload : %s", readErr.Error())
		}

		rawSize := header.PayloadRawSize()
		raw := make([]byte, rawSize)

		switch header.CompressionType {
		case schema.CompressionNone:
			copy(raw, payloadBuf[:header.CompressedSize])

		case schema.CompressionLz4:
			_, decompressErr := compression.DecompressLz4(payloadBuf[:header.CompressedSize], raw)
			if decompressErr != nil {

				spew.Dump("segment payload prefix", payloadBuf[:64])

				return nil, fmt.Errorf("unable to decompress segment payload [input length %d, output buffer %d]: %s", header.CompressedSize, rawSize, decompressErr.Error())
			}

		default:
			return nil, fmt.Errorf("unsupported compression type: %d", header.CompressionType)
		}

		values, decodeErr := decodeValues(raw, header)
		if decodeErr != nil {
			return nil, decodeErr
		}

		item := &SegmentCacheItem{
			Header:  header,
			Values:  values,
			RtStats: &cache.CacheStats{Created: time.Now(), Reads: 1},
		}

		m.locker.Lock()
		defer m.locker.Unlock()

		m.cache[uid] = item

		return item, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*SegmentCacheItem), nil
}

func decodeValues(raw []byte, header *schema.SegmentHeader) ([]float64, error) {

	count := int(header.Items)
	out := make([]float64, count)

	switch header.DataType {

	case schema.Float64FieldType:
		copy(out, bits.MapBytesToNumbers[float64](raw, count))

	case schema.Int64FieldType:
		for i, v := range bits.MapBytesToNumbers[int64](raw, count) {
			out[i] = float64(v)
		}

	case schema.Uint64FieldType:
		for i, v := range bits.MapBytesToNumbers[uint64](raw, count) {
			out[i] = float64(v)
		}

	default:
		return nil, fmt.Errorf("unknown type while decoding segment payload: %s", header.DataType.String())
	}

	return out, nil
}
