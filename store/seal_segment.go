package store

import (
	"encoding/binary"
	"fmt"

	"github.com/dot5enko/simple-stats-db/bits"
	"github.com/dot5enko/simple-stats-db/compression"
	"github.com/dot5enko/simple-stats-db/io"
	"github.com/dot5enko/simple-stats-db/ops"
	"github.com/dot5enko/simple-stats-db/schema"
	"github.com/fatih/color"
)

func scanConverted[T int64 | uint64](values []float64) ([]T, schema.BoundsFloat, error) {

	typed := make([]T, len(values))
	for i, v := range values {
		typed[i] = T(v)
	}

	scanned, scanErr := ops.ScanBounds(typed)
	if scanErr != nil {
		return nil, schema.BoundsFloat{}, scanErr
	}

	return typed, schema.BoundsFromScan(scanned), nil
}

// SealSegment writes values out as a single immutable segment: one bounds
// scan over the payload, lz4 when it pays off, header first.
func (m *SegmentManager) SealSegment(series *schema.Series, values []float64) (*schema.SegmentHeader, error) {

	if len(values) == 0 {
		return nil, ops.ErrEmptyInput
	}

	if len(values) > schema.MaxSegmentRows {
		return nil, fmt.Errorf("segment overflow : %d values, max is %d", len(values), schema.MaxSegmentRows)
	}

	header := schema.NewSegmentHeader(series.Type)
	header.Items = uint16(len(values))

	var payloadRaw []byte

	switch series.Type {
	case schema.Float64FieldType:

		scanned, scanErr := ops.ScanBounds(values)
		if scanErr != nil {
			return nil, scanErr
		}

		header.Bounds = schema.BoundsFromScan(scanned)
		payloadRaw = io.AsRawBytes(values)

	case schema.Int64FieldType:

		typed, scannedBounds, scanErr := scanConverted[int64](values)
		if scanErr != nil {
			return nil, scanErr
		}

		header.Bounds = scannedBounds
		payloadRaw = io.AsRawBytes(typed)

	case schema.Uint64FieldType:

		typed, scannedBounds, scanErr := scanConverted[uint64](values)
		if scanErr != nil {
			return nil, scanErr
		}

		header.Bounds = scannedBounds
		payloadRaw = io.AsRawBytes(typed)

	default:
		return nil, fmt.Errorf("unsupported field type : %s", series.Type.String())
	}

	compressBuf, compressBufIdx := m.payloadBufferRing.Get()
	defer m.payloadBufferRing.Return(compressBufIdx)

	payload := payloadRaw

	compressedSize, compressErr := compression.CompressLz4(payloadRaw, compressBuf)
	if compressErr != nil {
		return nil, fmt.Errorf("unable to compress segment payload : %s", compressErr.Error())
	}

	if compressedSize > 0 && compressedSize < len(payloadRaw) {
		header.CompressionType = schema.CompressionLz4
		header.CompressedSize = uint64(compressedSize)
		payload = compressBuf[:compressedSize]

		compressRatio := float64(compressedSize) / float64(len(payloadRaw))
		color.Yellow(" compressed segment [type=%s] %d -> %d [%.2f%%]", series.Type.String(), len(payloadRaw), compressedSize, compressRatio*100.0)
	} else {
		header.CompressionType = schema.CompressionNone
		header.CompressedSize = uint64(len(payloadRaw))
	}

	headerBuf, headerBufIdx := m.headerReaderBufferRing.Get()
	defer m.headerReaderBufferRing.Return(headerBufIdx)

	headerWriter := bits.NewEncodeBuffer(headerBuf, binary.LittleEndian)
	writtenBytes, writeErr := header.WriteTo(&headerWriter)
	if writeErr != nil {
		return nil, fmt.Errorf("unable to encode segment header : %s", writeErr.Error())
	}

	f, segmentFileErr := m.GetSegmentFile(series, header.Uid, true)
	if segmentFileErr != nil {
		return nil, fmt.Errorf("unable to open segment file : %s", segmentFileErr.Error())
	}

	defer f.Close()

	writeHeaderErr := f.WriteAt(headerBuf[:writtenBytes], 0, writtenBytes)
	if writeHeaderErr != nil {
		return nil, fmt.Errorf("unable to write segment header : %s", writeHeaderErr.Error())
	}

	writeDataErr := f.WriteAt(payload, schema.TotalHeaderSize, len(payload))
	if writeDataErr != nil {
		return nil, fmt.Errorf("unable to write segment payload : %s", writeDataErr.Error())
	}

	m.putHeaderToCache(header)

	color.Green(" +++ sealed segment %s [%d items, type = %s] bounds %.2f <-> %.2f", header.Uid.String(), header.Items, series.Type.String(), header.Bounds.Min, header.Bounds.Max)

	return header, nil
}
