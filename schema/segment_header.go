package schema

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dot5enko/simple-stats-db/bits"
	"github.com/google/uuid"
)

const MaxSegmentRows = 32 * 1024 // keeps indices inside uint16 for range filters

const TotalHeaderSize = 64

const HeaderSizeUsed uint64 = 16 + 2 + 8 + 1 + 1 + BoundsSize // guid + items + compressed size + datatype + compression + [max value + min value] bounds
const ReservedSize uint64 = TotalHeaderSize - HeaderSizeUsed

const (
	CompressionNone uint8 = 0
	CompressionLz4  uint8 = 1
)

type SegmentHeader struct {
	Uid uuid.UUID

	Items uint16

	CompressedSize uint64

	DataType        FieldType
	CompressionType uint8

	Bounds BoundsFloat

	// reserved for future use
	Reserved [ReservedSize]uint8
}

func NewSegmentHeader(typ FieldType) *SegmentHeader {
	return &SegmentHeader{
		Uid:      uuid.New(),
		DataType: typ,
		Items:    0,
	}
}

func (header *SegmentHeader) PayloadRawSize() int {
	return int(header.Items) * header.DataType.Size()
}

func (header *SegmentHeader) FromBytes(input io.Reader) (topErr error) {

	reader := bits.NewReader(input, binary.LittleEndian)

	header.Uid, topErr = reader.ReadUUID()
	if topErr != nil {
		return fmt.Errorf("unable to decode segment header guid: %s", topErr.Error())
	}

	header.Items, topErr = reader.ReadU16()
	if topErr != nil {
		return fmt.Errorf("unable to decode segment header items: %s", topErr.Error())
	}

	header.CompressedSize, topErr = reader.ReadU64()
	if topErr != nil {
		return fmt.Errorf("unable to decode segment header compressed size: %s", topErr.Error())
	}

	columnTypeRaw, topErr := reader.ReadU8()
	if topErr != nil {
		return fmt.Errorf("unable to decode segment header column type: %s", topErr.Error())
	}
	header.DataType = FieldType(columnTypeRaw)

	header.CompressionType, topErr = reader.ReadU8()
	if topErr != nil {
		return fmt.Errorf("unable to decode segment header compression type: %s", topErr.Error())
	}

	// read max/min values
	header.Bounds.FromBytes(reader)

	return nil
}

func (header *SegmentHeader) WriteTo(bw *bits.BinWriter) (int, error) {

	// UUID
	n, _ := bw.Write(header.Uid[:])
	if n != 16 {
		return 0, fmt.Errorf("failed to write segment uid")
	}

	bw.PutUint16(header.Items)

	bw.PutUint64(header.CompressedSize)

	bw.WriteByte(uint8(header.DataType))
	bw.WriteByte(header.CompressionType)

	// bounds
	header.Bounds.WriteTo(bw)

	bw.EmptyBytes(int(ReservedSize))

	return bw.Position(), nil
}
