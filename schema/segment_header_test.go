package schema

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/dot5enko/simple-stats-db/bits"
)

func TestSegmentHeaderRoundtrip(t *testing.T) {

	header := NewSegmentHeader(Float64FieldType)
	header.Items = 123
	header.CompressedSize = 456
	header.CompressionType = CompressionLz4
	header.Bounds = BoundsFloat{Min: -9, Max: 5}

	buf := make([]byte, TotalHeaderSize)
	writer := bits.NewEncodeBuffer(buf, binary.LittleEndian)

	written, writeErr := header.WriteTo(&writer)
	if writeErr != nil {
		t.Fatalf("unable to encode header : %v", writeErr)
	}

	if written != TotalHeaderSize {
		t.Errorf("Expected %d but got %d", TotalHeaderSize, written)
	}

	var decoded SegmentHeader

	if parseErr := decoded.FromBytes(bytes.NewReader(buf)); parseErr != nil {
		t.Fatalf("unable to decode header : %v", parseErr)
	}

	if decoded.Uid != header.Uid {
		t.Errorf("Expected %s but got %s", header.Uid.String(), decoded.Uid.String())
	}
	if decoded.Items != header.Items {
		t.Errorf("Expected %d but got %d", header.Items, decoded.Items)
	}
	if decoded.CompressedSize != header.CompressedSize {
		t.Errorf("Expected %d but got %d", header.CompressedSize, decoded.CompressedSize)
	}
	if decoded.DataType != header.DataType {
		t.Errorf("Expected %s but got %s", header.DataType.String(), decoded.DataType.String())
	}
	if decoded.CompressionType != header.CompressionType {
		t.Errorf("Expected %d but got %d", header.CompressionType, decoded.CompressionType)
	}
	if decoded.Bounds != header.Bounds {
		t.Errorf("Expected %v but got %v", header.Bounds, decoded.Bounds)
	}
}
