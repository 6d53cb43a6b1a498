package compression

import (
	"github.com/pierrec/lz4/v4"
)

func Lz4BlockBound(srcSize int) int {
	return lz4.CompressBlockBound(srcSize)
}

// CompressLz4 compresses src into dst using the lz4 block format.
// A zero size with nil error means src is incompressible and should be
// stored raw.
func CompressLz4(src, dst []byte) (int, error) {
	var compressor lz4.Compressor
	return compressor.CompressBlock(src, dst)
}

func DecompressLz4(src, dst []byte) (int, error) {
	return lz4.UncompressBlock(src, dst)
}
