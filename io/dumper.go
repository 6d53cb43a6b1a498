package io

import (
	"log"
	"os"
	"unsafe"
)

// AsRawBytes reinterprets a numeric array as its raw byte view. The result
// aliases arr and is only valid while arr is alive.
func AsRawBytes[T int64 | uint64 | float64](arr []T) []byte {
	if len(arr) == 0 {
		return nil
	}

	byteLen := len(arr) * 8
	return unsafe.Slice((*byte)(unsafe.Pointer(&arr[0])), byteLen)
}

func DumpNumbersArrayBlock[T int64 | uint64 | float64](path string, arr []T) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	var writtenBytes int
	writtenBytes, err = f.Write(AsRawBytes(arr))

	log.Printf("written %d bytes @ %s", writtenBytes, path)

	return err
}
