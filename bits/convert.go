package bits

import "unsafe"

// MapBytesToNumbers reinterprets raw bytes as a numeric slice without
// copying. The result aliases data; copy it out if it must outlive the
// backing buffer.
func MapBytesToNumbers[T int64 | uint64 | float64](data []byte, count int) []T {

	if count == 0 {
		return nil
	}

	if len(data) < count*8 {
		panic("not enough data")
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), count)
}
