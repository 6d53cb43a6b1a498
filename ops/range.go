package ops

// FilterInRange fills out with the indices of arr values inside the half-open
// range [from, to) and returns how many were written. out must hold at least
// len(arr) entries. The 8-wide unroll keeps the branchy loop fed on large
// segment payloads.
func FilterInRange[T Numeric](arr []T, from, to T, out []uint16) int {

	if to <= from {
		return 0
	}

	n := len(arr)
	filled := 0
	i := 0

	for ; i+7 < n; i += 8 {
		a0 := arr[i+0]
		a1 := arr[i+1]
		a2 := arr[i+2]
		a3 := arr[i+3]
		a4 := arr[i+4]
		a5 := arr[i+5]
		a6 := arr[i+6]
		a7 := arr[i+7]

		if a0 >= from && a0 < to {
			out[filled] = uint16(i + 0)
			filled++
		}
		if a1 >= from && a1 < to {
			out[filled] = uint16(i + 1)
			filled++
		}
		if a2 >= from && a2 < to {
			out[filled] = uint16(i + 2)
			filled++
		}
		if a3 >= from && a3 < to {
			out[filled] = uint16(i + 3)
			filled++
		}
		if a4 >= from && a4 < to {
			out[filled] = uint16(i + 4)
			filled++
		}
		if a5 >= from && a5 < to {
			out[filled] = uint16(i + 5)
			filled++
		}
		if a6 >= from && a6 < to {
			out[filled] = uint16(i + 6)
			filled++
		}
		if a7 >= from && a7 < to {
			out[filled] = uint16(i + 7)
			filled++
		}
	}

	for ; i < n; i++ {
		a := arr[i]
		if a >= from && a < to {
			out[filled] = uint16(i)
			filled++
		}
	}

	return filled
}
