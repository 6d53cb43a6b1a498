package ops

import (
	"errors"

	"golang.org/x/exp/constraints"
)

type Numeric interface {
	constraints.Integer | constraints.Float
}

// ErrEmptyInput is returned when a scan gets zero elements: there is no
// minimum or maximum of an empty sequence, and a sentinel pair would be a lie.
var ErrEmptyInput = errors.New("empty input: min/max undefined for zero elements")

type Bounds[T Numeric] struct {
	Min T
	Max T
}

// ScanBounds finds the minimum and maximum of arr in a single forward pass.
// Both accumulators start at arr[0], every following element is compared
// against both independently, so a one-element input yields Min == Max.
func ScanBounds[T Numeric](arr []T) (Bounds[T], error) {

	if len(arr) == 0 {
		return Bounds[T]{}, ErrEmptyInput
	}

	resultBounds := Bounds[T]{
		Min: arr[0],
		Max: arr[0],
	}

	for _, v := range arr[1:] {
		if v < resultBounds.Min {
			resultBounds.Min = v
		}
		if v > resultBounds.Max {
			resultBounds.Max = v
		}
	}

	return resultBounds, nil
}

// Morph widens b to cover other, reporting whether anything changed.
func (b *Bounds[T]) Morph(other Bounds[T]) bool {

	changes := 0

	if other.Min < b.Min {
		b.Min = other.Min
		changes += 1
	}
	if other.Max > b.Max {
		b.Max = other.Max
		changes += 1
	}

	return changes != 0
}

func (b Bounds[T]) Contains(v T) bool {
	return v >= b.Min && v <= b.Max
}

func (b Bounds[T]) ToFloat() Bounds[float64] {
	return Bounds[float64]{
		Min: float64(b.Min),
		Max: float64(b.Max),
	}
}

type MatchResult uint8

const (
	UnknownIntersection MatchResult = iota
	NoIntersection
	PartialIntersection
	FullIntersection
)

func (m MatchResult) String() string {
	switch m {
	case NoIntersection:
		return "none"
	case PartialIntersection:
		return "partial"
	case FullIntersection:
		return "full"
	default:
		return "unknown"
	}
}

// IntersectRange classifies the half-open query range [from, to) against b.
// Full means every value inside b matches, so a caller can skip scanning.
func (b Bounds[T]) IntersectRange(from, to T) MatchResult {

	if to <= from {
		return NoIntersection
	}

	if b.Max < from || b.Min >= to {
		return NoIntersection
	}

	if from <= b.Min && b.Max < to {
		return FullIntersection
	}

	return PartialIntersection
}
