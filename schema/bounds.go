package schema

import (
	"github.com/dot5enko/simple-stats-db/bits"
	"github.com/dot5enko/simple-stats-db/ops"
)

const BoundsSize = 8 + 8

// BoundsFloat is the on-disk shape of segment bounds. Whatever the column
// type, min/max are widened to float64 so the header layout stays fixed.
type BoundsFloat struct {
	Min float64
	Max float64
}

func BoundsFromScan[T ops.Numeric](b ops.Bounds[T]) BoundsFloat {
	return BoundsFloat{
		Min: float64(b.Min),
		Max: float64(b.Max),
	}
}

func (b BoundsFloat) AsBounds() ops.Bounds[float64] {
	return ops.Bounds[float64]{Min: b.Min, Max: b.Max}
}

func (b *BoundsFloat) Morph(other BoundsFloat) bool {

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

func (b BoundsFloat) Contains(v float64) bool {
	return b.AsBounds().Contains(v)
}

func (b BoundsFloat) IntersectRange(from, to float64) ops.MatchResult {
	return b.AsBounds().IntersectRange(from, to)
}

func (header *BoundsFloat) FromBytes(reader *bits.BinReader) error {

	header.Max = reader.MustReadF64()
	header.Min = reader.MustReadF64()

	return nil
}

func (header *BoundsFloat) WriteTo(bw *bits.BinWriter) (int, error) {

	bw.PutFloat64(header.Max)
	bw.PutFloat64(header.Min)

	return bw.Position(), nil
}
