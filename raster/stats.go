// SPDX-License-Identifier: MIT

package raster

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stats summarizes the values of a grid.
//
//   - Valid: cells that are not NoData (finite or infinite).
//   - NoData: cells equal to the sentinel.
//   - Infinite: valid cells holding ±Inf.
//   - Min, Max, Mean: over finite valid cells; NaN when there are none.
type Stats struct {
	Valid    int
	NoData   int
	Infinite int
	Min      float64
	Max      float64
	Mean     float64
}

// Summarize scans src once and returns its Stats.
// Complexity: O(rows×cols) time, O(finite cells) memory.
func Summarize(src Source) Stats {
	var st Stats
	nodata := src.NoData()
	finite := make([]float64, 0, src.Rows()*src.Cols())
	for r := 0; r < src.Rows(); r++ {
		for c := 0; c < src.Cols(); c++ {
			v := src.At(r, c)
			switch {
			case IsNoData(v, nodata):
				st.NoData++
			case math.IsInf(v, 0):
				st.Valid++
				st.Infinite++
			default:
				st.Valid++
				finite = append(finite, v)
			}
		}
	}
	if len(finite) == 0 {
		st.Min, st.Max, st.Mean = math.NaN(), math.NaN(), math.NaN()

		return st
	}
	st.Min = floats.Min(finite)
	st.Max = floats.Max(finite)
	st.Mean = floats.Sum(finite) / float64(len(finite))

	return st
}
