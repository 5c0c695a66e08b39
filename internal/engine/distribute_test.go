package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woodbyte/cabinetry/internal/model"
)

func TestDistribute_EqualRatios(t *testing.T) {
	sizes := Distribute(684, []SizingSpec{RatioSpec(1), RatioSpec(1)})
	assert.Equal(t, []float64{342, 342}, sizes)
}

func TestDistribute_WeightedRatios(t *testing.T) {
	sizes := Distribute(600, []SizingSpec{RatioSpec(1), RatioSpec(2)})
	assert.Equal(t, []float64{200, 400}, sizes)
}

func TestDistribute_FixedFirst(t *testing.T) {
	// Fixed sizes come off the top; the rest splits between ratio specs.
	sizes := Distribute(564, []SizingSpec{FixedSpec(100), RatioSpec(1), RatioSpec(1)})
	assert.Equal(t, []float64{100, 232, 232}, sizes)
}

func TestDistribute_FixedOverflowClampsRemaining(t *testing.T) {
	// Fixed sizes exceeding the span are honored as-is; ratio shares get zero.
	sizes := Distribute(300, []SizingSpec{FixedSpec(400), RatioSpec(1)})
	assert.Equal(t, []float64{400, 0}, sizes)
}

func TestDistribute_AllZeroRatiosEqualShares(t *testing.T) {
	sizes := Distribute(600, []SizingSpec{RatioSpec(0), RatioSpec(0), RatioSpec(0)})
	assert.Equal(t, []float64{200, 200, 200}, sizes)
}

func TestDistribute_EmptySpecs(t *testing.T) {
	assert.Nil(t, Distribute(600, nil))
	assert.Nil(t, Distribute(600, []SizingSpec{}))
}

func TestDistribute_RoundingHalfUp(t *testing.T) {
	// 100 / 3 = 33.33..; each share rounds independently.
	sizes := Distribute(100, []SizingSpec{RatioSpec(1), RatioSpec(1), RatioSpec(1)})
	require.Len(t, sizes, 3)
	for _, s := range sizes {
		assert.Equal(t, 33.0, s)
	}
}

func TestDistribute_SumWithinTolerance(t *testing.T) {
	// Independent rounding may drift from the span by at most n-1 mm.
	cases := []struct {
		span  float64
		specs []SizingSpec
	}{
		{684, []SizingSpec{RatioSpec(1), RatioSpec(1), RatioSpec(1)}},
		{719, []SizingSpec{RatioSpec(1), RatioSpec(2), RatioSpec(4)}},
		{564, []SizingSpec{FixedSpec(120), RatioSpec(3), RatioSpec(1), RatioSpec(1)}},
		{1000, []SizingSpec{RatioSpec(0.3), RatioSpec(0.3), RatioSpec(0.4)}},
	}
	for _, tc := range cases {
		sizes := Distribute(tc.span, tc.specs)
		var sum float64
		for _, s := range sizes {
			sum += s
		}
		assert.LessOrEqual(t, math.Abs(sum-tc.span), float64(len(tc.specs)-1),
			"span %.0f specs %v -> %v", tc.span, tc.specs, sizes)
	}
}

func TestDistribute_NegativeRatioTreatedAsZero(t *testing.T) {
	sizes := Distribute(600, []SizingSpec{RatioSpec(-2), RatioSpec(1)})
	assert.Equal(t, []float64{0, 600}, sizes)
}

func TestSpecFromSize(t *testing.T) {
	assert.Equal(t, RatioSpec(1), SpecFromSize(nil))

	fixed := model.FixedSize(250)
	assert.Equal(t, FixedSpec(250), SpecFromSize(&fixed))

	ratio := model.RatioSize(2.5)
	assert.Equal(t, RatioSpec(2.5), SpecFromSize(&ratio))
}
