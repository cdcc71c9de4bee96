package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateInterpolatedCurveValue(t *testing.T) {
	// GIVEN
	expectedInputOutput := map[float64]float64{
		-10.0: 0.0,
		20.0:  0.0,
		40.0:  0.0,
		45.0:  15.0,
		50.0:  30.0,
		60.0:  45.0,
		85.0:  100.0,
		110.0: 100.0,
	}
	steps := map[int]int{
		40: 0,
		50: 30,
		70: 60,
		85: 100,
	}

	for input, output := range expectedInputOutput {
		// WHEN
		result := CalculateInterpolatedCurveValue(steps, input)

		// THEN
		assert.InDelta(t, output, result, 0.0001, "input %v", input)
	}
}

func TestCalculateInterpolatedCurveValue_Empty(t *testing.T) {
	assert.Equal(t, 0.0, CalculateInterpolatedCurveValue(map[int]int{}, 50))
}

func TestCalculateInterpolatedCurveValue_SingleStep(t *testing.T) {
	assert.Equal(t, 42.0, CalculateInterpolatedCurveValue(map[int]int{60: 42}, 80))
}

func TestRatio(t *testing.T) {
	// GIVEN
	a := 0.0
	b := 100.0
	c := 50.0

	expected := 0.5

	// WHEN
	result := Ratio(c, a, b)

	// THEN
	assert.Equal(t, expected, result)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 0, 100))
	assert.Equal(t, 100, Clamp(120, 0, 100))
	assert.Equal(t, 42, Clamp(42, 0, 100))
}
