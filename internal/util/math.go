package util

import (
	"sort"
)

// Ratio calculates the ration that target has in comparison to rangeMin and rangeMax
// Make sure that:
// rangeMin <= target <= rangeMax
// rangeMax - rangeMin != 0
func Ratio(target float64, rangeMin float64, rangeMax float64) float64 {
	return (target - rangeMin) / (rangeMax - rangeMin)
}

// Clamp limits value to [min..max]
func Clamp(value int, min int, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// CalculateInterpolatedCurveValue linearly interpolates between the given x-values -> y-values
// and returns the y-value for the given input. Inputs outside the defined range
// get the y-value of the closest step.
func CalculateInterpolatedCurveValue(steps map[int]int, input float64) float64 {
	xValues := make([]int, 0, len(steps))
	for x := range steps {
		xValues = append(xValues, x)
	}
	if len(xValues) == 0 {
		return 0
	}
	sort.Ints(xValues)

	if input <= float64(xValues[0]) {
		return float64(steps[xValues[0]])
	}

	for i := 0; i < len(xValues)-1; i++ {
		currentX := xValues[i]
		nextX := xValues[i+1]

		if input >= float64(nextX) {
			continue
		}

		// input is somewhere in between currentX and nextX
		currentY := float64(steps[currentX])
		nextY := float64(steps[nextX])

		ratio := Ratio(input, float64(currentX), float64(nextX))
		return currentY + ratio*(nextY-currentY)
	}

	// input is above (or equal to) the largest given step
	return float64(steps[xValues[len(xValues)-1]])
}
