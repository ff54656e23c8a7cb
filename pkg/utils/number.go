package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para centavos
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SumRounded soma os valores e arredonda o resultado para centavos
func SumRounded(values ...float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return RoundWithTwoDecimalPlace(total)
}
