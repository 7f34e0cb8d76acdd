package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseFloat converte os valores numéricos que as APIs de anúncios devolvem
// como string. Valor vazio ou inválido vira zero.
func ParseFloat(s string) float64 {
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseInt converte contadores devolvidos como string pelas APIs de anúncios
func ParseInt(s string) int64 {
	if s == "" {
		return 0
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// algumas métricas chegam como decimal mesmo sendo contadores
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return int64(f)
		}
		return 0
	}
	return i
}
