package utils

import (
	"fmt"
	"math/rand"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max
func RandomInt(min, max int32) int32 {
	return min + rand.Int31n(max-min+1)
}

// RandomFloat generates a random whole number between min and max as a float
func RandomFloat(min, max int32) float64 {
	return float64(RandomInt(min, max))
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomEmail generates a random email
func RandomEmail() string {
	return fmt.Sprintf("%s@%s.com", RandomString(6), RandomString(5))
}

// RandomElement returns a random element of a non-empty slice
func RandomElement[T any](items []T) T {
	return items[rand.Intn(len(items))]
}
