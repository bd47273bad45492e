package utils

import (
	"strings"
	"testing"

	"github.com/aalug/go-gin-job-board/pkg/validation"
	"github.com/stretchr/testify/require"
)

func TestRandomInt(t *testing.T) {
	// Test with min and max as 0
	randomValue := RandomInt(0, 0)
	require.Equal(t, int32(0), randomValue, "Random value should be 0 when min and max are both 0")

	// Test with a positive range
	min := int32(10)
	max := int32(20)
	randomValue = RandomInt(min, max)
	require.True(t, min <= randomValue && randomValue <= max)

	// Test with a negative range
	min = int32(-100)
	max = int32(-50)
	randomValue = RandomInt(min, max)
	require.True(t, min <= randomValue && randomValue <= max)
}

func TestRandomFloat(t *testing.T) {
	for i := 0; i < 20; i++ {
		v := RandomFloat(1000, 2000)
		require.GreaterOrEqual(t, v, 1000.0)
		require.LessOrEqual(t, v, 2000.0)
	}
}

func TestRandomString(t *testing.T) {
	// Test with n = 0
	require.Equal(t, "", RandomString(0), "RandomString should return an empty string when n is 0")

	// Test with n = 10
	randomString := RandomString(10)
	require.Len(t, randomString, 10)

	// Test with the alphabet characters
	randomString = RandomString(1000)
	require.Len(t, randomString, 1000)
	require.True(t, isStringInAlphabet(randomString), "RandomString should only contain characters from the alphabet")
}

func TestRandomEmail(t *testing.T) {
	for i := 0; i < 10; i++ {
		err := validation.ValidateEmail(RandomEmail())
		require.NoError(t, err)
	}
}

func TestRandomElement(t *testing.T) {
	for i := 0; i < 10; i++ {
		require.Contains(t, Locations, RandomElement(Locations))
	}
}

func TestGenerateJobTitles(t *testing.T) {
	developers := GenerateDeveloperJobs()
	engineers := GenerateEngineerJobs()

	require.Len(t, developers, len(qualifiers)*len(languages))
	require.Len(t, engineers, len(qualifiers)*len(languages))
	require.Contains(t, developers, "Senior Go Developer")
	require.Contains(t, engineers, "Junior Python Engineer")
}

func isStringInAlphabet(str string) bool {
	for _, c := range str {
		if !strings.ContainsRune(alphabet, c) {
			return false
		}
	}
	return true
}
