package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairExtractors(t *testing.T) {
	assert.Equal(t, "34", RightPair("1234"))
	assert.Equal(t, "12", LeftPair("1234"))
	assert.Equal(t, "23", MiddlePair("1234"))
	assert.Equal(t, "34", MiddlePair("234")) // short prizes fall back to the right pair
	assert.Equal(t, "234", RightTriple("1234"))
	assert.Equal(t, "123", LeftTriple("1234"))
	assert.Equal(t, "4", LastDigit("1234"))
	assert.Equal(t, "0", LastDigit(""))
}

func TestGroupOf(t *testing.T) {
	assert.Equal(t, 25, GroupOf("00")) // Vaca wraps to the last group
	assert.Equal(t, 0, GroupOf("xx"))

	// Every other dezena maps to group ceil(n/4) across the 25 groups.
	for n := 1; n <= 99; n++ {
		pair := fmt.Sprintf("%02d", n)
		assert.Equal(t, (n-1)/4+1, GroupOf(pair), "dezena %s", pair)
	}
}

func TestIsPermutation(t *testing.T) {
	assert.True(t, IsPermutation("4321", "1234", 4))
	assert.True(t, IsPermutation("1234", "1234", 4))
	assert.False(t, IsPermutation("1235", "1234", 4))
	// Right-anchored: only the trailing digits count.
	assert.True(t, IsPermutation("9432", "1234", 3))
	assert.True(t, IsPermutationLeft("2134", "1234", 3))
	assert.False(t, IsPermutationLeft("4321", "1239", 3))
}
