package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddress(t *testing.T) {
	checksummed := "0x73feaa1eE314F8c655E354234017bE2193C9E24E"
	lower := "0x73feaa1ee314f8c655e354234017be2193c9e24e"

	assert.Equal(t, lower, NormalizeAddress(checksummed))
	assert.Equal(t, lower, NormalizeAddress("  "+lower+" "))
	assert.True(t, SameAddress(checksummed, lower))
	assert.False(t, SameAddress(lower, "0x0000000000000000000000000000000000000001"))

	// not an address, only case folded
	assert.Equal(t, "pancakeswap: main staking", NormalizeAddress("PancakeSwap: Main Staking"))
}

func TestStrNotSet(t *testing.T) {
	assert.True(t, StrNotSet(""))
	assert.True(t, StrNotSet("   "))
	assert.False(t, StrNotSet("x"))
}

func TestIsAddress(t *testing.T) {
	assert.True(t, IsAddress("0x73feaa1ee314f8c655e354234017be2193c9e24e"))
	assert.False(t, IsAddress("0x73feaa"))
}
