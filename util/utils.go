package util

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

func StrNotSet(value string) bool {
	return len(strings.TrimSpace(value)) == 0
}

// NormalizeAddress lowercases a hex address so explorer exports, which mix
// checksummed and lowercase forms, compare equal. Anything that is not a
// hex address is only trimmed and lowercased.
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	if common.IsHexAddress(address) {
		return strings.ToLower(common.HexToAddress(address).Hex())
	}
	return strings.ToLower(address)
}

// SameAddress compares two addresses ignoring case and checksum.
func SameAddress(a, b string) bool {
	return NormalizeAddress(a) == NormalizeAddress(b)
}

// IsAddress reports whether value is a 20 byte hex address.
func IsAddress(value string) bool {
	return common.IsHexAddress(strings.TrimSpace(value))
}
