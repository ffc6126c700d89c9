package uds

import (
	"encoding/hex"
	"strings"
	"testing"

	"lukechampine.com/uint128"
)

// decodeHex decodes a hex fixture, ignoring spaces.
func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("hex decode: %v", err)
	}
	return b
}

// u128 is shorthand for uint128.From64.
func u128(v uint64) uint128.Uint128 {
	return uint128.From64(v)
}

// subFunc returns a pointer to a sub-function byte.
func subFunc(b uint8) *uint8 {
	return &b
}
