package uds

import (
	"lukechampine.com/uint128"
)

// MemoryLocation describes the addressAndLengthFormatIdentifier,
// memoryAddress and memorySize parameters shared by ReadMemoryByAddress and
// WriteMemoryByAddress.
type MemoryLocation struct {
	// alfi determines the widths of memAddr and memSize on the wire.
	alfi AddressAndLengthFormatIdentifier

	// memAddr is the memory address. Never zero.
	memAddr uint128.Uint128

	// memSize is the memory size. Never zero.
	memSize uint128.Uint128
}

// NewMemoryLocation returns a new memory location. Address and size must be
// non-zero and must fit into the widths declared by alfi.
func NewMemoryLocation(
	alfi AddressAndLengthFormatIdentifier, memAddr, memSize uint128.Uint128,
) (MemoryLocation, error) {
	if alfi.addrLen == 0 || alfi.sizeLen == 0 {
		return MemoryLocation{}, paramErrorf("invalid address and length format identifier")
	}
	if memAddr.IsZero() || memSize.IsZero() {
		return MemoryLocation{}, paramErrorf("invalid memory address or size")
	}
	if lengthOfU128(memAddr) > alfi.LengthOfMemoryAddress() {
		return MemoryLocation{}, paramErrorf(
			"memory address %s exceeds %d bytes",
			memAddr, alfi.LengthOfMemoryAddress())
	}
	if lengthOfU128(memSize) > alfi.LengthOfMemorySize() {
		return MemoryLocation{}, paramErrorf(
			"memory size %s exceeds %d bytes", memSize, alfi.LengthOfMemorySize())
	}
	return MemoryLocation{
		alfi:    alfi,
		memAddr: memAddr,
		memSize: memSize,
	}, nil
}

// ParseMemoryLocation decodes a memory location from the start of data.
// Bytes beyond Len() are ignored.
func ParseMemoryLocation(data []byte, cfg *Configuration) (MemoryLocation, error) {
	if err := dataLengthCheck(len(data), 3, false); err != nil {
		return MemoryLocation{}, err
	}
	offset := 0
	alfi, err := ParseAddressAndLengthFormatIdentifier(data[offset])
	if err != nil {
		return MemoryLocation{}, err
	}
	offset++
	addrLen := alfi.LengthOfMemoryAddress()
	sizeLen := alfi.LengthOfMemorySize()
	if err := dataLengthCheck(len(data), offset+addrLen+sizeLen, false); err != nil {
		return MemoryLocation{}, err
	}
	memAddr, err := sliceToU128(data[offset:offset+addrLen], cfg.addressOrder())
	if err != nil {
		return MemoryLocation{}, err
	}
	offset += addrLen
	memSize, err := sliceToU128(data[offset:offset+sizeLen], cfg.sizeOrder())
	if err != nil {
		return MemoryLocation{}, err
	}
	return NewMemoryLocation(alfi, memAddr, memSize)
}

// AddressAndLengthFormatIdentifier returns the field widths of this
// location.
func (ml MemoryLocation) AddressAndLengthFormatIdentifier() AddressAndLengthFormatIdentifier {
	return ml.alfi
}

// MemoryAddress returns the memory address.
func (ml MemoryLocation) MemoryAddress() uint128.Uint128 {
	return ml.memAddr
}

// MemorySize returns the memory size.
func (ml MemoryLocation) MemorySize() uint128.Uint128 {
	return ml.memSize
}

// Len returns the encoded length of this location.
func (ml MemoryLocation) Len() int {
	return ml.alfi.Len()
}

// Payload encodes this location. The field widths are those of the stored
// identifier, not the minimum widths of the values.
func (ml MemoryLocation) Payload(cfg *Configuration) []byte {
	result := make([]byte, 0, ml.Len())
	result = append(result, ml.alfi.Byte())
	result = append(result,
		u128ToSlice(ml.memAddr, ml.alfi.LengthOfMemoryAddress(), cfg.addressOrder())...)
	return append(result,
		u128ToSlice(ml.memSize, ml.alfi.LengthOfMemorySize(), cfg.sizeOrder())...)
}
