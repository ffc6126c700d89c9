package uds

import (
	"fmt"
)

// maxFieldWidth is the largest field width an ALFI nibble can declare.
const maxFieldWidth = 0x0F

// AddressAndLengthFormatIdentifier describes the byte widths of a following
// memoryAddress and memorySize field. On the wire it is one byte:
//
//	bit 7 - 4: length (number of bytes) of the memorySize parameter
//	bit 3 - 0: length (number of bytes) of the memoryAddress parameter
type AddressAndLengthFormatIdentifier struct {
	// addrLen is the width of the memoryAddress field.
	addrLen uint8

	// sizeLen is the width of the memorySize field.
	sizeLen uint8
}

// NewAddressAndLengthFormatIdentifier returns an identifier for the given
// field widths. Both widths must be in [1,15].
func NewAddressAndLengthFormatIdentifier(
	addrLen, sizeLen int,
) (AddressAndLengthFormatIdentifier, error) {
	if addrLen < 1 || addrLen > maxFieldWidth {
		return AddressAndLengthFormatIdentifier{}, paramErrorf(
			"memory address length %d not in [1,%d]", addrLen, maxFieldWidth)
	}
	if sizeLen < 1 || sizeLen > maxFieldWidth {
		return AddressAndLengthFormatIdentifier{}, paramErrorf(
			"memory size length %d not in [1,%d]", sizeLen, maxFieldWidth)
	}
	return AddressAndLengthFormatIdentifier{
		addrLen: uint8(addrLen),
		sizeLen: uint8(sizeLen),
	}, nil
}

// ParseAddressAndLengthFormatIdentifier decodes an identifier byte. A zero
// width in either nibble is rejected.
func ParseAddressAndLengthFormatIdentifier(
	b byte,
) (AddressAndLengthFormatIdentifier, error) {
	return NewAddressAndLengthFormatIdentifier(int(b&0x0F), int(b>>4))
}

// Byte returns the wire representation of this identifier.
func (alfi AddressAndLengthFormatIdentifier) Byte() byte {
	return alfi.sizeLen<<4 | alfi.addrLen
}

// LengthOfMemoryAddress returns the width of the memoryAddress field.
func (alfi AddressAndLengthFormatIdentifier) LengthOfMemoryAddress() int {
	return int(alfi.addrLen)
}

// LengthOfMemorySize returns the width of the memorySize field.
func (alfi AddressAndLengthFormatIdentifier) LengthOfMemorySize() int {
	return int(alfi.sizeLen)
}

// Len returns the number of bytes occupied by the identifier byte and the
// two fields it describes.
func (alfi AddressAndLengthFormatIdentifier) Len() int {
	return 1 + int(alfi.addrLen) + int(alfi.sizeLen)
}

// String renders this identifier as a string.
func (alfi AddressAndLengthFormatIdentifier) String() string {
	return fmt.Sprintf("0x%02X (address %d bytes, size %d bytes)",
		alfi.Byte(), alfi.addrLen, alfi.sizeLen)
}
