package uds

import (
	"encoding/binary"
	"fmt"
)

// dynamicallyMemAddrLen is the encoded length of a DynamicallyMemAddr.
const dynamicallyMemAddrLen = 4

// DynamicallyDID is the data identifier being defined or cleared by
// DynamicallyDefineDID.
type DynamicallyDID uint16

// Payload encodes this identifier in big endian.
func (did DynamicallyDID) Payload() []byte {
	return []byte{byte(did >> 8), byte(did)}
}

// String renders this identifier as a string.
func (did DynamicallyDID) String() string {
	return fmt.Sprintf("0x%04X", uint16(did))
}

// parseDynamicallyDID decodes a big endian identifier from the start of data.
func parseDynamicallyDID(data []byte) (DynamicallyDID, error) {
	if err := dataLengthCheck(len(data), 2, false); err != nil {
		return 0, err
	}
	return DynamicallyDID(binary.BigEndian.Uint16(data)), nil
}

// DynamicallyMemAddr describes a source data record for DefineByIdentifier:
// MemSize bytes starting at the one-based Position within the record of the
// source data identifier DID.
type DynamicallyMemAddr struct {
	// DID is the source data identifier.
	DID uint16

	// Position is the position of the first byte within the source record.
	Position uint8

	// MemSize is the number of bytes taken from the source record.
	MemSize uint8
}

// ParseDynamicallyMemAddr decodes a source descriptor from the start of
// data.
func ParseDynamicallyMemAddr(data []byte) (DynamicallyMemAddr, error) {
	if err := dataLengthCheck(len(data), dynamicallyMemAddrLen, false); err != nil {
		return DynamicallyMemAddr{}, err
	}
	return DynamicallyMemAddr{
		DID:      binary.BigEndian.Uint16(data[0:2]),
		Position: data[2],
		MemSize:  data[3],
	}, nil
}

// Payload encodes this source descriptor.
func (ma DynamicallyMemAddr) Payload() []byte {
	return []byte{byte(ma.DID >> 8), byte(ma.DID), ma.Position, ma.MemSize}
}
