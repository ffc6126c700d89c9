package uds

import (
	"lukechampine.com/uint128"
)

// DynamicallyDefineDID is the request data of DynamicallyDefineDataIdentifier.
// It is one of *DefineByIdentifierData, *DefineByMemoryAddressData and
// *ClearDynamicallyDefinedDID; the definition type (sub-function) selects the
// variant.
type DynamicallyDefineDID interface {
	RequestData

	// DefinitionType returns the sub-function selecting this variant.
	DefinitionType() DefinitionType

	// isDynamicallyDefineDID restricts implementations to this package.
	isDynamicallyDefineDID()
}

// DefineByIdentifierData defines DID from records of other data
// identifiers.
type DefineByIdentifierData struct {
	// DID is the dynamically defined data identifier.
	DID DynamicallyDID

	// Source is the first source record.
	Source DynamicallyMemAddr

	// Others are further source records. May be empty.
	Others []DynamicallyMemAddr
}

// DefinitionType implements DynamicallyDefineDID.
func (*DefineByIdentifierData) DefinitionType() DefinitionType {
	return DefineByIdentifier
}

func (*DefineByIdentifierData) isDynamicallyDefineDID() {}

// Payload implements RequestData.
func (d *DefineByIdentifierData) Payload(*Configuration) []byte {
	result := make([]byte, 0, 2+dynamicallyMemAddrLen*(1+len(d.Others)))
	result = append(result, d.DID.Payload()...)
	result = append(result, d.Source.Payload()...)
	for _, other := range d.Others {
		result = append(result, other.Payload()...)
	}
	return result
}

// MemoryRange is a (memoryAddress, memorySize) pair of
// DefineByMemoryAddress.
type MemoryRange struct {
	// Address is the memory address.
	Address uint128.Uint128

	// Size is the memory size.
	Size uint128.Uint128
}

// DefineByMemoryAddressData defines DID from memory ranges. All ranges share
// the same address and size widths on the wire.
type DefineByMemoryAddressData struct {
	// DID is the dynamically defined data identifier.
	DID DynamicallyDID

	// Memory is the first memory range.
	Memory MemoryRange

	// Others are further memory ranges. May be empty.
	Others []MemoryRange
}

// NewDefineByMemoryAddressData returns new request data after checking that
// all addresses and sizes can be described by a single ALFI byte.
func NewDefineByMemoryAddressData(
	did DynamicallyDID, memory MemoryRange, others ...MemoryRange,
) (*DefineByMemoryAddressData, error) {
	d := &DefineByMemoryAddressData{
		DID:    did,
		Memory: memory,
		Others: append([]MemoryRange(nil), others...),
	}
	addrLen, sizeLen := d.fieldWidths()
	if addrLen > maxFieldWidth || sizeLen > maxFieldWidth {
		return nil, paramErrorf(
			"memory range needs %d address and %d size bytes, at most %d allowed",
			addrLen, sizeLen, maxFieldWidth)
	}
	return d, nil
}

// DefinitionType implements DynamicallyDefineDID.
func (*DefineByMemoryAddressData) DefinitionType() DefinitionType {
	return DefineByMemoryAddress
}

func (*DefineByMemoryAddressData) isDynamicallyDefineDID() {}

// fieldWidths returns the minimum address and size widths which fit every
// range of d.
func (d *DefineByMemoryAddressData) fieldWidths() (addrLen, sizeLen int) {
	maxAddr, maxSize := d.Memory.Address, d.Memory.Size
	for _, other := range d.Others {
		if other.Address.Cmp(maxAddr) > 0 {
			maxAddr = other.Address
		}
		if other.Size.Cmp(maxSize) > 0 {
			maxSize = other.Size
		}
	}
	return lengthOfU128(maxAddr), lengthOfU128(maxSize)
}

// Payload implements RequestData. The address and size widths are the
// minimum widths of the largest address and size, and every range is padded
// to them. Parsing a payload built elsewhere and encoding it again therefore
// need not reproduce the original bytes.
func (d *DefineByMemoryAddressData) Payload(*Configuration) []byte {
	addrLen, sizeLen := d.fieldWidths()
	result := make([]byte, 0, 3+(addrLen+sizeLen)*(1+len(d.Others)))
	result = append(result, d.DID.Payload()...)
	result = append(result, byte(sizeLen<<4|addrLen))
	appendRange := func(r MemoryRange) {
		result = append(result, u128ToSlice(r.Address, addrLen, BigEndian)...)
		result = append(result, u128ToSlice(r.Size, sizeLen, BigEndian)...)
	}
	appendRange(d.Memory)
	for _, other := range d.Others {
		appendRange(other)
	}
	return result
}

// ClearDynamicallyDefinedDID clears one dynamically defined data identifier,
// or all of them if DID is nil.
type ClearDynamicallyDefinedDID struct {
	// DID is the identifier to clear, or nil to clear all.
	DID *DynamicallyDID
}

// DefinitionType implements DynamicallyDefineDID.
func (*ClearDynamicallyDefinedDID) DefinitionType() DefinitionType {
	return ClearDynamicallyDefinedDataIdentifier
}

func (*ClearDynamicallyDefinedDID) isDynamicallyDefineDID() {}

// Payload implements RequestData.
func (d *ClearDynamicallyDefinedDID) Payload(*Configuration) []byte {
	if d.DID == nil {
		return []byte{}
	}
	return d.DID.Payload()
}

// DynamicallyDefineDIDCodec is the codec of DynamicallyDefineDataIdentifier.
type DynamicallyDefineDIDCodec struct{}

// Service implements Codec.
func (DynamicallyDefineDIDCodec) Service() Service {
	return ServiceDynamicalDefineDID
}

// Request implements Codec. Only the minimum lengths of the definition type
// are checked; in particular, the widths declared by the ALFI byte of a
// DefineByMemoryAddress payload are checked by Parse only.
func (DynamicallyDefineDIDCodec) Request(
	data []byte, subFunc *uint8, _ *Configuration,
) (*Request, error) {
	if subFunc == nil {
		return nil, &SubFunctionError{Service: ServiceDynamicalDefineDID}
	}
	sf := ParseSubFunction(*subFunc)
	dt, err := parseDefinitionType(sf.Function())
	if err != nil {
		return nil, err
	}
	switch dt {
	case DefineByIdentifier:
		err = dataLengthCheck(len(data), 2+dynamicallyMemAddrLen, false)
	case DefineByMemoryAddress:
		err = dataLengthCheck(len(data), 4, false)
	case ClearDynamicallyDefinedDataIdentifier:
		err = checkClearLength(len(data))
	}
	if err != nil {
		return nil, err
	}
	return NewRequest(ServiceDynamicalDefineDID, &sf, data), nil
}

// Parse implements Codec.
func (DynamicallyDefineDIDCodec) Parse(
	req *Request, cfg *Configuration,
) (RequestData, error) {
	return ParseDynamicallyDefineDID(req, cfg)
}

// ParseDynamicallyDefineDID decodes a DynamicallyDefineDataIdentifier
// request.
func ParseDynamicallyDefineDID(
	req *Request, _ *Configuration,
) (DynamicallyDefineDID, error) {
	sf, err := checkRequest(req, ServiceDynamicalDefineDID)
	if err != nil {
		return nil, err
	}
	dt, err := parseDefinitionType(sf.Function())
	if err != nil {
		return nil, err
	}
	switch dt {
	case DefineByIdentifier:
		return parseDefineByIdentifier(req.data)
	case DefineByMemoryAddress:
		return parseDefineByMemoryAddress(req.data)
	default:
		return parseClearDynamicallyDefinedDID(req.data)
	}
}

// parseDefineByIdentifier decodes a DefineByIdentifier payload. Source
// records are consumed until the payload is exhausted; an incomplete
// trailing record fails when it is reached.
func parseDefineByIdentifier(data []byte) (*DefineByIdentifierData, error) {
	if err := dataLengthCheck(len(data), 2+dynamicallyMemAddrLen, false); err != nil {
		return nil, err
	}
	offset := 0
	did, err := parseDynamicallyDID(data[offset:])
	if err != nil {
		return nil, err
	}
	offset += 2
	source, err := ParseDynamicallyMemAddr(data[offset:])
	if err != nil {
		return nil, err
	}
	offset += dynamicallyMemAddrLen
	var others []DynamicallyMemAddr
	for len(data) > offset {
		if err := dataLengthCheck(len(data), offset+dynamicallyMemAddrLen, false); err != nil {
			return nil, err
		}
		other, err := ParseDynamicallyMemAddr(data[offset:])
		if err != nil {
			return nil, err
		}
		others = append(others, other)
		offset += dynamicallyMemAddrLen
	}
	return &DefineByIdentifierData{DID: did, Source: source, Others: others}, nil
}

// parseDefineByMemoryAddress decodes a DefineByMemoryAddress payload. The
// widths declared by the ALFI byte apply to every range.
func parseDefineByMemoryAddress(data []byte) (*DefineByMemoryAddressData, error) {
	if err := dataLengthCheck(len(data), 4, false); err != nil {
		return nil, err
	}
	offset := 0
	did, err := parseDynamicallyDID(data[offset:])
	if err != nil {
		return nil, err
	}
	offset += 2
	alfi, err := ParseAddressAndLengthFormatIdentifier(data[offset])
	if err != nil {
		return nil, err
	}
	offset++
	addrLen := alfi.LengthOfMemoryAddress()
	sizeLen := alfi.LengthOfMemorySize()
	readRange := func() (MemoryRange, error) {
		if err := dataLengthCheck(len(data), offset+addrLen+sizeLen, false); err != nil {
			return MemoryRange{}, err
		}
		addr, err := sliceToU128(data[offset:offset+addrLen], BigEndian)
		if err != nil {
			return MemoryRange{}, err
		}
		offset += addrLen
		size, err := sliceToU128(data[offset:offset+sizeLen], BigEndian)
		if err != nil {
			return MemoryRange{}, err
		}
		offset += sizeLen
		return MemoryRange{Address: addr, Size: size}, nil
	}
	memory, err := readRange()
	if err != nil {
		return nil, err
	}
	var others []MemoryRange
	for len(data) > offset {
		other, err := readRange()
		if err != nil {
			return nil, err
		}
		others = append(others, other)
	}
	return &DefineByMemoryAddressData{DID: did, Memory: memory, Others: others}, nil
}

// checkClearLength checks the payload length of a
// ClearDynamicallyDefinedDataIdentifier request.
func checkClearLength(n int) error {
	switch n {
	case 0, 2:
		return nil
	default:
		return &DataLengthError{Expect: 2, Actual: n}
	}
}

// parseClearDynamicallyDefinedDID decodes a
// ClearDynamicallyDefinedDataIdentifier payload.
func parseClearDynamicallyDefinedDID(
	data []byte,
) (*ClearDynamicallyDefinedDID, error) {
	if err := checkClearLength(len(data)); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return &ClearDynamicallyDefinedDID{}, nil
	}
	did, err := parseDynamicallyDID(data)
	if err != nil {
		return nil, err
	}
	return &ClearDynamicallyDefinedDID{DID: &did}, nil
}
