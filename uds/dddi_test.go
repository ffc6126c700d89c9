package uds

import (
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func dddiRequest(t *testing.T, dt DefinitionType, payload string) *Request {
	t.Helper()
	sf := NewSubFunction(uint8(dt), false)
	return NewRequest(ServiceDynamicalDefineDID, &sf, decodeHex(t, payload))
}

func TestParseClearDynamicallyDefinedDID(t *testing.T) {
	v, err := ParseDynamicallyDefineDID(
		dddiRequest(t, ClearDynamicallyDefinedDataIdentifier, ""), nil)
	require.NoError(t, err)
	cl, ok := v.(*ClearDynamicallyDefinedDID)
	require.True(t, ok)
	require.Nil(t, cl.DID)
	require.Empty(t, cl.Payload(nil))

	v, err = ParseDynamicallyDefineDID(
		dddiRequest(t, ClearDynamicallyDefinedDataIdentifier, "1234"), nil)
	require.NoError(t, err)
	cl = v.(*ClearDynamicallyDefinedDID)
	require.NotNil(t, cl.DID)
	require.Equal(t, DynamicallyDID(0x1234), *cl.DID)
	require.Equal(t, []byte{0x12, 0x34}, cl.Payload(nil))

	_, err = ParseDynamicallyDefineDID(
		dddiRequest(t, ClearDynamicallyDefinedDataIdentifier, "12"), nil)
	require.Equal(t, &DataLengthError{Expect: 2, Actual: 1}, err)

	_, err = ParseDynamicallyDefineDID(
		dddiRequest(t, ClearDynamicallyDefinedDataIdentifier, "123456"), nil)
	require.Equal(t, &DataLengthError{Expect: 2, Actual: 3}, err)
}

func TestParseDefineByIdentifier(t *testing.T) {
	v, err := ParseDynamicallyDefineDID(
		dddiRequest(t, DefineByIdentifier, "F301 F190 01 04 F18C 02 08"), nil)
	require.NoError(t, err)
	require.Equal(t, DefineByIdentifier, v.DefinitionType())
	require.Equal(t, &DefineByIdentifierData{
		DID:    0xF301,
		Source: DynamicallyMemAddr{DID: 0xF190, Position: 0x01, MemSize: 0x04},
		Others: []DynamicallyMemAddr{
			{DID: 0xF18C, Position: 0x02, MemSize: 0x08},
		},
	}, v)

	v, err = ParseDynamicallyDefineDID(
		dddiRequest(t, DefineByIdentifier, "F301 F190 01 04"), nil)
	require.NoError(t, err)
	require.Nil(t, v.(*DefineByIdentifierData).Others)
}

func TestParseDefineByIdentifierErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		payload string
		err     error
	}{
		{"empty", "", &DataLengthError{Expect: 6, Actual: 0}},
		{"short", "F301 F190 01", &DataLengthError{Expect: 6, Actual: 5}},
		{"trailing", "F301 F190 01 04 F18C 02", &DataLengthError{Expect: 10, Actual: 9}},
		{"trailing byte", "F301 F190 01 04 F1", &DataLengthError{Expect: 10, Actual: 7}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDynamicallyDefineDID(
				dddiRequest(t, DefineByIdentifier, tc.payload), nil)
			require.Equal(t, tc.err, err)
		})
	}
}

func TestParseDefineByMemoryAddress(t *testing.T) {
	v, err := ParseDynamicallyDefineDID(
		dddiRequest(t, DefineByMemoryAddress, "F302 14 21091969 01 21091970 02"), nil)
	require.NoError(t, err)
	require.Equal(t, DefineByMemoryAddress, v.DefinitionType())
	require.Equal(t, &DefineByMemoryAddressData{
		DID:    0xF302,
		Memory: MemoryRange{Address: u128(0x21091969), Size: u128(1)},
		Others: []MemoryRange{
			{Address: u128(0x21091970), Size: u128(2)},
		},
	}, v)
}

func TestParseDefineByMemoryAddressErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		payload string
		kind    error
	}{
		{"empty", "", ErrInvalidDataLength},
		{"short", "F302 11", ErrInvalidDataLength},
		{"zero address width", "F302 10 01", ErrInvalidParam},
		{"zero size width", "F302 01 01", ErrInvalidParam},
		{"truncated first range", "F302 14 210919", ErrInvalidDataLength},
		{"truncated second range", "F302 11 10 01 20", ErrInvalidDataLength},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDynamicallyDefineDID(
				dddiRequest(t, DefineByMemoryAddress, tc.payload), nil)
			require.ErrorIs(t, err, tc.kind)
		})
	}
}

func TestDefineByMemoryAddressWidthUnification(t *testing.T) {
	d, err := NewDefineByMemoryAddressData(0xF302,
		MemoryRange{Address: u128(0x10), Size: u128(0x1)},
		MemoryRange{Address: u128(0x1000), Size: u128(0x2)},
	)
	require.NoError(t, err)
	require.Equal(t, decodeHex(t, "F302 12 0010 01 1000 02"), d.Payload(nil))

	codec := DynamicallyDefineDIDCodec{}
	req, err := codec.Request(d.Payload(nil), subFunc(uint8(DefineByMemoryAddress)), nil)
	require.NoError(t, err)
	parsed, err := codec.Parse(req, nil)
	require.NoError(t, err)
	require.Equal(t, d, parsed)
}

func TestDefineByMemoryAddressReencodeNarrows(t *testing.T) {
	// Ranges parsed from over-wide fields come back at minimum width.
	v, err := ParseDynamicallyDefineDID(
		dddiRequest(t, DefineByMemoryAddress, "F302 24 00000010 0001"), nil)
	require.NoError(t, err)
	require.Equal(t, decodeHex(t, "F302 11 10 01"), v.Payload(nil))
}

func TestNewDefineByMemoryAddressDataTooWide(t *testing.T) {
	_, err := NewDefineByMemoryAddressData(1,
		MemoryRange{Address: uint128.Max, Size: u128(1)})
	require.ErrorIs(t, err, ErrInvalidParam)

	d, err := NewDefineByMemoryAddressData(1,
		MemoryRange{Address: uint128.New(0, 1<<55), Size: u128(1)})
	require.NoError(t, err)
	require.Equal(t, uint8(0x1F), d.Payload(nil)[2])
}

func TestDynamicallyDefineDIDRoundTrip(t *testing.T) {
	did := DynamicallyDID(0xF303)
	codec := DynamicallyDefineDIDCodec{}
	for _, v := range []DynamicallyDefineDID{
		&DefineByIdentifierData{
			DID:    0xF301,
			Source: DynamicallyMemAddr{DID: 0xF190, Position: 1, MemSize: 17},
		},
		&DefineByIdentifierData{
			DID:    0xF301,
			Source: DynamicallyMemAddr{DID: 0xF190, Position: 1, MemSize: 4},
			Others: []DynamicallyMemAddr{
				{DID: 0x0100, Position: 3, MemSize: 1},
				{DID: 0x0200, Position: 5, MemSize: 2},
			},
		},
		&DefineByMemoryAddressData{
			DID:    0xF302,
			Memory: MemoryRange{Address: u128(0x8000_0000), Size: u128(0x100)},
		},
		&ClearDynamicallyDefinedDID{},
		&ClearDynamicallyDefinedDID{DID: &did},
	} {
		sf := uint8(v.DefinitionType()) | SuppressPositiveResponse
		req, err := codec.Request(v.Payload(nil), &sf, nil)
		require.NoError(t, err, "%T", v)
		got, ok := req.SubFunction()
		require.True(t, ok)
		require.True(t, got.IsSuppressPositive())
		parsed, err := codec.Parse(req, nil)
		require.NoError(t, err, "%T", v)
		require.Equal(t, v, parsed)
	}
}

func TestDynamicallyDefineDIDCodecRequest(t *testing.T) {
	codec := DynamicallyDefineDIDCodec{}

	_, err := codec.Request(decodeHex(t, "F301"), nil, nil)
	require.Equal(t, &SubFunctionError{Service: ServiceDynamicalDefineDID}, err)

	_, err = codec.Request(nil, subFunc(0x04), nil)
	require.ErrorIs(t, err, ErrInvalidParam)
	_, err = codec.Request(nil, subFunc(0x00), nil)
	require.ErrorIs(t, err, ErrInvalidParam)

	_, err = codec.Request(decodeHex(t, "F301 F190 01"),
		subFunc(uint8(DefineByIdentifier)), nil)
	require.Equal(t, &DataLengthError{Expect: 6, Actual: 5}, err)

	_, err = codec.Request(decodeHex(t, "F302 11"),
		subFunc(uint8(DefineByMemoryAddress)), nil)
	require.Equal(t, &DataLengthError{Expect: 4, Actual: 3}, err)

	// Only the minimum length is checked when building.
	_, err = codec.Request(decodeHex(t, "F302 44 01"),
		subFunc(uint8(DefineByMemoryAddress)), nil)
	require.NoError(t, err)

	_, err = codec.Request(decodeHex(t, "F3"),
		subFunc(uint8(ClearDynamicallyDefinedDataIdentifier)), nil)
	require.Equal(t, &DataLengthError{Expect: 2, Actual: 1}, err)

	req, err := codec.Request(nil,
		subFunc(uint8(ClearDynamicallyDefinedDataIdentifier)), nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x2C, 0x03}, req.Bytes(nil))
}

func TestParseDynamicallyDefineDIDRequestErrors(t *testing.T) {
	_, err := ParseDynamicallyDefineDID(
		NewRequest(ServiceDynamicalDefineDID, nil, nil), nil)
	require.Equal(t, &ServiceError{Service: ServiceDynamicalDefineDID}, err)

	sf := NewSubFunction(0x7F, false)
	_, err = ParseDynamicallyDefineDID(
		NewRequest(ServiceDynamicalDefineDID, &sf, nil), nil)
	require.ErrorIs(t, err, ErrInvalidParam)

	_, err = ParseDynamicallyDefineDID(
		NewRequest(ServiceTesterPresent, &sf, nil), nil)
	require.Equal(t, &ServiceError{Service: ServiceTesterPresent}, err)
}
