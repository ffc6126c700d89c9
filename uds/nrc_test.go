package uds

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNRCError(t *testing.T) {
	require.Equal(t, "UDS negative response: request out of range",
		NRCRequestOutOfRange.Error())
	require.Equal(t, "UDS negative response: unknown negative response 01",
		NRC(0x01).Error())
	require.True(t, NRCRequestCorrectlyReceivedResponsePending.IsResponsePending())
	require.False(t, NRCGeneralReject.IsResponsePending())
}

func TestParseNegativeResponse(t *testing.T) {
	nr, err := ParseNegativeResponse(decodeHex(t, "7F 2C 31"))
	require.NoError(t, err)
	require.Equal(t, NegativeResponse{
		Service: ServiceDynamicalDefineDID,
		Code:    NRCRequestOutOfRange,
	}, nr)
	require.Equal(t, decodeHex(t, "7F 2C 31"), nr.Bytes())

	err = nr.Err()
	require.ErrorIs(t, err, NRCRequestOutOfRange)
	var code NRC
	require.True(t, errors.As(err, &code))
	require.Equal(t, NRCRequestOutOfRange, code)

	_, err = ParseNegativeResponse(decodeHex(t, "7F 2C"))
	require.ErrorIs(t, err, ErrInvalidDataLength)
	_, err = ParseNegativeResponse(decodeHex(t, "6C 2C 31"))
	require.ErrorIs(t, err, ErrService)
}
