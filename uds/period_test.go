package uds

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseReadByPeriodIdDataLengthFloors(t *testing.T) {
	_, err := ParseReadByPeriodIdData(nil)
	require.Equal(t, &DataLengthError{Expect: 1, Actual: 0}, err)

	_, err = ParseReadByPeriodIdData([]byte{0x01})
	require.Equal(t, &ParamError{Msg: "empty period_id"}, err)

	d, err := ParseReadByPeriodIdData([]byte{0x04})
	require.NoError(t, err)
	require.Equal(t, StopSending, d.TransmissionMode())
	require.Empty(t, d.PeriodDID())
}

func TestParseReadByPeriodIdDataModes(t *testing.T) {
	for _, mode := range []TransmissionMode{
		SendAtSlowRate, SendAtMediumRate, SendAtFastRate, StopSending,
	} {
		d, err := ParseReadByPeriodIdData([]byte{byte(mode), 0xE3, 0x24})
		require.NoError(t, err)
		require.Equal(t, mode, d.TransmissionMode())
		require.Equal(t, []byte{0xE3, 0x24}, d.PeriodDID())
	}
	for _, b := range []byte{0x00, 0x05, 0xFF} {
		_, err := ParseReadByPeriodIdData([]byte{b, 0xE3})
		require.ErrorIs(t, err, ErrInvalidParam, "mode 0x%02X", b)
	}
}

func TestReadDataByPeriodIDCodec(t *testing.T) {
	codec := ReadDataByPeriodIDCodec{}
	require.Equal(t, ServiceReadDataByPeriodID, codec.Service())

	d, err := NewReadByPeriodIdData(SendAtFastRate, []byte{0xE3, 0x24})
	require.NoError(t, err)
	payload := d.Payload(nil)
	require.Equal(t, []byte{0x03, 0xE3, 0x24}, payload)

	req, err := codec.Request(payload, nil, nil)
	require.NoError(t, err)
	require.Equal(t, ServiceReadDataByPeriodID, req.Service())
	_, ok := req.SubFunction()
	require.False(t, ok)

	parsed, err := codec.Parse(req, nil)
	require.NoError(t, err)
	require.Equal(t, d, parsed)
	require.Equal(t, []byte{0x2A, 0x03, 0xE3, 0x24}, req.Bytes(nil))

	_, err = codec.Request([]byte{0x01}, nil, nil)
	require.ErrorIs(t, err, ErrInvalidParam)
	_, err = codec.Request(nil, nil, nil)
	require.ErrorIs(t, err, ErrInvalidDataLength)
	_, err = codec.Request(payload, subFunc(0x01), nil)
	require.Equal(t, &SubFunctionError{Service: ServiceReadDataByPeriodID}, err)
}

func TestParseReadDataByPeriodIDWrongService(t *testing.T) {
	req := NewRequest(ServiceReadDID, nil, []byte{0x04})
	_, err := ParseReadDataByPeriodID(req, nil)
	require.Equal(t, &ServiceError{Service: ServiceReadDID}, err)
	require.ErrorIs(t, err, ErrService)
}

func TestNewReadByPeriodIdData(t *testing.T) {
	_, err := NewReadByPeriodIdData(TransmissionMode(0x07), []byte{0x01})
	require.ErrorIs(t, err, ErrInvalidParam)

	did := []byte{0x01}
	d, err := NewReadByPeriodIdData(SendAtSlowRate, did)
	require.NoError(t, err)
	did[0] = 0xFF
	require.Equal(t, []byte{0x01}, d.PeriodDID())
}
