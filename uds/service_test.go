package uds

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubFunctionServicesSorted(t *testing.T) {
	require.True(t, sort.SliceIsSorted(subFunctionServices[:], func(i, j int) bool {
		return subFunctionServices[i] < subFunctionServices[j]
	}))
}

func TestServiceHasSubFunction(t *testing.T) {
	for s, want := range map[Service]bool{
		ServiceTesterPresent:      true,
		ServiceDynamicalDefineDID: true,
		ServiceReadDataByPeriodID: false,
		ServiceReadMemByAddr:      false,
		ServiceWriteMemByAddr:     false,
		ServiceLinkCtrl:           true,
		Service(0x00):             false,
		Service(0xFF):             false,
	} {
		require.Equal(t, want, s.HasSubFunction(), "%s", s)
	}
}

func TestServiceString(t *testing.T) {
	require.Equal(t, "TesterPresent", ServiceTesterPresent.String())
	require.Equal(t, "Service(0xBA)", Service(0xBA).String())
	require.Equal(t, uint8(0x7E), ServiceTesterPresent.ResponseID())
}

func TestSubFunction(t *testing.T) {
	for b := 0; b < 256; b++ {
		sf := ParseSubFunction(uint8(b))
		require.Equal(t, uint8(b), sf.Byte())
		require.Equal(t, uint8(b)&0x7F, sf.Function())
		require.Equal(t, b&0x80 != 0, sf.IsSuppressPositive())
	}
	sf := NewSubFunction(0x83, false)
	require.Equal(t, uint8(0x03), sf.Byte())
}
