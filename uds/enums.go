package uds

import (
	"fmt"
)

// DefinitionType enumerates the sub-functions of DynamicallyDefineDID.
type DefinitionType uint8

// Definition types.
const (
	DefineByIdentifier                    DefinitionType = 0x01
	DefineByMemoryAddress                 DefinitionType = 0x02
	ClearDynamicallyDefinedDataIdentifier DefinitionType = 0x03
)

// definitionTypeNames are the names of the definition types.
var definitionTypeNames = map[DefinitionType]string{
	DefineByIdentifier:                    "DefineByIdentifier",
	DefineByMemoryAddress:                 "DefineByMemoryAddress",
	ClearDynamicallyDefinedDataIdentifier: "ClearDynamicallyDefinedDataIdentifier",
}

// String renders this definition type as a string.
func (dt DefinitionType) String() string {
	if name, ok := definitionTypeNames[dt]; ok {
		return name
	}
	return fmt.Sprintf("unknown definition type 0x%02X", uint8(dt))
}

// parseDefinitionType converts a function code to a definition type.
func parseDefinitionType(code uint8) (DefinitionType, error) {
	dt := DefinitionType(code)
	if _, ok := definitionTypeNames[dt]; !ok {
		return 0, paramErrorf("invalid definition type 0x%02X", code)
	}
	return dt, nil
}

// TesterPresentType enumerates the sub-functions of TesterPresent.
type TesterPresentType uint8

// Tester present types.
const (
	TesterPresentZero TesterPresentType = 0x00
)

// String renders this tester present type as a string.
func (tp TesterPresentType) String() string {
	if tp == TesterPresentZero {
		return "ZeroSubFunction"
	}
	return fmt.Sprintf("unknown tester present type 0x%02X", uint8(tp))
}

// parseTesterPresentType converts a function code to a tester present type.
func parseTesterPresentType(code uint8) (TesterPresentType, error) {
	if TesterPresentType(code) != TesterPresentZero {
		return 0, paramErrorf("invalid tester present type 0x%02X", code)
	}
	return TesterPresentZero, nil
}

// TransmissionMode enumerates the transmission modes of
// ReadDataByPeriodicIdentifier (Table C.10).
type TransmissionMode uint8

// Transmission modes.
const (
	SendAtSlowRate   TransmissionMode = 0x01
	SendAtMediumRate TransmissionMode = 0x02
	SendAtFastRate   TransmissionMode = 0x03
	StopSending      TransmissionMode = 0x04
)

// transmissionModeNames are the names of the transmission modes, indexed by
// mode - 1.
var transmissionModeNames = [...]string{
	"SendAtSlowRate",
	"SendAtMediumRate",
	"SendAtFastRate",
	"StopSending",
}

// IsValid checks whether this is a known transmission mode.
func (tm TransmissionMode) IsValid() bool {
	return tm >= SendAtSlowRate && tm <= StopSending
}

// IsSending reports whether this mode starts or changes periodic
// transmission, as opposed to StopSending.
func (tm TransmissionMode) IsSending() bool {
	return tm >= SendAtSlowRate && tm <= SendAtFastRate
}

// String renders this transmission mode as a string.
func (tm TransmissionMode) String() string {
	if tm.IsValid() {
		return transmissionModeNames[tm-1]
	}
	return fmt.Sprintf("unknown transmission mode 0x%02X", uint8(tm))
}

// parseTransmissionMode converts a byte to a transmission mode.
func parseTransmissionMode(b byte) (TransmissionMode, error) {
	tm := TransmissionMode(b)
	if !tm.IsValid() {
		return 0, paramErrorf("invalid transmission mode 0x%02X", b)
	}
	return tm, nil
}
