package uds

import (
	"fmt"
)

// NRC describes a UDS negative response code.
type NRC uint8

// Negative response code constants (ISO 14229-1 Annex A.1).
const (
	NRCGeneralReject                           NRC = 0x10
	NRCServiceNotSupported                     NRC = 0x11
	NRCSubFunctionNotSupported                 NRC = 0x12
	NRCIncorrectMessageLengthOrInvalidFormat   NRC = 0x13
	NRCResponseTooLong                         NRC = 0x14
	NRCBusyRepeatRequest                       NRC = 0x21
	NRCConditionsNotCorrect                    NRC = 0x22
	NRCRequestSequenceError                    NRC = 0x24
	NRCNoResponseFromSubnetComponent           NRC = 0x25
	NRCFailurePreventsExecution                NRC = 0x26
	NRCRequestOutOfRange                       NRC = 0x31
	NRCSecurityAccessDenied                    NRC = 0x33
	NRCAuthenticationRequired                  NRC = 0x34
	NRCInvalidKey                              NRC = 0x35
	NRCExceedNumberOfAttempts                  NRC = 0x36
	NRCRequiredTimeDelayNotExpired             NRC = 0x37
	NRCUploadDownloadNotAccepted               NRC = 0x70
	NRCTransferDataSuspended                   NRC = 0x71
	NRCGeneralProgrammingFailure               NRC = 0x72
	NRCWrongBlockSequenceCounter               NRC = 0x73
	NRCRequestCorrectlyReceivedResponsePending NRC = 0x78
	NRCSubFunctionNotSupportedInActiveSession  NRC = 0x7E
	NRCServiceNotSupportedInActiveSession      NRC = 0x7F
	NRCRpmTooHigh                              NRC = 0x81
	NRCRpmTooLow                               NRC = 0x82
	NRCEngineIsRunning                         NRC = 0x83
	NRCEngineIsNotRunning                      NRC = 0x84
	NRCEngineRunTimeTooLow                     NRC = 0x85
	NRCTemperatureTooHigh                      NRC = 0x86
	NRCTemperatureTooLow                       NRC = 0x87
	NRCVehicleSpeedTooHigh                     NRC = 0x88
	NRCVehicleSpeedTooLow                      NRC = 0x89
	NRCThrottlePedalTooHigh                    NRC = 0x8A
	NRCThrottlePedalTooLow                     NRC = 0x8B
	NRCTransmissionRangeNotInNeutral           NRC = 0x8C
	NRCTransmissionRangeNotInGear              NRC = 0x8D
	NRCBrakeSwitchNotClosed                    NRC = 0x8F
	NRCShifterLeverNotInPark                   NRC = 0x90
	NRCTorqueConverterClutchLocked             NRC = 0x91
	NRCVoltageTooHigh                          NRC = 0x92
	NRCVoltageTooLow                           NRC = 0x93
)

// nrcStrings maps known negative response codes to a textual
// representation.
var nrcStrings = map[NRC]string{
	NRCGeneralReject:                           "general reject",
	NRCServiceNotSupported:                     "service not supported",
	NRCSubFunctionNotSupported:                 "sub-function not supported",
	NRCIncorrectMessageLengthOrInvalidFormat:   "incorrect message length or invalid format",
	NRCResponseTooLong:                         "response too long",
	NRCBusyRepeatRequest:                       "busy, repeat request",
	NRCConditionsNotCorrect:                    "conditions not correct",
	NRCRequestSequenceError:                    "request sequence error",
	NRCNoResponseFromSubnetComponent:           "no response from subnet component",
	NRCFailurePreventsExecution:                "failure prevents execution of requested action",
	NRCRequestOutOfRange:                       "request out of range",
	NRCSecurityAccessDenied:                    "security access denied",
	NRCAuthenticationRequired:                  "authentication required",
	NRCInvalidKey:                              "invalid key",
	NRCExceedNumberOfAttempts:                  "exceeded number of attempts",
	NRCRequiredTimeDelayNotExpired:             "required time delay not expired",
	NRCUploadDownloadNotAccepted:               "upload/download not accepted",
	NRCTransferDataSuspended:                   "transfer data suspended",
	NRCGeneralProgrammingFailure:               "general programming failure",
	NRCWrongBlockSequenceCounter:               "wrong block sequence counter",
	NRCRequestCorrectlyReceivedResponsePending: "request correctly received, response pending",
	NRCSubFunctionNotSupportedInActiveSession:  "sub-function not supported in active session",
	NRCServiceNotSupportedInActiveSession:      "service not supported in active session",
	NRCRpmTooHigh:                              "rpm too high",
	NRCRpmTooLow:                               "rpm too low",
	NRCEngineIsRunning:                         "engine is running",
	NRCEngineIsNotRunning:                      "engine is not running",
	NRCEngineRunTimeTooLow:                     "engine run time too low",
	NRCTemperatureTooHigh:                      "temperature too high",
	NRCTemperatureTooLow:                       "temperature too low",
	NRCVehicleSpeedTooHigh:                     "vehicle speed too high",
	NRCVehicleSpeedTooLow:                      "vehicle speed too low",
	NRCThrottlePedalTooHigh:                    "throttle/pedal too high",
	NRCThrottlePedalTooLow:                     "throttle/pedal too low",
	NRCTransmissionRangeNotInNeutral:           "transmission range not in neutral",
	NRCTransmissionRangeNotInGear:              "transmission range not in gear",
	NRCBrakeSwitchNotClosed:                    "brake switch(es) not closed",
	NRCShifterLeverNotInPark:                   "shifter lever not in park",
	NRCTorqueConverterClutchLocked:             "torque converter clutch locked",
	NRCVoltageTooHigh:                          "voltage too high",
	NRCVoltageTooLow:                           "voltage too low",
}

// Error returns a textual representation of the negative response
// represented by this code.
func (nrc NRC) Error() string {
	s, ok := nrcStrings[nrc]
	if !ok {
		s = fmt.Sprintf("unknown negative response %02X", uint8(nrc))
	}
	return "UDS negative response: " + s
}

// IsResponsePending reports whether this code only signals that the final
// response will be delayed.
func (nrc NRC) IsResponsePending() bool {
	return nrc == NRCRequestCorrectlyReceivedResponsePending
}

// negativeResponseLen is the length of a negative response frame.
const negativeResponseLen = 3

// NegativeResponse describes a negative response to a request.
type NegativeResponse struct {
	// Service is the service of the rejected request.
	Service Service

	// Code is the negative response code.
	Code NRC
}

// ParseNegativeResponse decodes a raw negative response frame.
func ParseNegativeResponse(raw []byte) (NegativeResponse, error) {
	if err := dataLengthCheck(len(raw), negativeResponseLen, true); err != nil {
		return NegativeResponse{}, err
	}
	if Service(raw[0]) != ServiceNegativeResponse {
		return NegativeResponse{}, &ServiceError{Service: Service(raw[0])}
	}
	return NegativeResponse{Service: Service(raw[1]), Code: NRC(raw[2])}, nil
}

// Bytes renders this negative response as a raw frame.
func (nr NegativeResponse) Bytes() []byte {
	return []byte{uint8(ServiceNegativeResponse), uint8(nr.Service), uint8(nr.Code)}
}

// Err returns the negative response code as an error, wrapped with the
// rejected service.
func (nr NegativeResponse) Err() error {
	return fmt.Errorf("%s: %w", nr.Service, nr.Code)
}
