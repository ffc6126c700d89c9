package uds

import (
	"fmt"
	"sort"
)

// Service describes a UDS request service identifier (SID).
type Service uint8

// Service identifier constants (ISO 14229-1 Table 23).
const (
	ServiceSessionCtrl         Service = 0x10
	ServiceECUReset            Service = 0x11
	ServiceClearDiagnosticInfo Service = 0x14
	ServiceReadDTCInfo         Service = 0x19
	ServiceReadDID             Service = 0x22
	ServiceReadMemByAddr       Service = 0x23
	ServiceReadScalingDID      Service = 0x24
	ServiceSecurityAccess      Service = 0x27
	ServiceCommunicationCtrl   Service = 0x28
	ServiceAuthentication      Service = 0x29
	ServiceReadDataByPeriodID  Service = 0x2A
	ServiceDynamicalDefineDID  Service = 0x2C
	ServiceWriteDID            Service = 0x2E
	ServiceIOCtrl              Service = 0x2F
	ServiceRoutineCtrl         Service = 0x31
	ServiceRequestDownload     Service = 0x34
	ServiceRequestUpload       Service = 0x35
	ServiceTransferData        Service = 0x36
	ServiceRequestTransferExit Service = 0x37
	ServiceRequestFileTransfer Service = 0x38
	ServiceWriteMemByAddr      Service = 0x3D
	ServiceTesterPresent       Service = 0x3E
	ServiceAccessTimingParam   Service = 0x83
	ServiceSecuredDataTrans    Service = 0x84
	ServiceCtrlDTCSetting      Service = 0x85
	ServiceResponseOnEvent     Service = 0x86
	ServiceLinkCtrl            Service = 0x87
	ServiceNegativeResponse    Service = 0x7F
)

// positiveResponseOffset is added to a service identifier to form the
// identifier of its positive response.
const positiveResponseOffset = 0x40

// serviceNames maps known services to their ISO 14229-1 names.
var serviceNames = map[Service]string{
	ServiceSessionCtrl:         "DiagnosticSessionControl",
	ServiceECUReset:            "ECUReset",
	ServiceClearDiagnosticInfo: "ClearDiagnosticInformation",
	ServiceReadDTCInfo:         "ReadDTCInformation",
	ServiceReadDID:             "ReadDataByIdentifier",
	ServiceReadMemByAddr:       "ReadMemoryByAddress",
	ServiceReadScalingDID:      "ReadScalingDataByIdentifier",
	ServiceSecurityAccess:      "SecurityAccess",
	ServiceCommunicationCtrl:   "CommunicationControl",
	ServiceAuthentication:      "Authentication",
	ServiceReadDataByPeriodID:  "ReadDataByPeriodicIdentifier",
	ServiceDynamicalDefineDID:  "DynamicallyDefineDataIdentifier",
	ServiceWriteDID:            "WriteDataByIdentifier",
	ServiceIOCtrl:              "InputOutputControlByIdentifier",
	ServiceRoutineCtrl:         "RoutineControl",
	ServiceRequestDownload:     "RequestDownload",
	ServiceRequestUpload:       "RequestUpload",
	ServiceTransferData:        "TransferData",
	ServiceRequestTransferExit: "RequestTransferExit",
	ServiceRequestFileTransfer: "RequestFileTransfer",
	ServiceWriteMemByAddr:      "WriteMemoryByAddress",
	ServiceTesterPresent:       "TesterPresent",
	ServiceAccessTimingParam:   "AccessTimingParameter",
	ServiceSecuredDataTrans:    "SecuredDataTransmission",
	ServiceCtrlDTCSetting:      "ControlDTCSetting",
	ServiceResponseOnEvent:     "ResponseOnEvent",
	ServiceLinkCtrl:            "LinkControl",
	ServiceNegativeResponse:    "NegativeResponse",
}

// subFunctionServices is the list of services whose requests carry a
// sub-function byte. It must be sorted in increasing order.
var subFunctionServices = [...]Service{
	ServiceSessionCtrl,
	ServiceECUReset,
	ServiceReadDTCInfo,
	ServiceSecurityAccess,
	ServiceCommunicationCtrl,
	ServiceAuthentication,
	ServiceDynamicalDefineDID,
	ServiceRoutineCtrl,
	ServiceTesterPresent,
	ServiceAccessTimingParam,
	ServiceCtrlDTCSetting,
	ServiceResponseOnEvent,
	ServiceLinkCtrl,
}

// String returns the ISO 14229-1 name of this service.
func (s Service) String() string {
	if name, ok := serviceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Service(0x%02X)", uint8(s))
}

// HasSubFunction determines whether requests of this service carry a
// sub-function byte after the service identifier.
func (s Service) HasSubFunction() bool {
	idx := sort.Search(len(subFunctionServices), func(i int) bool {
		return s <= subFunctionServices[i]
	})
	return idx < len(subFunctionServices) && s == subFunctionServices[idx]
}

// ResponseID returns the identifier of a positive response to this service.
func (s Service) ResponseID() uint8 {
	return uint8(s) + positiveResponseOffset
}

// SuppressPositiveResponse is the bit in a sub-function byte which asks the
// server not to send a positive response.
const SuppressPositiveResponse uint8 = 0x80

// SubFunction describes a sub-function byte split into its function code and
// the suppress-positive-response flag.
type SubFunction struct {
	// code is the function code (bits 0-6).
	code uint8

	// suppressPositive is bit 7.
	suppressPositive bool
}

// NewSubFunction returns a sub-function with the given function code and
// flag. Only the low seven bits of code are used.
func NewSubFunction(code uint8, suppressPositive bool) SubFunction {
	return SubFunction{
		code:             code &^ SuppressPositiveResponse,
		suppressPositive: suppressPositive,
	}
}

// ParseSubFunction splits a sub-function byte.
func ParseSubFunction(b byte) SubFunction {
	suppress, code := PeelSuppressPositive(b)
	return SubFunction{code: code, suppressPositive: suppress}
}

// Function returns the function code without the suppress flag.
func (sf SubFunction) Function() uint8 {
	return sf.code
}

// IsSuppressPositive reports whether the suppress-positive-response flag is
// set.
func (sf SubFunction) IsSuppressPositive() bool {
	return sf.suppressPositive
}

// Byte returns the wire representation of this sub-function.
func (sf SubFunction) Byte() byte {
	if sf.suppressPositive {
		return sf.code | SuppressPositiveResponse
	}
	return sf.code
}

// String renders this sub-function for diagnostics.
func (sf SubFunction) String() string {
	if sf.suppressPositive {
		return fmt.Sprintf("0x%02X (suppress positive response)", sf.code)
	}
	return fmt.Sprintf("0x%02X", sf.code)
}
