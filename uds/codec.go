package uds

import (
	"math/bits"

	"lukechampine.com/uint128"
)

// maxIntegerWidth is the widest variable-width integer field in bytes which
// fits the 128 bit backing type.
const maxIntegerWidth = 16

// RequestData is the decoded payload of a service request: the bytes after
// the service identifier and the optional sub-function byte.
//
// Values are immutable once constructed.
type RequestData interface {
	// Payload serializes this request data. It never fails for a value
	// obtained from a constructor or a codec.
	Payload(cfg *Configuration) []byte
}

// Codec describes the request codec of a single service.
//
// Codecs are stateless and may be used concurrently.
type Codec interface {
	// Service returns the service handled by this codec.
	Service() Service

	// Request validates the given payload and sub-function byte (nil if
	// absent) against the rules of the service and wraps them into a
	// request.
	Request(data []byte, subFunc *uint8, cfg *Configuration) (*Request, error)

	// Parse decodes the payload of the given request. The request must be
	// for the service of this codec.
	Parse(req *Request, cfg *Configuration) (RequestData, error)
}

// dataLengthCheck checks that actual is at least required, or exactly
// required if exact is set.
func dataLengthCheck(actual, required int, exact bool) error {
	if actual < required || (exact && actual != required) {
		return &DataLengthError{Expect: required, Actual: actual}
	}
	return nil
}

// PeelSuppressPositive splits a sub-function byte into the
// suppress-positive-response flag (bit 7) and the function code (bits 0-6).
func PeelSuppressPositive(b byte) (suppress bool, code uint8) {
	return b&SuppressPositiveResponse != 0, b &^ SuppressPositiveResponse
}

// sliceToU128 decodes an unsigned integer of len(b) bytes.
func sliceToU128(b []byte, order ByteOrder) (uint128.Uint128, error) {
	if len(b) > maxIntegerWidth {
		return uint128.Zero, paramErrorf(
			"integer width %d exceeds %d bytes", len(b), maxIntegerWidth)
	}
	var buf [maxIntegerWidth]byte
	if order == LittleEndian {
		copy(buf[:], b)
		return uint128.FromBytes(buf[:]), nil
	}
	copy(buf[maxIntegerWidth-len(b):], b)
	return uint128.FromBytesBE(buf[:]), nil
}

// u128ToSlice encodes v using exactly width bytes. Bytes of v beyond width
// are dropped, so callers must make sure v fits. width must not exceed
// maxIntegerWidth.
func u128ToSlice(v uint128.Uint128, width int, order ByteOrder) []byte {
	var buf [maxIntegerWidth]byte
	result := make([]byte, width)
	if order == LittleEndian {
		v.PutBytes(buf[:])
		copy(result, buf[:width])
		return result
	}
	v.PutBytesBE(buf[:])
	copy(result, buf[maxIntegerWidth-width:])
	return result
}

// lengthOfU128 returns the minimum number of bytes needed to represent v.
// Zero needs one byte.
func lengthOfU128(v uint128.Uint128) int {
	n := 0
	if v.Hi != 0 {
		n = 8 + (bits.Len64(v.Hi)+7)/8
	} else {
		n = (bits.Len64(v.Lo) + 7) / 8
	}
	if n == 0 {
		return 1
	}
	return n
}

// checkNoSubFunction rejects a sub-function byte given to a service which
// has none.
func checkNoSubFunction(service Service, subFunc *uint8) error {
	if subFunc != nil {
		return &SubFunctionError{Service: service}
	}
	return nil
}

// checkRequest checks that req is a request for service. If the service
// requires a sub-function, it is returned.
func checkRequest(req *Request, service Service) (SubFunction, error) {
	if req == nil {
		return SubFunction{}, &ServiceError{Service: service}
	}
	if req.service != service {
		return SubFunction{}, &ServiceError{Service: req.service}
	}
	if !service.HasSubFunction() {
		return SubFunction{}, nil
	}
	if req.subFunc == nil {
		return SubFunction{}, &ServiceError{Service: req.service}
	}
	return *req.subFunc, nil
}
