package uds

// Request describes a UDS service request: a service identifier, the
// optional sub-function byte, and the remaining payload.
//
// Requests are immutable. Data passed in and handed out is copied.
type Request struct {
	// service is the service identifier.
	service Service

	// subFunc is the sub-function, or nil if the request carries none.
	subFunc *SubFunction

	// data is the payload after service identifier and sub-function.
	data []byte
}

// NewRequest returns a new request from its parts without validating the
// payload. Codecs should normally be used instead, which validate payloads
// according to the rules of their service.
func NewRequest(service Service, subFunc *SubFunction, data []byte) *Request {
	req := &Request{
		service: service,
		data:    append([]byte(nil), data...),
	}
	if subFunc != nil {
		sf := *subFunc
		req.subFunc = &sf
	}
	return req
}

// ParseRequest splits a raw request frame into a request. In extended
// addressing mode, the first byte of raw is the target address and is
// skipped. Whether a sub-function byte is expected depends on the service.
func ParseRequest(raw []byte, cfg *Configuration) (*Request, error) {
	offset := 0
	if cfg.extendedAddressing() {
		offset++
	}
	if err := dataLengthCheck(len(raw), offset+1, false); err != nil {
		return nil, err
	}
	service := Service(raw[offset])
	offset++
	var subFunc *SubFunction
	if service.HasSubFunction() {
		if len(raw) <= offset {
			return nil, &SubFunctionError{Service: service}
		}
		sf := ParseSubFunction(raw[offset])
		subFunc = &sf
		offset++
	}
	return NewRequest(service, subFunc, raw[offset:]), nil
}

// Service returns the service identifier of this request.
func (r *Request) Service() Service {
	return r.service
}

// SubFunction returns the sub-function of this request, if any.
func (r *Request) SubFunction() (SubFunction, bool) {
	if r.subFunc == nil {
		return SubFunction{}, false
	}
	return *r.subFunc, true
}

// Data returns a copy of the payload of this request.
func (r *Request) Data() []byte {
	return append([]byte(nil), r.data...)
}

// Len returns the length of the payload of this request.
func (r *Request) Len() int {
	return len(r.data)
}

// Bytes renders this request as a raw frame. In extended addressing mode,
// the frame starts with the configured target address.
func (r *Request) Bytes(cfg *Configuration) []byte {
	result := make([]byte, 0, len(r.data)+3)
	if cfg.extendedAddressing() {
		result = append(result, cfg.TargetAddress)
	}
	result = append(result, uint8(r.service))
	if r.subFunc != nil {
		result = append(result, r.subFunc.Byte())
	}
	return append(result, r.data...)
}
