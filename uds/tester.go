package uds

// TesterPresent is the request data of TesterPresent. The payload after the
// sub-function byte is always empty.
type TesterPresent struct{}

// Payload implements RequestData. It is always empty.
func (TesterPresent) Payload(*Configuration) []byte {
	return []byte{}
}

// TesterPresentCodec is the codec of TesterPresent.
type TesterPresentCodec struct{}

// Service implements Codec.
func (TesterPresentCodec) Service() Service {
	return ServiceTesterPresent
}

// Request implements Codec.
func (TesterPresentCodec) Request(
	data []byte, subFunc *uint8, _ *Configuration,
) (*Request, error) {
	if subFunc == nil {
		return nil, &SubFunctionError{Service: ServiceTesterPresent}
	}
	sf := ParseSubFunction(*subFunc)
	if _, err := parseTesterPresentType(sf.Function()); err != nil {
		return nil, err
	}
	if err := dataLengthCheck(len(data), 0, true); err != nil {
		return nil, err
	}
	return NewRequest(ServiceTesterPresent, &sf, data), nil
}

// Parse implements Codec.
func (TesterPresentCodec) Parse(
	req *Request, cfg *Configuration,
) (RequestData, error) {
	return ParseTesterPresent(req, cfg)
}

// ParseTesterPresent decodes a TesterPresent request.
func ParseTesterPresent(req *Request, _ *Configuration) (*TesterPresent, error) {
	sf, err := checkRequest(req, ServiceTesterPresent)
	if err != nil {
		return nil, err
	}
	if _, err := parseTesterPresentType(sf.Function()); err != nil {
		return nil, err
	}
	if err := dataLengthCheck(len(req.data), 0, true); err != nil {
		return nil, err
	}
	return &TesterPresent{}, nil
}
