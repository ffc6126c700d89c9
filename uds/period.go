package uds

// ReadByPeriodIdData is the request data of ReadDataByPeriodicIdentifier.
type ReadByPeriodIdData struct {
	// mode is the transmission mode.
	mode TransmissionMode

	// did is the list of periodic data identifiers, one byte each.
	did []byte
}

// NewReadByPeriodIdData returns new request data. The list of periodic data
// identifiers may only be empty for StopSending.
func NewReadByPeriodIdData(
	mode TransmissionMode, did []byte,
) (*ReadByPeriodIdData, error) {
	if !mode.IsValid() {
		return nil, paramErrorf("invalid transmission mode 0x%02X", uint8(mode))
	}
	if mode.IsSending() && len(did) == 0 {
		return nil, &ParamError{Msg: "empty period_id"}
	}
	return &ReadByPeriodIdData{
		mode: mode,
		did:  append([]byte(nil), did...),
	}, nil
}

// ParseReadByPeriodIdData decodes request data from a payload.
func ParseReadByPeriodIdData(data []byte) (*ReadByPeriodIdData, error) {
	if err := dataLengthCheck(len(data), 1, false); err != nil {
		return nil, err
	}
	mode, err := parseTransmissionMode(data[0])
	if err != nil {
		return nil, err
	}
	return NewReadByPeriodIdData(mode, data[1:])
}

// TransmissionMode returns the transmission mode.
func (d *ReadByPeriodIdData) TransmissionMode() TransmissionMode {
	return d.mode
}

// PeriodDID returns a copy of the periodic data identifiers.
func (d *ReadByPeriodIdData) PeriodDID() []byte {
	return append([]byte(nil), d.did...)
}

// Payload implements RequestData.
func (d *ReadByPeriodIdData) Payload(*Configuration) []byte {
	result := make([]byte, 0, 1+len(d.did))
	result = append(result, uint8(d.mode))
	return append(result, d.did...)
}

// ReadDataByPeriodIDCodec is the codec of ReadDataByPeriodicIdentifier.
type ReadDataByPeriodIDCodec struct{}

// Service implements Codec.
func (ReadDataByPeriodIDCodec) Service() Service {
	return ServiceReadDataByPeriodID
}

// Request implements Codec.
func (ReadDataByPeriodIDCodec) Request(
	data []byte, subFunc *uint8, _ *Configuration,
) (*Request, error) {
	if err := checkNoSubFunction(ServiceReadDataByPeriodID, subFunc); err != nil {
		return nil, err
	}
	if _, err := ParseReadByPeriodIdData(data); err != nil {
		return nil, err
	}
	return NewRequest(ServiceReadDataByPeriodID, nil, data), nil
}

// Parse implements Codec.
func (c ReadDataByPeriodIDCodec) Parse(
	req *Request, cfg *Configuration,
) (RequestData, error) {
	return ParseReadDataByPeriodID(req, cfg)
}

// ParseReadDataByPeriodID decodes a ReadDataByPeriodicIdentifier request.
func ParseReadDataByPeriodID(
	req *Request, _ *Configuration,
) (*ReadByPeriodIdData, error) {
	if _, err := checkRequest(req, ServiceReadDataByPeriodID); err != nil {
		return nil, err
	}
	return ParseReadByPeriodIdData(req.data)
}
