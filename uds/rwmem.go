package uds

// ReadMemByAddr is the request data of ReadMemoryByAddress.
type ReadMemByAddr struct {
	// Location is the memory to read.
	Location MemoryLocation
}

// Payload implements RequestData.
func (d *ReadMemByAddr) Payload(cfg *Configuration) []byte {
	return d.Location.Payload(cfg)
}

// ReadMemByAddrCodec is the codec of ReadMemoryByAddress.
type ReadMemByAddrCodec struct{}

// Service implements Codec.
func (ReadMemByAddrCodec) Service() Service {
	return ServiceReadMemByAddr
}

// Request implements Codec.
func (ReadMemByAddrCodec) Request(
	data []byte, subFunc *uint8, cfg *Configuration,
) (*Request, error) {
	if err := checkNoSubFunction(ServiceReadMemByAddr, subFunc); err != nil {
		return nil, err
	}
	if _, err := parseReadMemByAddr(data, cfg); err != nil {
		return nil, err
	}
	return NewRequest(ServiceReadMemByAddr, nil, data), nil
}

// Parse implements Codec.
func (ReadMemByAddrCodec) Parse(
	req *Request, cfg *Configuration,
) (RequestData, error) {
	return ParseReadMemByAddr(req, cfg)
}

// ParseReadMemByAddr decodes a ReadMemoryByAddress request.
func ParseReadMemByAddr(req *Request, cfg *Configuration) (*ReadMemByAddr, error) {
	if _, err := checkRequest(req, ServiceReadMemByAddr); err != nil {
		return nil, err
	}
	return parseReadMemByAddr(req.data, cfg)
}

// parseReadMemByAddr decodes a ReadMemoryByAddress payload, which must
// consist of exactly one memory location.
func parseReadMemByAddr(data []byte, cfg *Configuration) (*ReadMemByAddr, error) {
	loc, err := ParseMemoryLocation(data, cfg)
	if err != nil {
		return nil, err
	}
	if err := dataLengthCheck(len(data), loc.Len(), true); err != nil {
		return nil, err
	}
	return &ReadMemByAddr{Location: loc}, nil
}

// WriteMemByAddr is the request data of WriteMemoryByAddress.
type WriteMemByAddr struct {
	// location is the memory to write.
	location MemoryLocation

	// data is the data to write. Its length equals the memory size.
	data []byte
}

// NewWriteMemByAddr returns new request data. The length of data must equal
// the memory size of loc.
func NewWriteMemByAddr(loc MemoryLocation, data []byte) (*WriteMemByAddr, error) {
	if !loc.MemorySize().Equals64(uint64(len(data))) {
		return nil, paramErrorf("data length %d does not match memory size %s",
			len(data), loc.MemorySize())
	}
	return &WriteMemByAddr{
		location: loc,
		data:     append([]byte(nil), data...),
	}, nil
}

// Location returns the memory to write.
func (d *WriteMemByAddr) Location() MemoryLocation {
	return d.location
}

// Data returns a copy of the data to write.
func (d *WriteMemByAddr) Data() []byte {
	return append([]byte(nil), d.data...)
}

// Payload implements RequestData.
func (d *WriteMemByAddr) Payload(cfg *Configuration) []byte {
	return append(d.location.Payload(cfg), d.data...)
}

// WriteMemByAddrCodec is the codec of WriteMemoryByAddress.
type WriteMemByAddrCodec struct{}

// Service implements Codec.
func (WriteMemByAddrCodec) Service() Service {
	return ServiceWriteMemByAddr
}

// Request implements Codec.
func (WriteMemByAddrCodec) Request(
	data []byte, subFunc *uint8, cfg *Configuration,
) (*Request, error) {
	if err := checkNoSubFunction(ServiceWriteMemByAddr, subFunc); err != nil {
		return nil, err
	}
	if _, err := parseWriteMemByAddr(data, cfg); err != nil {
		return nil, err
	}
	return NewRequest(ServiceWriteMemByAddr, nil, data), nil
}

// Parse implements Codec.
func (WriteMemByAddrCodec) Parse(
	req *Request, cfg *Configuration,
) (RequestData, error) {
	return ParseWriteMemByAddr(req, cfg)
}

// ParseWriteMemByAddr decodes a WriteMemoryByAddress request.
func ParseWriteMemByAddr(req *Request, cfg *Configuration) (*WriteMemByAddr, error) {
	if _, err := checkRequest(req, ServiceWriteMemByAddr); err != nil {
		return nil, err
	}
	return parseWriteMemByAddr(req.data, cfg)
}

// parseWriteMemByAddr decodes a WriteMemoryByAddress payload.
func parseWriteMemByAddr(data []byte, cfg *Configuration) (*WriteMemByAddr, error) {
	loc, err := ParseMemoryLocation(data, cfg)
	if err != nil {
		return nil, err
	}
	return NewWriteMemByAddr(loc, data[loc.Len():])
}
