package uds

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/TheCount/go-multilocker/multilocker"
	"github.com/rs/zerolog"
)

// Registry maps services to their codecs and dispatches requests to them.
//
// A Registry may be used concurrently. Codec lookups only take read locks,
// so parsing scales with the number of callers.
type Registry struct {
	// codecMx protects codecs.
	codecMx sync.RWMutex

	// codecs maps services to their codec.
	codecs map[Service]Codec

	// nameMx protects names.
	nameMx sync.RWMutex

	// names maps lower case service names to their service.
	names map[string]Service

	// logger receives dispatch diagnostics.
	logger zerolog.Logger
}

// RegistryOption describes an option to be passed to NewRegistry.
type RegistryOption func(*Registry) error

// WithLogger makes the registry log dispatch failures to the given logger.
// By default, nothing is logged.
func WithLogger(logger zerolog.Logger) RegistryOption {
	return func(r *Registry) error {
		r.logger = logger
		return nil
	}
}

// WithCodecs registers the given codecs with the new registry.
func WithCodecs(codecs ...Codec) RegistryOption {
	return func(r *Registry) error {
		return r.Register(codecs...)
	}
}

// NewRegistry returns a new, empty registry.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	r := &Registry{
		codecs: make(map[Service]Codec),
		names:  make(map[string]Service),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DefaultCodecs returns the codecs of all services implemented by this
// package.
func DefaultCodecs() []Codec {
	return []Codec{
		ReadMemByAddrCodec{},
		ReadDataByPeriodIDCodec{},
		DynamicallyDefineDIDCodec{},
		WriteMemByAddrCodec{},
		TesterPresentCodec{},
	}
}

// NewDefaultRegistry returns a new registry with DefaultCodecs registered.
func NewDefaultRegistry(opts ...RegistryOption) (*Registry, error) {
	return NewRegistry(append([]RegistryOption{WithCodecs(DefaultCodecs()...)},
		opts...)...)
}

// lockAll returns a locker which atomically locks both tables for writing.
func (r *Registry) lockAll() sync.Locker {
	return multilocker.New(&r.codecMx, &r.nameMx)
}

// Register adds codecs to this registry. If a codec for one of the services
// is already present, nothing is registered and an error is returned.
func (r *Registry) Register(codecs ...Codec) error {
	ml := r.lockAll()
	ml.Lock()
	defer ml.Unlock()
	// Check for collisions and illegal values first, and then add the new
	// codecs.
	seen := make(map[Service]struct{}, len(codecs))
	for _, c := range codecs {
		if c == nil {
			return errors.New("nil codec")
		}
		s := c.Service()
		if s == ServiceNegativeResponse {
			return fmt.Errorf("service 0x%02X is not a request", uint8(s))
		}
		if _, ok := seen[s]; ok || r.codecs[s] != nil {
			return fmt.Errorf("codec for service %s already present", s)
		}
		seen[s] = struct{}{}
	}
	for _, c := range codecs {
		s := c.Service()
		r.codecs[s] = c
		r.names[strings.ToLower(s.String())] = s
	}
	return nil
}

// Unregister removes the codecs of the given services. Services without a
// codec are ignored.
func (r *Registry) Unregister(services ...Service) {
	ml := r.lockAll()
	ml.Lock()
	defer ml.Unlock()
	for _, s := range services {
		delete(r.codecs, s)
		delete(r.names, strings.ToLower(s.String()))
	}
}

// Lookup returns the codec for the given service.
func (r *Registry) Lookup(s Service) (Codec, bool) {
	r.codecMx.RLock()
	defer r.codecMx.RUnlock()
	c, ok := r.codecs[s]
	return c, ok
}

// LookupName returns the codec for the service with the given name. Names
// are those returned by Service.String and are matched case-insensitively.
func (r *Registry) LookupName(name string) (Codec, bool) {
	r.nameMx.RLock()
	s, ok := r.names[strings.ToLower(strings.TrimSpace(name))]
	r.nameMx.RUnlock()
	if !ok {
		return nil, false
	}
	return r.Lookup(s)
}

// Services returns the registered services in increasing order.
func (r *Registry) Services() []Service {
	r.codecMx.RLock()
	result := make([]Service, 0, len(r.codecs))
	for s := range r.codecs {
		result = append(result, s)
	}
	r.codecMx.RUnlock()
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}

// Parse decodes req with the codec of its service. Requests for services
// without a codec fail with a ServiceError.
func (r *Registry) Parse(req *Request, cfg *Configuration) (RequestData, error) {
	if req == nil {
		panic("nil request")
	}
	c, ok := r.Lookup(req.Service())
	if !ok {
		r.logger.Debug().Stringer("service", req.Service()).Msg("no codec")
		return nil, &ServiceError{Service: req.Service()}
	}
	data, err := c.Parse(req, cfg)
	if err != nil {
		r.logger.Debug().Err(err).Stringer("service", req.Service()).
			Int("len", req.Len()).Msg("request rejected")
		return nil, err
	}
	return data, nil
}

// Decode splits a raw request frame and decodes it with the codec of its
// service.
func (r *Registry) Decode(
	raw []byte, cfg *Configuration,
) (*Request, RequestData, error) {
	req, err := ParseRequest(raw, cfg)
	if err != nil {
		r.logger.Debug().Err(err).Int("len", len(raw)).Msg("malformed frame")
		return nil, nil, err
	}
	data, err := r.Parse(req, cfg)
	if err != nil {
		return req, nil, err
	}
	return req, data, nil
}

// Encode builds a request for data with the codec of service. subFunc is the
// sub-function byte, or nil for services without one.
func (r *Registry) Encode(
	service Service, subFunc *uint8, data RequestData, cfg *Configuration,
) (*Request, error) {
	c, ok := r.Lookup(service)
	if !ok {
		return nil, &ServiceError{Service: service}
	}
	return c.Request(data.Payload(cfg), subFunc, cfg)
}
