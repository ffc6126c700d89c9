package uds

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ByteOrder selects the byte order of variable-width integer fields.
type ByteOrder uint8

// Byte orders.
const (
	BigEndian ByteOrder = iota
	LittleEndian
)

// String renders this byte order as it appears in configuration files.
func (bo ByteOrder) String() string {
	switch bo {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return fmt.Sprintf("unknown byte order %d", bo)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (bo ByteOrder) MarshalText() ([]byte, error) {
	switch bo {
	case BigEndian, LittleEndian:
		return []byte(bo.String()), nil
	default:
		return nil, fmt.Errorf("unknown byte order %d", bo)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (bo *ByteOrder) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "big", "big-endian", "be":
		*bo = BigEndian
	case "little", "little-endian", "le":
		*bo = LittleEndian
	default:
		return fmt.Errorf("unknown byte order %q", text)
	}
	return nil
}

// Configuration holds protocol tuning options which are threaded through
// every codec call. A nil *Configuration is equivalent to the zero value:
// big endian memory fields and normal addressing.
type Configuration struct {
	// AddressByteOrder is the byte order of memoryAddress fields in
	// MemoryLocation based services.
	AddressByteOrder ByteOrder `toml:"address_byte_order"`

	// SizeByteOrder is the byte order of memorySize fields in MemoryLocation
	// based services.
	SizeByteOrder ByteOrder `toml:"size_byte_order"`

	// ExtendedAddressing determines whether raw frames start with a target
	// address byte (ISO 15765-2 extended addressing).
	ExtendedAddressing bool `toml:"extended_addressing"`

	// TargetAddress is the address byte written in front of frames built
	// with Request.Bytes when ExtendedAddressing is set.
	TargetAddress uint8 `toml:"target_address"`
}

// DefaultConfiguration returns a new configuration with default values.
func DefaultConfiguration() *Configuration {
	return &Configuration{}
}

// LoadConfiguration reads a configuration from the TOML file at path.
// Keys not known to Configuration are rejected.
func LoadConfiguration(path string) (*Configuration, error) {
	cfg := DefaultConfiguration()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys %s",
			path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks this configuration for consistency.
func (cfg *Configuration) Validate() error {
	if cfg == nil {
		return nil
	}
	if cfg.AddressByteOrder > LittleEndian {
		return fmt.Errorf("address byte order: unknown byte order %d",
			cfg.AddressByteOrder)
	}
	if cfg.SizeByteOrder > LittleEndian {
		return fmt.Errorf("size byte order: unknown byte order %d",
			cfg.SizeByteOrder)
	}
	return nil
}

// addressOrder returns the memoryAddress byte order.
func (cfg *Configuration) addressOrder() ByteOrder {
	if cfg == nil {
		return BigEndian
	}
	return cfg.AddressByteOrder
}

// sizeOrder returns the memorySize byte order.
func (cfg *Configuration) sizeOrder() ByteOrder {
	if cfg == nil {
		return BigEndian
	}
	return cfg.SizeByteOrder
}

// extendedAddressing reports whether frames carry a target address byte.
func (cfg *Configuration) extendedAddressing() bool {
	return cfg != nil && cfg.ExtendedAddressing
}
