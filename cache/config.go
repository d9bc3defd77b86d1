package cache

import "fmt"

// Config is the YAML-loadable form of Params, validated before it is
// converted into a running NmruCache.
type Config struct {
	LAddrBits int `yaml:"laddr_bits"`
	Capacity  int `yaml:"capacity"`
	Assoc     int `yaml:"assoc"`
}

// Validate checks Config for internally consistent values. A zero
// Capacity is permitted (degenerate cache); a zero Assoc with nonzero
// Capacity is not, since it can't be divided into sets.
func (c Config) Validate() error {
	if c.LAddrBits < 0 {
		return fmt.Errorf("cache: laddr_bits must be >= 0, got %d", c.LAddrBits)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("cache: capacity must be >= 0, got %d", c.Capacity)
	}
	if c.Capacity > 0 && c.Assoc <= 0 {
		return fmt.Errorf("cache: assoc must be >= 1 when capacity > 0, got %d", c.Assoc)
	}
	if c.Assoc > 0 && c.Capacity%c.Assoc != 0 {
		return fmt.Errorf("cache: capacity %d is not a multiple of assoc %d", c.Capacity, c.Assoc)
	}
	return nil
}

// NewFromConfig validates c and constructs the NmruCache it describes.
func NewFromConfig(c Config) (*NmruCache, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return New(Params{LAddrBits: c.LAddrBits, Capacity: c.Capacity, Assoc: c.Assoc}), nil
}
