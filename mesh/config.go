package mesh

import (
	"fmt"

	"github.com/inference-sim/fabricdes/des"
)

// Config is the YAML-loadable description of a Mesh topology.
type Config struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	BufSize   int     `yaml:"buf_size"`
	ProcDelay float32 `yaml:"proc_delay"`
}

// Validate checks Config for internally consistent values.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("mesh: rows and cols must both be >= 1, got (%d,%d)", c.Rows, c.Cols)
	}
	if c.BufSize < 1 {
		return fmt.Errorf("mesh: buf_size must be >= 1, got %d", c.BufSize)
	}
	if c.ProcDelay <= 0 {
		return fmt.Errorf("mesh: proc_delay must be > 0, got %v", c.ProcDelay)
	}
	return nil
}

// NewFromConfig validates c and constructs the Mesh it describes.
func NewFromConfig(sim *des.Simulation, c Config) (*Mesh, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return New(sim, c.Rows, c.Cols, c.BufSize, c.ProcDelay), nil
}
