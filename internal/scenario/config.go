package scenario

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/gmath/pkg/vector"
)

// Config is the YAML form of a scenario:
//
//	name: planar
//	cases:
//	  - name: sum
//	    op: add
//	    a: [1.0, 0.5]
//	    b: [2.4, 3.9]
//	    want: [3.4, 4.4, 0]
type Config struct {
	Name  string       `yaml:"name"`
	Cases []CaseConfig `yaml:"cases"`
}

type CaseConfig struct {
	Name   string                  `yaml:"name,omitempty"`
	Op     string                  `yaml:"op"`
	A      *vector.Vector[float64] `yaml:"a"`
	B      *vector.Vector[float64] `yaml:"b,omitempty"`
	Scalar *float64                `yaml:"scalar,omitempty"`
	Want   yaml.Node               `yaml:"want,omitempty"`
}

// LoadYAML reads a scenario from r.
func LoadYAML(r io.Reader) (*Scenario, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	return c.Build()
}

// LoadFile reads a scenario file. An unnamed scenario takes the file's base name.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Build validates the config against the op registry.
func (c *Config) Build() (*Scenario, error) {
	if len(c.Cases) == 0 {
		return nil, ErrEmptyScenario
	}

	s := &Scenario{Name: c.Name, Cases: make([]Case, 0, len(c.Cases))}
	for i, cc := range c.Cases {
		built, err := cc.build()
		if err != nil {
			return nil, fmt.Errorf("case %d (%s): %w", i, cc.Name, err)
		}
		s.Cases = append(s.Cases, built)
	}
	return s, nil
}

func (cc CaseConfig) build() (Case, error) {
	op, err := Lookup(cc.Op)
	if err != nil {
		return Case{}, err
	}

	out := Case{Name: cc.Name, Op: cc.Op}
	if cc.A == nil {
		return Case{}, fmt.Errorf("%w: %s needs operand a", ErrInvalidOperand, op.Name)
	}
	out.A = *cc.A

	if op.Binary {
		if cc.B == nil {
			return Case{}, fmt.Errorf("%w: %s needs operand b", ErrInvalidOperand, op.Name)
		}
		out.B = *cc.B
	}

	if op.UsesScalar {
		if cc.Scalar == nil {
			return Case{}, fmt.Errorf("%w: %s needs a scalar", ErrInvalidOperand, op.Name)
		}
		out.Scalar = *cc.Scalar
	}

	if out.Want, err = decodeWant(&cc.Want, op.Kind); err != nil {
		return Case{}, err
	}
	return out, nil
}
