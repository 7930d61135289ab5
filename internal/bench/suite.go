package bench

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/arloliu/radix/errs"
	"github.com/arloliu/radix/fixture"
)

// Kind names a workload shape.
type Kind string

const (
	KindUint32  Kind = "uint32"
	KindUint64  Kind = "uint64"
	KindKV      Kind = "kv"
	KindStrings Kind = "strings"
)

// keyWidth is the widest key in bytes the kind sorts without truncation.
func (k Kind) keyWidth() int {
	if k == KindUint32 || k == KindKV {
		return 4
	}

	return 8
}

// Workload is one benchmark case.
type Workload struct {
	Name         string `toml:"name"`
	Kind         Kind   `toml:"kind"`
	N            int    `toml:"n"`
	Distribution string `toml:"distribution"`
	// Input, when set, loads keys from a fixture instead of generating them.
	Input string `toml:"input"`
}

// Suite is the TOML document accepted by `radixbench run --suite`.
type Suite struct {
	Repeat    int        `toml:"repeat"`
	Verify    bool       `toml:"verify"`
	Seed      uint64     `toml:"seed"`
	Workloads []Workload `toml:"workload"`
}

// DefaultSuite covers every workload kind on a uniform input.
func DefaultSuite() Suite {
	return Suite{
		Repeat: 5,
		Seed:   1,
		Workloads: []Workload{
			{Name: "uint32-uniform", Kind: KindUint32, N: 1 << 20, Distribution: string(fixture.Uniform)},
			{Name: "uint32-narrow", Kind: KindUint32, N: 1 << 20, Distribution: string(fixture.Narrow)},
			{Name: "uint64-uniform", Kind: KindUint64, N: 1 << 20, Distribution: string(fixture.Uniform)},
			{Name: "kv-uniform", Kind: KindKV, N: 1 << 20, Distribution: string(fixture.Uniform)},
			{Name: "strings-uniform", Kind: KindStrings, N: 1 << 18, Distribution: string(fixture.Uniform)},
		},
	}
}

// LoadSuite reads a suite from a TOML file.
//
// Example file:
//
//	repeat = 3
//	verify = true
//
//	[[workload]]
//	name = "ips"
//	kind = "uint32"
//	n = 1000000
//	distribution = "narrow"
func LoadSuite(path string) (Suite, error) {
	var s Suite
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Suite{}, fmt.Errorf("failed to parse suite %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Suite{}, fmt.Errorf("%w: unknown suite key %q", errs.ErrInvalidOption, undecoded[0].String())
	}

	if s.Repeat == 0 {
		s.Repeat = 1
	}
	if err := s.Validate(); err != nil {
		return Suite{}, err
	}

	return s, nil
}

// Validate checks every workload.
func (s Suite) Validate() error {
	if s.Repeat < 1 {
		return fmt.Errorf("%w: repeat must be positive, got %d", errs.ErrInvalidOption, s.Repeat)
	}
	if len(s.Workloads) == 0 {
		return fmt.Errorf("%w: suite has no workloads", errs.ErrInvalidOption)
	}

	for i, w := range s.Workloads {
		if err := w.validate(); err != nil {
			return fmt.Errorf("workload %d (%s): %w", i, w.Name, err)
		}
	}

	return nil
}

func (w Workload) validate() error {
	switch w.Kind {
	case KindUint32, KindUint64, KindKV, KindStrings:
	default:
		return fmt.Errorf("%w: unknown kind %q", errs.ErrInvalidOption, w.Kind)
	}

	if w.Input != "" {
		return nil
	}
	if w.N < 0 {
		return fmt.Errorf("%w: negative n %d", errs.ErrInvalidOption, w.N)
	}

	dist := w.Distribution
	if dist == "" {
		dist = string(fixture.Uniform)
	}
	_, err := fixture.ParseDistribution(dist)

	return err
}
