package ring

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ntrukem/polymul/utils"
)

const (
	// MinimumRingDegree is the smallest accepted ring degree.
	MinimumRingDegree = 1

	// MaximumRingDegree is the largest accepted ring degree.
	MaximumRingDegree = 1 << 14

	// PaddingUnit is the granularity of the padded working length: 3 outer
	// blocks, each split in 4 inner blocks, each split in 4 base blocks.
	PaddingUnit = 48

	// BatchSize is the number of base blocks multiplied together for one
	// outer evaluation point: 7 inner points times 9 base rows, plus one
	// zero block so that the batch splits into groups of 8 lanes.
	BatchSize = 64

	strideUnit = 16
)

// ParametersLiteral is a literal representation of the ring parameters.
// It has public fields and is used to express unchecked user-defined
// parameters literally into Go programs or JSON files.
// The Kernel field is optional: an empty value selects [DefaultKernel].
type ParametersLiteral struct {
	N      int    `json:"n"`
	Kernel string `json:"kernel,omitempty"`
}

// Parameter sets of the NTRU family, and a toy set used in tests.
var (
	NTRUHPS2048509 = ParametersLiteral{N: 509}
	NTRUHPS2048677 = ParametersLiteral{N: 677}
	NTRUHPS4096821 = ParametersLiteral{N: 821}
	NTRUHRSS701    = ParametersLiteral{N: 701}
	ToyParameters  = ParametersLiteral{N: 11}
)

// Presets maps the names accepted by [PresetByName] to their literal.
var Presets = map[string]ParametersLiteral{
	"ntruhps2048509": NTRUHPS2048509,
	"ntruhps2048677": NTRUHPS2048677,
	"ntruhps4096821": NTRUHPS4096821,
	"ntruhrss701":    NTRUHRSS701,
	"toy":            ToyParameters,
}

// PresetByName returns the preset registered under name.
func PresetByName(name string) (ParametersLiteral, error) {
	p, ok := Presets[name]
	if !ok {
		return ParametersLiteral{}, fmt.Errorf("unknown parameter preset %q", name)
	}
	return p, nil
}

// UnmarshalJSON reads a JSON representation of the literal.
// Unknown fields are rejected.
func (p *ParametersLiteral) UnmarshalJSON(data []byte) (err error) {
	type literal ParametersLiteral
	var aux literal
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&aux); err != nil {
		return fmt.Errorf("cannot unmarshal ParametersLiteral: %w", err)
	}
	*p = ParametersLiteral(aux)
	return
}

// Parameters stores the validated geometry of the multiplication pipeline.
//
//	L -> L/3 -> L/12 -> L/48
//
// with L the smallest multiple of 48 not smaller than N.
type Parameters struct {
	n int
	l int
}

// NewParameters validates N and derives the padded geometry.
func NewParameters(N int) (p Parameters, err error) {
	if N < MinimumRingDegree || N > MaximumRingDegree {
		return Parameters{}, fmt.Errorf("invalid ring degree: must be in [%d, %d] but is %d", MinimumRingDegree, MaximumRingDegree, N)
	}
	return Parameters{n: N, l: utils.AlignUp(N, PaddingUnit)}, nil
}

// N returns the ring degree.
func (p Parameters) N() int {
	return p.n
}

// L returns the padded working length.
func (p Parameters) L() int {
	return p.l
}

// OuterBlock returns the block length of the Toom-3 layer (L/3).
func (p Parameters) OuterBlock() int {
	return p.l / 3
}

// InnerBlock returns the block length of the Toom-4 layer (L/12).
func (p Parameters) InnerBlock() int {
	return p.l / 12
}

// BaseBlock returns the block length K of the 2x2 Karatsuba layer (L/48).
func (p Parameters) BaseBlock() int {
	return p.l / PaddingUnit
}

// BaseStride returns the distance between two consecutive base blocks of a batch.
func (p Parameters) BaseStride() int {
	return utils.AlignUp(p.BaseBlock(), strideUnit)
}

// BlockLayout returns the layout of the batches handed to a [BlockMultiplyKernel].
func (p Parameters) BlockLayout() BlockLayout {
	return BlockLayout{
		K:      p.BaseBlock(),
		Stride: p.BaseStride(),
		Count:  BatchSize,
	}
}

// Equal returns true if both parameters describe the same geometry.
func (p Parameters) Equal(other Parameters) bool {
	return p.n == other.n && p.l == other.l
}

// String returns a short description of the geometry.
func (p Parameters) String() string {
	return fmt.Sprintf("N=%d/L=%d/K=%d", p.n, p.l, p.BaseBlock())
}
