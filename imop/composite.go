package imop

import (
	"github.com/esimov/brushgen/utils"
	"github.com/pkg/errors"
)

const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Composite holds the active Porter-Duff operator. Since brush stamps have a
// constant color, only the alpha equation of each operator is relevant.
type Composite struct {
	current string
	ops     []string
}

// InitOp returns a Composite with the copy operator activated.
func InitOp() *Composite {
	return &Composite{
		current: Copy,
		ops: []string{
			Copy,
			SrcOver,
			DstOver,
			SrcIn,
			DstIn,
			SrcOut,
			DstOut,
			SrcAtop,
			DstAtop,
			Xor,
		},
	}
}

// Set activates one of the supported composition operators.
func (op *Composite) Set(cop string) error {
	if !utils.Contains(op.ops, cop) {
		return errors.Errorf("unsupported composite operation: %q", cop)
	}
	op.current = cop
	return nil
}

// Get returns the active composition operator.
func (op *Composite) Get() string {
	return op.current
}

// Alpha composes the normalized source alpha as over the backdrop alpha ab.
// Both values are expected in the [0,1] range.
func (op *Composite) Alpha(as, ab float64) float64 {
	as = utils.Clamp(as, 0, 1)
	ab = utils.Clamp(ab, 0, 1)

	switch op.current {
	case SrcOver:
		return as + ab*(1-as)
	case DstOver:
		return as*(1-ab) + ab
	case SrcIn:
		return as * ab
	case DstIn:
		return ab * as
	case SrcOut:
		return as * (1 - ab)
	case DstOut:
		return ab * (1 - as)
	case SrcAtop:
		// atop keeps the coverage of the element it is drawn on.
		return ab
	case DstAtop:
		return as
	case Xor:
		return as*(1-ab) + ab*(1-as)
	}
	return as
}
