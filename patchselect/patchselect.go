// Package patchselect is a pure lookup table deciding, per operation
// and per side, which classified patches survive into the assembled
// mesh and whether their winding must be flipped.
package patchselect

import (
	"github.com/iceisfun/gomesh3d/classify"
	"github.com/iceisfun/gomesh3d/types3"
)

// Decision is the keep/flip verdict for one patch.
type Decision struct {
	Keep bool
	Flip bool
}

// Select decides whether a patch from the given side, classified
// against the opposite solid as label, survives op, and whether its
// triangles must be reversed to keep outward normals consistent.
func Select(op types3.Operation, side types3.Side, label classify.Label) Decision {
	inside := label == classify.Inside

	switch op {
	case types3.Union:
		return Decision{Keep: !inside}
	case types3.Intersection:
		return Decision{Keep: inside}
	case types3.DifferenceAB:
		if side == types3.SideA {
			return Decision{Keep: !inside}
		}
		return Decision{Keep: inside, Flip: inside}
	case types3.DifferenceBA:
		if side == types3.SideA {
			return Decision{Keep: inside, Flip: inside}
		}
		return Decision{Keep: !inside}
	case types3.SymmetricDifference:
		return Decision{Keep: !inside}
	default:
		return Decision{Keep: false}
	}
}

// Apply runs a patch's triangles through its Decision, reversing
// winding when Flip is set, and returns nil when the patch is dropped.
func Apply(d Decision, triangles []types3.RealTriangle) []types3.RealTriangle {
	if !d.Keep {
		return nil
	}
	if !d.Flip {
		return triangles
	}
	out := make([]types3.RealTriangle, len(triangles))
	for i, t := range triangles {
		out[i] = t.Reversed()
	}
	return out
}
