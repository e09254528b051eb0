// Package boolcfg holds the process-wide, read-only tolerance table.
// It is initialized once at package load and never mutated
// afterward; there is no runtime configuration of epsilons. The
// table is passed by value, not reached in from arbitrary code and
// changed.
package boolcfg

// Tolerances is the frozen set of named epsilon constants every
// stage reads.
type Tolerances struct {
	// TrianglePredicateEpsilon governs 3D geometric predicates and the
	// intersection-graph quantization lattice spacing.
	TrianglePredicateEpsilon float64

	// MergeEpsilon is the final vertex weld distance.
	MergeEpsilon float64

	// MergeEpsilonSquared is MergeEpsilon^2, precomputed for distance tests.
	MergeEpsilonSquared float64

	// BarycentricInsideEpsilon is the relative tolerance for
	// barycentric-on-edge tests and area-consistency checks.
	BarycentricInsideEpsilon float64

	// FeatureWorldDistanceEpsilon governs PairFeatures vertex dedup.
	FeatureWorldDistanceEpsilon float64
	// FeatureWorldDistanceEpsilonSquared is the squared form.
	FeatureWorldDistanceEpsilonSquared float64

	// EpsCorner, EpsVertex, EpsSide are PSLG snapping thresholds.
	EpsCorner float64
	EpsVertex float64
	EpsSide   float64

	// PslgVertexMergeEpsilon is the PSLG vertex merge distance.
	PslgVertexMergeEpsilon float64
	// PslgVertexMergeEpsilonSquared is the squared form.
	PslgVertexMergeEpsilonSquared float64

	// EpsArea is the area-based degeneracy floor.
	EpsArea float64

	// SuperEdgePerpendicularFactor is the multiplier on MergeEpsilon
	// used by the super-edge expansion perpendicular-distance test.
	SuperEdgePerpendicularFactor float64

	// MaxClassificationRetries bounds the number of ray-direction
	// retries classification attempts before failing on ambiguity.
	MaxClassificationRetries int
}

// Default is the frozen tolerance table used throughout the core. It
// is built once via newDefault and never modified; callers needing a
// variant for testing should build their own Tolerances value rather
// than mutating this one.
var Default = newDefault()

func newDefault() Tolerances {
	const (
		trianglePredicateEpsilon = 1e-9
		mergeEpsilon             = 1e-9
		barycentricInside        = 1e-6
		featureWorldDistance     = 1e-7
		epsCorner                = 1e-5
		epsVertex                = 1e-6
		epsSide                  = 1e-7
		pslgVertexMerge          = 1e-7
		epsArea                  = 1e-9
	)

	return Tolerances{
		TrianglePredicateEpsilon:            trianglePredicateEpsilon,
		MergeEpsilon:                        mergeEpsilon,
		MergeEpsilonSquared:                 mergeEpsilon * mergeEpsilon,
		BarycentricInsideEpsilon:            barycentricInside,
		FeatureWorldDistanceEpsilon:         featureWorldDistance,
		FeatureWorldDistanceEpsilonSquared:  featureWorldDistance * featureWorldDistance,
		EpsCorner:                           epsCorner,
		EpsVertex:                           epsVertex,
		EpsSide:                             epsSide,
		PslgVertexMergeEpsilon:              pslgVertexMerge,
		PslgVertexMergeEpsilonSquared:       pslgVertexMerge * pslgVertexMerge,
		EpsArea:                             epsArea,
		SuperEdgePerpendicularFactor:        10,
		MaxClassificationRetries:            8,
	}
}

// QuantizeScale returns 1/TrianglePredicateEpsilon, the scale factor
// the intersection graph and per-triangle index use to snap world
// points onto the quantization lattice.
func (t Tolerances) QuantizeScale() float64 {
	return 1.0 / t.TrianglePredicateEpsilon
}
