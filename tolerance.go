package euclid

// Tolerances shared by every solver. Parameters along a feature are
// dimensionless, so the same thresholds apply whatever the feature length.
const (
	// OneTrillionth is the threshold below which a quantity is treated as zero:
	// colinear slab axes, Gram determinants, snapped parameters.
	OneTrillionth = 1.0e-12

	// OneTenMillionth widens parametric ranges and detects parallel directions
	// in the 2D resolver.
	OneTenMillionth = 1.0e-7

	// OneMillionth is the geometric acceptance tolerance used by the cylinder
	// and ellipsoid solvers.
	OneMillionth = 1.0e-6
)
