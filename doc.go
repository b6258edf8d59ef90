// Package draft provides the geometric core of a CAD drawing model: planar
// entities embedded in 3D space, affine transformations that preserve each
// entity's constraints, and tessellation of curved entities into point
// sequences.
//
// # Coordinate systems
//
// Every planar entity carries a normal. The normal defines the entity's
// object coordinate system (OCS) via the arbitrary axis algorithm (see
// [ArbitraryAxis]): a deterministic right-handed frame whose Z axis is the
// normal. Planar entities store their defining points in this frame;
// three-dimensional entities such as [Line], [Spline] and [Mesh] work in
// world coordinates directly.
//
// # Transformations
//
// [Transform] applies an affine map to any entity. Entities do not store a
// matrix; instead each entity re-derives its defining scalars (rotations,
// radii, axis lengths, text heights, width factors) from transformed
// reference points, clamping or substituting where a scalar would leave its
// legal range. Mirroring maps flip an entity's winding; entities that carry
// an orientation (arcs, ellipses, text, block references) detect the flip
// through the map's determinant and compensate.
//
// # Tessellation
//
// Entities whose outline is curved implement [Tessellator] and approximate
// themselves with a vertex sequence at a caller-chosen precision. Splines
// and smoothed polylines evaluate as NURBS curves (see [NurbsEvaluate]);
// polyline bulges convert to circular arcs (see [BulgeArc]). Entities built
// from simpler parts implement [Exploder].
package draft
