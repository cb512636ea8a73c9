// Package geom computes intersections between finite rectangles embedded in
// 3D space. Rectangles are planar fracture elements of a discrete fracture
// network; the intersection traces produced here are the edges of the
// network's connectivity graph.
//
// The intersection of A with B is computed in B's local frame: A's vertices
// are projected into the frame, classified against B's plane, and the crossing
// segment is clipped to B's footprint before being lifted back to world space.
// All comparisons are exact sign and equality tests on float64 values.
package geom
