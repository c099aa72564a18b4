// Package bars implements the geometry engine for bar charts: vertical
// stacking of bar series and side-by-side grouping at shared key
// coordinates.
//
// Series live in an Arena and are addressed by stable handles; the
// below/above stacking relation is stored as handle pairs whose symmetry
// (A above B exactly when B below A) is restored atomically by every
// mutation. Groups reference series by handle and compute per-series pixel
// offsets from the nominal key position, honoring axis direction,
// orientation and nonlinear scales.
//
// All positions are resolved in pixel space through the plot.Axis
// transforms of each series, so reversed and logarithmic axes fall out of
// the same code path.
package bars
