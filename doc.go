// Package graphview provides the geometry behind a single-series area chart:
// points, rectangles, affine maps, quadratic Béziers, and the outlines built
// from them.
//
// # Smoothing
//
// The central routine is [Smooth]. Given an ordered sequence of points in
// view space, it produces an [Outline] that passes through every point and
// rounds the vertices with pairs of quadratic Béziers. Each pair meets at the
// midpoint between two neighbouring points, and the control points are pushed
// vertically toward the nearer extremum, which gives peaks and valleys a soft,
// rounded look.
//
// Smooth returns nil for fewer than two points. Callers should treat that as
// "nothing to draw", not as a failure. Two points produce a straight line.
//
// # Mapping samples to points
//
// Charts usually start out with scalar samples in [0, 1], not points. A
// [Mapping] turns a column index and a sample value into a [Point], with the
// origin at the top left and y increasing downwards. [SeriesPoints] applies a
// mapping to a whole series and adds a baseline point at both ends, so that
// the smoothed outline closes against the x axis and can be filled.
// [AreaOutline] combines both steps.
//
// # Outlines
//
// An [Outline] is a slice of [PathElement] values, akin to the drawing
// commands of PostScript or the HTML canvas: [MoveTo], [LineTo], [QuadTo] and
// [ClosePath]. Outlines can be iterated, measured ([Outline.BoundingBox]),
// transformed, flattened to lines for rasterizers that don't support curves
// ([Outline.Flatten]), and written as SVG path data ([Outline.SVG]).
//
// Outlines are values. Nothing in this package modifies an outline after it
// has been returned, and all functions are safe for concurrent use.
//
// # Coordinate system
//
// All coordinates are float64 and are neither rounded nor snapped. The
// package assumes a y-down coordinate system, as is common for graphics.
package graphview
