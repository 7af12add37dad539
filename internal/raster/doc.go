// Package raster is the software backend behind sketch.Canvas.
//
// A Surface is a premultiplied pixel buffer stored in B, G, R, A byte order,
// the in-memory layout of a little-endian ARGB32 word. A Context draws on
// one Surface: it keeps a current path in user space, a user-to-device
// Matrix, a solid source colour and a stroke style, and turns Fill and
// Stroke calls into coverage with golang.org/x/image/vector.
//
// Fills use the non-zero winding rule. Strokes are expanded in user space by
// internal/stroke and transformed afterwards, so a non-uniform scale
// stretches the pen.
//
// Nothing here is safe for concurrent use. Each Context owns its
// rasterizer and mask; there is no package-level state.
package raster
