// Package figure composites layered, recolourable character sprites.
//
// # Overview
//
// figure is the core engine of a character-creation tool. A character is a
// set of independently positioned, scaled, rotated and flipped layer parts
// (hair, face, armour, ...) whose source art encodes a small fixed palette
// in the red channel. The engine remaps that palette to the character's
// chosen colours and flattens the layers into a single bitmap at any output
// resolution.
//
// # Quick Start
//
//	import "github.com/pixelforge/figure"
//
//	c := figure.NewCharacter()
//	c.SetPart(figure.KindFace, figure.Part{
//		Position: figure.Pt(48, 48),
//		Scale:    1,
//		Asset:    face, // decoded pixels attached by the host
//	})
//
//	img := figure.Export(c, figure.DrawOrder(), 96, 96, figure.Pt(96, 96))
//
// # Architecture
//
// The root package is pure computation: it performs no I/O and never mutates
// a pixel buffer it does not own. Decoded layer images are shared read-only
// between parts and characters; every operation that recolours or transforms
// pixels clones first. Independent exports may therefore run in parallel
// without coordination.
//
// Supporting packages:
//   - assets: loads asset libraries and colour palettes from disk
//   - charfile: saves and loads characters as JSON
//   - sheet: batch sprite-sheet generation
//
// By default figure produces no log output; call [SetLogger] to enable it.
package figure
