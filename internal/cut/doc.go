// Package cut converts geometric cut descriptions into instruction
// sequences.
//
// Every cut starts from a safe height, descends in depth layers bounded
// by the cut's maximum step and retracts when done, so cuts can be
// emitted in any order without colliding with the workpiece. Cuts that
// cannot be performed with the configured tool report a GeometryError
// instead of emitting unsafe moves.
package cut
