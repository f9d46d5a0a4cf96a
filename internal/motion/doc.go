// Package motion defines the typed vocabulary of the kinetic alphabet:
// motion types, rotation directions, compass locations, orientations,
// turn counts, object colors, grid layout modes, and the MotionDescriptor
// record that binds them together for one object in one beat.
//
// Everything in this package is immutable value data. A descriptor is
// never mutated in place: editing a beat produces a new descriptor.
//
// CRITICAL PATTERNS:
//
// Typed string enums:
// Every enum is a distinct string type with a Valid() method and a
// Valid* set for parse-time checking. Lookup tables elsewhere in the
// engine switch exhaustively over these types so that a missing
// combination is a compile-visible hole, not a runtime nil.
//
// Half-turn granularity:
// Turns is a float64 constrained to {0, 0.5, 1, 1.5, 2, 2.5, 3}. All
// turn arithmetic goes through Turns methods; raw float comparison is
// forbidden outside this package.
package motion
