// Package snippet materializes template tokens into live, independently
// tracked regions of an editing surface and drives cursor navigation
// between them.
//
// The package owns two tightly coupled pieces of state per surface:
//
//   - [Instance]: the single live snippet on a surface, holding the
//     bounding span, the tracked exit position, and the ordered field
//     spans.
//   - [Engine]: instantiates templates and navigates fields. Starting a
//     new instantiation tears down any live instance first; at most one
//     instance is ever live per surface.
//
// The host editing surface is consumed through the [Surface] interface;
// this package performs no buffer storage, span arithmetic, or syntax
// analysis of its own. See the session package for the reference surface
// implementation.
package snippet
