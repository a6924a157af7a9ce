// Package session provides the reference editing-surface session.
//
// A Session binds a text buffer, a tracked-span arena, a marker
// configuration, and a dispatch table into one snippet.Surface. Every
// buffer edit is routed through the arena's adjustment routine, so tracked
// spans stay correct under typing, deletion, and reindentation.
//
// The session owns its dispatch table as an explicit value — there is no
// process-wide registry — so independent sessions expand independently.
// All operations are synchronous and single-threaded, driven by the host's
// interactive loop.
package session
