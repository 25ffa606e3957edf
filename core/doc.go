// Package core defines the value types shared by every bitlog package.
//
// Level is a bit set. The five predefined severities (Debug, Info,
// Event, Warn, Error) each occupy one bit and AllLevels is their union.
// Any other bit may be used as a custom level:
//
//	const Verbose = core.Level(1 << 8)
//
// Masks built with Union select several levels at once; routes and
// modifier tables match a call when their mask Intersects its level.
// Levels lets a Logger map the named severities onto other bits; it is
// resolved once at construction instead of being global state.
//
// A log call produces a Message, which is either Text or a structured
// Event built with Msg or NewMessage. Every dispatched message is paired
// with a Context describing the call (level, timestamp, call site,
// optional subsystem, category, device, session and user), and writers
// receive both bundled in a Record.
//
// CoarseClock wraps a clock.Clock and serves Now from a value refreshed
// by a background ticker, trading precision for a cheaper hot path.
package core
