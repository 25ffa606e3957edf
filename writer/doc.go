// Package writer defines the sink contract of bitlog and ships sinks
// for the common Go logging backends.
//
// A Writer receives a core.Record whose Text has been through every
// modifier configured for it. Writers that also implement
// ModifierWriter own a chain the Logger runs after its level chain.
//
// Console writes plain lines to an io.Writer, coloured per severity
// when attached to a terminal. Zap, Logrus, Zerolog and Slog hand the
// record to an existing logger so bitlog can front an application that
// already has a logging backend. Named levels are ranked with Classify;
// custom bits rank as info and keep their name in "level_name".
//
// Multi fans a record out to several writers and isolates their
// failures from each other.
package writer
