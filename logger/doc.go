// Package logger is the public API of bitlog. Most users only need to
// import this package.
//
// A Logger routes calls by level bitmask. Its routing table maps masks
// to writers and its modifier table maps masks to modifier chains; both
// are fixed by the Builder. Every route whose mask intersects the call
// level fires, in the order the routes were added.
//
// Messages are produced lazily. The producer passed to Info, Warn and
// friends runs on the logger's executor, at most once, and never when
// the logger is disabled or no route covers the level:
//
//	log.Debug(func() string { return expensiveDump() })
//
// The package initializes a synchronous default Logger writing every
// named level to stdout. The package-level functions delegate to it:
//
//	logger.Infof("listening on %d", 8080)
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithWriters(logger.DebugLevel|logger.InfoLevel, stdout).
//	    WithWriters(logger.WarnLevel|logger.ErrorLevel, stderr).
//	    WithColoredTimestamps().
//	    WithAsync(true).
//	    MustBuild()
//	defer log.Close()
//
// Structured messages carry a name and attributes. Writers that
// understand them (zap, logrus, zerolog, slog) receive the attributes
// as fields; the property expansion modifier renders them into text:
//
//	log.EventMessage(logger.Msg("user {attributes.user} signed in",
//	    logger.String("user", "ada")))
package logger
