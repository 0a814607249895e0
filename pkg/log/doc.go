// Package log exposes the structured logging abstraction used by gridsim
// and its plugins.
//
// Use the provided zerolog adapter:
//
//	logger := log.NewZerologLogger(zerolog.New(os.Stderr))
//
// Or discard everything in tests:
//
//	logger := log.NewNoopLogger()
//
// Any type with Debug, Info, Warn and Error methods taking a message and
// fields satisfies [Logger].
package log
