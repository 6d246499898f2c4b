// Package core provides a small, stable facade over the game for programs
// that want to embed it. It re-exports the choice and result types, the
// round evaluator, and a Play entrypoint that runs a full console session
// over arbitrary streams.
//
// Example:
//
//	err := core.Play(ctx, os.Stdin, os.Stdout, core.Options{Lang: "es"})
//	if errors.Is(err, core.ErrInputClosed) { /* player went away */ }
package core
