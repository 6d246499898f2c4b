// Package rps provides the command-line interface for the game. It parses
// flags, merges them with config files, and starts either the console game
// or the terminal UI.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/javiermmdev/rps/cmd/rps"
//	func main() { rps.Execute() }
package rps
