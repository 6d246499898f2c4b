// Package engine holds the game itself: parsing the player's input, drawing
// the computer's move, scoring a round and the loop that ties them together.
// External consumers should use the facade in pkg/core.
package engine
