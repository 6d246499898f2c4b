// Package report renders everything the game says to the player: the welcome
// banner with the options table, prompts, echoes, round results and the
// farewell. Wording comes from a per-language message catalog.
package report
