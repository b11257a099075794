// Package scripting embeds a Lua interpreter that drives one editor. The
// host registers an "ed" module exposing the editor's command surface, so
// scripts can move the cursor, edit text, and read buffer state without a
// terminal attached.
//
// Rows and columns are 0-indexed, matching the engine. Lua states are not
// goroutine-safe; a Host belongs to the goroutine that created it.
package scripting
