// Package builder turns ASM read placements into assembly layouts.
//
// A placed read is rebuilt from its full-length raw sequence: trim to the
// clear range, reverse complement when the placement is reversed, then
// insert the placement's gaps one at a time. Raw sequences and clear
// ranges come from collaborators populated before the layout is visited.
package builder
