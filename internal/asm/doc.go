// Package asm reads Celera Assembler ASM files.
//
// An ASM file is a flat sequence of top-level messages ({MDI, {AFG, {AMP,
// {UTG, {ULK, {CCO, {CLK, {SCF, {SLK). Some of them nest sub-blocks
// ({MPS, {UPS, {VAR, {CTP) whose number is declared in the parent.
//
// Design:
//   • One forward pass, one Visitor. Objects are visited before anything
//     that references them.
//   • Children-capable messages return a Descent: Descend(child) or Skip.
//     Skipped sub-blocks are scanned to their terminator without parsing.
//   • A Callback lets a visitor bookmark the current record or request a
//     halt. Halts are observed at record boundaries and between sub-blocks.
//   • Each Accept call owns one input stream and closes it on every path.
package asm
