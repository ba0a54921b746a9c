// Package wire implements the byte-level layouts of Compact Header Encoding.
//
// A layout derives every structural boundary (maximum name length, maximum
// header ID, value length tiers) from the bounds of the safe byte alphabet
// and knows how to append and read the structural fields of a record.
// Validation of user input against those boundaries is the caller's job;
// the append helpers assume already checked arguments.
package wire

//go:generate go tool errtrace -w .
