// Package drive runs a byte-facing stage against real I/O. It is the only
// place where reading, writing and waiting happen: Loop reads chunks from an
// io.Reader, feeds them to the stage's front, answers the stage's back output
// with a Logic handler and hands front output to an Emit handler.
//
// Options are carried on the context, as in WithReadSize.
package drive
