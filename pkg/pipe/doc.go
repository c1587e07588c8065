// Package pipe defines sans-I/O stages and the operator that fuses them.
//
// A Stage has a front and a back boundary. It is driven from outside: the
// caller hands messages in with HandleFrontInput/HandleBackInput and polls
// messages out with PollFrontOutput/PollBackOutput. A stage never performs
// I/O, never blocks and never fails; "nothing ready" is an ordinary answer.
//
//	                  _____________________
//	                 / \                   \
//	front input --> |   |                   | --> back output
//	                |   |       STAGE       |
//	front output <--|   |                   | <-- back input
//	                 \_/___________________/
//
// Key operations:
// - Fuse/MustFuse/Fuse3: compose stages whose adjacent message types match;
// the type between them is routed internally and never leaves the fused stage
// - Success/Fail/FailWithResult/Convert: Result[T] for channel-tagged messages
// - FeedFront/FeedBack/DrainFront/DrainBack/Quiesce: drive a stage in memory
//
// Generic stages live in package solo, example codecs in lines and number,
// decorators in observe and an I/O driver loop in drive.
package pipe
