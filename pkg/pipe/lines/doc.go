// Package lines provides a front-boundary codec that turns a byte stream into
// text lines and text lines back into bytes.
//
// Toward the back, Codec accumulates raw bytes and emits each complete line
// with its separator stripped. Toward the front, it encodes channel-tagged
// lines (pipe.Result[string]) by appending the separator, keeping the tag so a
// driver can route failures to a distinct sink.
//
// Options:
// - WithSeparator: line terminator, '\n' by default
// - WithMaxLineLength: drop and report over-long lines
// - WithTrimCR: accept "\r\n" line endings
package lines
