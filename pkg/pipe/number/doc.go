// Package number provides a back-boundary codec between text lines and
// integers. Unparsable lines are answered locally with a failure instead of
// being forwarded, so a request may be served entirely from the front side.
package number
