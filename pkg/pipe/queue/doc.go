// Package queue provides the FIFO buffer stages use to hold messages until
// they are polled. Messages leave in the order they were pushed.
package queue
