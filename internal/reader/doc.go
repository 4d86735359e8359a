// Package reader is the client side of the reading aid: the document the
// user reads, the word popover and the session that ties them to the relay.
package reader
