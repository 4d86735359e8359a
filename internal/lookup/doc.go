// Package lookup holds the word lookup domain: the request and result
// types exchanged between reader and relay, sentence extraction around the
// clicked word, the model prompt, and normalization of model output.
package lookup
