// Package cli builds the webreader command tree.
package cli
