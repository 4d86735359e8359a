package cli

import (
	"github.com/spf13/cobra"

	"github.com/mwhite7112/webreader/internal/lookup"
)

// Flags holds all command-line flag values.
type Flags struct {
	// lookup
	Word     string
	Language string
	RelayURL string
	Speak    bool
	Save     bool
}

// NewFlags returns flags with their defaults.
func NewFlags() *Flags {
	return &Flags{
		Language: lookup.DefaultLanguage,
		RelayURL: "http://localhost:3001",
	}
}

// Runners are the actions behind each subcommand.
type Runners struct {
	Serve   func(cmd *cobra.Command, args []string) error
	Lookup  func(cmd *cobra.Command, args []string, flags *Flags) error
	Migrate func(cmd *cobra.Command, args []string) error
}
