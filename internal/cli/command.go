package cli

import (
	"github.com/spf13/cobra"
)

// CreateRootCommand builds the root command with serve, lookup and migrate.
func CreateRootCommand(flags *Flags, run Runners) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "webreader",
		Short: "Click-to-define reading aid",
		Long: `webreader explains words in the context they were read in.

The relay answers POST /analisar with a definition, synonyms, a
contextual meaning and translations produced by a chat model.

Examples:
  webreader serve                                   # run the relay
  webreader lookup --word ran "He ran fast."        # look up one word
  echo "Elle mange." | webreader lookup --word mange --language Spanish`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newServeCommand(run.Serve),
		newLookupCommand(flags, run.Lookup),
		newMigrateCommand(run.Migrate),
	)
	return rootCmd
}

func newServeCommand(run func(*cobra.Command, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the lookup relay",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
}

func newLookupCommand(flags *Flags, run func(*cobra.Command, []string, *Flags) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup [text]",
		Short: "Look up a word in text through the relay",
		Long: `lookup reads text from the argument or stdin, finds the first token
matching --word and asks the relay to explain it in that paragraph.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.Word, "word", "w", "", "word to look up (required)")
	cmd.Flags().StringVarP(&flags.Language, "language", "l", flags.Language, "target language for translations")
	cmd.Flags().StringVar(&flags.RelayURL, "relay", flags.RelayURL, "relay base URL")
	cmd.Flags().BoolVar(&flags.Speak, "speak", false, "pronounce the word with espeak-ng")
	cmd.Flags().BoolVar(&flags.Save, "save", false, "print the word as a saved vocabulary entry")
	_ = cmd.MarkFlagRequired("word")

	return cmd
}

func newMigrateCommand(run func(*cobra.Command, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply vocabulary database migrations",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
}
