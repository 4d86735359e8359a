package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwhite7112/webreader/internal/cli"
	"github.com/mwhite7112/webreader/internal/clients"
	"github.com/mwhite7112/webreader/internal/config"
	"github.com/mwhite7112/webreader/internal/logging"
	"github.com/mwhite7112/webreader/internal/lookup"
	"github.com/mwhite7112/webreader/internal/reader"
	"github.com/mwhite7112/webreader/internal/speech"
)

func runLookup(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	logging.New(config.LogConfig{Level: "warn", Format: "text"}, cmd.ErrOrStderr())

	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	var speaker reader.Speaker
	if flags.Speak {
		if e, err := speech.NewESpeak(); err != nil {
			slog.Warn("speech disabled", "error", err)
		} else {
			speaker = e
		}
	}

	relay := clients.NewRelayClient(flags.RelayURL, &http.Client{Timeout: 30 * time.Second})
	session := reader.NewSession(relay, speaker, nil)

	if err := session.SetLanguage(flags.Language); err != nil {
		return fmt.Errorf("%w (choose one of: %s)", err, strings.Join(reader.Languages, ", "))
	}
	if !session.SetText(text) {
		return errors.New("no text to read")
	}

	p, i, ok := session.FindToken(flags.Word)
	if !ok {
		return fmt.Errorf("%q does not appear in the text", flags.Word)
	}

	res, err := session.ClickWord(cmd.Context(), p, i, reader.Point{})
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), session.Popover().Error)
		return err
	}
	printResult(cmd.OutOrStdout(), session.Popover().Word, res)

	if flags.Speak {
		if err := session.Speak(cmd.Context()); err != nil {
			slog.Warn("speak failed", "error", err)
		}
	}

	if flags.Save {
		entry, err := session.SaveCurrent()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entry)
	}
	return nil
}

func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func printResult(w io.Writer, word string, res lookup.Result) {
	fmt.Fprintf(w, "%s → %s\n", word, res.WordTranslation)
	fmt.Fprintf(w, "Definition:  %s\n", res.Definition)
	fmt.Fprintf(w, "In context:  %s\n", res.ContextDefinition)
	if len(res.Synonyms) > 0 {
		fmt.Fprintf(w, "Synonyms:    %s\n", strings.Join(res.Synonyms, ", "))
	}
	fmt.Fprintf(w, "Sentence:    %s\n", res.SentenceTranslation)
}
