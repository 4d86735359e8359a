// Package speech pronounces words through the espeak-ng command.
package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mwhite7112/webreader/internal/reader"
)

// baseWPM is espeak-ng's default speaking rate; Utterance.Rate scales it.
const baseWPM = 175

// ESpeak speaks through espeak-ng.
type ESpeak struct {
	bin string
}

// NewESpeak finds espeak-ng on PATH.
func NewESpeak() (*ESpeak, error) {
	bin, err := exec.LookPath("espeak-ng")
	if err != nil {
		return nil, fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return &ESpeak{bin: bin}, nil
}

func (e *ESpeak) Speak(ctx context.Context, text string, u reader.Utterance) error {
	out, err := exec.CommandContext(ctx, e.bin, args(text, u)...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("espeak-ng failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func args(text string, u reader.Utterance) []string {
	rate := u.Rate
	if rate <= 0 {
		rate = 1
	}
	a := []string{"-s", strconv.Itoa(int(baseWPM * rate))}
	if u.Lang != "" {
		a = append(a, "-v", strings.ToLower(u.Lang))
	}
	return append(a, "--", text)
}
