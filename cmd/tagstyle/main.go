// Command tagstyle styles tagged format strings for the terminal. It reads
// from its arguments, stdin, or an interactive prompt, and writes the styled
// (or stripped) text to stdout.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"awesome-dragon.science/go/tagstyle/pkg/styler"
)

var (
	useTerminfo = pflag.Bool("terminfo", false, "resolve sequences from the terminfo database instead of fixed ANSI codes")
	stripTags   = pflag.Bool("strip", false, "remove tags instead of styling")
	maxDepth    = pflag.Int("max-depth", styler.DefaultMaxDepth, "maximum tag nesting depth")
	colourMode  = pflag.String("colour", "auto", "when to emit colour codes: auto, always, never")
)

func main() {
	pflag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	opts, err := buildOptions()
	if err != nil {
		logger.Fatal().Err(err).Msg("bad flags")
	}

	s, err := styler.New(opts)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not set up renderer")
	}

	switch {
	case pflag.NArg() > 0:
		if err := formatAll(s, pflag.Args()); err != nil {
			logger.Fatal().Err(err).Msg("bad format string")
		}
	case isatty.IsTerminal(os.Stdin.Fd()):
		repl(s, logger)
	default:
		if err := formatStream(s, os.Stdin); err != nil {
			logger.Fatal().Err(err).Msg("bad format string")
		}
	}
}

func buildOptions() (styler.Options, error) {
	opts := styler.Options{MaxDepth: *maxDepth, Strip: *stripTags}

	if *useTerminfo {
		opts.Backend = styler.BackendTerminfo
	}

	switch *colourMode {
	case "always":
	case "never":
		opts.Strip = true
	case "auto":
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			opts.Strip = true
		}
	default:
		return opts, fmt.Errorf("unknown colour mode %q", *colourMode)
	}

	return opts, nil
}

func formatAll(s *styler.Styler, args []string) error {
	for _, arg := range args {
		out, err := s.Format(arg)
		if err != nil {
			return err
		}

		fmt.Println(out)
	}

	return nil
}

func formatStream(s *styler.Styler, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		out, err := s.Format(scanner.Text())
		if err != nil {
			return err
		}

		fmt.Println(out)
	}

	return scanner.Err()
}

// repl reads lines interactively, styling each one. Lines starting with a
// slash are commands: /strip on|off, /depth n, /quit.
func repl(s *styler.Styler, logger zerolog.Logger) {
	rl, err := readline.New("tagstyle> ")
	if err != nil {
		logger.Fatal().Err(err).Msg("could not start prompt")
	}
	defer rl.Close()

	state := struct {
		strip bool
		depth int
	}{strip: *stripTags, depth: *maxDepth}

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}

		if strings.HasPrefix(line, "/") {
			if quit := replCommand(line, &state.strip, &state.depth, logger); quit {
				return
			}

			var buildErr error

			s, buildErr = styler.New(styler.Options{
				Backend:  backendFlag(),
				MaxDepth: state.depth,
				Strip:    state.strip,
			})
			if buildErr != nil {
				logger.Error().Err(buildErr).Msg("could not rebuild styler")
			}

			continue
		}

		out, err := s.Format(line)
		if err != nil {
			logger.Error().Err(err).Msg("bad format string")
			continue
		}

		fmt.Println(out)
	}
}

func replCommand(line string, strip *bool, depth *int, logger zerolog.Logger) (quit bool) {
	words, err := shlex.Split(strings.TrimPrefix(line, "/"), true)
	if err != nil || len(words) == 0 {
		logger.Error().Msg("unparsable command")
		return false
	}

	switch words[0] {
	case "quit", "q":
		return true
	case "strip":
		if len(words) == 2 && (words[1] == "on" || words[1] == "off") {
			*strip = words[1] == "on"
			return false
		}

		logger.Error().Msg("usage: /strip on|off")
	case "depth":
		if len(words) == 2 {
			if n, err := strconv.Atoi(words[1]); err == nil && n > 0 {
				*depth = n
				return false
			}
		}

		logger.Error().Msg("usage: /depth <n>")
	default:
		logger.Error().Str("command", words[0]).Msg("unknown command")
	}

	return false
}

func backendFlag() styler.Backend {
	if *useTerminfo {
		return styler.BackendTerminfo
	}

	return styler.BackendANSI
}
