package main

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lcskit/lcs"
)

// Globals holds the flags shared by every command.
type Globals struct {
	Verbose bool   `short:"V" help:"Make the operation more talkative"`
	Config  string `short:"c" name:"config" type:"path" help:"TOML file with run defaults"`
}

// setupLogging sends logrus text output to stderr, at debug level when
// verbose.
func setupLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		ForceColors:      isTerminal(os.Stderr.Fd()),
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(logrus.InfoLevel)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func algorithmList(algos []lcs.Algorithm) string {
	names := make([]string, 0, len(algos))
	for _, a := range algos {
		names = append(names, a.String())
	}
	return strings.Join(names, ",")
}
