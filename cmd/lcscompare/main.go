// Command lcscompare measures the lcskit heuristics against the exact oracle
// on random inputs, or prints the LCS of two strings.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lcskit/lcs"
)

// App is the command tree; run is the default command.
type App struct {
	Globals
	Run  Run  `cmd:"run" default:"1" help:"Compare algorithms on random input pairs"`
	Diff Diff `cmd:"diff" help:"Print the LCS of two strings"`
}

func main() {
	var app App
	ctx := kong.Parse(&app,
		kong.Name("lcscompare"),
		kong.Description("lcscompare - measure LCS heuristics against the exact oracle"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"algorithms": algorithmList(lcs.Algorithms()),
		},
	)
	setupLogging(app.Verbose)
	if err := ctx.Run(&app.Globals); err != nil {
		logrus.Errorf("lcscompare: %v", err)
		os.Exit(1)
	}
}
