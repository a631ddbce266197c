package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/ngdoctags/cmd/ngdoctags/commands"
	"git.home.luguber.info/inful/ngdoctags/internal/foundation/errors"
	"git.home.luguber.info/inful/ngdoctags/internal/version"
)

func main() {
	cli := &commands.CLI{}
	global := &commands.Global{Out: os.Stdout}

	ctx := kong.Parse(cli,
		kong.Name("ngdoctags"),
		kong.Description("Process AngularJS documentation tags and render type expression links"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	)

	if err := ctx.Run(global, cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
