package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"git.home.luguber.info/inful/ngdoctags/internal/metrics"
	"git.home.luguber.info/inful/ngdoctags/internal/typeexpr"
)

// TagsCmd implements the 'tags' command.
type TagsCmd struct {
	Builtins bool `help:"Also list the built-in type names, which are never linked"`
}

func (t *TagsCmd) Run(g *Global) error {
	cfg, err := g.Config()
	if err != nil {
		return err
	}
	dict, err := setup(cfg, metrics.NoopRecorder{})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(g.Out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "TAG\tSYNONYMS")
	for _, title := range dict.Titles() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", title, strings.Join(dict.SynonymsOf(title), ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if t.Builtins {
		_, _ = fmt.Fprintf(g.Out, "\nBUILTIN TYPES\n%s\n", strings.Join(typeexpr.Builtins(), " "))
	}
	return nil
}
