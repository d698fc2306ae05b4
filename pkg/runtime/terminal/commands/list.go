package commands

import (
	"fmt"

	"github.com/de-tools/data-reports/pkg/format"
	"github.com/spf13/cobra"
)

var listColumns = []format.Column{
	{Title: "NAME", Width: 20},
	{Title: "DATASET", Width: 12},
	{Title: "DESCRIPTION", Width: 0},
}

type ListCmd struct {
	env *Env
}

func NewListCmd(env *Env) *cobra.Command {
	lc := &ListCmd{env: env}
	return &cobra.Command{
		Use:   "list",
		Short: "List the available reports",
		Args:  cobra.NoArgs,
		RunE:  lc.run,
	}
}

func (lc *ListCmd) run(cmd *cobra.Command, _ []string) error {
	defs := lc.env.Registry.List()
	if len(defs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No reports registered")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), format.Header(listColumns))
	for _, def := range defs {
		fmt.Fprintln(cmd.OutOrStdout(), format.Row(listColumns, []string{def.Name, string(def.Dataset), def.Description}))
	}
	return nil
}
