package cmd

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/navkeep/navkeep/pkg/navkeep"
	"github.com/navkeep/navkeep/pkg/navkeep/route"
)

var exampleForRoutesCmd = `navkeep routes --file routes.toml
navkeep routes -f routes.yaml
`

// NewRoutesCmd validates a route table and lists its routes.
func NewRoutesCmd() *cobra.Command {
	var file string

	routesCmd := &cobra.Command{
		Use:     "routes",
		Short:   "validate a route table and list its routes",
		Example: exampleForRoutesCmd,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := route.LoadTable(file)
			if err != nil {
				return err
			}

			w := tablewriter.NewWriter(cmd.OutOrStdout())
			w.SetHeader([]string{"name", "path", "reuse"})
			for _, r := range table.Routes() {
				w.Append([]string{r.Name, "/" + strings.Join(route.SplitPath(r.Path), "/"), strconv.FormatBool(r.Data.Reuse())})
			}
			w.Render()

			navkeep.GetLogger().Info("route table loaded", "file", file, "routes", table.Len())
			return nil
		},
	}

	routesCmd.Flags().StringVarP(&file, "file", "f", "routes.toml", "route table file (.toml, .yaml, .yml)")
	return routesCmd
}
