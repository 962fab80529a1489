package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/navkeep/navkeep/pkg/navkeep"
	"github.com/navkeep/navkeep/pkg/navkeep/reuse"
	"github.com/navkeep/navkeep/pkg/navkeep/route"
	"github.com/navkeep/navkeep/pkg/navkeep/router"
)

var exampleForReplayCmd = `navkeep replay --file routes.toml /blog/1 /blog/2 /blog/1
`

// NewReplayCmd runs a URL sequence through the router and prints each decision.
func NewReplayCmd() *cobra.Command {
	var file string

	replayCmd := &cobra.Command{
		Use:     "replay URL...",
		Short:   "replay a navigation sequence and show which views are kept",
		Example: exampleForReplayCmd,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := route.LoadTable(file)
			if err != nil {
				return err
			}

			stats, err := replay(cmd.OutOrStdout(), table, args, newViewID)
			if err != nil {
				return err
			}
			navkeep.GetLogger().Info("replay finished", "steps", len(args), "stats", stats.String())
			return nil
		},
	}

	replayCmd.Flags().StringVarP(&file, "file", "f", "routes.toml", "route table file (.toml, .yaml, .yml)")
	return replayCmd
}

// viewInstance is the state every replayed view keeps while detached.
type viewInstance struct {
	id string
}

func newViewID() string {
	return uuid.New().String()[:8]
}

// replay visits urls in order, one view per step, and writes a table of the
// decisions followed by the policy's counters.
func replay(out io.Writer, table *route.Table, urls []string, newID func() string) (reuse.Stats, error) {
	w := tablewriter.NewWriter(out)
	w.SetHeader([]string{"step", "url", "route", "key", "mode", "detached previous", "view"})

	r := router.New(table)

	var last router.Step
	r.OnNavigate(func(s router.Step) { last = s })

	view := func(act *router.Activation) (any, any, error) {
		inst, _ := act.State.(*viewInstance)
		if inst == nil {
			inst = &viewInstance{id: newID()}
		}
		w.Append([]string{
			strconv.Itoa(act.Input.(int) + 1),
			act.Snapshot.URL(),
			act.Snapshot.RouteName(),
			strconv.Quote(reuse.DeriveKey(act.Snapshot)),
			act.Mode.String(),
			strconv.FormatBool(last.Detached),
			inst.id,
		})
		return nil, inst, nil
	}
	for _, cfg := range table.Routes() {
		r.Register(cfg.Name, view)
	}

	step := 0
	r.OnTransition(func(from *route.Snapshot, _ any, stack *router.Stack) (string, any) {
		stack.Push(from.URL(), step)
		step++
		if step >= len(urls) {
			return router.Exit, nil
		}
		return urls[step], step
	})

	if err := r.Run(urls[0], 0); err != nil {
		return reuse.Stats{}, err
	}
	w.Render()

	stats := r.Policy().Stats()
	fmt.Fprintln(out, stats.String())
	return stats, nil
}
