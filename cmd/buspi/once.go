package main

import (
	"fmt"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/buspi"
	"github.com/theoremus-urban-solutions/buspi/message"
	"github.com/theoremus-urban-solutions/buspi/scheduler"
)

type onceOptions struct {
	fromFile string
}

func newOnceCmd(root *rootOptions) *cobra.Command {
	opts := &onceOptions{}
	cmd := &cobra.Command{
		Use:   "once",
		Short: "Run a single fetch and render cycle and print the arrivals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return once(cmd, root, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.fromFile, "from-file", "f", "", "Replay a saved feed body instead of calling the endpoint")
	return cmd
}

func once(cmd *cobra.Command, root *rootOptions, opts *onceOptions) error {
	env, err := setup(root, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Sync() }()

	s, err := env.scheduler(newFetcher(opts.fromFile, buspi.NewFetcher(env.cfg.Feed)))
	if err != nil {
		env.logger.Error("failed to build scheduler", zap.Error(err))
		return err
	}

	out, err := s.Cycle(cmd.Context())
	if err != nil {
		return err
	}
	printOutcome(cmd, out)
	return nil
}

func printOutcome(cmd *cobra.Command, out scheduler.Outcome) {
	w := cmd.OutOrStdout()
	switch {
	case out.AfterHours:
		fmt.Fprintln(w, "after hours, feed not polled")
	case out.Err != nil:
		fmt.Fprintf(w, "fetch failed: %v\n", out.Err)
	case out.Result.Err != nil:
		fmt.Fprintf(w, "%s: %v\n", out.Result.Kind, out.Result.Err)
	case len(out.Result.Arrivals) == 0:
		fmt.Fprintf(w, "%s\n", out.Result.Kind)
	default:
		tbl := table.New("Line", "Destination", "Aimed", "Shown").WithWriter(w)
		for _, a := range out.Result.Arrivals {
			tbl.AddRow(a.Line, a.Destination, a.Raw, message.Text(a.Bucket))
		}
		tbl.Print()
	}
	fmt.Fprintf(w, "message: %q\n", out.Message.Lines)
}
