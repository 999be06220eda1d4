package cli

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/comalice/protectedx"
	"github.com/comalice/protectedx/builder"
)

func (a *app) inspectCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "inspect LEVEL",
		Short: "Construct an instance of LEVEL and print its guarded state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			obj, err := builder.Instantiate(cfg, args[0], protectedx.WithLogger(a.logger))
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), report(obj, obj.Snapshot(), ""), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")
	return cmd
}

func (a *app) graphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph [LEVEL]",
		Short: "Print the hierarchy as Graphviz DOT, highlighting LEVEL's chain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			var chain []string
			if len(args) == 1 {
				if chain, err = cfg.Chain(args[0]); err != nil {
					return err
				}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), a.vis.ExportDOT(*cfg, chain))
			return err
		},
	}
}

func (a *app) tamperCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "tamper LEVEL",
		Short: "Try to replace or write an instance's guarded state from outside",
		Long: `tamper constructs an instance of LEVEL, then acts as an outsider: it registers
the instance's subscriptions on a fresh pending list, offers a forged state to
each of them, and calls a guarded method with the forged state. The command
fails if the instance's state changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			obj, err := builder.Instantiate(cfg, args[0], protectedx.WithLogger(a.logger))
			if err != nil {
				return err
			}
			before := obj.Snapshot()

			forged := &protectedx.Props{}
			for key := range before {
				forged.Set(key, "forged")
			}
			pending := protectedx.NewPending[protectedx.Props]()
			obj.Register(pending)
			offered := pending.Len()
			pending.Offer(forged)

			assignErr := obj.Assign(forged, "injected", true)

			after := obj.Snapshot()
			a.logger.Info("tamper attempt",
				"level", obj.Level(),
				"offered", offered,
				"assign_error", assignErr,
			)
			if !reflect.DeepEqual(before, after) {
				return fmt.Errorf("guarded state of %s changed from %v to %v", obj.Level(), before, after)
			}

			note := fmt.Sprintf("forged state offered to %d subscriptions; guarded assign: %v; state unchanged", offered, assignErr)
			return a.write(cmd.OutOrStdout(), report(obj, after, note), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")
	return cmd
}

func (a *app) peekCmd() *cobra.Command {
	var (
		as     string
		output string
	)
	cmd := &cobra.Command{
		Use:   "peek CALLER TARGET",
		Short: "Read a TARGET instance's guarded state from a CALLER instance",
		Long: `peek constructs one instance of CALLER and one of TARGET, both recorded in a
shared index, and looks up TARGET's guarded state on behalf of CALLER acting
as level --as (default: CALLER itself). The lookup fails unless both
instances declare that level.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			ix := protectedx.NewIndex[protectedx.Props]()
			opts := []protectedx.Option{protectedx.WithIndex(ix), protectedx.WithLogger(a.logger)}

			caller, err := builder.Instantiate(cfg, args[0], opts...)
			if err != nil {
				return err
			}
			target, err := builder.Instantiate(cfg, args[1], opts...)
			if err != nil {
				return err
			}
			if as == "" {
				as = caller.Level()
			}

			state, err := caller.Peek(ix, as, target)
			if err != nil {
				return fmt.Errorf("peek %s as %s: %w", target.Level(), as, err)
			}
			note := fmt.Sprintf("read by %s as %s", caller.Level(), as)
			return a.write(cmd.OutOrStdout(), report(target, state, note), output)
		},
	}
	cmd.Flags().StringVar(&as, "as", "", "level the caller acts as")
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")
	return cmd
}
