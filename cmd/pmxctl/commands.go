package main

import (
	"github.com/spf13/cobra"
)

// idFlag registers a required --id flag.
func idFlag(cmd *cobra.Command, id *uint32, what string) {
	cmd.Flags().Uint32Var(id, "id", 0, what+" id")
	_ = cmd.MarkFlagRequired("id")
}

func addInputCommands(root *cobra.Command, a *app) {
	root.AddCommand(&cobra.Command{
		Use:   "list-inputs",
		Short: "List all inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ins, err := a.client().ListInputs(cmd.Context())
			if err != nil {
				return err
			}
			a.print(ins)
			return nil
		},
	})

	{
		var id uint32
		cmd := &cobra.Command{
			Use:   "get-input",
			Short: "Show one input",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				in, err := a.client().GetInput(cmd.Context(), id)
				if err != nil {
					return err
				}
				a.print(in)
				return nil
			},
		}
		idFlag(cmd, &id, "input")
		root.AddCommand(cmd)
	}

	{
		var (
			id   uint32
			name string
		)
		cmd := &cobra.Command{
			Use:   "update-input-name",
			Short: "Rename an input",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				in, err := a.client().UpdateInputName(cmd.Context(), id, name)
				if err != nil {
					return err
				}
				a.print(in)
				return nil
			},
		}
		idFlag(cmd, &id, "input")
		cmd.Flags().StringVar(&name, "name", "", "new name")
		_ = cmd.MarkFlagRequired("name")
		root.AddCommand(cmd)
	}

	{
		var (
			id   uint32
			path string
		)
		cmd := &cobra.Command{
			Use:   "assign-mono-port",
			Short: "Bind an input to one port",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				in, err := a.client().AssignMonoPort(cmd.Context(), id, path)
				if err != nil {
					return err
				}
				a.print(in)
				return nil
			},
		}
		idFlag(cmd, &id, "input")
		cmd.Flags().StringVar(&path, "path", "", "port path")
		_ = cmd.MarkFlagRequired("path")
		root.AddCommand(cmd)
	}

	{
		var (
			id          uint32
			left, right string
		)
		cmd := &cobra.Command{
			Use:   "assign-stereo-port",
			Short: "Bind an input to a left/right port pair",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				in, err := a.client().AssignStereoPort(cmd.Context(), id, left, right)
				if err != nil {
					return err
				}
				a.print(in)
				return nil
			},
		}
		idFlag(cmd, &id, "input")
		cmd.Flags().StringVar(&left, "left-path", "", "left port path")
		cmd.Flags().StringVar(&right, "right-path", "", "right port path")
		_ = cmd.MarkFlagRequired("left-path")
		_ = cmd.MarkFlagRequired("right-path")
		root.AddCommand(cmd)
	}

	{
		var id uint32
		cmd := &cobra.Command{
			Use:   "remove-port",
			Short: "Unbind an input",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				in, err := a.client().RemovePort(cmd.Context(), id)
				if err != nil {
					return err
				}
				a.print(in)
				return nil
			},
		}
		idFlag(cmd, &id, "input")
		root.AddCommand(cmd)
	}
}

func addOutputCommands(root *cobra.Command, a *app) {
	root.AddCommand(&cobra.Command{
		Use:   "list-outputs",
		Short: "List all outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outs, err := a.client().ListOutputs(cmd.Context())
			if err != nil {
				return err
			}
			a.print(outs)
			return nil
		},
	})

	var (
		id          uint32
		left, right string
	)
	cmd := &cobra.Command{
		Use:   "assign-output-port",
		Short: "Bind an output; no paths unbinds, one binds mono, two bind stereo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var l, r *string
			if cmd.Flags().Changed("left-path") {
				l = &left
			}
			if cmd.Flags().Changed("right-path") {
				r = &right
			}
			out, err := a.client().AssignOutputPort(cmd.Context(), id, l, r)
			if err != nil {
				return err
			}
			a.print(out)
			return nil
		},
	}
	idFlag(cmd, &id, "output")
	cmd.Flags().StringVar(&left, "left-path", "", "left port path")
	cmd.Flags().StringVar(&right, "right-path", "", "right port path")
	root.AddCommand(cmd)
}

func addRegistrationCommands(root *cobra.Command, a *app) {
	root.AddCommand(
		&cobra.Command{
			Use:   "list-plugins",
			Short: "List registered plugins",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ps, err := a.client().ListPlugins(cmd.Context())
				if err != nil {
					return err
				}
				a.print(ps)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list-channel-strips",
			Short: "List registered channel strips",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				css, err := a.client().ListChannelStrips(cmd.Context())
				if err != nil {
					return err
				}
				a.print(css)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list-loopers",
			Short: "List registered loopers",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ls, err := a.client().ListLoopers(cmd.Context())
				if err != nil {
					return err
				}
				a.print(ls)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list-output-stages",
			Short: "List registered output stages",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				sts, err := a.client().ListOutputStages(cmd.Context())
				if err != nil {
					return err
				}
				a.print(sts)
				return nil
			},
		},
	)

	{
		var id uint32
		cmd := &cobra.Command{
			Use:   "get-output-stage",
			Short: "Show one output stage",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				st, err := a.client().GetOutputStage(cmd.Context(), id)
				if err != nil {
					return err
				}
				a.print(st)
				return nil
			},
		}
		idFlag(cmd, &id, "output stage")
		root.AddCommand(cmd)
	}
}
