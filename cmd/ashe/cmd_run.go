package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/ashe/llm"
	"github.com/dhamidi/ashe/refine"
)

// newRunCmd builds the single-method driver CLI: project root, target
// file, canonical method reference, optional model, optional config
// path, per SPEC_FULL.md §6's "CLI — single-method driver".
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <project-root> <target-file> <method-reference> [model] [config-path]",
		Short: "Refine a single method until it type-checks clean, then splice it back in place",
		Args:  cobra.RangeArgs(3, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectRoot := args[0]
			targetFile := args[1]
			reference := args[2]

			model := llm.ValidModels[0]
			if len(args) >= 4 && args[3] != "" {
				model = args[3]
			}

			configPath := ""
			if len(args) == 5 {
				configPath = args[4]
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			client, err := llm.New(model, cfg)
			if err != nil {
				return err
			}

			item := refine.WorkItem{
				ProjectRoot: projectRoot,
				TargetFile:  targetFile,
				Reference:   reference,
			}

			return refine.Run(item, cfg, client)
		},
	}
	return cmd
}
