package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/ashe/batch"
	"github.com/dhamidi/ashe/llm"
)

// newBatchCmd builds the batch driver CLI: walk a directory and run the
// single-method driver internally for every enumerated public method, per
// SPEC_FULL.md §6's "CLI — batch driver".
func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <directory> <project-root> [model] [config-path]",
		Short: "Refine every public method of every public type found under a directory",
		Args:  cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory := args[0]
			projectRoot := args[1]

			model := llm.ValidModels[0]
			if len(args) >= 3 && args[2] != "" {
				model = args[2]
			}

			configPath := ""
			if len(args) == 4 {
				configPath = args[3]
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			result, err := batch.ProcessDirectory(directory, projectRoot, model, cfg)
			if err != nil {
				return err
			}

			fmt.Printf("cleaned=%d failed=%d files_skipped=%d\n", result.Cleaned, result.Failed, result.FilesSkipped)
			if result.Failed > 0 {
				return fmt.Errorf("%d method(s) failed to refine", result.Failed)
			}
			return nil
		},
	}
	return cmd
}
