// Command ashe is the CLI entry point for the refinement pipeline: a
// single-method driver, a batch driver over a directory tree, and a
// repository-batch driver over a CSV of repositories to clone and batch.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/ashe/config"
	"github.com/dhamidi/ashe/errs"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ashe",
		Short: "Slice, check, and LLM-repair a single method, minimized and spliced back in place",
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newRepoBatchCmd())

	if err := rootCmd.Execute(); err != nil {
		errs.Fatal(err, false)
	}
}

// loadConfig loads the properties file at path, defaulting to
// "ashe.properties" in the current directory when path is empty, exactly
// as the single-method and batch CLIs document an "optional external
// configuration file path" positional argument.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = "ashe.properties"
	}
	return config.Load(path)
}
