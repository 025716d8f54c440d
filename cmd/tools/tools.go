// Package tools implements the auxiliary isagen commands: instruction documentation, catalogue export
// and the interactive decode table browser
package tools

import (
	"io"

	"github.com/Manu343726/isagen/pkg/config"
	"github.com/spf13/cobra"
)

// Runs fn with the output of the command: stdout, or the file given with --output
func withOutput(cmd *cobra.Command, fn func(w io.Writer) error) error {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		return fn(cmd.OutOrStdout())
	}

	file, err := config.Fs.Create(path)
	if err != nil {
		return err
	}

	if err := fn(file); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
