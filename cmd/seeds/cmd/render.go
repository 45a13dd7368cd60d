package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-seeds/seeds/pkg/table"
)

var (
	renderFormat string
	renderOutput string
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <definition.yaml>",
	Short: "Render a table definition",
	Long:  `Load a YAML table definition and render it as an ASCII or Markdown table.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "ascii", "output format: ascii or markdown")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write output to file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	def, err := table.LoadFile(args[0])
	if err != nil {
		return err
	}

	var rendered string
	switch renderFormat {
	case "ascii":
		rendered, err = table.RenderASCII(def)
	case "markdown":
		rendered, err = table.RenderMarkdown(def)
	default:
		return fmt.Errorf("unknown format %q: expected ascii or markdown", renderFormat)
	}
	if err != nil {
		return err
	}

	if renderOutput != "" {
		return os.WriteFile(renderOutput, []byte(rendered+"\n"), 0o644)
	}
	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}
