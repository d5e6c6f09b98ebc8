package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type LintParams struct {
	Quiet bool `json:"quiet"` // 只通过退出码报告结果
}

var lintParams *LintParams

var lintCmd = &cobra.Command{
	Use:   "lint [FILE]",
	Short: "Report probable mistakes in an INI file",
	Long:  "Report probable mistakes such as unclosed section headers or brackets in keys. Exits non-zero when anything is found.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  lintRun,
}

func init() {
	lintParams = &LintParams{}
	lintCmd.Flags().BoolVarP(&lintParams.Quiet, "quiet", "q", false, "print nothing, only set the exit status")
}

func lintRun(cmd *cobra.Command, args []string) error {
	opts, err := parseOptions()
	if err != nil {
		return err
	}
	opts.DisableWarnings = false

	doc, err := loadDocument(cmd, args, opts)
	if err != nil {
		return err
	}
	defer doc.Close()

	warnings := doc.Warnings()
	if !lintParams.Quiet {
		for _, w := range warnings {
			fmt.Fprintln(cmd.OutOrStdout(), w)
		}
		if err := doc.TruncationError(); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), err)
		}
	}

	if len(warnings) > 0 || doc.Truncated() {
		return fmt.Errorf("%s: %d warning(s)", doc.Name(), len(warnings))
	}
	return nil
}
