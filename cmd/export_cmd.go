package cmd

import (
	"fmt"
	"strings"

	"github.com/dzjyyds666/iniq/pkg"
	"github.com/spf13/cobra"
)

type ExportParams struct {
	Format  string `json:"format"`  // 输出格式
	Section string `json:"section"` // 只导出该 section
}

var exportParams *ExportParams

var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Convert an INI file to TOML, YAML or JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  exportRun,
}

func init() {
	names := make([]string, 0, len(pkg.Formats))
	for _, f := range pkg.Formats {
		names = append(names, string(f))
	}
	exportParams = &ExportParams{}
	exportCmd.Flags().StringVarP(&exportParams.Format, "format", "f", string(pkg.FormatTOML), "output format: "+strings.Join(names, ", "))
	exportCmd.Flags().StringVarP(&exportParams.Section, "section", "s", "", "export only this section")
}

func exportRun(cmd *cobra.Command, args []string) error {
	format, err := pkg.ParseFormat(exportParams.Format)
	if err != nil {
		return err
	}
	opts, err := parseOptions()
	if err != nil {
		return err
	}
	doc, err := loadDocument(cmd, args, opts)
	if err != nil {
		return err
	}
	defer doc.Close()

	printWarnings(cmd, doc)

	sections := doc.Map()
	if exportParams.Section != "" {
		sec, err := doc.FindSection(exportParams.Section)
		if err != nil {
			return err
		}
		sections = map[string]map[string]string{sec.Name: sections[sec.Name]}
	}

	if err := pkg.Encode(cmd.OutOrStdout(), format, sections); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	return nil
}
