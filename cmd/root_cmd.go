package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dzjyyds666/iniq/parse/ini"
	"github.com/spf13/cobra"
)

type RootParams struct {
	Options ini.Options // 每个选项对应的布尔开关
	Names   []string    // --option 按名称指定的选项
	Verbose bool        // 输出调试日志
}

var rootParams = &RootParams{}

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

var rootCmd = &cobra.Command{
	Use:               "iniq",
	Short:             "Iniq reads sections, keys and values from INI files.",
	Long:              "Iniq reads sections, keys and values from INI files. Data is read from FILE, or from standard input when FILE is omitted.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Iniq",
	Long:  `All software has versions. This is Iniq's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Iniq v0.1 -- HEAD")
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	opts := &rootParams.Options
	flags.BoolVar(&opts.IgnoreEmptyValues, "ignore-empty-values", false, "drop keys whose value is empty")
	flags.BoolVar(&opts.OverrideDuplicateKeys, "override-duplicate-keys", false, "keep the last of duplicated keys instead of the first")
	flags.BoolVar(&opts.DisableQuotes, "disable-quotes", false, "treat double quotes as value characters")
	flags.BoolVar(&opts.DisableHashComments, "disable-hash-comments", false, "only ';' starts a comment")
	flags.BoolVar(&opts.DisableColonAssignment, "disable-colon-assignment", false, "only '=' assigns a value")
	flags.BoolVar(&opts.DisableCommentAnywhere, "disable-comment-anywhere", false, "comments must start a line")
	flags.BoolVar(&opts.DisableCaseSensitivity, "disable-case-sensitivity", false, "compare section and key names ignoring case")
	flags.BoolVar(&opts.DisableErrors, "disable-errors", false, "do not keep error messages")
	flags.BoolVar(&opts.DisableWarnings, "disable-warnings", false, "skip warning detection")
	flags.StringSliceVarP(&rootParams.Names, "option", "O", nil, "options by name: "+strings.Join(ini.FlagNames(), ", "))
	flags.BoolVarP(&rootParams.Verbose, "verbose", "v", false, "log load details to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(exportCmd)
}

func setupLogger(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if rootParams.Verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// parseOptions merges the boolean flags with the names given to --option.
func parseOptions() (ini.Options, error) {
	named, err := ini.ParseFlags(rootParams.Names...)
	if err != nil {
		return ini.Options{}, err
	}
	return (named | rootParams.Options.Flags()).Options(), nil
}
