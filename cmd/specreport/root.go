package specreport

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/specreport/internal/version"
	"github.com/arthur-debert/specreport/pkg/logging"
)

var verbosity int

// NewRootCmd builds the specreport command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "specreport",
		Short: MsgRootShort,
		Long: `specreport turns the results of an executed behavior-driven test run
into a navigable, hierarchical set of report files, in one or more output
formats at once. It consumes the run file the execution engine wrote and
decides where every report artifact lives and what it links to.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newFormatsCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("specreport %s (commit %s, built %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}
