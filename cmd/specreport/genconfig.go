package specreport

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/specreport/pkg/config"
	"github.com/arthur-debert/specreport/pkg/logging"
)

// projectConfig mirrors the .specreport.toml layout for gen-config output
type projectConfig struct {
	Reports struct {
		Output  string   `toml:"output"`
		Formats []string `toml:"formats"`
	} `toml:"reports"`
	Run struct {
		Title string `toml:"title"`
	} `toml:"run"`
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long: `Outputs the effective configuration as a starting point for a project
.specreport.toml. With --write the file is created in the current
directory; an existing file is never overwritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenConfig(write)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write .specreport.toml instead of printing")

	return cmd
}

func runGenConfig(write bool) error {
	logger := logging.GetLogger("commands.genconfig")

	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	var out projectConfig
	out.Reports.Output = cfg.OutputRoot
	out.Reports.Formats = cfg.Formats
	out.Run.Title = cfg.Title

	content, err := toml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if !write {
		fmt.Print(string(content))
		return nil
	}

	if _, err := os.Stat(config.ConfigFileName); err == nil {
		fmt.Printf(MsgConfigExists, config.ConfigFileName)
		return nil
	}

	if err := os.WriteFile(config.ConfigFileName, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.ConfigFileName, err)
	}

	logger.Info().Str("path", config.ConfigFileName).Msg("Written config file")
	fmt.Printf(MsgConfigWritten, config.ConfigFileName)
	return nil
}
