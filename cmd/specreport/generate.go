package specreport

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/specreport/pkg/config"
	"github.com/arthur-debert/specreport/pkg/filesystem"
	"github.com/arthur-debert/specreport/pkg/format"
	"github.com/arthur-debert/specreport/pkg/generator"
	"github.com/arthur-debert/specreport/pkg/logging"
	"github.com/arthur-debert/specreport/pkg/renderers"
	"github.com/arthur-debert/specreport/pkg/runfile"
	"github.com/arthur-debert/specreport/pkg/style"
	"github.com/arthur-debert/specreport/pkg/types"
)

type generateOptions struct {
	runFile string
	output  string
	formats []string
	show    bool
}

func newGenerateCmd() *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: MsgGenerateShort,
		Long: `Generate reads the evaluated-run file produced by the execution engine
and writes one report tree per requested format. A pre-existing report
directory is rotated aside under a timestamped name, never overwritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.runFile, "run-file", "r", "run.json", "Evaluated-run file (.json, .yaml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Report output directory (overrides config)")
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", nil, "Report formats to generate (overrides config)")
	cmd.Flags().BoolVar(&opts.show, "show", false, "Render the run summary to the terminal after generating")

	return cmd
}

func runGenerate(opts generateOptions) error {
	logger := logging.GetLogger("commands.generate")

	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if opts.output != "" {
		cfg.OutputRoot = opts.output
	}
	if len(opts.formats) > 0 {
		cfg.Formats = opts.formats
	}

	fs := filesystem.NewOS()
	doc, err := runfile.Load(fs, opts.runFile)
	if err != nil {
		return err
	}
	run := doc.Run
	if run.Title == "" {
		run.Title = cfg.Title
	}

	gens, err := generator.GeneratorsFor(cfg, generator.Deps{FS: fs, Logger: &logger})
	if err != nil {
		return err
	}
	if gens == nil {
		fmt.Println(MsgNoReports)
		fmt.Println(style.RenderSummary(doc.Summary))
		return nil
	}

	report := generator.Generate(gens, run, doc.Units, doc.Summary)

	fmt.Println(style.RenderSummary(doc.Summary))
	fmt.Printf(MsgReportsWritten, cfg.OutputRoot)
	if rendered := style.RenderReport(report); rendered != "" {
		fmt.Println(rendered)
	}

	if opts.show {
		showSummary(run, doc.Summary)
	}

	if report.Failed() {
		fmt.Println(MsgGenerationFailed)
		return report.Errors[0].Err
	}
	return nil
}

// showSummary renders the markdown summary to the terminal through glamour
func showSummary(run types.RunInfo, summary *types.RunSummary) {
	content, err := renderers.For(format.Markdown).RenderSummary(run, summary)
	if err != nil || content == nil {
		return
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Println(string(content))
		return
	}
	rendered, err := renderer.Render(string(content))
	if err != nil {
		fmt.Println(string(content))
		return
	}
	fmt.Print(rendered)
}
