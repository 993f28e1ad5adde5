package specreport

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/specreport/pkg/format"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: MsgFormatsShort,
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range format.All() {
				note := MsgFormatNoSummary
				if base, ok := f.SummaryBase(); ok {
					note = fmt.Sprintf("%s (%s.%s)", MsgFormatSummaryNote, base, f.Extension())
				}
				fmt.Printf(MsgFormatLine, f.Name(), f.Extension(), note)
			}
		},
	}
}
