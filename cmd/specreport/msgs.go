package specreport

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Generate navigable reports from an evaluated spec run"
	MsgGenerateShort  = "Generate report trees for a run file"
	MsgFormatsShort   = "List the supported report formats"
	MsgGenConfigShort = "Output or write the default configuration"
	MsgVersionShort   = "Print version information"

	// Status messages
	MsgNoReports         = "Report generation is disabled (no output directory configured)."
	MsgReportsWritten    = "Reports written to %s\n"
	MsgConfigExists      = "Config file %s already exists, not overwriting\n"
	MsgConfigWritten     = "Written %s\n"
	MsgGenerationFailed  = "Some reports could not be written:"
	MsgFormatLine        = "  %-10s .%-5s %s\n"
	MsgFormatSummaryNote = "summary file"
	MsgFormatNoSummary   = "no summary"
)

// Templates
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
