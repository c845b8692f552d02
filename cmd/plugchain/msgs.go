package plugchain

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Resolve plugin ordering for storage pipelines"
	MsgPlanShort       = "Show the resolved read and write order of every kind"
	MsgValidateShort   = "Check that the configured plugins resolve without cycles"
	MsgListShort       = "List the plugins available to sessions"
	MsgListLong        = "List every builtin bundle and group, with the kinds it has hooks for."
	MsgGenConfigShort  = "Print a sample configuration file"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	MsgValidateOK       = "Configuration OK: %d bundles, %d pipelines"
	MsgConfigWritten    = "Wrote sample configuration to %s"
	MsgNoCommand        = "no command specified"
	MsgConfigExists     = "%s already exists; use --force to replace it"
	MsgVersionFormat    = "plugchain version %s\n"
	MsgVersionCommit    = "Commit: %s\n"
	MsgVersionBuilt     = "Built:  %s\n"
	MsgHelpNotAvailable = "help command not found"

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/plugchain/config.toml)"
	MsgFlagFormat  = "Output format: auto, term, text, json or toml"
	MsgFlagEnable  = "Enable these plugins instead of plugins.enabled (repeatable)"
	MsgFlagKind    = "Only show this kind"
	MsgFlagMode    = "Only show this mode (read or write)"
	MsgFlagWrite   = "Write the sample to the user config directory"
	MsgFlagForce   = "Replace an existing config file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/plan-long.txt
	msgPlanLongRaw string
	MsgPlanLong    = strings.TrimSpace(msgPlanLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
