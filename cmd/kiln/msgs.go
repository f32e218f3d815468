package kiln

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Scaffold Rust packages"
	MsgNewShort        = "Create a new package at <path>"
	MsgInitShort       = "Create a package in an existing directory"
	MsgConfigShort     = "Show the effective new-project settings"
	MsgConfigLong      = "Print the [cargo-new] settings merged from every configuration file and\nCARGO_NEW_* variable visible from the current directory."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgVersionFormat       = "kiln %s\n"
	MsgConfigSourceFormat  = "%s (%s)\n"
	MsgConfigSourceFound   = "found"
	MsgConfigSourceMissing = "missing"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrInvalidVcs    = "invalid value `%s` for --vcs, expected git, hg or none"
	MsgErrInvalidFormat = "invalid value for --format: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Print the plan and the manifest without writing anything"
	MsgFlagFormat  = "Output styling: auto, term or text"
	MsgFlagBin     = "Use a binary (application) template"
	MsgFlagLib     = "Use a library template [default]"
	MsgFlagVcs     = "Initialize a new repository for the given version control system (git, hg or none)"
	MsgFlagName    = "Set the resulting package name, defaults to the directory name"

	MsgFlagConfigSources  = "List the configuration files in the order they are read"
	MsgFlagConfigTemplate = "Print a commented configuration file template"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/new-long.txt
	msgNewLongRaw string
	MsgNewLong    = strings.TrimSpace(msgNewLongRaw)

	//go:embed msgs/new-example.txt
	msgNewExampleRaw string
	MsgNewExample    = strings.TrimRight(msgNewExampleRaw, "\n")

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
