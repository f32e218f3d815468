package kiln

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/kiln/internal/version"
	"github.com/arthur-debert/kiln/pkg/cobrax/topics"
	"github.com/arthur-debert/kiln/pkg/commands"
	"github.com/arthur-debert/kiln/pkg/config"
	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/logging"
	"github.com/arthur-debert/kiln/pkg/output"
	"github.com/arthur-debert/kiln/pkg/types"
	"github.com/arthur-debert/kiln/pkg/ui"
	"github.com/arthur-debert/kiln/pkg/vcs"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Deps replaces the capabilities the commands use. Zero values select the
// real filesystem, the real VCS tools and a fresh configuration snapshot.
type Deps struct {
	FS      types.FS
	Backend vcs.Backend
	Ambient *types.Ambient
}

// globalFlags are the persistent flags of the root command
type globalFlags struct {
	verbosity int
	dryRun    bool
	format    string
}

func (g *globalFlags) outputFormat() (ui.Format, error) {
	format, err := ui.ParseFormat(g.format)
	if err != nil {
		return format, fmt.Errorf(MsgErrInvalidFormat, err)
	}
	return format, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(Deps{})
}

// NewRootCmdWithDeps creates the root command with the given capabilities
func NewRootCmdWithDeps(deps Deps) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	globals := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "kiln",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// an invalid --format is reported by the command itself
			format, _ := ui.ParseFormat(globals.format)
			logging.Setup(logging.Options{
				Verbosity: globals.verbosity,
				Console:   cmd.ErrOrStderr(),
				NoColor:   ui.NoColor(format, cmd.ErrOrStderr()),
			})
			if err := output.LoadUserStyles(); err != nil {
				log.Warn().Err(err).Str("path", output.UserStylesFile()).Msg("Ignoring user styles")
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but report incorrect usage
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&globals.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&globals.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&globals.format, "format", "auto", MsgFlagFormat)

	// Disable automatic help command (the topics package installs its own)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newNewCmd(globals, deps))
	rootCmd.AddCommand(newInitCmd(globals, deps))
	rootCmd.AddCommand(newConfigCmd(deps))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(ui.NoColor(ui.FormatAuto, rootCmd.OutOrStdout())),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, topicsFS(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// projectFlags are the flags shared by new and init
type projectFlags struct {
	bin  bool
	lib  bool
	vcs  string
	name string
}

func (f *projectFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.bin, "bin", false, MsgFlagBin)
	cmd.Flags().BoolVar(&f.lib, "lib", false, MsgFlagLib)
	cmd.MarkFlagsMutuallyExclusive("bin", "lib")
	cmd.Flags().StringVar(&f.vcs, "vcs", "", MsgFlagVcs)
	cmd.Flags().StringVar(&f.name, "name", "", MsgFlagName)

	_ = cmd.RegisterFlagCompletionFunc("vcs", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"git", "hg", "none"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// options turns the flags into pipeline options for path
func (f *projectFlags) options(path string, globals *globalFlags, deps Deps) (commands.NewProjectOptions, error) {
	opts := commands.NewProjectOptions{
		Path:    path,
		Name:    f.name,
		DryRun:  globals.dryRun,
		FS:      deps.FS,
		Backend: deps.Backend,
		Ambient: deps.Ambient,
	}

	switch {
	case f.bin:
		kind := types.Binary
		opts.Kind = &kind
	case f.lib:
		kind := types.Library
		opts.Kind = &kind
	}

	if f.vcs != "" {
		choice, err := types.ParseVersionControl(f.vcs)
		if err != nil {
			return opts, errors.Wrapf(err, errors.ErrInvalidInput, MsgErrInvalidVcs, f.vcs).
				WithDetail("value", f.vcs)
		}
		opts.VCS = &choice
	}
	return opts, nil
}

func newNewCmd(globals *globalFlags, deps Deps) *cobra.Command {
	flags := &projectFlags{}

	cmd := &cobra.Command{
		Use:     "new <path>",
		Short:   MsgNewShort,
		Long:    MsgNewLong,
		Args:    cobra.ExactArgs(1),
		Example: MsgNewExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := globals.outputFormat()
			if err != nil {
				return err
			}
			opts, err := flags.options(args[0], globals, deps)
			if err != nil {
				return err
			}
			opts.Notify = noticePrinter(cmd, format)

			log.Info().Str("path", opts.Path).Bool("dryRun", opts.DryRun).Msg("Creating new package")

			result, err := commands.NewProject(opts)
			if err != nil {
				return err
			}
			return report(cmd, format, result)
		},
	}
	flags.register(cmd)

	return cmd
}

func newInitCmd(globals *globalFlags, deps Deps) *cobra.Command {
	flags := &projectFlags{}

	cmd := &cobra.Command{
		Use:     "init [path]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Args:    cobra.MaximumNArgs(1),
		Example: MsgInitExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			format, err := globals.outputFormat()
			if err != nil {
				return err
			}
			opts, err := flags.options(path, globals, deps)
			if err != nil {
				return err
			}
			opts.Notify = noticePrinter(cmd, format)

			log.Info().Str("path", opts.Path).Bool("dryRun", opts.DryRun).Msg("Initializing package")

			result, err := commands.InitProject(opts)
			if err != nil {
				return err
			}
			return report(cmd, format, result)
		},
	}
	flags.register(cmd)

	return cmd
}

// noticePrinter writes each notice to stderr as soon as the planner
// produces it
func noticePrinter(cmd *cobra.Command, format ui.Format) func(string) {
	stderr := output.NewRenderer(cmd.ErrOrStderr(), ui.NoColor(format, cmd.ErrOrStderr()))
	return func(notice string) {
		if err := stderr.RenderNotices([]string{notice}); err != nil {
			log.Warn().Err(err).Msg("Failed to print notice")
		}
	}
}

// report prints the preview of a dry run on stdout. A successful write
// prints nothing.
func report(cmd *cobra.Command, format ui.Format, result *types.ProjectResult) error {
	if !result.DryRun {
		return nil
	}
	stdout := output.NewRenderer(cmd.OutOrStdout(), ui.NoColor(format, cmd.OutOrStdout()))
	return stdout.RenderPreview(result)
}

func newConfigCmd(deps Deps) *cobra.Command {
	var showSources, showTemplate bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showTemplate {
				_, err := io.WriteString(out, config.DefaultConfigContent())
				return err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
			}

			if showSources {
				for _, path := range config.Sources(cwd) {
					state := MsgConfigSourceMissing
					if info, err := os.Stat(path); err == nil && !info.IsDir() {
						state = MsgConfigSourceFound
					}
					_, _ = fmt.Fprintf(out, MsgConfigSourceFormat, path, state)
				}
				return nil
			}

			var prefs types.GlobalPreferences
			if deps.Ambient != nil {
				prefs = deps.Ambient.Preferences
			} else if prefs, err = config.Load(cwd); err != nil {
				return err
			}
			data, err := config.Encode(prefs)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&showSources, "sources", false, MsgFlagConfigSources)
	cmd.Flags().BoolVar(&showTemplate, "template", false, MsgFlagConfigTemplate)
	cmd.MarkFlagsMutuallyExclusive("sources", "template")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
