package plugchain

import (
	"embed"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/plugchain/internal/version"
	"github.com/arthur-debert/plugchain/pkg/builtin"
	"github.com/arthur-debert/plugchain/pkg/cobrax/topics"
	"github.com/arthur-debert/plugchain/pkg/config"
	"github.com/arthur-debert/plugchain/pkg/errors"
	"github.com/arthur-debert/plugchain/pkg/logging"
	"github.com/arthur-debert/plugchain/pkg/output"
	"github.com/arthur-debert/plugchain/pkg/plugins"
	"github.com/arthur-debert/plugchain/pkg/registry"
	"github.com/arthur-debert/plugchain/pkg/ui"
)

//go:embed topics/*.md
var topicsFS embed.FS

// globals holds the persistent flags shared by every command
type globals struct {
	verbosity  int
	configPath string
	format     string

	// catalog supplies the providers sessions may enable
	catalog func() registry.Registry[plugins.Provider]
	topics  *topics.TopicManager
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(builtin.Catalog)
}

func newRootCmd(catalog func() registry.Registry[plugins.Provider]) *cobra.Command {
	initTemplateFormatting()

	g := &globals{catalog: catalog}

	rootCmd := &cobra.Command{
		Use:     "plugchain",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&g.format, "format", "f", "", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return config.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "config", Title: "CONFIGURATION:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newPlanCmd(g))
	rootCmd.AddCommand(newValidateCmd(g))
	rootCmd.AddCommand(newListCmd(g))
	rootCmd.AddCommand(newGenConfigCmd(g))
	rootCmd.AddCommand(newTopicsCmd(g))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	sub, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		opts := topics.Options{Extensions: []string{".md"}, Renderer: topics.NewGlamourRenderer()}
		if !stdoutIsTerminal() {
			opts.Renderer = &topics.GlamourRenderer{Style: "notty"}
		}
		tm, err := topics.Initialize(rootCmd, sub, opts)
		if err != nil {
			log.Debug().Err(err).Msg("Help topics unavailable")
		}
		g.topics = tm
	}

	return rootCmd
}

// loadConfig merges configuration with the command-line overrides. A higher
// logging.verbosity from configuration raises the log level set from -v.
func (g *globals) loadConfig(overrides map[string]interface{}) (*config.Config, error) {
	if overrides == nil {
		overrides = map[string]interface{}{}
	}
	if g.format != "" {
		overrides["output.format"] = g.format
	}

	cfg, err := config.Load(config.LoadOptions{Path: g.configPath, Overrides: overrides})
	if err != nil {
		return nil, err
	}
	if cfg.Logging.Verbosity > g.verbosity {
		logging.SetupLogger(cfg.Logging.Verbosity)
	}
	return cfg, nil
}

// renderer builds an output renderer for cmd's stdout. Without a loaded
// configuration only the --format flag is consulted.
func (g *globals) renderer(cmd *cobra.Command, cfg *config.Config) (*output.Renderer, error) {
	name := g.format
	if name == "" && cfg != nil {
		name = cfg.Output.Format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	w := cmd.OutOrStdout()
	if f, ok := w.(*os.File); ok {
		format = ui.Resolve(format, f)
	}
	return output.NewRenderer(w, format)
}
