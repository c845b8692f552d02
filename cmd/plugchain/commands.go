package plugchain

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/plugchain/internal/version"
	"github.com/arthur-debert/plugchain/pkg/config"
	"github.com/arthur-debert/plugchain/pkg/errors"
	"github.com/arthur-debert/plugchain/pkg/manager"
	"github.com/arthur-debert/plugchain/pkg/output"
	"github.com/arthur-debert/plugchain/pkg/session"
	"github.com/arthur-debert/plugchain/pkg/types"
	"github.com/arthur-debert/plugchain/pkg/ui"
)

// openSession loads configuration and opens a session over the catalog.
// enable replaces plugins.enabled when non-empty.
func (g *globals) openSession(enable []string) (*session.Session, *config.Config, error) {
	overrides := map[string]interface{}{}
	if len(enable) > 0 {
		overrides["plugins.enabled"] = enable
	}

	cfg, err := g.loadConfig(overrides)
	if err != nil {
		return nil, nil, err
	}

	s, err := session.Open(cfg, g.catalog())
	if err != nil {
		return nil, cfg, err
	}
	return s, cfg, nil
}

// reportError hands err back to cobra. Structured formats also get the
// error encoded on cmd's output, with its code and details.
func (g *globals) reportError(cmd *cobra.Command, cfg *config.Config, err error) error {
	r, rerr := g.renderer(cmd, cfg)
	if rerr != nil {
		return err
	}
	if f := r.Format(); f != ui.FormatJSON && f != ui.FormatTOML {
		return err
	}
	if rerr := r.RenderError(err); rerr != nil {
		log.Debug().Err(rerr).Msg("Failed to render error")
	}
	return err
}

func newPlanCmd(g *globals) *cobra.Command {
	var (
		enable []string
		kind   string
		mode   string
	)

	cmd := &cobra.Command{
		Use:     "plan",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := g.openSession(enable)
			if err != nil {
				return g.reportError(cmd, cfg, err)
			}

			plan, err := filterPlan(s.Plan(), kind, mode)
			if err != nil {
				return err
			}

			r, err := g.renderer(cmd, cfg)
			if err != nil {
				return err
			}
			return r.RenderPlan(plan)
		},
	}

	cmd.Flags().StringSliceVarP(&enable, "enable", "e", nil, MsgFlagEnable)
	cmd.Flags().StringVarP(&kind, "kind", "k", "", MsgFlagKind)
	cmd.Flags().StringVarP(&mode, "mode", "m", "", MsgFlagMode)

	_ = cmd.RegisterFlagCompletionFunc("kind", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(types.AllKinds))
		for _, k := range types.AllKinds {
			names = append(names, string(k))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(types.ModeRead), string(types.ModeWrite)}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("enable", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return g.catalog().List(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// filterPlan keeps the pipelines matching kind and mode. Empty filters match
// everything.
func filterPlan(p manager.Plan, kind, mode string) (manager.Plan, error) {
	if kind == "" && mode == "" {
		return p, nil
	}

	var (
		k types.Kind
		m types.Mode
	)
	if kind != "" {
		parsed, err := types.ParseKind(kind)
		if err != nil {
			return p, err
		}
		k = parsed
	}
	if mode != "" {
		parsed, err := types.ParseMode(mode)
		if err != nil {
			return p, err
		}
		m = parsed
	}

	out := manager.Plan{Bundles: p.Bundles, Pipelines: []manager.Pipeline{}}
	for _, pl := range p.Pipelines {
		if k != "" && pl.Kind != k {
			continue
		}
		if m != "" && pl.Mode != m {
			continue
		}
		out.Pipelines = append(out.Pipelines, pl)
	}
	return out, nil
}

func newValidateCmd(g *globals) *cobra.Command {
	var enable []string

	cmd := &cobra.Command{
		Use:     "validate",
		Short:   MsgValidateShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := g.openSession(enable)
			if err != nil {
				return g.reportError(cmd, cfg, err)
			}

			plan := s.Plan()
			r, err := g.renderer(cmd, cfg)
			if err != nil {
				return err
			}
			return r.RenderMessage("Success", fmt.Sprintf(MsgValidateOK, len(plan.Bundles), len(plan.Pipelines)))
		},
	}

	cmd.Flags().StringSliceVarP(&enable, "enable", "e", nil, MsgFlagEnable)
	return cmd
}

func newListCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := g.catalog()
			entries := make([]output.CatalogEntry, 0, catalog.Count())
			for _, name := range catalog.List() {
				p, err := catalog.Get(name)
				if err != nil {
					return err
				}
				entries = append(entries, output.NewCatalogEntry(name, p))
			}

			r, err := g.renderer(cmd, nil)
			if err != nil {
				return err
			}
			return r.RenderCatalog(entries)
		},
	}
}

func newGenConfigCmd(g *globals) *cobra.Command {
	var (
		write bool
		force bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}

			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			target := filepath.Join(config.UserConfigDir(), "config.toml")
			if _, err := os.Stat(target); err == nil && !force {
				return errors.Newf(errors.ErrAlreadyExists, MsgConfigExists, target).
					WithDetail("path", target)
			}
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to create %s", filepath.Dir(target))
			}
			if err := os.WriteFile(target, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", target)
			}
			log.Info().Str("path", target).Msg("Config written")

			r, err := g.renderer(cmd, nil)
			if err != nil {
				return err
			}
			return r.RenderMessage("Success", fmt.Sprintf(MsgConfigWritten, target))
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newTopicsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if g.topics == nil {
				return errors.New(errors.ErrNotFound, MsgHelpNotAvailable)
			}
			g.topics.WriteIndex(cmd.OutOrStdout(), cmd.Root().Name())
			return nil
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
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "unknown" {
				fmt.Fprintf(out, MsgVersionCommit, version.Commit)
			}
			if version.Date != "unknown" {
				fmt.Fprintf(out, MsgVersionBuilt, version.Date)
			}
		},
	}
}
