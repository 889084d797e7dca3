package svnext

import (
	"github.com/arthur-debert/svnext/pkg/logging"
	"github.com/spf13/cobra"
)

type updateOptions struct {
	dryRun  bool
	scmURL  string
	target  string
	message string
}

func newUpdateCmd(global *globalOptions) *cobra.Command {
	opts := &updateOptions{}

	cmd := &cobra.Command{
		Use:     "update",
		Aliases: []string{"update-externals"},
		Short:   MsgUpdateShort,
		Long:    MsgUpdateLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.update")

			r, err := global.renderer(cmd)
			if err != nil {
				return err
			}
			a, err := loadApp(global.configFile, opts.overrides(cmd))
			if err != nil {
				return err
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			decls, err := a.cfg.Declarations()
			if err != nil {
				return err
			}

			d, err := a.driver()
			if err != nil {
				return err
			}
			rc := a.runContext(opts.dryRun)
			rc.Declarations = decls

			logger.Info().
				Str("url", rc.ScmURL).
				Int("externals", len(decls)).
				Bool("dryRun", rc.DryRun).
				Msg("Starting update")

			result, err := d.Run(cmd.Context(), rc)
			if err != nil {
				return err
			}
			return r.Result(result, rc.DryRun)
		},
	}

	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, MsgFlagDryRun)
	cmd.Flags().StringVar(&opts.scmURL, "scm-url", "", MsgFlagScmURL)
	cmd.Flags().StringVar(&opts.target, "target", "", MsgFlagTarget)
	cmd.Flags().StringVarP(&opts.message, "message", "m", "", MsgFlagMessage)

	return cmd
}

// overrides returns the config keys set explicitly on the command line
func (o *updateOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	return flagOverrides(cmd, map[string]flagOverride{
		"scm-url": {key: "scm.url", value: o.scmURL},
		"target":  {key: "build.target", value: o.target},
		"message": {key: "svn.commit_message", value: o.message},
	})
}

type flagOverride struct {
	key   string
	value string
}

func flagOverrides(cmd *cobra.Command, flags map[string]flagOverride) map[string]interface{} {
	out := make(map[string]interface{})
	for name, f := range flags {
		if cmd.Flags().Changed(name) {
			out[f.key] = f.value
		}
	}
	return out
}
