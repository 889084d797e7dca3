package svnext

import (
	"github.com/arthur-debert/svnext/pkg/errors"
	"github.com/spf13/cobra"
)

func newShowCmd(global *globalOptions) *cobra.Command {
	var scmURL, target string

	cmd := &cobra.Command{
		Use:     "show",
		Short:   MsgShowShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := global.renderer(cmd)
			if err != nil {
				return err
			}
			a, err := loadApp(global.configFile, flagOverrides(cmd, map[string]flagOverride{
				"scm-url": {key: "scm.url", value: scmURL},
				"target":  {key: "build.target", value: target},
			}))
			if err != nil {
				return err
			}
			if a.cfg.Scm.URL == "" {
				return errors.New(errors.ErrConfigInvalid, "scm.url is required")
			}

			d, err := a.driver()
			if err != nil {
				return err
			}
			store, err := d.Show(cmd.Context(), a.runContext(false))
			if err != nil {
				return err
			}
			return r.Entries(store)
		},
	}

	cmd.Flags().StringVar(&scmURL, "scm-url", "", MsgFlagScmURL)
	cmd.Flags().StringVar(&target, "target", "", MsgFlagTarget)

	return cmd
}
