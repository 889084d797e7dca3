package svnext

import (
	"bytes"

	"github.com/arthur-debert/svnext/pkg/errors"
	"github.com/arthur-debert/svnext/pkg/externals"
	"github.com/arthur-debert/svnext/pkg/logging"
	"github.com/arthur-debert/svnext/pkg/reconcile"
	"github.com/spf13/cobra"
)

func newRenderCmd(global *globalOptions) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:     "render",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.render")

			a, err := loadApp(global.configFile, nil)
			if err != nil {
				return err
			}
			decls, err := a.cfg.Declarations()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if from != "" {
				data, err := newFS().ReadFile(from)
				if err != nil {
					return errors.Wrapf(err, errors.ErrInvalidInput, "failed to read %s", from).
						WithDetail("file", from)
				}
				in = bytes.NewReader(data)
			}
			store, err := externals.Parse(in)
			if err != nil {
				return err
			}

			rec, err := a.reconciler()
			if err != nil {
				return err
			}
			report, err := rec.Reconcile(cmd.Context(), store, decls)
			if err != nil {
				return err
			}
			if !report.Changed() {
				logger.Info().Msg("Externals already up to date")
			}
			logger.Info().
				Int("added", report.Count(reconcile.ActionAdded)).
				Int("updated", report.Count(reconcile.ActionUpdated)).
				Msg("Reconciled externals")

			return externals.Render(cmd.OutOrStdout(), store)
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", MsgFlagFrom)

	return cmd
}
