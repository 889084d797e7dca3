package svnext

import (
	"fmt"

	"github.com/arthur-debert/svnext/pkg/config"
	"github.com/spf13/cobra"
)

func newGenConfigCmd() *cobra.Command {
	var (
		scmURL    string
		commented bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Aliases: []string{"gen-config"},
		Short:   MsgGenConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Example: `  svnext genconfig > svnext.toml
  svnext genconfig --scm-url https://svn.example.com/repo/trunk`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent(scmURL, commented)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}

	cmd.Flags().StringVar(&scmURL, "scm-url", "", MsgFlagScmURL)
	cmd.Flags().BoolVar(&commented, "commented", false, MsgFlagCommented)

	return cmd
}
