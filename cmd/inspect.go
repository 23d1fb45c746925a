package cmd

import (
	"github.com/foomo/profilesite/pkg/repo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewInspectCommand() *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:               "inspect <content_dir>",
		Short:             "Print the loaded content tree as json",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: contentDirArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := zap.L().Named("cmd.inspect")

			tree, err := repo.NewLoader(l, repo.WithSortItems(!noSortFlag(v))).Load(args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tree)
		},
	}

	addNoSortFlag(cmd.Flags(), v)

	return cmd
}
