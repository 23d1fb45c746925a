package cmd

import (
	"github.com/foomo/profilesite/pkg/site"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func NewBuildCommand() *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:               "build <content_dir>",
		Short:             "Build the site once",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: contentDirArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := zap.L().Named("cmd.build")

			b := site.New(l.Named("inst.site"), args[0],
				site.WithSortItems(!noSortFlag(v)),
				site.WithOutput(outputFlag(v)),
			)
			defer func() {
				if err := b.Close(); err != nil {
					l.Warn("failed to close output", zap.Error(err))
				}
			}()

			result := b.Build(cmd.Context(), site.TriggerCommand)
			if statsFlag(v) {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			}
			if !result.Success {
				return result.Err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	addNoSortFlag(flags, v)
	addOutputFlag(flags, v)
	addStatsFlag(flags, v)

	return cmd
}
