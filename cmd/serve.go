package cmd

import (
	"context"

	"github.com/foomo/keel"
	"github.com/foomo/keel/healthz"
	"github.com/foomo/keel/net/http/middleware"
	"github.com/foomo/keel/service"
	"github.com/foomo/profilesite/pkg/handler"
	"github.com/foomo/profilesite/pkg/site"
	"github.com/foomo/profilesite/pkg/watch"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewServeCommand() *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:               "serve <content_dir>",
		Short:             "Build, watch for content changes and serve a preview",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: contentDirArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svr := keel.NewServer(
				keel.WithHTTPPrometheusService(servicePrometheusEnabledFlag(v)),
				keel.WithHTTPHealthzService(serviceHealthzEnabledFlag(v)),
				keel.WithPrometheusMeter(servicePrometheusEnabledFlag(v)),
			)

			l := svr.Logger()

			b := site.New(l.Named("inst.site"), args[0],
				site.WithSortItems(!noSortFlag(v)),
				site.WithOutput(outputFlag(v)),
			)

			// the preview is useless without a first page
			if result := b.Build(cmd.Context(), site.TriggerInitial); !result.Success {
				return errors.Wrap(result.Err, "initial build failed")
			}

			w := watch.New(l.Named("inst.watch"), b, watch.WithDebounce(debounceFlag(v)))

			isLoadedHealthzerFn := healthz.NewHealthzerFn(func(ctx context.Context) error {
				if !b.Loaded() {
					return errors.New("site not built yet")
				}
				return nil
			})
			svr.AddStartupHealthzers(isLoadedHealthzerFn)
			svr.AddReadinessHealthzers(isLoadedHealthzerFn)

			svr.AddClosers(b)

			svr.AddServices(
				service.NewGoRoutine(l.Named("go.watch"), "watch", func(ctx context.Context, l *zap.Logger) error {
					return w.Start(ctx)
				}),
				service.NewHTTP(l.Named("svc.http"), "http", addressFlag(v),
					handler.NewHTTP(l.Named("inst.handler"), b),
					middleware.Logger(),
					middleware.Recover(),
				),
			)

			svr.Run()
			return nil
		},
	}

	flags := cmd.Flags()
	addNoSortFlag(flags, v)
	addOutputFlag(flags, v)
	addAddressFlag(flags, v)
	addDebounceFlag(flags, v)
	addServiceHealthzEnabledFlag(flags, v)
	addServicePrometheusEnabledFlag(flags, v)

	return cmd
}
