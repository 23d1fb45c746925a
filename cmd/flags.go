package cmd

import (
	"time"

	"github.com/foomo/profilesite/pkg/watch"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func logLevelFlag(v *viper.Viper) string {
	return v.GetString("log.level")
}

func addLogLevelFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-level", "info", "log level")
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindEnv("log.level", "LOG_LEVEL")
}

func logFormatFlag(v *viper.Viper) string {
	return v.GetString("log.format")
}

func addLogFormatFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-format", "console", "log format")
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = v.BindEnv("log.format", "LOG_FORMAT")
}

func noSortFlag(v *viper.Viper) bool {
	return v.GetBool("no_sort")
}

func addNoSortFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("no-sort", false, "Keep items in file order, sections and subsections are ordered regardless")
	_ = v.BindPFlag("no_sort", flags.Lookup("no-sort"))
	_ = v.BindEnv("no_sort", "PROFILESITE_NO_SORT")
}

func outputFlag(v *viper.Viper) string {
	return v.GetString("output")
}

func addOutputFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("output", "", "Output directory or bucket URL, overrides [build] output_dir")
	_ = v.BindPFlag("output", flags.Lookup("output"))
	_ = v.BindEnv("output", "PROFILESITE_OUTPUT")
}

func statsFlag(v *viper.Viper) bool {
	return v.GetBool("stats")
}

func addStatsFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("stats", false, "Print the build result as json")
	_ = v.BindPFlag("stats", flags.Lookup("stats"))
}

func addressFlag(v *viper.Viper) string {
	return v.GetString("address")
}

func addAddressFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("address", ":8080", "Address to bind to (host:port)")
	_ = v.BindPFlag("address", flags.Lookup("address"))
	_ = v.BindEnv("address", "PROFILESITE_ADDRESS")
}

func debounceFlag(v *viper.Viper) time.Duration {
	return v.GetDuration("debounce")
}

func addDebounceFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Duration("debounce", watch.DefaultDebounce, "Quiet period after a content change before rebuilding")
	_ = v.BindPFlag("debounce", flags.Lookup("debounce"))
	_ = v.BindEnv("debounce", "PROFILESITE_DEBOUNCE")
}

func serviceHealthzEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.healthz.enabled")
}

func addServiceHealthzEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-healthz-enabled", false, "Enable healthz service")
	_ = v.BindPFlag("service.healthz.enabled", flags.Lookup("service-healthz-enabled"))
}

func servicePrometheusEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.prometheus.enabled")
}

func addServicePrometheusEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-prometheus-enabled", false, "Enable prometheus service")
	_ = v.BindPFlag("service.prometheus.enabled", flags.Lookup("service-prometheus-enabled"))
}
