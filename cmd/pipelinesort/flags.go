package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func init() {
	cobra.OnInitialize(func() {
		autoBind(rootCmd, "PIPELINESORT")
	})
}

// autoBind fills every flag left unset on the command line from the
// environment. Persistent flags read <PREFIX>_[<CMD>_]GLOBAL_<FLAG>, local
// flags read <PREFIX>_[<CMD>_]CMD_<FLAG>.
func autoBind(root *cobra.Command, prefix string) {
	recurseCommands(root, prefix, nil)
}

func recurseCommands(root *cobra.Command, prefix string, segments []string) {
	var segmentPrefix string
	if len(segments) > 0 {
		segmentPrefix = strings.ToUpper(strings.Join(segments, "_")) + "_"
	}

	bind := func(kind string) func(f *pflag.Flag) {
		return func(f *pflag.Flag) {
			varName := prefix + "_" + segmentPrefix + kind + "_" + envName(f.Name)
			if val := os.Getenv(varName); val != "" {
				f.Usage += " [LOADED FROM ENV]"
				if !f.Changed {
					if err := f.Value.Set(val); err != nil {
						zlog.Warn("ignoring invalid environment value", zap.String("env", varName), zap.Error(err))
					}
				}
			}
		}
	}

	root.PersistentFlags().VisitAll(bind("GLOBAL"))
	root.Flags().VisitAll(bind("CMD"))

	for _, cmd := range root.Commands() {
		recurseCommands(cmd, prefix, append(segments, cmd.Name()))
	}
}

func envName(flagName string) string {
	return strings.Replace(strings.ToUpper(flagName), "-", "_", -1)
}
