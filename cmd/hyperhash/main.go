package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// backendEnv supplies the default for every --backend flag.
const backendEnv = "HYPERHASH_BACKEND"

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hyperhash",
		Short: "Hardware-accelerated SHA-1 hashing",
		Long: `Hyperhash computes SHA-1 digests with a streaming engine that picks the
fastest compression backend the CPU supports at runtime.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var checkHardware bool
	rootCmd.Flags().BoolVar(&checkHardware, "check-hardware", false, "Check hardware acceleration support")

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if checkHardware {
			checkHardwareSupport(cmd.OutOrStdout())
			return nil
		}
		return cmd.Help()
	}

	rootCmd.AddCommand(
		newSumCommand(),
		newHashObjectCommand(),
		newBenchmarkCommand(),
	)
	return rootCmd
}

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

// defaultBackend returns the backend name configured in the environment.
func defaultBackend() string {
	if name := os.Getenv(backendEnv); name != "" {
		return name
	}
	return "auto"
}
