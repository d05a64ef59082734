package cli

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var (
	optionsFilePath string
	cpuProfilePath  string
	memProfileDir   string
)

func RootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "lsbsteg",
		Short:        "Hide files in the least significant bits of an image's color channels",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cpuProfilePath != "" {
				if err := StartCPUProfiler(cpuProfilePath); err != nil {
					return err
				}
			}
			if memProfileDir != "" {
				StartMemoryProfiler(memProfileDir)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			StopCPUProfiler()
			StopMemoryProfiler()
		},
	}

	rootCmd.PersistentFlags().StringVar(&optionsFilePath, "options", "", "Options file with defaults for the path and LSB settings. Defaults to $HOME/.lsbsteg.yaml")
	rootCmd.PersistentFlags().StringVar(&cpuProfilePath, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(ImageCommands(), ServeAppCommand())

	return rootCmd
}

func NewSpinner() *spinner.Spinner {
	return spinner.New(spinner.CharSets[4], 100*time.Millisecond)
}
