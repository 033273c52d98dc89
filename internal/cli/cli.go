// Package cli assembles the bsteg command tree and the orchestration that
// moves payloads between files and bitmap carriers.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() error {
	var cpuProfile, memProfileDir string
	var cpuProfileFile *os.File

	rootCmd := &cobra.Command{
		Use:          "bsteg",
		Short:        "Hide byte streams inside the color channels of uncompressed bitmaps",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cpuProfile != "" {
				profileFile, err := os.Create(cpuProfile)
				if err != nil {
					return err
				}
				cpuProfileFile = profileFile
				StartCPUProfiler(cpuProfileFile)
			}
			if memProfileDir != "" {
				StartMemoryProfiler(memProfileDir)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cpuProfileFile != nil {
				StopCPUProfiler()
				cpuProfileFile.Close()
			}
			if memProfileDir != "" {
				StopMemoryProfiler()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(BitmapCommands(), ServeAppCommand())
	return rootCmd.Execute()
}
