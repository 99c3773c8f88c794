package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HAMZAJAWED12/voiceiq-AI/version"
)

func main() {
	root := &cobra.Command{
		Use:           "voiceiq",
		Short:         "Speech analysis service: transcription, diarization, and conversation analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	root.PersistentFlags().String("config", "", "Path to config file (default: auto-discover)")

	root.AddCommand(serveCmd())
	root.AddCommand(analyzeCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version.Short())
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
