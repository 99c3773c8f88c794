package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HAMZAJAWED12/voiceiq-AI/diarization"
	"github.com/HAMZAJAWED12/voiceiq-AI/logger"
)

// analyzeCmd runs the pipeline over recognition and diarization JSON
// files from disk, without the model sidecars. Useful for replaying
// captured engine output.
func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the analysis pipeline over recognition and diarization JSON files",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString("config")
			asrPath, _ := cmd.Flags().GetString("asr")
			diarPath, _ := cmd.Flags().GetString("diarization")
			transcript, _ := cmd.Flags().GetString("transcript")

			cfg, err := loadConfig(configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return runAnalyze(cmd, cfg, asrPath, diarPath, transcript)
		},
	}
	cmd.Flags().String("asr", "", "Path to recognition output JSON (required)")
	cmd.Flags().String("diarization", "", "Path to diarization output JSON (required)")
	cmd.Flags().String("transcript", "", "Full transcript text (optional)")
	_ = cmd.MarkFlagRequired("asr")
	_ = cmd.MarkFlagRequired("diarization")
	return cmd
}

func runAnalyze(cmd *cobra.Command, cfg *AppConfig, asrPath, diarPath, transcript string) error {
	logger.Init(cfg.Logging)

	asrRaw, err := readJSON(asrPath)
	if err != nil {
		return fmt.Errorf("read recognition output: %w", err)
	}

	diarData, err := os.ReadFile(diarPath)
	if err != nil {
		return fmt.Errorf("read diarization output: %w", err)
	}
	var diar []diarization.Segment
	if err := json.Unmarshal(diarData, &diar); err != nil {
		return fmt.Errorf("parse diarization output: %w", err)
	}

	result := buildAnalysisService(cfg).AnalyzeRaw(transcript, asrRaw, diar)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	cmd.Println(string(out))
	return nil
}

func readJSON(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}
