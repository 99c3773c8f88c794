package main

import (
	"github.com/HAMZAJAWED12/voiceiq-AI/config"
	"github.com/HAMZAJAWED12/voiceiq-AI/diarization/pyannote"
	"github.com/HAMZAJAWED12/voiceiq-AI/logger"
	"github.com/HAMZAJAWED12/voiceiq-AI/server"
	"github.com/HAMZAJAWED12/voiceiq-AI/server/endpoint"
	"github.com/HAMZAJAWED12/voiceiq-AI/transcription/whisper"
)

const serviceName = "voiceiq"

// PipelineConfig tunes the analysis stages.
type PipelineConfig struct {
	// MergeGap is the maximum silence in seconds bridged when merging
	// same-speaker segments. Zero means the built-in default.
	MergeGap float64 `yaml:"merge_gap" mapstructure:"merge_gap"`
	// TurnGap is the equivalent threshold for conversation turns.
	TurnGap float64 `yaml:"turn_gap" mapstructure:"turn_gap"`
}

// AppConfig aggregates all service configuration.
type AppConfig struct {
	Base     config.BaseConfig      `yaml:"base" mapstructure:"base"`
	Logging  logger.Config          `yaml:"logging" mapstructure:"logging"`
	Server   server.Config          `yaml:"server" mapstructure:"server"`
	Whisper  whisper.Config         `yaml:"whisper" mapstructure:"whisper"`
	Pyannote pyannote.Config        `yaml:"pyannote" mapstructure:"pyannote"`
	Pipeline PipelineConfig         `yaml:"pipeline" mapstructure:"pipeline"`
	Upload   endpoint.ProcessConfig `yaml:"upload" mapstructure:"upload"`
}

// loadConfig reads configuration from config.yml, .env, and VOICEIQ_*
// environment overrides, then applies defaults.
func loadConfig(configFile string) (*AppConfig, error) {
	cfg := &AppConfig{}

	var opts []config.LoaderOption
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	if err := config.LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, err
	}

	cfg.Base.ApplyDefaults()
	cfg.Logging.ApplyDefaults()
	cfg.Server.ApplyDefaults()
	cfg.Upload.ApplyDefaults()

	if err := cfg.Base.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Server.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
