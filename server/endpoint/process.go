package endpoint

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/HAMZAJAWED12/voiceiq-AI/alignment"
	"github.com/HAMZAJAWED12/voiceiq-AI/analysis"
	"github.com/HAMZAJAWED12/voiceiq-AI/diarization"
	"github.com/HAMZAJAWED12/voiceiq-AI/errors"
	"github.com/HAMZAJAWED12/voiceiq-AI/logger"
	"github.com/HAMZAJAWED12/voiceiq-AI/server"
	"github.com/HAMZAJAWED12/voiceiq-AI/server/middleware"
	"github.com/HAMZAJAWED12/voiceiq-AI/transcription"
	"github.com/HAMZAJAWED12/voiceiq-AI/util"
	"github.com/HAMZAJAWED12/voiceiq-AI/validation"
)

// DefaultAllowedExtensions lists the audio formats accepted for upload.
var DefaultAllowedExtensions = []string{".mp3", ".wav", ".m4a", ".flac"}

// ProcessConfig tunes the upload endpoint.
type ProcessConfig struct {
	AllowedExtensions []string `yaml:"allowed_extensions" mapstructure:"allowed_extensions"`
	MaxUploadSize     string   `yaml:"max_upload_size" mapstructure:"max_upload_size"`
}

// ApplyDefaults sets default values for unset fields.
func (c *ProcessConfig) ApplyDefaults() {
	if len(c.AllowedExtensions) == 0 {
		c.AllowedExtensions = DefaultAllowedExtensions
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "50MB"
	}
}

// ASRMeta describes the recognition pass that produced the transcript.
type ASRMeta struct {
	Model    string                  `json:"model,omitempty"`
	Language string                  `json:"language,omitempty"`
	Duration float64                 `json:"duration,omitempty"`
	Segments []transcription.Segment `json:"segments"`
}

// ProcessAudioResponse is the full analysis payload for one upload.
// Segments carries the raw diarization output before alignment.
type ProcessAudioResponse struct {
	RequestID string                `json:"request_id"`
	ASRMeta   ASRMeta               `json:"asr_meta"`
	Segments  []diarization.Segment `json:"segments"`
	*analysis.Result
}

// ProcessHandler runs the analysis pipeline over an uploaded audio file.
type ProcessHandler struct {
	transcriber transcription.Provider
	diarizer    diarization.Provider
	svc         *analysis.Service
	cfg         ProcessConfig
	log         *logger.Logger
}

// NewProcessHandler creates the upload handler.
func NewProcessHandler(t transcription.Provider, d diarization.Provider, svc *analysis.Service, cfg ProcessConfig) *ProcessHandler {
	cfg.ApplyDefaults()
	return &ProcessHandler{
		transcriber: t,
		diarizer:    d,
		svc:         svc,
		cfg:         cfg,
		log:         logger.WithComponent("process"),
	}
}

// Handle is the POST /v1/process-audio handler.
func (h *ProcessHandler) Handle(c *gin.Context) {
	requestID := middleware.GetRequestID(c)
	log := h.log.WithFields(logger.Fields(logger.FieldRequestID, requestID))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		server.RespondWithError(c, errors.MissingField("file"))
		return
	}

	v := validation.New().
		Required("file", fileHeader.Filename).
		AllowedExtension("file", fileHeader.Filename, h.cfg.AllowedExtensions).
		MaxBytes("file", fileHeader.Size, util.ParseSize(h.cfg.MaxUploadSize, 0))
	if appErr := v.Validate(); appErr != nil {
		server.RespondWithError(c, appErr)
		return
	}

	log.Info("processing upload", logger.Fields(
		"filename", fileHeader.Filename,
		"size_bytes", fileHeader.Size,
	))

	tmpDir, err := os.MkdirTemp("", "voiceiq-*")
	if err != nil {
		server.RespondWithError(c, errors.Internal(err))
		return
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			log.Warn("temp cleanup failed", logger.Fields("error", rmErr.Error()))
		}
	}()

	audioPath := filepath.Join(tmpDir, filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, audioPath); err != nil {
		server.RespondWithError(c, errors.Internal(err))
		return
	}

	ctx := c.Request.Context()

	asr, err := h.transcriber.Transcribe(ctx, transcription.TranscriptionRequest{AudioPath: audioPath})
	if err != nil {
		server.RespondWithError(c, errors.ExternalService(h.transcriber.Name(), err))
		return
	}

	diar, err := h.diarizer.Diarize(ctx, diarization.DiarizationRequest{AudioPath: audioPath})
	if err != nil {
		server.RespondWithError(c, errors.ExternalService(h.diarizer.Name(), err))
		return
	}

	result := h.svc.Analyze(asr.Text, alignment.FromResponse(asr), diar.Segments)

	server.RespondOK(c, ProcessAudioResponse{
		RequestID: requestID,
		ASRMeta: ASRMeta{
			Model:    asr.Model,
			Language: asr.Language,
			Duration: asr.Duration,
			Segments: asr.Segments,
		},
		Segments: diar.Segments,
		Result:   result,
	})
}
