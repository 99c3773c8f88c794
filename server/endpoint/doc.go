// Package endpoint contains the HTTP route handlers: health and info
// probes plus the audio-processing upload endpoint that drives the full
// analysis pipeline.
package endpoint
