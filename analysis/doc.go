// Package analysis runs the full pipeline over recognition and
// diarization output: alignment, conversation construction, statistics,
// intent annotation, flag generation, and fact-check extraction. Each
// call is one sequential unit of work over request-local data, so a
// single Service instance handles any number of concurrent requests.
package analysis
