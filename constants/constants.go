package constants

// Per-file processing timeout in seconds. Files exceeding it are
// abandoned and counted as timed out.
const DefaultTimeoutSeconds = 30

// Minimum silence gap (in ticks) worth trimming. ~1 beat at 480 PPQ.
const DefaultMinTrimTicks = 480

// BPM used when neither the filename nor the file itself carries a tempo.
const FallbackBPM = 120

// Confidence assigned to a key parsed from the filename. Analysis results
// are clamped below this so a hint always wins.
const HintConfidence = 0.95
const MaxAnalysisConfidence = 0.94

const LogFilename = "extraction_log.json"

// Resolution assumed when a file uses SMPTE timing instead of metric ticks.
const DefaultTicksPerBeat = 480

const MaxFilenameLen = 200

// Cap on parallel extraction workers.
const MaxWorkers = 4
