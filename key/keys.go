// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 11

// Output Destination - these keys govern where retrieved and muxed artifacts are written.
const (
	OutputDir = "output.dir"
)

// Download History - these keys configure the persistence of completed download records.
const (
	HistorySaveOnDownload = "history.save_on_download"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Multiplexer Invocation - these keys configure the external muxing process contract.
const (
	MuxFFmpegPath = "mux.ffmpeg_path"
	MuxAudioCodec = "mux.audio_codec"
)

// Network Transport - these keys manage the HTTP client used against the media host.
const (
	NetworkTLSSpoof = "network.tls_spoof"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
