package config

const (
	defaultStateDir            = "~/.local/share/vidcat"
	defaultExportDir           = "~/vidcat-export"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultIngestWorkers       = 1
	defaultThrottleEvery       = 5
	defaultThrottleMillis      = 50
	defaultProbeTimeoutSeconds = 60
	defaultFFprobeBinary       = "ffprobe"
	defaultFFmpegBinary        = "ffmpeg"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir:  defaultStateDir,
			ExportDir: defaultExportDir,
		},
		Ingest: Ingest{
			Workers:             defaultIngestWorkers,
			ThrottleEvery:       defaultThrottleEvery,
			ThrottleMillis:      defaultThrottleMillis,
			ProbeTimeoutSeconds: defaultProbeTimeoutSeconds,
			FFprobeBinary:       defaultFFprobeBinary,
			FFmpegBinary:        defaultFFmpegBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
