package config

const (
	defaultInputFile      = "data/movies_dataset.csv"
	defaultOutputFile     = "data/result_dataSet.csv"
	defaultOMDbBaseURL    = "http://www.omdbapi.com/"
	defaultOMDbTimeout    = 10
	defaultOMDbUserAgent  = "movieinfo/dev"
	defaultInputEncoding  = EncodingUTF8
	defaultOnError        = OnErrorBlank
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	envOMDbBaseURL        = "MOVIEINFO_OMDB_BASE_URL"
	defaultConfigFileName = "movieinfo.toml"
)

// Supported input encodings.
const (
	EncodingUTF8        = "utf-8"
	EncodingUTF16       = "utf-16"
	EncodingWindows1252 = "windows-1252"
	EncodingLatin1      = "latin1"
)

// Row failure policies.
const (
	// OnErrorBlank writes an empty row for a failed lookup and keeps going.
	OnErrorBlank = "blank"
	// OnErrorAbort stops the run at the first failed lookup.
	OnErrorAbort = "abort"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			InputFile:  defaultInputFile,
			OutputFile: defaultOutputFile,
		},
		OMDb: OMDb{
			BaseURL:        defaultOMDbBaseURL,
			TimeoutSeconds: defaultOMDbTimeout,
			UserAgent:      defaultOMDbUserAgent,
		},
		Input: Input{
			Encoding: defaultInputEncoding,
		},
		Extract: Extract{
			OnError: defaultOnError,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
