package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-bcrypt-cost bcrypt cost factor
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-music-token music catalog API credential
//	-music-base-url music catalog API root URL
//	-music-page-size number of tracks requested per call
//	-music-cover-size cover resolution token (e.g., "400x400")
//	-music-timeout outbound catalog request timeout
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

// parseFlags registers all flags on fs and parses args into a
// *StructuredConfig. Split from [ParseFlags] so tests can supply their own
// FlagSet instead of the process-global one.
func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var bcryptCost int
	var requestTimeout time.Duration
	var musicToken string
	var musicBaseURL string
	var musicPageSize int
	var musicCoverSize string
	var musicTimeout time.Duration

	fs.StringVar(&serverAddress, "a", "", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt cost factor")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&musicToken, "music-token", "", "Music catalog API token")
	fs.StringVar(&musicBaseURL, "music-base-url", "", "Music catalog API base URL")
	fs.IntVar(&musicPageSize, "music-page-size", 0, "Music catalog page size")
	fs.StringVar(&musicCoverSize, "music-cover-size", "", "Cover resolution token")
	fs.DurationVar(&musicTimeout, "music-timeout", 0, "Music catalog request timeout")

	fs.Parse(args)

	return &StructuredConfig{
		App: App{
			BcryptCost: bcryptCost,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Music: Music{
			Token:     musicToken,
			BaseURL:   musicBaseURL,
			PageSize:  musicPageSize,
			CoverSize: musicCoverSize,
			Timeout:   musicTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
