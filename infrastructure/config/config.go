package config

import (
	"io/fs"
	"youtube_etl/internal/core/domain"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const (
	youtubeAPIKeyFlag           = "youtube-api-key"
	youtubeTokenFileFlag        = "youtube-token-file"
	youtubeClientSecretFileFlag = "youtube-client-secret-file"
	awsAccessKeyFlag            = "aws-access-key"
	awsSecretKeyFlag            = "aws-secret-key"
	awsRegionFlag               = "aws-region"
	awsEndpointFlag             = "aws-endpoint"
	bucketFlag                  = "bucket"
	channelIDFlag               = "channel-id"
	maxResultsFlag              = "max-results"
	publishedWithinFlag         = "published-within"
	outputFlag                  = "output"
	outputDirFlag               = "output-dir"
	logDirFlag                  = "log-dir"
	logLevelFlag                = "log-level"

	DefaultChannelID = "UCLkAepWjdylmXSltofFvsYQ"
)

type Config struct {
	YoutubeAPIKey           string
	YoutubeTokenFile        string
	YoutubeClientSecretFile string

	AWSAccessKey string
	AWSSecretKey string
	AWSRegion    string
	AWSEndpoint  string
	BucketName   string

	ChannelID       string
	MaxResults      int
	PublishedWithin string

	OutputFile string
	OutputDir  string

	LogDir   string
	LogLevel string
}

// LoadDotEnv exports the variables of a .env file without overriding the
// environment. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "failed to load %s", path)
	}

	return nil
}

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   youtubeAPIKeyFlag,
			Usage:  "YouTube Data API developer key",
			EnvVar: "YOUTUBE_API_KEY",
		},
		cli.StringFlag{
			Name:   youtubeTokenFileFlag,
			Usage:  "OAuth token file used when no API key is set",
			EnvVar: "YOUTUBE_TOKEN_FILE",
		},
		cli.StringFlag{
			Name:   youtubeClientSecretFileFlag,
			Usage:  "OAuth client secret JSON used to refresh the token file",
			EnvVar: "YOUTUBE_CLIENT_SECRET_FILE",
		},
		cli.StringFlag{
			Name:   awsAccessKeyFlag,
			Usage:  "S3 access key",
			EnvVar: "AWS_ACCESS_KEY",
		},
		cli.StringFlag{
			Name:   awsSecretKeyFlag,
			Usage:  "S3 secret key",
			EnvVar: "AWS_SECRET_KEY",
		},
		cli.StringFlag{
			Name:   awsRegionFlag,
			Usage:  "S3 region",
			Value:  "us-east-1",
			EnvVar: "AWS_REGION",
		},
		cli.StringFlag{
			Name:   awsEndpointFlag,
			Usage:  "custom S3-compatible endpoint",
			EnvVar: "AWS_ENDPOINT",
		},
		cli.StringFlag{
			Name:   bucketFlag,
			Usage:  "destination bucket",
			EnvVar: "BUCKET_NAME",
		},
		cli.StringFlag{
			Name:   channelIDFlag,
			Usage:  "YouTube channel to export",
			Value:  DefaultChannelID,
			EnvVar: "CHANNEL_ID",
		},
		cli.IntFlag{
			Name:   maxResultsFlag,
			Usage:  "maximum number of search results (1-50)",
			Value:  domain.DefaultMaxResults,
			EnvVar: "MAX_RESULTS",
		},
		cli.StringFlag{
			Name:   publishedWithinFlag,
			Usage:  "only videos published within this ISO-8601 duration, e.g. P7D",
			EnvVar: "PUBLISHED_WITHIN",
		},
		cli.StringFlag{
			Name:   outputFlag,
			Usage:  "base name of the CSV file; a timestamp is appended",
			Value:  "youtube_data.csv",
			EnvVar: "OUTPUT_FILE",
		},
		cli.StringFlag{
			Name:   outputDirFlag,
			Usage:  "directory the CSV file is written to",
			Value:  ".",
			EnvVar: "OUTPUT_DIR",
		},
		cli.StringFlag{
			Name:   logDirFlag,
			Usage:  "directory for JSON run logs, empty to disable",
			Value:  "logs",
			EnvVar: "LOG_DIR",
		},
		cli.StringFlag{
			Name:   logLevelFlag,
			Usage:  "log level (debug, info, warn, error)",
			Value:  "info",
			EnvVar: "LOG_LEVEL",
		},
	)
}

func NewConfigFromCLI(c *cli.Context) *Config {
	return &Config{
		YoutubeAPIKey:           c.String(youtubeAPIKeyFlag),
		YoutubeTokenFile:        c.String(youtubeTokenFileFlag),
		YoutubeClientSecretFile: c.String(youtubeClientSecretFileFlag),
		AWSAccessKey:            c.String(awsAccessKeyFlag),
		AWSSecretKey:            c.String(awsSecretKeyFlag),
		AWSRegion:               c.String(awsRegionFlag),
		AWSEndpoint:             c.String(awsEndpointFlag),
		BucketName:              c.String(bucketFlag),
		ChannelID:               c.String(channelIDFlag),
		MaxResults:              c.Int(maxResultsFlag),
		PublishedWithin:         c.String(publishedWithinFlag),
		OutputFile:              c.String(outputFlag),
		OutputDir:               c.String(outputDirFlag),
		LogDir:                  c.String(logDirFlag),
		LogLevel:                c.String(logLevelFlag),
	}
}

func (c *Config) SearchOptions() domain.SearchOptions {
	return domain.SearchOptions{
		MaxResults:      c.MaxResults,
		PublishedWithin: c.PublishedWithin,
	}
}

func (c *Config) Validate() error {
	if c.YoutubeAPIKey == "" && (c.YoutubeTokenFile == "" || c.YoutubeClientSecretFile == "") {
		return errors.New("youtube credentials missing: set YOUTUBE_API_KEY or both YOUTUBE_TOKEN_FILE and YOUTUBE_CLIENT_SECRET_FILE")
	}

	if c.AWSAccessKey == "" || c.AWSSecretKey == "" {
		return errors.New("s3 credentials missing: set AWS_ACCESS_KEY and AWS_SECRET_KEY")
	}

	if c.BucketName == "" {
		return errors.New("bucket missing: set BUCKET_NAME")
	}

	if c.ChannelID == "" {
		return errors.New("channel id missing: set CHANNEL_ID")
	}

	if err := c.SearchOptions().Validate(); err != nil {
		return errors.Wrap(err, "invalid max results")
	}

	return nil
}
