package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort        string   `env:"APP_PORT" envDefault:"5000"`
	AppEnv         string   `env:"APP_ENV" envDefault:"development"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	AWSRegion      string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSEndpointURL string `env:"AWS_ENDPOINT_URL"` // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey   string `env:"AWS_SECRET_ACCESS_KEY"`
	DynamoTables   DynamoTables

	StorageBackend   string `env:"STORAGE_BACKEND" envDefault:"local"`
	LocalStorageRoot string `env:"LOCAL_STORAGE_ROOT" envDefault:"./public"`
	S3BucketName     string `env:"S3_BUCKET_NAME" envDefault:"institute-assets"`
	S3PublicBaseURL  string `env:"S3_PUBLIC_BASE_URL"` // CDN or bucket website URL; s3:// locators when empty
	MaxUploadBytes   int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`

	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"1h"`
	OTPTTL    time.Duration `env:"OTP_TTL" envDefault:"5m"`

	SMTPHost     string `env:"SMTP_HOST" envDefault:"localhost"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"1025"`
	SMTPFrom     string `env:"SMTP_FROM" envDefault:"noreply@example.com"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SiteName     string `env:"SITE_NAME" envDefault:"Kaivalya Infotech"`

	OrphanAlertTopicARN string `env:"ORPHAN_ALERT_TOPIC_ARN"`
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users        string `env:"DYNAMO_TABLE_USERS" envDefault:"users"`
	UserEmails   string `env:"DYNAMO_TABLE_USER_EMAILS" envDefault:"user_emails"`
	OTPs         string `env:"DYNAMO_TABLE_OTPS" envDefault:"otps"`
	Courses      string `env:"DYNAMO_TABLE_COURSES" envDefault:"courses"`
	Certificates string `env:"DYNAMO_TABLE_CERTIFICATES" envDefault:"certificates"`
	Placements   string `env:"DYNAMO_TABLE_PLACEMENTS" envDefault:"placements"`
	Banners      string `env:"DYNAMO_TABLE_BANNERS" envDefault:"banners"`
	Reviews      string `env:"DYNAMO_TABLE_REVIEWS" envDefault:"reviews"`
}

// Load reads all configuration from environment variables.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	switch cfg.StorageBackend {
	case StorageLocal, StorageS3:
	default:
		return nil, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageLocal, StorageS3, cfg.StorageBackend)
	}
	return &cfg, nil
}

// IsProduction controls the Secure flag on the session cookie.
func (c *Config) IsProduction() bool { return c.AppEnv == "production" }
