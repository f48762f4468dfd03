package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from yaml strings like "300ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Config struct {
	LogLevel           slog.Level                `json:"LogLevel" yaml:"logLevel"`
	Listen             string                    `json:"Listen" yaml:"listen" validate:"required"`
	DefaultLanguage    string                    `json:"DefaultLanguage" yaml:"defaultLanguage" validate:"required"`
	LocalePath         string                    `json:"LocalePath" yaml:"localePath" validate:"required"`
	AvailableLanguages []AvailableLanguageConfig `json:"AvailableLanguages" yaml:"availableLanguages" validate:"required,min=1"`
	Media              MediaConfig               `json:"Media" yaml:"media" validate:"required"`
	Gallery            GalleryConfig             `json:"Gallery" yaml:"gallery"`
	Contact            ContactConfig             `json:"Contact" yaml:"contact" validate:"required"`
	Mail               MailConfig                `json:"Mail" yaml:"mail" validate:"required"`
	PageCacheTTL       Duration                  `json:"PageCacheTTL" yaml:"pageCacheTTL"`
}

type AvailableLanguageConfig struct {
	Name    string `json:"Name" yaml:"name" validate:"required"`
	Alt     string `json:"Alt" yaml:"alt"`
	Flag    string `json:"Flag" yaml:"flag"`
	LocFile string `json:"LocFile" yaml:"locFile" validate:"required,filepath"`
}

type MediaConfig struct {
	Storage        StorageConfig `json:"Storage" yaml:"storage" validate:"required"`
	PublicBaseURL  string        `json:"PublicBaseURL" yaml:"publicBaseURL" validate:"required,url"`
	GalleryPrefix  string        `json:"GalleryPrefix" yaml:"galleryPrefix"`
	ProjectsPrefix string        `json:"ProjectsPrefix" yaml:"projectsPrefix"`
	FactsFileName  string        `json:"FactsFileName" yaml:"factsFileName" validate:"required"`
	RescanCron     string        `json:"RescanCron" yaml:"rescanCron" validate:"required"`
}

type StorageConfig struct {
	Type string   `json:"Type" yaml:"type" validate:"required,oneof=b2 s3"`
	B2   B2Config `json:"B2" yaml:"b2"`
	S3   S3Config `json:"S3" yaml:"s3"`
}

type B2Config struct {
	BucketName     string `json:"BucketName" yaml:"bucketName"`
	Prefix         string `json:"Prefix" yaml:"prefix"`
	KeyID          string `json:"KeyID" yaml:"keyID"`
	ApplicationKey string `json:"ApplicationKey" yaml:"applicationKey"`
}

type S3Config struct {
	BucketName      string `json:"BucketName" yaml:"bucketName"`
	Region          string `json:"Region" yaml:"region"`
	Prefix          string `json:"Prefix" yaml:"prefix"`
	AccessKeyID     string `json:"AccessKeyID" yaml:"accessKeyID"`
	SecretAccessKey string `json:"SecretAccessKey" yaml:"secretAccessKey"`
	Endpoint        string `json:"Endpoint" yaml:"endpoint"`
}

type GalleryConfig struct {
	TransitionDuration Duration `json:"TransitionDuration" yaml:"transitionDuration"`
	SlideshowInterval  Duration `json:"SlideshowInterval" yaml:"slideshowInterval"`
	LoadTimeout        Duration `json:"LoadTimeout" yaml:"loadTimeout"`
	PlaceholderSrc     string   `json:"PlaceholderSrc" yaml:"placeholderSrc"`
}

type ContactConfig struct {
	Db           DbConfig `json:"Db" yaml:"db" validate:"required"`
	RateLimitTTL Duration `json:"RateLimitTTL" yaml:"rateLimitTTL"`
}

type DbConfig struct {
	Type string        `json:"Type" yaml:"type" validate:"required,oneof=sqlite3"`
	Cfg  Sqlite3Config `json:"Config" yaml:"config"`
}

type Sqlite3Config struct {
	DSN string `json:"DSN" yaml:"dsn" validate:"required"`
}

type MailConfig struct {
	MailHost    string `json:"MailHost" yaml:"mailHost" validate:"required"`
	PublicName  string `json:"PublicName" yaml:"publicName" validate:"required"`
	MailAddress string `json:"MailAddress" yaml:"mailAddress" validate:"required"`
	Username    string `json:"Username" yaml:"username" validate:"required"`
	Password    string `json:"Password" yaml:"password" validate:"required"`
	Salt        string `json:"Salt" yaml:"salt" validate:"required"`
}

func LoadConfig(path string, config *Config) error {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	expandedFileBytes := []byte(os.ExpandEnv(string(fileBytes)))

	if err = yaml.Unmarshal(expandedFileBytes, config); err != nil {
		return err
	}

	return nil
}

func InitConfig(path string) (*Config, error) {
	config := &Config{}
	if err := LoadConfig(path, config); err != nil {
		return nil, err
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}
