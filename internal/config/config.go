package config

import (
	"log"

	"github.com/spf13/viper"
)

type Database struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	SSLMode  string `mapstructure:"ssl-mode"`
}

type KafkaWriter struct {
	BatchSize      int `mapstructure:"batch-size"`
	BatchTimeoutMs int `mapstructure:"batch-timeout-ms"`
}

type KafkaBroker struct {
	URL string `mapstructure:"url"`
}

type KafkaTopic struct {
	TransactionEvents string `mapstructure:"transaction-events"`
}

type KafkaReader struct {
	GroupID string `mapstructure:"group-id"`
}

type Kafka struct {
	Writer KafkaWriter `mapstructure:"writer"`
	Broker KafkaBroker `mapstructure:"broker"`
	Topic  KafkaTopic  `mapstructure:"topic"`
	Reader KafkaReader `mapstructure:"reader"`
}

// Profile configures the merchant profile lookup. When BaseURL is empty the
// local database store is used instead of the hosted profile service.
type Profile struct {
	BaseURL   string `mapstructure:"base-url"`
	APIKey    string `mapstructure:"api-key"`
	TimeoutMs int    `mapstructure:"timeout-ms"`
}

// DefaultPayee is the beneficiary substituted when a merchant profile cannot
// be resolved. It is deployment configuration, not business logic.
type DefaultPayee struct {
	BeneficiaryName string `mapstructure:"beneficiary-name"`
	Address         string `mapstructure:"address"`
	PostalCode      string `mapstructure:"postal-code"`
	City            string `mapstructure:"city"`
	Country         string `mapstructure:"country"`
	IBAN            string `mapstructure:"iban"`
}

type QR struct {
	ImageWidth         int          `mapstructure:"image-width"`
	AllowSyntheticIBAN bool         `mapstructure:"allow-synthetic-iban"`
	PublishTimeoutMs   int          `mapstructure:"publish-timeout-ms"`
	DefaultPayee       DefaultPayee `mapstructure:"default-payee"`
}

type Server struct {
	Port string `mapstructure:"port"`
}

type Metrics struct {
	URL          string `mapstructure:"url"`
	IntervalMs   int    `mapstructure:"interval-ms"`
	CommonLabels string `mapstructure:"common-labels"`
}

type Logs struct {
	URL string `mapstructure:"url"`
}

type Config struct {
	Database Database `mapstructure:"database"`
	Kafka    Kafka    `mapstructure:"kafka"`
	Profile  Profile  `mapstructure:"profile"`
	QR       QR       `mapstructure:"qr"`
	Server   Server   `mapstructure:"server"`
	Metrics  Metrics  `mapstructure:"metrics"`
	Logs     Logs     `mapstructure:"logs"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func MustLoadConfig(path string) *Config {
	config, err := LoadConfig(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return config
}
