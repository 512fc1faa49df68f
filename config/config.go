package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Server configuration
	Server struct {
		// Port the HTTP API listens on
		Port string `env:"SERVER_PORT" envDefault:"5250"`

		// Path to the sqlite database file
		DatabasePath string `env:"DATABASE_PATH" envDefault:"database/staybook.db"`
	}

	// BatchProcessing configuration for the listing import pipeline
	BatchProcessing struct {
		// Maximum number of batches the import queue can buffer
		QueueSize int `env:"BATCH_QUEUE_SIZE" envDefault:"100"`

		// Number of concurrent batch processors
		ProcessorCount int `env:"BATCH_PROCESSOR_COUNT" envDefault:"2"`

		// Maximum number of retries for failed batches
		MaxRetries int `env:"BATCH_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in seconds
		RetryDelay int `env:"BATCH_RETRY_DELAY" envDefault:"5"`
	}

	// Seed configuration for the sample-data seeder
	Seed struct {
		// Number of listings to create
		Listings int `env:"SEED_LISTINGS" envDefault:"20"`

		// Number of bookings to create
		Bookings int `env:"SEED_BOOKINGS" envDefault:"50"`

		// Number of reviews to create
		Reviews int `env:"SEED_REVIEWS" envDefault:"30"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
