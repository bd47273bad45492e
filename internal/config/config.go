package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment          string        `mapstructure:"ENVIRONMENT"`
	ServerAddress        string        `mapstructure:"SERVER_ADDRESS"`
	MongoURI             string        `mapstructure:"MONGO_URI"`
	MongoDatabase        string        `mapstructure:"MONGO_DATABASE"`
	ElasticSearchAddress string        `mapstructure:"ELASTICSEARCH_ADDRESS"`
	RedisAddress         string        `mapstructure:"REDIS_ADDRESS"`
	QueryTimeout         time.Duration `mapstructure:"QUERY_TIMEOUT"`
	LoadTestData         bool          `mapstructure:"LOAD_TEST_DATA"`
}

// LoadConfig reads configuration from file or environment variables
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("MONGO_DATABASE", "job_board")
	viper.SetDefault("QUERY_TIMEOUT", 10*time.Second)

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
