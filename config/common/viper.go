package common

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

type Config struct {
	Viper *viper.Viper
}

func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.AddConfigPath("../")
	config.AutomaticEnv()

	log.Trace("Checking file .env ....")
	if err := config.ReadInConfig(); err != nil {
		log.Warnf("no .env file found, relying on environment: %v", err)
	}
	return &Config{Viper: config}
}

func (c *Config) GetAppConfig() (appName string) {
	return c.Viper.GetString("APP_NAME")
}

// GetDatabaseURL returns the connection string. An empty value is a fatal
// startup error, there is no usable default.
func (c *Config) GetDatabaseURL() string {
	url := c.Viper.GetString("DATABASE_URL")
	if url == "" {
		panic("DATABASE_URL is not set")
	}
	return url
}

func (c *Config) GetJwtConfig() []byte {
	jwtSecret := c.Viper.GetString("JWT_SECRET")
	return []byte(jwtSecret)
}

func (c *Config) GetServerPort() string {
	port := c.Viper.GetString("PORT")
	if port == "" {
		port = "7720"
	}
	return port
}
