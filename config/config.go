// api/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server   ServerConfiguration
	Postgres DatabaseConfiguration
	Redis    RedisConfiguration
	JWT      JWTConfiguration
	Auth     AuthConfiguration
	Odoo     OdooConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// DatabaseConfiguration stores data for database connection
type DatabaseConfiguration struct {
	DSN string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr            string
	DefaultCacheTTL string
}

// JWTConfiguration stores the signing key and token lifetimes
type JWTConfiguration struct {
	Secret          string
	AccessTTL       string
	RefreshTTL      string
	RevokeOnRefresh bool
}

// AuthConfiguration selects the credential flow for this deployment
type AuthConfiguration struct {
	Mode string // "local" or "odoo"
}

// OdooConfiguration stores data for the ERP XML-RPC endpoints
type OdooConfiguration struct {
	URL      string
	DB       string
	Username string
	Password string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("postgres.dsn", "host=localhost user=gateway password=gateway dbname=gateway port=5432 sslmode=disable")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.defaultCacheTTL", "10m")
	viper.SetDefault("redis.dialTimeout", "2s")
	viper.SetDefault("redis.readTimeout", "500ms")
	viper.SetDefault("redis.writeTimeout", "500ms")
	viper.SetDefault("jwt.accessTTL", "30m")
	viper.SetDefault("jwt.refreshTTL", "168h")
	viper.SetDefault("jwt.revokeOnRefresh", true)
	viper.SetDefault("auth.mode", "local")
	viper.SetDefault("odoo.url", "http://localhost:8069")
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("cache.productListTTL", "30m")
	viper.SetDefault("cache.productTTL", "1h")
	viper.SetDefault("cache.vendorTTL", "30m")
	viper.SetDefault("cache.orderListTTL", "30m")
	viper.SetDefault("cache.attributeTTL", "1h")
	viper.SetDefault("cache.variantTTL", "30m")
	viper.SetDefault("cors.allowOrigins", []string{"*"})
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.dir", "logging")
	viper.SetDefault("log.fileName", "api.log")
	viper.SetDefault("log.errorFileName", "api_error.log")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}
