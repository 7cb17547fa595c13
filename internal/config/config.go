package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Host:     getEnv("DB_HOST", "db"),
		Port:     getEnv("DB_PORT", "5432"),
		Name:     getEnv("DB_NAME", "tododb"),
		User:     getEnv("DB_USER", "todouser"),
		Password: getEnv("DB_PASSWORD", "todopass"),
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host, c.User, c.Password, c.Name, c.Port)
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:         getEnv("PORT", "5000"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}

type CacheConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	DefaultTTL    time.Duration
}

func NewCacheConfig() *CacheConfig {
	return &CacheConfig{
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,
		DefaultTTL:    15 * time.Minute,
	}
}

// LogBufferConfig controls the in-memory request log: how many entries
// are retained and which fixed UTC offset timestamps are stamped in.
type LogBufferConfig struct {
	Capacity int
	Location *time.Location
}

func NewLogBufferConfig() *LogBufferConfig {
	offset := getEnvInt("LOG_TZ_OFFSET_HOURS", 9)
	return &LogBufferConfig{
		Capacity: getEnvInt("LOG_BUFFER_CAPACITY", 100),
		Location: time.FixedZone(fmt.Sprintf("UTC%+d", offset), offset*3600),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
