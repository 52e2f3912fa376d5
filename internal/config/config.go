// Package config loads section extraction settings for the command line
// tool from the environment, after reading an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/tsawler/sections/sections"
)

// Config is the CLI's runtime configuration
type Config struct {
	LogLevel string
	Sections sections.Config
}

// Load reads .env (if present) and SECTIONS_* variables over the library
// defaults. Flags given on the command line are applied afterwards by the
// caller.
func Load() (*Config, error) {
	_ = godotenv.Load()

	sc := sections.DefaultConfig()
	sc.WidthRatio = getEnvFloat("SECTIONS_WIDTH_RATIO", sc.WidthRatio)
	sc.LetterRatioRule = getEnvBool("SECTIONS_LETTER_RATIO_RULE", sc.LetterRatioRule)
	sc.LetterRatioThreshold = getEnvFloat("SECTIONS_LETTER_RATIO_THRESHOLD", sc.LetterRatioThreshold)
	sc.ContentTypes = getEnvBool("SECTIONS_CONTENT_TYPES", sc.ContentTypes)
	sc.BodyContentThreshold = getEnvFloat("SECTIONS_BODY_CONTENT_THRESHOLD", sc.BodyContentThreshold)
	sc.Merge.Dehyphenate = getEnvBool("SECTIONS_DEHYPHENATE", sc.Merge.Dehyphenate)

	scope, err := sections.ParseMergeScope(getEnv("SECTIONS_MERGE_SCOPE", sc.MergeScope.String()))
	if err != nil {
		return nil, fmt.Errorf("SECTIONS_MERGE_SCOPE: %w", err)
	}
	sc.MergeScope = scope

	order, err := sections.ParsePageOrder(getEnv("SECTIONS_PAGE_ORDER", sc.PageOrder.String()))
	if err != nil {
		return nil, fmt.Errorf("SECTIONS_PAGE_ORDER: %w", err)
	}
	sc.PageOrder = order

	return &Config{
		LogLevel: getEnv("SECTIONS_LOG_LEVEL", "info"),
		Sections: sc,
	}, nil
}

// Validate checks that ratios are within range
func (c *Config) Validate() error {
	if c.Sections.WidthRatio < 0 || c.Sections.WidthRatio > 1 {
		return fmt.Errorf("width ratio must be between 0 and 1, got %v", c.Sections.WidthRatio)
	}
	if c.Sections.BodyContentThreshold <= 0 || c.Sections.BodyContentThreshold > 1 {
		return fmt.Errorf("body content threshold must be in (0, 1], got %v", c.Sections.BodyContentThreshold)
	}
	if c.Sections.LetterRatioThreshold < 0 {
		return fmt.Errorf("letter ratio threshold must not be negative, got %v", c.Sections.LetterRatioThreshold)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
