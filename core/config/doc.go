// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// A .env file in the working directory is loaded on first use (if present)
// and the caarlos0/env library parses variables into struct fields:
//
//	type Config struct {
//		Addr     string `env:"SERVER_ADDR" envDefault:":8080"`
//		SiteName string `env:"SITE_NAME,required"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Different types are cached independently. Reset drops the cache, which is
// mostly useful in tests.
package config
