// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type.
//   - MustLoad and MustLoadEnv panic on failure, for configuration the
//     program cannot run without.
//   - ResetCache and ForceReloadConfig help tests that change the environment.
//
// # Usage
//
//	var cfg specification.Config
//	config.MustLoad(&cfg)
//
//	res := specification.Create(v, specification.WithConfig(cfg)).
//	    Is(spec).
//	    GetResult()
//
// # Error Handling
//
// Errors wrap one of the sentinels below and can be checked with errors.Is:
//
//   - ErrParsingConfig – the environment could not be parsed into the struct.
//   - ErrLoadingEnvFile – a .env file could not be read.
//   - ErrNilPointer – a nil pointer was passed to Load or ForceReloadConfig.
package config
