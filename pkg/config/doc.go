// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Struct fields are mapped through `env` tags as understood by
// github.com/caarlos0/env; defaults use `envDefault`. The .env file, if
// present in the working directory, is read once per process before the
// first parse.
package config
