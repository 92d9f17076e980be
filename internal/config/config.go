// Package config reads server and CLI settings from flags, falling back to
// MOVECHECK_* environment variables.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/benbeisheim/movecheck-backend/internal/model"
)

type Config struct {
	Addr         string
	AllowOrigins string
	Rules        model.Ruleset
}

const (
	DefaultAddr    = ":3000"
	DefaultOrigins = "http://localhost:5173"
)

// Load parses args (without the program name) into a Config.
func Load(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	addr := fs.String("addr", envOr("MOVECHECK_ADDR", DefaultAddr), "listen address")
	origins := fs.String("origins", envOr("MOVECHECK_ORIGINS", DefaultOrigins), "comma separated CORS origins")
	rules := rulesFlag(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	ruleset, err := parseRules(*rules)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Addr:         *addr,
		AllowOrigins: *origins,
		Rules:        ruleset,
	}, nil
}

// LoadRules parses the flags of the terminal client, which only selects a
// ruleset.
func LoadRules(name string, args []string) (model.Ruleset, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	rules := rulesFlag(fs)
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return parseRules(*rules)
}

func rulesFlag(fs *flag.FlagSet) *string {
	return fs.String("rules", envOr("MOVECHECK_RULES", string(model.Classic)), "move rules: classic or standard")
}

func parseRules(s string) (model.Ruleset, error) {
	ruleset, err := model.ParseRuleset(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return ruleset, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
