package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port          int
	DatabasePath  string
	SessionSecret string
	AdminEmail    string
	SchoolName    string
	OrgName       string
}

// ParseFlags validates flags, falling back to environment variables.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("rush-server", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", "", "Path to the sqlite database file")

	// Secrets and identity (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session token signing secret (prefer env)")
	fs.StringVar(&cfg.AdminEmail, "admin-email", "", "Reserved admin email address")

	// Institution defaults shown before a selection is saved
	fs.StringVar(&cfg.SchoolName, "school", "", "Default school name")
	fs.StringVar(&cfg.OrgName, "org", "", "Default fraternity/sorority name")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 7874 // default; "RUSH" on a phone keypad
		}
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "rush.db"
	}

	// Secret - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	if cfg.AdminEmail == "" {
		cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin@rushutk.com"
	}

	if cfg.SchoolName == "" {
		cfg.SchoolName = os.Getenv("SCHOOL_NAME")
	}
	if cfg.SchoolName == "" {
		cfg.SchoolName = "University of Tennessee Knoxville"
	}

	if cfg.OrgName == "" {
		cfg.OrgName = os.Getenv("ORG_NAME")
	}
	if cfg.OrgName == "" {
		cfg.OrgName = "Alpha Kappa Psi"
	}

	return cfg, nil
}
