package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Server holds HTTP server settings.
type Server struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	ReadTimeout     string `toml:"read_timeout"`
	WriteTimeout    string `toml:"write_timeout"`
	IdleTimeout     string `toml:"idle_timeout"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

// ServerEnv maps server config fields to environment variable names.
type ServerEnv struct {
	Host            string
	Port            string
	ReadTimeout     string
	WriteTimeout    string
	IdleTimeout     string
	ShutdownTimeout string
}

// Addr returns the host:port listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ReadTimeoutDuration returns ReadTimeout as a time.Duration.
func (s *Server) ReadTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(s.ReadTimeout)
	return d
}

// WriteTimeoutDuration returns WriteTimeout as a time.Duration.
func (s *Server) WriteTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(s.WriteTimeout)
	return d
}

// IdleTimeoutDuration returns IdleTimeout as a time.Duration.
func (s *Server) IdleTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(s.IdleTimeout)
	return d
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (s *Server) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(s.ShutdownTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (s *Server) Finalize(env *ServerEnv) error {
	s.loadDefaults()
	if env != nil {
		s.loadEnv(env)
	}
	return s.validate()
}

// Merge overwrites non-zero fields from overlay.
func (s *Server) Merge(overlay *Server) {
	if overlay.Host != "" {
		s.Host = overlay.Host
	}
	if overlay.Port != 0 {
		s.Port = overlay.Port
	}
	if overlay.ReadTimeout != "" {
		s.ReadTimeout = overlay.ReadTimeout
	}
	if overlay.WriteTimeout != "" {
		s.WriteTimeout = overlay.WriteTimeout
	}
	if overlay.IdleTimeout != "" {
		s.IdleTimeout = overlay.IdleTimeout
	}
	if overlay.ShutdownTimeout != "" {
		s.ShutdownTimeout = overlay.ShutdownTimeout
	}
}

func (s *Server) loadDefaults() {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == "" {
		s.ReadTimeout = "30s"
	}
	if s.WriteTimeout == "" {
		s.WriteTimeout = "2m"
	}
	if s.IdleTimeout == "" {
		s.IdleTimeout = "2m"
	}
	if s.ShutdownTimeout == "" {
		s.ShutdownTimeout = "15s"
	}
}

func (s *Server) loadEnv(env *ServerEnv) {
	if env.Host != "" {
		if v := os.Getenv(env.Host); v != "" {
			s.Host = v
		}
	}
	if env.Port != "" {
		if v := os.Getenv(env.Port); v != "" {
			if port, err := strconv.Atoi(v); err == nil {
				s.Port = port
			}
		}
	}
	if env.ReadTimeout != "" {
		if v := os.Getenv(env.ReadTimeout); v != "" {
			s.ReadTimeout = v
		}
	}
	if env.WriteTimeout != "" {
		if v := os.Getenv(env.WriteTimeout); v != "" {
			s.WriteTimeout = v
		}
	}
	if env.IdleTimeout != "" {
		if v := os.Getenv(env.IdleTimeout); v != "" {
			s.IdleTimeout = v
		}
	}
	if env.ShutdownTimeout != "" {
		if v := os.Getenv(env.ShutdownTimeout); v != "" {
			s.ShutdownTimeout = v
		}
	}
}

func (s *Server) validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("invalid port: %d", s.Port)
	}
	for name, value := range map[string]string{
		"read_timeout":     s.ReadTimeout,
		"write_timeout":    s.WriteTimeout,
		"idle_timeout":     s.IdleTimeout,
		"shutdown_timeout": s.ShutdownTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}
