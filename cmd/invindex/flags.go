package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rcrowley/go-metrics"

	"github.com/kotaroooo0/invindex/internal/config"
	"github.com/kotaroooo0/invindex/internal/logger"
)

// commonFlags are shared by every command. Flags given on the command line
// win over the config file and the environment.
type commonFlags struct {
	configPath string
	policy     string
	encoding   string
	level      int
	stats      bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&c.policy, "policy", "", "storage policy: "+strings.Join(config.Policies, ", "))
	fs.StringVar(&c.encoding, "encoding", "", "character encoding of terms for the compressed and packed policies")
	fs.IntVar(&c.level, "level", 0, "zlib compression level for the compressed policy, -2..9 (config default 6)")
	fs.BoolVar(&c.stats, "stats", false, "print timing metrics to stderr when done")
}

// load builds the effective configuration and sets up logging.
func (c *commonFlags) load(fs *flag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "policy":
			cfg.Storage.Policy = c.policy
		case "encoding":
			cfg.Storage.Encoding = c.encoding
		case "level":
			cfg.Storage.Level = c.level
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	return cfg, nil
}

func (c *commonFlags) writeStats() {
	if c.stats {
		metrics.WriteOnce(metrics.DefaultRegistry, os.Stderr)
	}
}

// stringsFlag collects a repeatable string flag.
type stringsFlag []string

func (s *stringsFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *stringsFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func requireFlag(fs *flag.FlagSet, name, value string) error {
	if value == "" {
		return fmt.Errorf("%s: -%s is required", fs.Name(), name)
	}
	return nil
}
