package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jcorbin/wordforth/forth"
	"github.com/jcorbin/wordforth/internal/logio"
)

// Config holds settings shared by the command line and a -config file.
type Config struct {
	Trace   bool          `yaml:"trace"`
	Strict  bool          `yaml:"strict"`
	DB      string        `yaml:"db"`
	History string        `yaml:"history"`
	Jobs    int           `yaml:"jobs"`
	Timeout time.Duration `yaml:"timeout"`
	Tee     string        `yaml:"tee"`
	Prelude []string      `yaml:"prelude"`
}

type command struct {
	Config
	Eval  string
	Files []string
}

func loadConfig(name string) (cfg Config, err error) {
	f, err := os.Open(name)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to load config %v: %w", name, err)
	}
	return cfg, nil
}

func parseCommand(args []string) (cmd command, err error) {
	fs := flag.NewFlagSet("wordforth", flag.ContinueOnError)

	var (
		flags      Config
		configFile string
	)
	fs.StringVar(&configFile, "config", "", "load settings from a YAML file")
	fs.BoolVar(&flags.Trace, "trace", false, "enable trace logging")
	fs.BoolVar(&flags.Strict, "strict", false, "reject words that redefine a primitive")
	fs.StringVar(&flags.DB, "db", "", "keep the session in a SQLite database")
	fs.StringVar(&flags.History, "history", "", "line editor history file")
	fs.IntVar(&flags.Jobs, "j", 1, "evaluate up to N files at once")
	fs.DurationVar(&flags.Timeout, "timeout", 0, "specify a time limit")
	fs.StringVar(&flags.Tee, "tee", "", "also write results into a file")
	fs.StringVar(&cmd.Eval, "e", "", "evaluate a program and print its stack")
	if err := fs.Parse(args); err != nil {
		return cmd, err
	}

	if configFile != "" {
		if cmd.Config, err = loadConfig(configFile); err != nil {
			return cmd, err
		}
	} else {
		cmd.Config = flags
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			cmd.Trace = flags.Trace
		case "strict":
			cmd.Strict = flags.Strict
		case "db":
			cmd.DB = flags.DB
		case "history":
			cmd.History = flags.History
		case "j":
			cmd.Jobs = flags.Jobs
		case "timeout":
			cmd.Timeout = flags.Timeout
		case "tee":
			cmd.Tee = flags.Tee
		}
	})
	if cmd.Jobs < 1 {
		cmd.Jobs = 1
	}

	cmd.Files = fs.Args()
	return cmd, nil
}

func (cfg Config) interpOptions(log *logio.Logger) []forth.Option {
	var opts []forth.Option
	if cfg.Trace {
		opts = append(opts, forth.WithLogf(log.Leveledf("TRACE")))
	}
	if cfg.Strict {
		opts = append(opts, forth.WithStrictPrimitives())
	}
	return opts
}
