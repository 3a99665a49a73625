package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/extractcss"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Extractor extractcss.Extractor

	// Writer is set when results go to files instead of stdout.
	Writer extractcss.ResultWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	WaitUntil   string        `short:"w" default:"networkidle0" enum:"load,domcontentloaded,networkidle0,networkidle2" help:"When the page counts as loaded (load, domcontentloaded, networkidle0, networkidle2)"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Extraction timeout per page"`
	Concurrency int           `short:"c" default:"3" help:"Pages extracted at once"`
	Rate        float64       `default:"2" help:"Page loads per second per site (0 disables limiting)"`
	Burst       int           `default:"1" help:"Page loads a site may receive back to back before the rate applies"`
	Static      bool          `short:"s" help:"Read server-rendered CSS over HTTP without a browser"`
	OutDir      string        `short:"o" name:"out-dir" type:"path" help:"Write one .css file per URL below this directory"`
	Verbose     bool          `short:"v" help:"Log progress to stderr"`
	URLs        []string      `arg:"" name:"url" help:"Page URLs to extract CSS from"`
}
