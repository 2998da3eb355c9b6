// Command spectrox-cli analyzes a durian photo and prints the dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"spectrox/analyzer"
	"spectrox/config"
	"spectrox/logger"
	"spectrox/render"
)

func main() {
	cfgFile := flag.String("config", "spectrox.yaml", "Path to YAML configuration (defaults are used when absent)")
	noJitter := flag.Bool("no-jitter", false, "Disable spectrum noise for reproducible output")
	delay := flag.Duration("delay", -1, "Override the artificial analysis delay (negative keeps the configured delay)")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] image\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *noJitter {
		cfg.Analyzer.Jitter = false
	}
	if *delay >= 0 {
		cfg.Analyzer.Delay = *delay
	}

	if err := logger.Init(*debug || cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(flag.Arg(0), cfg.Analyzer); err != nil {
		logger.Debugf("analysis of %s failed: %v", flag.Arg(0), err)
		fmt.Fprintf(os.Stderr, "Error: %s\n", analyzer.UserMessage(err))
		os.Exit(1)
	}
}

func run(path string, cfg config.AnalyzerConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &analyzer.Error{Kind: analyzer.KindInvalidImage, Msg: "reading " + path, Err: err}
	}

	dataURL, _, err := analyzer.ImageDataURL(data)
	if err != nil {
		return err
	}

	a := analyzer.New(
		analyzer.WithDelay(cfg.Delay),
		analyzer.WithJitter(analyzer.NewJitter(cfg.Jitter, cfg.JitterSeed)),
		analyzer.WithLogger(logger.Get()),
	)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Delay+10*time.Second)
	defer cancel()

	res, err := a.Analyze(ctx, dataURL)
	if err != nil {
		return err
	}

	fmt.Println(render.Dashboard(res))
	return nil
}
