package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"aidetect/internal/adapters/scoring"
	"aidetect/internal/adapters/scoring/httpmodel"
	"aidetect/internal/platform/config"
	"aidetect/internal/platform/logger"
	analyzedomain "aidetect/internal/services/api/analyze/domain"
	analyzesvc "aidetect/internal/services/api/analyze/service"
)

// newModel is swapped in tests
var newModel = func(cfg config.Conf, maxText int) scoring.Model {
	return httpmodel.NewClient(httpmodel.FromConfig(cfg, maxText))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logger.Get().Error().Err(err).Msg("aidetect-score failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	root := config.New()
	fs := flag.NewFlagSet("aidetect-score", flag.ContinueOnError)
	var (
		file   = fs.String("file", "", "document to score, stdin when empty")
		mode   = fs.String("mode", "analyze", "predict or analyze")
		indent = fs.Bool("pretty", false, "indent the JSON output")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mode != "predict" && *mode != "analyze" {
		return fmt.Errorf("bad -mode %q: want predict or analyze", *mode)
	}

	src := stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}
	raw, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	maxText := root.Prefix("CORE_API_").MayInt("MAX_TEXT_LENGTH", analyzesvc.DefaultMaxTextLength)
	backend := scoring.NewBackend(newModel(root, maxText), scoring.OptionsFromConfig(root))
	if err := backend.Load(ctx); err != nil {
		return err
	}
	svc := analyzesvc.New(backend, analyzesvc.Options{MaxTextLength: maxText})

	in := analyzedomain.TextInput{Text: string(raw)}
	var out any
	switch *mode {
	case "predict":
		out, err = svc.Predict(ctx, in)
	default:
		out, err = svc.Analyze(ctx, in)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	if *indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
