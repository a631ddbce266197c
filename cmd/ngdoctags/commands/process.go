package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/ngdoctags/internal/config"
	"git.home.luguber.info/inful/ngdoctags/internal/foundation/errors"
	"git.home.luguber.info/inful/ngdoctags/internal/logfields"
	"git.home.luguber.info/inful/ngdoctags/internal/metrics"
	"git.home.luguber.info/inful/ngdoctags/internal/process"
	"git.home.luguber.info/inful/ngdoctags/internal/watch"
)

// ProcessCmd implements the 'process' command.
type ProcessCmd struct {
	Input       string `arg:"" help:"Input document (YAML or JSON) listing the entities to process" type:"path"`
	Output      string `short:"o" help:"Output file (defaults to output.path from the config, or stdout)" type:"path"`
	Format      string `short:"f" help:"Output format: json or yaml (defaults to output.format from the config)"`
	Watch       bool   `short:"w" help:"Re-process whenever the input changes"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in textfile format after each run" type:"path"`
}

func (p *ProcessCmd) Run(g *Global) error {
	cfg, err := g.Config()
	if err != nil {
		return err
	}
	if err := p.resolve(cfg); err != nil {
		return err
	}

	var rec metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if cfg.Metrics.Textfile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		rec = prom
	}

	dict, err := setup(cfg, rec)
	if err != nil {
		return err
	}
	run := &processRun{
		cmd:       p,
		cfg:       cfg,
		out:       g.Out,
		processor: process.New(dict, process.WithRecorder(rec)),
		prom:      prom,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run.once(ctx); err != nil {
		if !p.Watch {
			return err
		}
		slog.Error("Processing failed", logfields.Input(p.Input), logfields.Error(err))
	}
	if !p.Watch {
		return nil
	}

	debounce, err := cfg.DebounceDuration()
	if err != nil {
		return errors.ConfigError("invalid watch debounce").WithCause(err).Build()
	}
	w, err := watch.New([]string{p.Input}, debounce, func(ctx context.Context) {
		if err := run.once(ctx); err != nil {
			slog.Error("Processing failed", logfields.Input(p.Input), logfields.Error(err))
		}
	})
	if err != nil {
		return err
	}
	slog.Info("Watching for changes", logfields.Input(p.Input), slog.Duration("debounce", debounce))
	return w.Run(ctx)
}

// resolve merges flags over the configuration: flags win when set.
func (p *ProcessCmd) resolve(cfg *config.Config) error {
	if p.Format != "" {
		f, err := config.ParseOutputFormat(p.Format)
		if err != nil {
			return err
		}
		cfg.Output.Format = f
	}
	if p.Output != "" {
		cfg.Output.Path = p.Output
	}
	if p.MetricsFile != "" {
		cfg.Metrics.Textfile = p.MetricsFile
	}
	return nil
}

type processRun struct {
	cmd       *ProcessCmd
	cfg       *config.Config
	out       io.Writer
	processor *process.Processor
	prom      *metrics.PrometheusRecorder
}

func (r *processRun) once(ctx context.Context) error {
	start := time.Now()
	doc, err := process.LoadDocument(r.cmd.Input)
	if err != nil {
		return err
	}

	res, err := r.processor.Process(ctx, doc)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		slog.Warn("Tag not applied", logfields.Entity(w.Entity), logfields.Tag(w.Tag), slog.String("reason", w.Message))
	}

	if err := r.write(res); err != nil {
		return err
	}

	if r.prom != nil {
		if err := r.prom.WriteTextfile(r.cfg.Metrics.Textfile); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to write metrics textfile").
				WithContext(logfields.KeyOutput, r.cfg.Metrics.Textfile).
				Build()
		}
	}

	slog.Info("Processing complete",
		logfields.Input(r.cmd.Input),
		logfields.EntityCount(len(res.Doclets)),
		logfields.Format(string(r.cfg.Output.Format)),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return nil
}

func (r *processRun) write(res *process.Result) error {
	path := r.cfg.Output.Path
	if path == "" {
		return res.Encode(r.out, r.cfg.Output.Format)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create output file").
			WithContext(logfields.KeyOutput, path).
			Build()
	}
	if err := res.Encode(f, r.cfg.Output.Format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to close output file").
			WithContext(logfields.KeyOutput, path).
			Build()
	}
	return nil
}
