package replay

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime"

	"github.com/IrineSistiana/dlist/app"
	"github.com/IrineSistiana/dlist/internal/mlog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func init() {
	app.RootCmd().AddCommand(newReplayCmd())
}

func newReplayCmd() *cobra.Command {
	var opts Opts
	c := &cobra.Command{
		Use:   "replay",
		Short: "Replay scenario files against the list",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run scenario files",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			logger := mlog.L()
			opts.Logger = logger
			if err := Run(cmd.Context(), opts); err != nil {
				logger.Fatal().Err(err).Msg("replay failed")
			}
		},
	}
	runCmd.Flags().StringArrayVarP(&opts.Files, "config", "c", nil, "scenario file, can be repeated, .gz files are decompressed")
	runCmd.Flags().IntVarP(&opts.Parallel, "parallel", "p", 0, "maximum number of scenarios run at the same time, default is the number of cpus")
	runCmd.Flags().StringVar(&opts.MetricsAddr, "metrics", "", "serve prometheus metrics at this address")
	runCmd.MarkFlagRequired("config")

	genCmd := &cobra.Command{
		Use:   "gen-template",
		Short: "Generate a scenario template",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logger := mlog.L()
			o := args[0]
			if o == "stdout" {
				if err := genConfigTemplate(os.Stdout); err != nil {
					logger.Fatal().Err(err).Msg("failed to generate template")
				}
				return
			}
			f, err := os.Create(o)
			if err != nil {
				logger.Fatal().Err(err).Msg("failed to create template file")
			}
			defer f.Close()
			if err := genConfigTemplate(f); err != nil {
				logger.Fatal().Err(err).Msg("failed to generate template")
			}
		},
	}

	c.AddCommand(runCmd, genCmd)
	return c
}

type Opts struct {
	Files       []string
	Parallel    int
	MetricsAddr string
	Logger      *zerolog.Logger
}

type Result struct {
	File     string
	Scenario string
	Len      int
	Err      error
}

// Run loads every file in opts and replays all scenarios. Each scenario
// runs on its own list. It returns an error if any file cannot be loaded
// or any scenario fails.
func Run(ctx context.Context, opts Opts) error {
	results, err := run(ctx, opts)
	if err != nil {
		return err
	}
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}

func run(ctx context.Context, opts Opts) ([]Result, error) {
	var logger *zerolog.Logger
	setNonNilLogger(&logger, opts.Logger)
	parallel := 0
	setDefaultGZ(&parallel, opts.Parallel, runtime.NumCPU())

	m := newMetrics()
	if len(opts.MetricsAddr) > 0 {
		reg := newMetricsReg()
		if err := regMetrics(reg, m.Collectors()...); err != nil {
			return nil, fmt.Errorf("failed to register metrics, %w", err)
		}
		l, err := net.Listen("tcp", opts.MetricsAddr)
		if err != nil {
			return nil, fmt.Errorf("failed to start prometheus metrics endpoint server, %w", err)
		}
		logger.Info().Stringer("addr", l.Addr()).Msg("metrics endpoint server started")
		defer l.Close()
		go func() {
			err := http.Serve(l, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			logger.Debug().Err(err).Msg("metrics endpoint exited")
		}()
	}

	type job struct {
		file string
		cfg  *ScenarioConfig
	}
	var jobs []job
	for _, file := range opts.Files {
		cfg, err := loadConfig(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario file %s, %w", file, err)
		}
		logger.Info().Str("file", file).Int("scenarios", len(cfg.Scenarios)).Msg("scenario file loaded")
		for i := range cfg.Scenarios {
			jobs = append(jobs, job{file: file, cfg: &cfg.Scenarios[i]})
		}
	}

	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := &results[i]
			res.File, res.Scenario = j.file, j.cfg.Name

			s := newScenario(j.cfg, m)
			defer s.l.Release()
			res.Err = s.run()
			res.Len = s.l.Len()

			m.finalLen.Observe(float64(res.Len))
			if res.Err != nil {
				m.scenarios.WithLabelValues("failed").Inc()
				logger.Error().
					Str("file", res.File).
					Str("scenario", res.Scenario).
					Err(res.Err).
					Msg("scenario failed")
			} else {
				m.scenarios.WithLabelValues("passed").Inc()
				logger.Info().
					Str("file", res.File).
					Str("scenario", res.Scenario).
					Int("len", res.Len).
					Msg("scenario passed")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func setNonNilLogger(i **zerolog.Logger, s *zerolog.Logger) {
	if s != nil {
		*i = s
	} else {
		*i = mlog.Nop()
	}
}
