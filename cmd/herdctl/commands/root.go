package commands

import (
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	mem "herdbook/internal/adapters/storage/memory"
	"herdbook/internal/domain/exports"
	"herdbook/internal/domain/herds"
	"herdbook/internal/platform/logger"
)

var (
	seed      uint64
	herdCount int
	verbose   bool

	herdsSvc   *herds.Service
	exportsSvc *exports.Service

	// stdout se reemplaza en tests.
	stdout io.Writer = os.Stdout
	now              = time.Now
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "herdctl",
		Short:        "Offline tools over the demo herd inventory",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s := seed
			if s == 0 {
				s = uint64(now().UnixNano())
			}

			lvl := logger.Warn
			if verbose {
				lvl = logger.Debug
			}
			log := logger.New(logger.Options{Level: lvl, App: "herdctl", Output: cmd.ErrOrStderr()})

			demo := herds.DemoHerds(rand.New(rand.NewPCG(s, s)), herds.SeedOptions{Herds: herdCount, Now: now()})
			herdsSvc = herds.NewService(mem.NewHerdRepo(demo), herds.WithLogger(log), herds.WithClock(now))
			exportsSvc = exports.NewService(exports.Deps{Herds: herdsSvc, Logger: log, Now: now})
			log.Debug("demo inventory ready", logger.Fields{"seed": s, "herds": len(demo)})
			return nil
		},
	}

	root.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed for the demo data (0 = time based)")
	root.PersistentFlags().IntVar(&herdCount, "herds", 5, "number of demo herds")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(exportCmd(), rowsCmd(), monthlyCmd())
	return root
}
