// labsctl is the command line front end for the labs toolkit: run the
// exhaustive ground-truth search, score sequences, inspect coupling
// structure, and browse the optima catalog.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/labs/bruteforce"
	"github.com/katalvlaran/labs/catalog"
	"github.com/katalvlaran/labs/energy"
	"github.com/katalvlaran/labs/interactions"
	"github.com/katalvlaran/labs/sequence"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "labsctl",
	Short: "labsctl - LABS ground truth and scoring tools",
	Long: `labsctl drives the labs toolkit for the Low Autocorrelation
Binary Sequence problem.

It establishes exact ground truth for small N by exhaustive search,
scores ±1 sequences (energy, autocorrelation spectrum, merit factor),
prints the 2-body/4-body coupling structure, and keeps a local SQLite
catalog of best-known configurations.

Sequences are written in compact "+-" notation, e.g. "+-+++".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// searchCmd runs the exhaustive oracle and optionally records the
// result in the catalog.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Exhaustively search all 2^N sequences for the global minimum",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("n")
		workers, _ := cmd.Flags().GetInt("workers")
		dbPath, _ := cmd.Flags().GetString("db")

		logger.Debug("starting exhaustive search",
			zap.Int("n", n),
			zap.Int("workers", workers))

		start := time.Now()
		res, err := bruteforce.Search(cmd.Context(), n, bruteforce.WithWorkers(workers))
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		logger.Info("search finished",
			zap.Int("n", n),
			zap.Int64("energy", res.Energy),
			zap.String("best", res.Best.String()),
			zap.Duration("elapsed", elapsed))

		fmt.Printf("n=%d best=%s energy=%d elapsed=%s\n", n, res.Best, res.Energy, elapsed.Round(time.Millisecond))

		if dbPath == "" {
			return nil
		}
		return record(cmd.Context(), dbPath, catalog.Record{
			N:       n,
			Energy:  res.Energy,
			Best:    res.Best,
			Workers: workers,
			Elapsed: elapsed,
		})
	},
}

// energyCmd scores a single sequence given in "+-" notation.
var energyCmd = &cobra.Command{
	Use:   "energy SEQUENCE",
	Short: "Score a ±1 sequence: energy, spectrum, merit factor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sequence.Parse(args[0])
		if err != nil {
			return err
		}

		e, err := energy.Energy(s)
		if err != nil {
			return err
		}
		spec, err := energy.Spectrum(s)
		if err != nil {
			return err
		}

		fmt.Printf("n=%d energy=%d spectrum=%v\n", len(s), e, spec)

		f, err := energy.MeritFactor(s)
		switch {
		case err == nil:
			fmt.Printf("merit=%.4f\n", f)
		case errors.Is(err, energy.ErrTooShort), errors.Is(err, energy.ErrZeroEnergy):
			logger.Debug("merit factor undefined", zap.Error(err))
		default:
			return err
		}
		return nil
	},
}

// interactionsCmd prints the coupling index sets for a given length.
var interactionsCmd = &cobra.Command{
	Use:   "interactions",
	Short: "Print the 2-body and 4-body coupling index sets for N",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("n")

		g2, g4, err := interactions.Generate(n)
		if err != nil {
			return err
		}

		fmt.Printf("n=%d |G2|=%d |G4|=%d\n", n, len(g2), len(g4))
		fmt.Println("G2:", g2)
		fmt.Println("G4:", g4)
		return nil
	},
}

// showCmd reads the optima catalog.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show recorded ground-truth results",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		n, _ := cmd.Flags().GetInt("n")

		store := catalog.New(dbPath)
		if err := store.Init(cmd.Context()); err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		if cmd.Flags().Changed("n") {
			rec, ok, err := store.Get(cmd.Context(), n)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no record for n=%d", n)
			}
			printRecord(rec)
			return nil
		}

		recs, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, rec := range recs {
			printRecord(rec)
		}
		return nil
	},
}

// record upserts one search outcome into the catalog at dbPath.
func record(ctx context.Context, dbPath string, rec catalog.Record) error {
	store := catalog.New(dbPath)
	if err := store.Init(ctx); err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Put(ctx, rec); err != nil {
		return err
	}
	logger.Info("result recorded",
		zap.String("db", dbPath),
		zap.Int("n", rec.N),
		zap.Int64("energy", rec.Energy))
	return nil
}

func printRecord(rec catalog.Record) {
	fmt.Printf("n=%d best=%s energy=%d workers=%d elapsed=%s run=%s at=%s\n",
		rec.N, rec.Best, rec.Energy, rec.Workers,
		rec.Elapsed.Round(time.Millisecond), rec.RunID,
		rec.CreatedAt.Format(time.RFC3339))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	searchCmd.Flags().Int("n", 0, "sequence length (0..30)")
	searchCmd.Flags().Int("workers", 1, "number of concurrent shard workers")
	searchCmd.Flags().String("db", "", "optional sqlite catalog to record the result in")
	_ = searchCmd.MarkFlagRequired("n")

	interactionsCmd.Flags().Int("n", 0, "sequence length")
	_ = interactionsCmd.MarkFlagRequired("n")

	showCmd.Flags().String("db", "", "sqlite catalog path")
	showCmd.Flags().Int("n", 0, "show a single length instead of the full table")
	_ = showCmd.MarkFlagRequired("db")

	rootCmd.AddCommand(searchCmd, energyCmd, interactionsCmd, showCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
