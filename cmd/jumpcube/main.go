package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"jumpcube/internal/assign"
	"jumpcube/internal/card"
	"jumpcube/internal/export"
	buildlog "jumpcube/internal/log"
	"jumpcube/internal/theme"
	"jumpcube/internal/web"
)

var (
	// Global flags
	verbose         bool
	cardsPath       string
	themesPath      string
	constraintsPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "jumpcube",
	Short: "jumpcube - deterministic themed deck builder",
	Long: `jumpcube partitions a card pool into fixed-size themed decks.

The build runs in five phases: core reservation, dual-color
pre-assignment, scored greedy assignment, quota completion, and
validation with repair. The same inputs always produce the same decks.`,
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

var (
	outPath    string
	traceRun   bool
	serveAddr  string
	validateIn string
)

// buildCmd runs a full build and writes the result
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Partition the card pool into themed decks",
	Long: `Loads the card pool, theme registry, and constraints, runs the
build, and writes the result. The output format follows the file
extension of --out: .json, .csv, or .yaml. With no --out the result
is printed as JSON on stdout.

Example:
  jumpcube build --cards pool.yaml --themes themes.yaml --out decks.yaml`,
	RunE: runBuild,
}

// validateCmd audits a saved deck file without building
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Audit a saved deck file against the catalog and constraints",
	Long: `Loads an exported deck file (--decks) and checks it against the card
pool, theme registry, and constraints: uniqueness across decks, catalog
membership, color identity, and the numeric deck limits. Without
--decks only the input files themselves are checked.`,
	RunE: runValidate,
}

// serveCmd builds once and serves the result over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the decks and serve the result over HTTP",
	Long: `Runs a full build, then serves the result on --addr. Endpoints:

  GET /healthz            liveness and run id
  GET /api/build          the full build result
  GET /api/decks          all deck reports
  GET /api/decks/{theme}  one deck by theme name
  GET /api/themes         the theme registry
  GET /api/leftover       unassigned cards
  GET /ws/events          build event log replay over websocket`,
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cardsPath, "cards", "cards.yaml", "path to the card pool YAML file")
	rootCmd.PersistentFlags().StringVar(&themesPath, "themes", "", "path to the themes YAML file (default: stock registry)")
	rootCmd.PersistentFlags().StringVar(&constraintsPath, "constraints", "", "path to the constraints YAML file (default: built-in)")

	buildCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (.json, .csv, or .yaml)")
	buildCmd.Flags().BoolVar(&traceRun, "trace", false, "print every build event to stderr")

	validateCmd.Flags().StringVar(&validateIn, "decks", "", "saved deck YAML file to audit")

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}

func loadInputs() (*card.Catalog, *theme.Registry, assign.Constraints, error) {
	catalog, err := card.LoadCatalog(cardsPath)
	if err != nil {
		return nil, nil, assign.Constraints{}, fmt.Errorf("load cards: %w", err)
	}

	registry := theme.DefaultRegistry()
	if themesPath != "" {
		registry, err = theme.LoadRegistry(themesPath)
		if err != nil {
			return nil, nil, assign.Constraints{}, fmt.Errorf("load themes: %w", err)
		}
	}

	cons := assign.DefaultConstraints()
	if constraintsPath != "" {
		cons, err = assign.LoadConstraints(constraintsPath)
		if err != nil {
			return nil, nil, assign.Constraints{}, fmt.Errorf("load constraints: %w", err)
		}
	}

	return catalog, registry, cons, nil
}

func runFullBuild() (*assign.Result, *buildlog.MemoryLogger, *theme.Registry, error) {
	catalog, registry, cons, err := loadInputs()
	if err != nil {
		return nil, nil, nil, err
	}

	var eventLogger buildlog.EventLogger
	memLogger := buildlog.NewMemoryLogger()
	eventLogger = memLogger
	if traceRun {
		text := buildlog.NewTextLogger(os.Stderr)
		eventLogger = text
		memLogger = &text.MemoryLogger
	}

	builder, err := assign.NewBuilder(assign.Config{
		Catalog:     catalog,
		Registry:    registry,
		Constraints: cons,
		Logger:      eventLogger,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	logger.Info("building decks",
		zap.Int("pool", catalog.Len()),
		zap.Int("themes", registry.Len()))

	result, err := builder.Run()
	if err != nil {
		return nil, nil, nil, err
	}

	logger.Info("build done",
		zap.String("runId", result.RunID),
		zap.Int("assigned", result.TotalAssigned),
		zap.Int("leftover", len(result.Leftover)))

	return result, memLogger, registry, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	result, _, _, err := runFullBuild()
	if err != nil {
		return err
	}

	for _, d := range result.Decks {
		if d.Shortfall {
			logger.Warn("deck under quota", zap.String("theme", d.Theme), zap.Int("size", len(d.Cards)))
		}
		if d.Unresolved {
			logger.Warn("deck has unresolved violations",
				zap.String("theme", d.Theme),
				zap.Strings("violations", d.Violations))
		}
	}

	if outPath == "" {
		return export.WriteJSON(os.Stdout, result)
	}
	if err := export.WriteFile(outPath, result); err != nil {
		return err
	}
	logger.Info("wrote result", zap.String("path", outPath))
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	catalog, registry, cons, err := loadInputs()
	if err != nil {
		return err
	}
	if err := cons.Validate(); err != nil {
		return err
	}

	need := registry.Len() * cons.TargetDeckSize
	logger.Info("inputs valid",
		zap.Int("pool", catalog.Len()),
		zap.Int("themes", registry.Len()),
		zap.Int("needed", need))
	if catalog.Len() < need {
		logger.Warn("pool smaller than total quota; some decks will come up short",
			zap.Int("pool", catalog.Len()),
			zap.Int("needed", need))
	}

	if validateIn == "" {
		return nil
	}
	df, err := export.LoadDecks(validateIn)
	if err != nil {
		return fmt.Errorf("load decks: %w", err)
	}
	problems := df.Check(catalog, registry, cons)
	for _, p := range problems {
		logger.Warn("deck file problem", zap.String("finding", p))
	}
	if len(problems) > 0 {
		return fmt.Errorf("deck file %s: %d problems found", validateIn, len(problems))
	}
	logger.Info("deck file valid",
		zap.String("path", validateIn),
		zap.Int("decks", len(df.Decks)),
		zap.Int("leftover", len(df.Leftover)))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	result, memLogger, registry, err := runFullBuild()
	if err != nil {
		return err
	}

	srv := web.NewServer(web.Config{
		Logger:   logger,
		Result:   result,
		Registry: registry,
		Events:   memLogger.Events(),
	})
	return srv.ListenAndServe(serveAddr)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
