package main

import (
	"context"
	"flag"
	"os"

	"wordtower/internal/config"
	"wordtower/internal/graph"
	"wordtower/internal/logger"
	"wordtower/internal/parser"
	"wordtower/internal/roots"
)

func main() {
	input := flag.String("input", "", "Vocabulary text file to import (required)")
	rootsPath := flag.String("roots", "", "Optional YAML root table overriding the built-in one")
	clear := flag.Bool("clear", false, "Clear the graph before importing (WARNING: destructive)")
	batchSize := flag.Int("batch", 0, "Batch size for graph writes (default from IMPORT_BATCH_SIZE)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	if *input == "" {
		log.Fatal("missing required -input flag")
	}
	if *rootsPath == "" {
		*rootsPath = cfg.RootsPath
	}
	if *batchSize <= 0 {
		*batchSize = cfg.ImportBatchSize
	}

	file, err := os.Open(*input)
	if err != nil {
		log.Fatal("failed to open input file", "path", *input, "error", err)
	}
	defer file.Close()

	entries, skipped, err := parser.New(log).ParseLines(file)
	if err != nil {
		log.Fatal("failed to parse input file", "path", *input, "error", err)
	}

	families := roots.DefaultFamilies
	if *rootsPath != "" {
		families, err = roots.LoadFamilies(*rootsPath)
		if err != nil {
			log.Fatal("failed to load root table", "path", *rootsPath, "error", err)
		}
	}
	roots.NewIdentifier(families).Identify(entries)

	stats := parser.Statistics(entries)
	log.Info("parse complete",
		"entries", stats.Total,
		"words", stats.SingleWords,
		"phrases", stats.Phrases,
		"withPhonetic", stats.WithPhonetic,
		"withRoot", stats.WithRoot,
		"roots", stats.Roots,
		"skipped", skipped,
	)

	// Store failures are fatal from here: an import must not silently
	// half-complete beyond the batches already committed.
	ctx := context.Background()
	client, err := graph.NewClient(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to connect to graph store", "error", err)
	}
	defer client.Close(ctx)

	loader := graph.NewLoader(client, log, *batchSize)

	if *clear {
		log.Warn("clearing existing graph data")
		if err := loader.Clear(ctx); err != nil {
			log.Fatal("failed to clear graph", "error", err)
		}
	}

	if err := loader.Load(ctx, entries); err != nil {
		log.Fatal("import failed", "error", err)
	}

	graphStats, err := loader.Stats(ctx)
	if err != nil {
		log.Warn("failed to read graph statistics", "error", err)
		return
	}
	log.Info("graph statistics",
		"words", graphStats.Words,
		"grades", graphStats.Grades,
		"roots", graphStats.Roots,
		"belongsTo", graphStats.BelongsTo,
		"hasRoot", graphStats.HasRoot,
		"sameRoot", graphStats.SameRoot,
	)
}
