package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/jonathan/resume-parser/internal/reconcile"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

// maxConcurrentParses bounds how many documents parse in parallel
const maxConcurrentParses = 4

// outputMu serializes result output so concurrent parses never interleave
// JSON documents on a shared writer
var outputMu sync.Mutex

var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Parse resume files into structured JSON",
	Long:  "Parse one or more resume files (plain text or HTML) into validated structured resume JSON, optionally improving the heuristic extraction with an AI pass.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var (
	parseUseAI      bool
	parseAPIKey     string
	parseModel      string
	parseConfigPath string
	parseOutDir     string
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().BoolVar(&parseUseAI, "ai", false, "Enable the AI extraction pass (requires an API key)")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseCmd.Flags().StringVar(&parseModel, "model", "", "Gemini model name")
	parseCmd.Flags().StringVarP(&parseConfigPath, "config", "c", "", "Path to JSON config file")
	parseCmd.Flags().StringVarP(&parseOutDir, "out", "o", "", "Directory for result JSON files (default: stdout)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print result summaries")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}
	if parseConfigPath != "" {
		loaded, err := config.LoadConfig(parseConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	useAI := parseUseAI || cfg.UseAI
	verbose := parseVerbose || cfg.Verbose
	outDir := parseOutDir
	if outDir == "" {
		outDir = cfg.OutDir
	}

	opts := pipeline.Options{
		UseAI:   useAI,
		Merge:   mergeConfig(cfg),
		Weights: weights(cfg),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if useAI {
		apiKey := parseAPIKey
		if apiKey == "" {
			apiKey = cfg.APIKey
		}
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("API key is required for --ai (set GEMINI_API_KEY or use --api-key)")
		}

		model := parseModel
		if model == "" {
			model = cfg.Model
		}
		executor, err := llm.NewGeminiExecutor(ctx, apiKey, model)
		if err != nil {
			return fmt.Errorf("failed to create executor: %w", err)
		}
		defer func() { _ = executor.Close() }()
		opts.Executor = executor
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentParses)

	for _, path := range args {
		path := path
		group.Go(func() error {
			return parseOne(ctx, path, outDir, verbose, opts)
		})
	}
	return group.Wait()
}

// parseOne ingests, parses, and writes the result for a single file
func parseOne(ctx context.Context, path, outDir string, verbose bool, opts pipeline.Options) error {
	doc, err := ingest(path)
	if err != nil {
		return err
	}

	result, err := pipeline.Parse(ctx, doc, opts)
	if err != nil {
		// The pipeline still produced a minimal fallback result; report the
		// failure but write what we have.
		fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", path, err)
	}

	if verbose {
		outputMu.Lock()
		observability.NewPrinter(os.Stdout).PrintResult(result)
		outputMu.Unlock()
	}
	return writeResult(os.Stdout, path, outDir, result)
}

// ingest selects the ingestion path by file extension
func ingest(path string) (*types.RawDocument, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".html" || ext == ".htm" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return ingestion.FromHTML(string(content))
	}

	doc, _, err := ingestion.FromFile(path)
	return doc, err
}

// writeResult writes the result JSON to outDir or to out
func writeResult(out io.Writer, inputPath, outDir string, result *types.ReconciliationResult) error {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	outputMu.Lock()
	defer outputMu.Unlock()

	if outDir == "" {
		_, _ = fmt.Fprintln(out, string(jsonBytes))
		return nil
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	outPath := filepath.Join(outDir, base+".parsed.json")
	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	_, _ = fmt.Fprintf(out, "Wrote %s\n", outPath)
	return nil
}

// mergeConfig builds reconciliation thresholds from config overrides
func mergeConfig(cfg *config.Config) *reconcile.Config {
	merge := reconcile.DefaultConfig()
	if cfg.ExperienceMatchThreshold > 0 {
		merge.ExperienceMatchThreshold = cfg.ExperienceMatchThreshold
	}
	if cfg.SkillCategoryThreshold > 0 {
		merge.SkillCategoryThreshold = cfg.SkillCategoryThreshold
	}
	if cfg.SkillItemDuplicateThreshold > 0 {
		merge.SkillItemDuplicateThreshold = cfg.SkillItemDuplicateThreshold
	}
	return &merge
}

// weights builds scoring weights from config overrides
func weights(cfg *config.Config) *scoring.Weights {
	w := scoring.DefaultWeights()
	if cfg.AIBonus > 0 {
		w.AIBonus = cfg.AIBonus
	}
	if cfg.ValidationPenalty > 0 {
		w.ValidationPenalty = cfg.ValidationPenalty
	}
	if cfg.ImprovementBonus > 0 {
		w.ImprovementBonus = cfg.ImprovementBonus
	}
	return &w
}
