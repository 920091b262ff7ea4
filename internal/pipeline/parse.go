// Package pipeline provides the high-level orchestration for resume
// parsing: segmentation, heuristic extraction, the optional AI pass,
// reconciliation, validation, and confidence scoring.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/resume-parser/internal/aigen"
	"github.com/jonathan/resume-parser/internal/extractor"
	"github.com/jonathan/resume-parser/internal/ids"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/reconcile"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/segmenter"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/validation"
)

// ProgressEvent reports a pipeline stage transition
type ProgressEvent struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// ProgressCallback is called as the pipeline advances through its stages
type ProgressCallback func(event ProgressEvent)

// Options configure one parse call
type Options struct {
	// UseAI enables the AI candidate pass. Requires Executor.
	UseAI bool
	// Executor is the injected prompt-execution capability. Ignored when
	// UseAI is false.
	Executor llm.Executor
	// IDs generates entry identifiers; defaults to random UUIDs
	IDs ids.Generator
	// Merge overrides the reconciliation thresholds
	Merge *reconcile.Config
	// Weights overrides the confidence scoring weights
	Weights *scoring.Weights
	// OnProgress, when set, receives stage transitions
	OnProgress ProgressCallback
}

func (o *Options) generator() ids.Generator {
	if o.IDs != nil {
		return o.IDs
	}
	return ids.UUIDGenerator{}
}

func (o *Options) mergeConfig() reconcile.Config {
	if o.Merge != nil {
		return *o.Merge
	}
	return reconcile.DefaultConfig()
}

func (o *Options) weights() scoring.Weights {
	if o.Weights != nil {
		return *o.Weights
	}
	return scoring.DefaultWeights()
}

func (o *Options) progress(stage, message string) {
	if o.OnProgress != nil {
		o.OnProgress(ProgressEvent{Stage: stage, Message: message})
	}
}

// Parse is the single public entry point of the parsing core. It always
// returns a ReconciliationResult; degraded paths are reported through
// warnings, validationErrors, and confidence rather than errors. The only
// error case is a failure of the heuristic path itself, and even then the
// returned result carries a minimal fallback resume.
func Parse(ctx context.Context, doc *types.RawDocument, opts Options) (result *types.ReconciliationResult, err error) {
	start := time.Now()
	gen := opts.generator()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("heuristic extraction failed: %v", r)
			result = &types.ReconciliationResult{
				Resume:           extractor.MinimalFallback(doc.Text),
				Confidence:       opts.weights().Floor,
				Method:           types.MethodFallback,
				Improvements:     []string{},
				Warnings:         []string{err.Error()},
				ValidationErrors: []string{},
				ProcessingTimeMs: time.Since(start).Milliseconds(),
			}
		}
	}()

	opts.progress("segment", "segmenting document")
	sections := segmenter.Segment(doc)

	opts.progress("extract", "running heuristic extraction")
	heuristic := extractor.Extract(doc, sections, gen)

	if !opts.UseAI || opts.Executor == nil {
		return finishHeuristic(heuristic, nil, start, opts), nil
	}

	opts.progress("ai", "generating AI candidate")
	warnings := []string{}
	aiCandidate, aiErr := aigen.Generate(ctx, doc, heuristic, opts.Executor, gen)
	if aiErr != nil {
		warnings = append(warnings, fmt.Sprintf("AI extraction unavailable: %v", aiErr))
		return finishHeuristic(heuristic, warnings, start, opts), nil
	}

	opts.progress("reconcile", "merging candidates")
	merged := reconcile.Reconcile(heuristic, aiCandidate, opts.mergeConfig())
	warnings = append(warnings, merged.Warnings...)

	opts.progress("validate", "validating merged resume")
	outcome := validation.Validate(merged.Resume)
	if !outcome.OK {
		// Demotion: the merged result failed structural validation, so the
		// heuristic resume is returned with the attempt's errors preserved.
		warnings = append(warnings, "merged resume failed validation; demoted to heuristic result")
		confidence := scoring.Score(heuristic.Confidence, true, len(outcome.Errors), 0, opts.weights())
		return &types.ReconciliationResult{
			Resume:           heuristic.Resume,
			Confidence:       confidence,
			Method:           types.MethodHeuristic,
			Improvements:     []string{},
			Warnings:         warnings,
			ValidationErrors: outcome.Strings(),
			ProcessingTimeMs: time.Since(start).Milliseconds(),
		}, nil
	}

	confidence := scoring.Score(heuristic.Confidence, true, 0, len(merged.Improvements), opts.weights())
	return &types.ReconciliationResult{
		Resume:           merged.Resume,
		Confidence:       confidence,
		Method:           types.MethodAIEnhanced,
		Improvements:     merged.Improvements,
		Warnings:         warnings,
		ValidationErrors: []string{},
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// finishHeuristic wraps the heuristic candidate as the final result when
// the AI pass was skipped or failed
func finishHeuristic(heuristic *types.ExtractionCandidate, warnings []string, start time.Time, opts Options) *types.ReconciliationResult {
	if warnings == nil {
		warnings = []string{}
	}
	return &types.ReconciliationResult{
		Resume:           heuristic.Resume,
		Confidence:       scoring.Score(heuristic.Confidence, false, 0, 0, opts.weights()),
		Method:           types.MethodHeuristic,
		Improvements:     []string{},
		Warnings:         warnings,
		ValidationErrors: []string{},
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
}
