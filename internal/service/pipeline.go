package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mirae/creator-studio-go/internal/domain"
)

// Pipeline chains the three stages strictly forward: the analysis output
// feeds generation, the chosen variant feeds beautification. No state is held
// between runs; everything flows through the result bundle.
type Pipeline struct {
	analyzer   *Analyzer
	generator  *Generator
	beautifier *Beautifier
	logger     *zap.Logger
}

func NewPipeline(analyzer *Analyzer, generator *Generator, beautifier *Beautifier, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		analyzer:   analyzer,
		generator:  generator,
		beautifier: beautifier,
		logger:     logger,
	}
}

// Run executes analyze → generate → beautify for one piece of raw input.
// variantID selects which generated variant to beautify; 0 takes the first
// survivor.
func (p *Pipeline) Run(ctx context.Context, rawInput string, platform domain.Platform, variantID int) (*domain.PipelineResult, error) {
	analysis, err := p.analyzer.Analyze(ctx, rawInput, platform)
	if err != nil {
		return nil, err
	}

	generation, err := p.generator.Generate(ctx, analysis.Platform, analysis.Style, analysis.Keywords, analysis.CoreViews)
	if err != nil {
		return nil, err
	}

	variant := selectVariant(generation.Variants, variantID)
	if variantID != 0 && variant.ID != variantID {
		p.logger.Warn("Requested variant not found, using first",
			zap.Int("requested", variantID),
			zap.Int("selected", variant.ID),
		)
	}

	beautification, err := p.beautifier.Beautify(ctx, domain.BeautifyInput{
		Platform: analysis.Platform,
		Style:    analysis.Style,
		Title:    variant.Title,
		Body:     variant.Body,
	})
	if err != nil {
		return nil, err
	}

	return &domain.PipelineResult{
		RawInput:        rawInput,
		Analysis:        analysis,
		Generation:      generation,
		SelectedVariant: &variant,
		Beautification:  beautification,
	}, nil
}

func selectVariant(variants []domain.ContentVariant, id int) domain.ContentVariant {
	if id != 0 {
		for _, v := range variants {
			if v.ID == id {
				return v
			}
		}
	}
	return variants[0]
}
