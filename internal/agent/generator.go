package agent

import "context"

//go:generate mockgen -source=generator.go -destination=mock/mock.go Generator

// Prompt is a single request to a language model.
type Prompt struct {
	Model  string
	System string
	User   string
}

// Generator produces a result for a prompt.
type Generator interface {
	Generate(ctx context.Context, p Prompt) (Result, error)
}
