// Package model provides the simulated model metadata: hyperparameters,
// the output vocabulary, and the toy tokenizer.
package model

import "fmt"

// Params holds the hyperparameters of the simulated model.
// Values are reported constants, not measurements.
type Params struct {
	// ModelType is the display name of the simulated model.
	ModelType string `json:"model_type"`

	// Layers is the number of transformer layers. Default: 22.
	Layers int `json:"layers"`

	// EmbeddingDim is the embedding dimension. Default: 2048.
	EmbeddingDim int `json:"embedding_dim"`

	// Heads is the number of attention heads. Default: 32.
	Heads int `json:"heads"`

	// ContextTokens is the context window size in tokens. Default: 2048.
	ContextTokens int `json:"context_tokens"`

	// VocabSize is the reported model vocabulary size. This is the
	// size the real model would have, not the size of the sampling
	// pool. Default: 32000.
	VocabSize int `json:"vocab_size"`

	// Temperature is the reported sampling temperature. Default: 0.8.
	Temperature float64 `json:"temperature"`

	// TopK is the reported top-k sampling cutoff. Default: 40.
	TopK int `json:"top_k"`

	// TopP is the reported nucleus sampling cutoff. Default: 0.95.
	TopP float64 `json:"top_p"`

	// ReservedMemoryMB is the reported reserved memory in MB.
	// Default: 2048.
	ReservedMemoryMB int `json:"reserved_memory_mb"`

	// UsedMemoryMB is the reported used memory in MB. Default: 637.
	UsedMemoryMB int `json:"used_memory_mb"`
}

// DefaultParams returns Params with TinyLlama-1.1B based values.
func DefaultParams() *Params {
	return &Params{
		ModelType:        "TinyLlama-1.1B",
		Layers:           22,
		EmbeddingDim:     2048,
		Heads:            32,
		ContextTokens:    2048,
		VocabSize:        32000,
		Temperature:      0.80,
		TopK:             40,
		TopP:             0.95,
		ReservedMemoryMB: 2048,
		UsedMemoryMB:     637,
	}
}

// Validate checks that the parameters describe a usable model.
func (p *Params) Validate() error {
	if p.ModelType == "" {
		return fmt.Errorf("model type must not be empty")
	}
	if p.Layers <= 0 {
		return fmt.Errorf("layers must be positive, got %d", p.Layers)
	}
	if p.EmbeddingDim <= 0 {
		return fmt.Errorf("embedding dimension must be positive, got %d", p.EmbeddingDim)
	}
	if p.Heads <= 0 {
		return fmt.Errorf("heads must be positive, got %d", p.Heads)
	}
	if p.EmbeddingDim%p.Heads != 0 {
		return fmt.Errorf("embedding dimension %d not divisible by %d heads",
			p.EmbeddingDim, p.Heads)
	}
	if p.ContextTokens <= 0 {
		return fmt.Errorf("context size must be positive, got %d", p.ContextTokens)
	}
	if p.VocabSize <= 0 {
		return fmt.Errorf("vocabulary size must be positive, got %d", p.VocabSize)
	}
	if p.Temperature < 0 {
		return fmt.Errorf("temperature must not be negative, got %g", p.Temperature)
	}
	if p.TopK <= 0 {
		return fmt.Errorf("top-k must be positive, got %d", p.TopK)
	}
	if p.TopP <= 0 || p.TopP > 1 {
		return fmt.Errorf("top-p must be in (0, 1], got %g", p.TopP)
	}
	if p.ReservedMemoryMB <= 0 {
		return fmt.Errorf("reserved memory must be positive, got %d", p.ReservedMemoryMB)
	}
	if p.UsedMemoryMB < 0 || p.UsedMemoryMB > p.ReservedMemoryMB {
		return fmt.Errorf("used memory %d MB outside reservation of %d MB",
			p.UsedMemoryMB, p.ReservedMemoryMB)
	}
	return nil
}
