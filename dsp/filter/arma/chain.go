package arma

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Filter is the capability shared by all digital filters: apply the filter
// to a sequence, evaluate the frequency response, and report the warmup
// length the filter needs before its output is settled.
//
// Sequences are dense matrices with rows ordered by time index and columns
// holding independent channels.
type Filter interface {
	Filter(input mat.Matrix) (*mat.Dense, error)
	FrequencyResponse(length int) ([]complex128, error)
	Warmup() int
}

// Chain applies an ordered list of filters in sequence. The chain owns its
// stages exclusively; stage order defines application order.
type Chain struct {
	stages []Filter
}

// NewChain creates a chain over the given stages. The slice is copied.
func NewChain(stages ...Filter) *Chain {
	return &Chain{stages: append([]Filter(nil), stages...)}
}

// Len returns the number of stages.
func (c *Chain) Len() int {
	return len(c.stages)
}

// Filter feeds input through every stage in order, each stage consuming the
// previous stage's output. An empty chain returns a copy of the input.
// Stage errors propagate unchanged apart from added stage context.
func (c *Chain) Filter(input mat.Matrix) (*mat.Dense, error) {
	output := mat.DenseCopyOf(input)
	for i, stage := range c.stages {
		next, err := stage.Filter(output)
		if err != nil {
			return nil, fmt.Errorf("arma: chain stage %d: %w", i, err)
		}
		output = next
	}
	return output, nil
}

// FrequencyResponse returns the element-wise product of every stage's
// response over the one-sided grid of a real signal with the given length,
// (length+2)/2 bins. An empty chain yields the all-ones response.
func (c *Chain) FrequencyResponse(length int) ([]complex128, error) {
	response := make([]complex128, (length+2)/2)
	for k := range response {
		response[k] = 1
	}

	for i, stage := range c.stages {
		h, err := stage.FrequencyResponse(length)
		if err != nil {
			return nil, fmt.Errorf("arma: chain stage %d: %w", i, err)
		}
		for k := range h {
			response[k] *= h[k]
		}
	}

	return response, nil
}
