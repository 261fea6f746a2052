package main

import (
	"os"
)

const (
	ExamplePseudoInverseFile = `[PseudoInverse]

#######################
# Required Parameters #
#######################

# Input table file. Whitespace-separated numeric columns, one matrix row per
# line.
Input = path/to/input.txt

# Output file the pseudo-inverse is written to, one row per line.
Output = path/to/output.txt

# Names for the input columns, in file order. Repeat the key once per column.
# The matrix is built from these columns in the order given.
Column = bpm1
Column = bpm2
Column = bpm3

#######################
# Optional Parameters #
#######################

# Keep only this many of the largest singular values. 0 keeps all of them.
# LargestSingularValues = 0

# Additionally remove this many of the smallest singular values.
# SmallestSingularValues = 0

# Remove singular values whose ratio to the largest falls below this.
# MinRatio = 0

# Space-separated indices of singular vectors to delete explicitly.
# DeleteVectors = 0 3

# Name of an extra input column holding per-row weights.
# WeightColumn = weight

# Print the singular value report to stdout.
# Verbose = false
`
)

// PseudoInverseConfig is read from the [PseudoInverse] section of the gcfg
// config file.
type PseudoInverseConfig struct {
	// Required
	Input  string
	Output string
	Column []string

	// Optional
	LargestSingularValues  int
	SmallestSingularValues int
	MinRatio               float64
	DeleteVectors          string
	WeightColumn           string
	Verbose                bool
}

type PseudoInverseWrapper struct {
	PseudoInverse PseudoInverseConfig
}

func DefaultPseudoInverseWrapper() *PseudoInverseWrapper {
	con := PseudoInverseConfig{}
	return &PseudoInverseWrapper{con}
}

func (con *PseudoInverseConfig) ValidInput() bool {
	if con.Input == "" {
		return false
	}
	_, err := os.Stat(con.Input)
	return err == nil
}

func (con *PseudoInverseConfig) ValidOutput() bool {
	return con.Output != ""
}

func (con *PseudoInverseConfig) ValidColumns() bool {
	if len(con.Column) == 0 {
		return false
	}
	for _, name := range con.Column {
		if name == "" {
			return false
		}
	}
	return true
}
