package main

import (
	"github.com/spf13/cobra"

	"habit-notes/pkg/textsim"
)

type similarityView struct {
	A          string  `json:"a"          yaml:"a"`
	B          string  `json:"b"          yaml:"b"`
	Distance   int     `json:"distance"   yaml:"distance"`
	Similarity float64 `json:"similarity" yaml:"similarity"`
	Duplicate  bool    `json:"duplicate"  yaml:"duplicate"`
}

func newSimilarityCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "similarity <a> <b>",
		Short: "Show how similar two reminder texts are and whether they dedupe",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := args[0], args[1]
			return writeOutput(cmd.OutOrStdout(), opts.output, similarityView{
				A:          a,
				B:          b,
				Distance:   textsim.Distance(a, b),
				Similarity: textsim.Similarity(a, b),
				Duplicate:  textsim.IsDuplicate(a, b),
			})
		},
	}
}
