package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/go_answer_normalization/internal/adapters/logger"
	"github.com/baditaflorin/go_answer_normalization/internal/adapters/stream"
	"github.com/baditaflorin/go_answer_normalization/internal/catalog"
	"github.com/baditaflorin/go_answer_normalization/pkg/answer"
	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "normalize <category> <input>",
		Short: "Print the canonical form of an answer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := answer.New(answer.WithoutLogging())
			if err != nil {
				return err
			}
			v := n.NormalizeName(args[0], args[1])
			if asJSON {
				return writeJSON(cmd, v)
			}
			status := "parsed"
			if !v.Parsed() {
				status = "unparsed"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", v.Kind(), v.String(), status)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newGradeCmd() *cobra.Command {
	var (
		strict bool
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "grade <category> <answer> <reference>",
		Short: "Grade an answer against the reference answer",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy := answer.Lenient
			if strict {
				policy = answer.Strict
			}
			n, err := answer.New(answer.WithoutLogging(), answer.WithPolicy(policy))
			if err != nil {
				return err
			}
			v := n.Grade(cmd.Context(), answer.ParseCategory(args[0]), args[1], args[2])
			if asJSON {
				return writeJSON(cmd, v)
			}
			verdict := "wrong"
			if v.Correct {
				verdict = "correct"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", verdict, v.Reason, v.Answer.String(), v.Reference.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "treat unparsed answers as wrong")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newBatchCmd() *cobra.Command {
	var (
		strict  bool
		workers int
	)
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Normalize or grade tab-separated answers, one JSON result per line",
		Long: "Each input line is \"category<TAB>answer\" or \"category<TAB>answer<TAB>reference\".\n" +
			"Blank lines and lines starting with # are skipped. Reads stdin without a file or with \"-\".",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			policy := answer.Lenient
			if strict {
				policy = answer.Strict
			}
			n, err := answer.New(answer.WithoutLogging(), answer.WithPolicy(policy), answer.WithCacheSize(1024))
			if err != nil {
				return err
			}

			p := stream.NewProcessor(logger.NewNop(), n, stream.Config{Workers: workers})
			stats, err := p.Process(cmd.Context(), in, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "records=%d normalized=%d graded=%d correct=%d invalid=%d\n",
				stats.Records, stats.Normalized, stats.Graded, stats.Correct, stats.Invalid)
			return err
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "treat unparsed answers as wrong")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = number of CPUs)")
	return cmd
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List question categories in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range catalog.QuestionCategories() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", d.ID, d.Icon, d.Style); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
