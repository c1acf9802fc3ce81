package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgPath string
	rootCmd = &cobra.Command{
		Use:   "answernorm",
		Short: "Normalize and grade dictation exercise answers",
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newNormalizeCmd())
	rootCmd.AddCommand(newGradeCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newCategoriesCmd())
}
