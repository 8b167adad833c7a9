// Command asm is the two-pass assembler's CLI front end: it reads a textual
// source file, drives the fixed-point assembler to convergence, and writes
// the resulting 65536-byte binary image (spec.md §6).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kstephano/vx16/internal/assemble"
	"github.com/kstephano/vx16/internal/image"
	"github.com/kstephano/vx16/internal/textasm"
)

func main() {
	var output string

	rootCmd := &cobra.Command{
		Use:   "asm <source-file>",
		Short: "Assemble a vx16 source file into a fixed-size binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return assembleFile(args[0], output)
		},
	}
	rootCmd.Flags().StringVarP(&output, "output", "o", "a.img", "path to write the assembled image")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func assembleFile(srcPath, outPath string) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("asm: %w", err)
	}

	program, resolve, err := textasm.Parse(string(src))
	if err != nil {
		return fmt.Errorf("asm: %w", err)
	}

	img, err := assemble.Assemble(program, resolve)
	if err != nil {
		return fmt.Errorf("asm: %w", err)
	}

	if err := image.Save(outPath, img); err != nil {
		return fmt.Errorf("asm: %w", err)
	}

	fmt.Printf("asm: wrote %s (%d instructions)\n", outPath, len(program.Instances))
	return nil
}
