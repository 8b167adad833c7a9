// Command sim is the simulator's CLI front end: it loads a binary image,
// then advances the CPU one micro-cycle per stdin character consumed,
// dumping state after each (spec.md §6). Exit codes: 0 clean EOF, 1 wrong
// argument count, 2 bad input file length.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kstephano/vx16/internal/cpu"
	"github.com/kstephano/vx16/internal/debug"
	"github.com/kstephano/vx16/internal/display"
	"github.com/kstephano/vx16/internal/image"
)

func main() {
	var configPath string
	var debugMode bool

	rootCmd := &cobra.Command{
		Use:   "simulator <program-file>",
		Short: "Run a vx16 binary image one micro-cycle at a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulator(args[0], configPath, debugMode)
		},
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVar(&configPath, "config", "", "TOML file with display preferences")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "enter single-step debug mode instead of the plain stdin-driven console")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, image.ErrBadInputLength) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func runSimulator(path, configPath string, debugMode bool) error {
	img, err := image.Load(path)
	if err != nil {
		return err
	}

	cfg := display.DefaultConfig()
	if configPath != "" {
		cfg, err = display.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("sim: %w", err)
		}
	}

	c := cpu.New()
	c.LoadImage(img)

	if debugMode {
		debug.Run(c, cfg, os.Stdin, os.Stdout)
		return nil
	}

	buf := make([]byte, 1)
	for {
		_, err := os.Stdin.Read(buf)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("sim: %w", err)
		}
		c.Update()
		display.Dump(os.Stdout, c, cfg)
	}
}
