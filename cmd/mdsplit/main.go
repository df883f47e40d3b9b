// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mdsplit CLI, which splits a
// markdown document into per-section files at headers of a chosen level.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mdsplit/internal/splitter"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the mdsplit CLI. The split itself runs on
// the root command so the surface stays a single invocation:
// mdsplit --input doc.md --tag h2 --output ./split_markdown
var rootCmd = &cobra.Command{
	Use:   "mdsplit",
	Short: "Split a markdown file into multiple files by header level",
	Long: `mdsplit reads a markdown document and splits it into multiple files,
creating a new file for each header of the chosen level (h1 through h6).
Content before the first matching header goes to 00_introduction.md; every
other file starts with its header line and is named from the header text,
prefixed with its ordinal.

Headers of other levels are not split points: with --tag h2, a "### Sub"
line stays embedded in its enclosing section.`,
	SilenceUsage: true,
	RunE:         runSplit,
}

func runSplit(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	tag := resolveString(cmd, "tag")
	output := resolveString(cmd, "output")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	withManifest, _ := cmd.Flags().GetBool("manifest")

	level, err := splitter.ParseTag(tag)
	if err != nil {
		return err
	}

	doc, err := splitter.ReadDocument(input)
	if err != nil {
		return err
	}

	segments, err := splitter.Split(doc, level)
	if err != nil {
		return err
	}

	if dryRun {
		for _, seg := range segments {
			if seg.Header == "" {
				fmt.Println(seg.Filename)
				continue
			}
			fmt.Printf("%s  (%s)\n", seg.Filename, seg.Header)
		}
		return nil
	}

	written, err := splitter.WriteSegments(segments, output)
	if err != nil {
		return err
	}

	if withManifest {
		m := splitter.BuildManifest(input, tag, segments)
		if err := splitter.WriteManifest(filepath.Join(output, splitter.ManifestName), m); err != nil {
			return err
		}
	}

	outDir, err := filepath.Abs(output)
	if err != nil {
		outDir = output
	}
	fmt.Printf("Successfully split markdown file into %d files using %s headers.\n",
		written, strings.ToUpper(tag))
	fmt.Printf("Files saved in: %s\n", outDir)
	return nil
}

// resolveString returns the named flag's value, falling back to viper (config
// file or MDSPLIT_* environment) when the flag was not set on the command
// line. An explicit flag always wins.
func resolveString(cmd *cobra.Command, name string) string {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetString(name)
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mdsplit.yaml or ~/.config/mdsplit/config.yaml)")

	rootCmd.Flags().String("input", "", "input markdown file to split")
	rootCmd.Flags().String("tag", "h2", "header level to split on: h1, h2, h3, h4, h5, or h6")
	rootCmd.Flags().String("output", "./split_markdown", "directory to save the split files")
	rootCmd.Flags().Bool("dry-run", false, "list the files that would be written without writing them")
	rootCmd.Flags().Bool("manifest", false, "also write manifest.yaml describing the split")
	rootCmd.MarkFlagRequired("input")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mdsplit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mdsplit"))
		}
	}

	viper.SetEnvPrefix("MDSPLIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
