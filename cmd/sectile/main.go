package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hgrant/sectile"
	"github.com/hgrant/sectile/internal/cli"
	"github.com/hgrant/sectile/internal/compilers"
)

func main() {
	var inPath string
	var debug bool
	var noBackup bool
	flag.StringVar(&inPath, "in", "", "Input document file or directory")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&noBackup, "no-backup", false, "Overwrite existing artifacts without keeping a backup")
	flag.Parse()

	if debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if inPath == "" {
		fmt.Println("Please provide an input file or directory with -in")
		os.Exit(1)
	}

	pipeline := sectile.NewPipeline(sectile.Config{
		Template: compilers.Template{},
		Script:   compilers.Script{},
		Style:    compilers.Style{},
		Tags: map[string]sectile.ExtensionResolver{
			"docs": func(_, _ string, _ sectile.SectionNode) string { return "docs.html" },
		},
		CustomCompilers: map[string]sectile.CustomCompiler{
			"docs": compilers.Markdown(),
		},
		Loader: cli.FSLoader{},
	})

	processor := cli.NewProcessor(pipeline, cli.NewFSSink(!noBackup))

	results, err := processor.ProcessPath(context.Background(), inPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	for _, result := range results {
		for _, artifact := range result.Artifacts {
			fmt.Printf("Wrote %s to %s\n", result.Path, artifact)
		}
	}
}
