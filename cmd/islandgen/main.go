// Command islandgen generates one island from a named template and writes
// the serialized graph to a file or stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/glidecamp/islandgen/internal/gen"
	"github.com/glidecamp/islandgen/internal/island"
)

func main() {
	var (
		seed      = flag.Int64("seed", 1, "generation seed")
		template  = flag.String("template", "tropical_volcanic", "island template: "+strings.Join(gen.TemplateNames(), ", "))
		regions   = flag.Int("regions", 0, "region count override (0 keeps the template value)")
		radius    = flag.Float64("radius", 0, "island radius override (0 keeps the template value)")
		overrides = flag.String("overrides", "", "JSON config overrides merged onto the template")
		out       = flag.String("out", "", "output path (default stdout)")
		pretty    = flag.Bool("pretty", false, "indent the output JSON")
		verbose   = flag.Bool("v", false, "log pipeline phases")
	)
	flag.Parse()

	log.SetPrefix("[islandgen] ")
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := gen.Template(*template)
	if err != nil {
		log.Fatal("unknown template", "error", err, "template", *template)
	}
	cfg.Seed = *seed
	if *regions > 0 {
		cfg.RegionCount = *regions
	}
	if *radius > 0 {
		cfg.Radius = *radius
	}
	if *overrides != "" {
		if err := cfg.ApplyJSON([]byte(*overrides)); err != nil {
			log.Fatal("invalid overrides", "error", err)
		}
	}

	generator, err := gen.New(cfg, gen.WithObserver(logPhase))
	if err != nil {
		log.Fatal("invalid config", "error", err)
	}

	graph, err := generator.Generate()
	if err != nil {
		log.Fatal("generation failed", "error", err, "seed", cfg.Seed)
	}

	var data []byte
	if *pretty {
		data, err = island.SerializeIndent(graph)
	} else {
		data, err = island.Serialize(graph)
	}
	if err != nil {
		log.Fatal("failed to serialize graph", "error", err)
	}

	if *out == "" {
		fmt.Println(string(data))
	} else {
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			log.Fatal("failed to write output", "error", err, "path", *out)
		}
	}

	log.Info("generated island",
		"seed", cfg.Seed,
		"template", *template,
		"regions", len(graph.Regions),
		"land_ratio", fmt.Sprintf("%.2f", graph.LandRatio()),
		"lakes", len(graph.LakeRegions()),
		"river_edges", len(graph.RiverEdges()),
		"bytes", len(data),
	)
}

func logPhase(e gen.Event) {
	log.Debug("phase complete", "phase", e.Phase, "duration", e.Duration,
		"sites", e.Sites, "regions", e.Regions, "edges", e.Edges,
		"corners", e.Corners, "lakes", e.Lakes, "river_edges", e.RiverEdges)
}
