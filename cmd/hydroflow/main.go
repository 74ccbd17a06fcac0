package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hydroflow/hydroflow/config"
	"github.com/hydroflow/hydroflow/dataio"
	"github.com/hydroflow/hydroflow/network"
	"github.com/hydroflow/hydroflow/report"
	"github.com/hydroflow/hydroflow/simulate"
)

func main() {
	cfgPath := flag.String("config", "", "YAML run configuration (optional)")
	nodesPath := flag.String("nodes", "", "node table CSV (overrides config)")
	arcsPath := flag.String("arcs", "", "arc table CSV (overrides config)")
	supplyPath := flag.String("supply", "", "supply series CSV (overrides config)")
	demandPath := flag.String("demand", "", "demand series CSV (overrides config)")
	solverName := flag.String("solver", "", "solver backend name (overrides config)")
	timestep := flag.String("timestep", "", "solve a single timestep label (overrides config)")
	table := flag.Bool("table", false, "print an aligned flow table instead of flow lines")
	flag.Parse()

	log.SetFlags(log.LstdFlags)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatalf("loading configuration: %v", err)
		}
	}
	override(&cfg.NodeFile, *nodesPath)
	override(&cfg.ArcFile, *arcsPath)
	override(&cfg.SupplyFile, *supplyPath)
	override(&cfg.DemandFile, *demandPath)
	override(&cfg.Solver, *solverName)
	override(&cfg.Timestep, *timestep)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	nodes, err := dataio.ReadNodesFile(cfg.NodeFile)
	if err != nil {
		log.Fatalf("loading nodes: %v", err)
	}
	arcs, err := dataio.ReadArcsFile(cfg.ArcFile)
	if err != nil {
		log.Fatalf("loading arcs: %v", err)
	}
	net, err := network.NewNetwork(nodes, arcs)
	if err != nil {
		log.Fatalf("building network: %v", err)
	}
	supply, err := dataio.ReadTimeSeriesFile(cfg.SupplyFile)
	if err != nil {
		log.Fatalf("loading supply series: %v", err)
	}
	demand, err := dataio.ReadTimeSeriesFile(cfg.DemandFile)
	if err != nil {
		log.Fatalf("loading demand series: %v", err)
	}

	sim, err := simulate.New(net, supply, demand, simulate.Options{
		Solver:    cfg.Solver,
		Tolerance: cfg.Tolerance,
		MaxIter:   cfg.MaxIter,
	})
	if err != nil {
		log.Fatalf("initializing simulator: %v", err)
	}

	log.Printf("solving with %q: %d nodes, %d arcs, %d timesteps",
		cfg.Solver, net.NumNodes(), net.NumArcs(), demand.Len())

	ctx := context.Background()
	var results []simulate.StepResult
	if cfg.Timestep != "" {
		res, err := sim.RunStep(ctx, cfg.Timestep)
		if err != nil {
			log.Fatalf("solve failed: %v", err)
		}
		results = []simulate.StepResult{res}
	} else {
		if results, err = sim.Run(ctx); err != nil {
			log.Fatalf("solve failed: %v", err)
		}
	}

	for _, res := range results {
		fmt.Printf("# Timestep %s (objective %.4f, solver %s)\n",
			res.Timestep, res.Solution.Objective, res.Solution.Solver)
		if *table {
			fmt.Printf("State of water supply: %s\n\n", res.State)
			if err := report.WriteTable(os.Stdout, net, res.Solution.Flows); err != nil {
				log.Fatalf("writing report: %v", err)
			}
		} else if err := report.Write(os.Stdout, res.State, net, res.Solution.Flows); err != nil {
			log.Fatalf("writing report: %v", err)
		}
		fmt.Println()
	}
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
