// Package main runs the liftstats MCP server over stdio (for local Cursor use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP,
// so you can use either: stdio (this cmd) or the backend URL (no extra deploy).
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/2beens/liftstats/internal/analytics"
	"github.com/2beens/liftstats/internal/config"
	"github.com/2beens/liftstats/internal/mcpserver"
	"github.com/2beens/liftstats/internal/telemetry/metrics"
	"github.com/2beens/liftstats/internal/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	mapping, err := analytics.LoadMuscleMapping(cfg.MuscleMappingPath)
	if err != nil {
		log.Fatalf("load muscle mapping: %v", err)
	}

	store := workouts.NewStore(metrics.NewManager("liftstats", "mcp", prometheus.NewRegistry()))
	csvFile, err := os.Open(cfg.WorkoutsCSVPath)
	if err != nil {
		log.Fatalf("open workouts csv: %v", err)
	}
	if _, err := store.ReloadFromCSV(ctx, csvFile); err != nil {
		log.Fatalf("load workouts csv: %v", err)
	}
	if err := csvFile.Close(); err != nil {
		log.Printf("close workouts csv: %v", err)
	}

	analyzer := analytics.NewAnalyzer(store, mapping, analytics.DefaultConfig())
	server := mcpserver.NewServer(store, analyzer)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
