package main

import (
	"log"
	"os"
	"time"

	"ChainSentinel/internal/collector"
	"ChainSentinel/internal/config"
	"ChainSentinel/internal/recorder"
	"ChainSentinel/internal/writer"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] ChainSentinel fetch starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	fetcher := collector.NewBMPFetcher(
		cfg.DataSource.BaseURL,
		cfg.DataSource.Endpoint,
		cfg.DataSource.APIKey,
		cfg.Proxy,
		time.Duration(cfg.DataSource.TimeoutSeconds)*time.Second,
	)
	log.Printf("[INFO] data source: %s (%s%s)", fetcher.Name(), cfg.DataSource.BaseURL, cfg.DataSource.Endpoint)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Run the pipeline once
	col := collector.NewCollector(fetcher, cfg.Quality.MaxDropFraction)
	ds, err := col.Collect()
	if err != nil {
		log.Fatalf("[FATAL] collect: %v", err)
	}

	if err := writer.WriteDataset(cfg.Output.Path, ds); err != nil {
		log.Fatalf("[FATAL] write output: %v", err)
	}

	if err := rec.RecordRun(&recorder.RunEvent{Dataset: ds, OutputPath: cfg.Output.Path}); err != nil {
		log.Printf("[WARN] record run: %v", err)
	}

	log.Println("[INFO] ChainSentinel fetch done")
}
