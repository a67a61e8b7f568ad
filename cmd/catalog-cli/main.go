package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/esnalabu/opencast/pkg/catalog"
	"github.com/esnalabu/opencast/pkg/listprovider"
	"github.com/esnalabu/opencast/pkg/prompt"
)

func main() {
	catalogPath := flag.String("catalog", "catalogs/episode.yaml", "catalog definition YAML")
	valuesPath := flag.String("values", "", "JSON file mapping field ids to raw values")
	providersPath := flag.String("providers", "", "YAML file of list providers")
	interactive := flag.Bool("interactive", false, "prompt for field values on the terminal")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	data, err := os.ReadFile(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to read catalog: %v", err)
	}
	definition, err := catalog.ParseDefinition(data, *catalogPath)
	if err != nil {
		log.Fatalf("Failed to parse catalog: %v", err)
	}

	var providers listprovider.Service
	if *providersPath != "" {
		raw, err := os.ReadFile(*providersPath)
		if err != nil {
			log.Fatalf("Failed to read providers: %v", err)
		}
		registry, err := listprovider.LoadRegistry(raw)
		if err != nil {
			log.Fatalf("Failed to load providers: %v", err)
		}
		providers = registry
	}

	values, err := loadValues(*valuesPath)
	if err != nil {
		log.Fatalf("Failed to load values: %v", err)
	}
	if *interactive {
		collector := prompt.NewCollector(nil, providers)
		collected, err := collector.Collect(context.Background(), definition.Fields)
		if err != nil {
			log.Fatalf("Failed to collect values: %v", err)
		}
		for id, raw := range collected {
			values[id] = raw
		}
	}

	collection, err := catalog.NewAdapter(definition, providers).Materialize(values)
	if err != nil {
		log.Fatalf("Failed to materialize catalog: %v", err)
	}

	payload, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode collection: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Catalog written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}
}

func loadValues(path string) (map[string][]string, error) {
	values := make(map[string][]string)
	if path == "" {
		return values, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return values, nil
}
