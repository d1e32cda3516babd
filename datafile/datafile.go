// Package datafile reads and writes the JSON data files the pipeline
// consumes and produces: level data, location data, and collapsed logic
// data. It also hosts the data sanity reports used before a run.
package datafile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ashlyng/summitpath/core"
)

// ReadLevelData loads and indexes a level data file.
func ReadLevelData(path string) (*core.LevelData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level data: %w", err)
	}
	var data core.LevelData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode level data %s: %w", path, err)
	}
	data.Index()
	return &data, nil
}

// ReadLocationData loads a location data file.
func ReadLocationData(path string) (*core.LocationData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read location data: %w", err)
	}
	var data core.LocationData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode location data %s: %w", path, err)
	}
	return &data, nil
}

// ReadLogicData loads a collapsed logic data file.
func ReadLogicData(path string) (*core.LogicData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read logic data: %w", err)
	}
	var data core.LogicData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode logic data %s: %w", path, err)
	}
	return &data, nil
}

// WriteLocationData writes a location data file with 2-space indentation.
func WriteLocationData(path string, data *core.LocationData) error {
	return writeJSON(path, data)
}

// WriteLogicData writes a collapsed logic data file with 2-space
// indentation.
func WriteLogicData(path string, data *core.LogicData) error {
	return writeJSON(path, data)
}

func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
