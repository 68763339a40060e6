// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// human-readable durations.
type StructuredJSONConfig struct {
	App struct {
		Chain        string `json:"chain"`
		NodeID       string `json:"node_id"`
		CloudKey     string `json:"cloud_key"`
		SeedFile     string `json:"seed_file"`
		SeedLanguage string `json:"seed_language"`
		SeedLabel    string `json:"seed_label"`
		SessionToken string `json:"session_token"`
		LogLevel     string `json:"log_level"`
		LogFile      string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		PageSize       int      `json:"page_size"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ReachabilityInterval Duration `json:"reachability_interval"`
		CredentialsInterval  Duration `json:"credentials_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Chain:        jsonCfg.App.Chain,
			NodeID:       jsonCfg.App.NodeID,
			CloudKey:     jsonCfg.App.CloudKey,
			SeedFile:     jsonCfg.App.SeedFile,
			SeedLanguage: jsonCfg.App.SeedLanguage,
			SeedLabel:    jsonCfg.App.SeedLabel,
			SessionToken: jsonCfg.App.SessionToken,
			LogLevel:     jsonCfg.App.LogLevel,
			LogFile:      jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			PageSize:       jsonCfg.Adapter.PageSize,
		},
		Workers: Workers{
			ReachabilityInterval: time.Duration(jsonCfg.Workers.ReachabilityInterval),
			CredentialsInterval:  time.Duration(jsonCfg.Workers.CredentialsInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
