// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the client flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a remote store address in format [host]:[port]
//	-d local database DSN
//	-c/-config json file path with configs
//	-chain chain name
//	-node-id wallet node id
//	-cloud-key record name derivation key
//	-seed-file recovery phrase file
//	-seed-language recovery phrase language
//	-seed-label wallet label stored with the backup
//	-token remote store session token
//	-request-timeout remote request timeout (e.g., "30s", "1m")
//	-page-size records per listing page
//	-reachability-interval remote ping interval
//	-credentials-interval session check interval
//	-log-level zerolog level
//	-log-file client log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("seed-keeper", flag.ContinueOnError)

	var remoteAddress NetAddress
	var cfg StructuredConfig

	fs.Var(&remoteAddress, "a", "Remote store address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Local database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.Chain, "chain", "", "Chain name")
	fs.StringVar(&cfg.App.NodeID, "node-id", "", "Wallet node id")
	fs.StringVar(&cfg.App.CloudKey, "cloud-key", "", "Record name derivation key")
	fs.StringVar(&cfg.App.SeedFile, "seed-file", "", "Recovery phrase file")
	fs.StringVar(&cfg.App.SeedLanguage, "seed-language", "", "Recovery phrase language")
	fs.StringVar(&cfg.App.SeedLabel, "seed-label", "", "Wallet label")
	fs.StringVar(&cfg.App.SessionToken, "token", "", "Remote store session token")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&cfg.Adapter.PageSize, "page-size", 0, "Records per listing page")
	fs.DurationVar(&cfg.Workers.ReachabilityInterval, "reachability-interval", 0, "Remote ping interval")
	fs.DurationVar(&cfg.Workers.CredentialsInterval, "credentials-interval", 0, "Session check interval")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Adapter.HTTPAddress = remoteAddress.String()
	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost", and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

