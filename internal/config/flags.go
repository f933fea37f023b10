package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a local control API address in format [host]:[port]
//	-endpoint delivery endpoint base URL
//	-request-timeout delivery request timeout (e.g., "15s")
//	-d durable queue database path
//	-fallback fallback key/value file path
//	-c/-config json file path with configs
//	-device-id device identifier
//	-device-secret device token signing secret
//	-tui start the terminal status screen
//	-log-file client log file path
//	-sync-schedule cron spec of the periodic drain (e.g., "@every 15m")
//	-probe-interval connectivity probe interval (e.g., "30s")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var apiAddress NetAddress
	var endpoint string
	var requestTimeout time.Duration
	var databaseDSN string
	var fallbackPath string
	var jsonConfigPath string
	var deviceID string
	var deviceSecret string
	var interactive bool
	var logFile string
	var syncSchedule string
	var probeInterval time.Duration

	fs := flag.NewFlagSet("outbox-client", flag.ContinueOnError)
	fs.Var(&apiAddress, "a", "Local API net address host:port")
	fs.StringVar(&endpoint, "endpoint", "", "Delivery endpoint base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Delivery request timeout (e.g., 15s)")
	fs.StringVar(&databaseDSN, "d", "", "Durable queue database path")
	fs.StringVar(&fallbackPath, "fallback", "", "Fallback key/value file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&deviceID, "device-id", "", "Device identifier")
	fs.StringVar(&deviceSecret, "device-secret", "", "Device token signing secret")
	fs.BoolVar(&interactive, "tui", false, "Start the terminal status screen")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&syncSchedule, "sync-schedule", "", "Cron spec of the periodic drain")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 30s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DeviceID:     deviceID,
			DeviceSecret: deviceSecret,
			Interactive:  interactive,
			LogFile:      logFile,
		},
		Storage: Storage{
			DB:       DB{DSN: databaseDSN},
			Fallback: Fallback{Path: fallbackPath},
		},
		Server: Server{
			HTTPAddress: apiAddress.String(),
		},
		Adapter: Adapter{
			HTTPAddress:    endpoint,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncSchedule:  syncSchedule,
			ProbeInterval: probeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
