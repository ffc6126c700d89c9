package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/TheCount/go-uds/uds"
)

var (
	rootCmd = &cobra.Command{
		Use:   "udsctl",
		Short: "Build and decode UDS requests",
		Long: "udsctl builds and decodes ISO 14229-1 (UDS) request frames " +
			"using the go-uds codecs.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
	}

	decodeCmd = &cobra.Command{
		Use:   "decode [hex]",
		Short: "Decode a request frame",
		Long: "decode parses a hex request frame and prints the decoded request. " +
			"Without an argument, frames are read from stdin, one per line.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runInteractive()
			}
			return runDecode(args[0])
		},
	}

	requestCmd = &cobra.Command{
		Use:   "request <service> [payload-hex]",
		Short: "Build a request frame",
		Long: "request validates a payload with the codec of the named service " +
			"and prints the resulting frame.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := ""
			if len(args) == 2 {
				payload = args[1]
			}
			return runRequest(args[0], payload)
		},
	}

	servicesCmd = &cobra.Command{
		Use:   "services",
		Short: "List supported services",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range registry.Services() {
				fmt.Printf("0x%02X  %s\n", uint8(s), s)
			}
			return nil
		},
	}

	configPath string
	logLevel   string
	subFunc    string

	cfg      *uds.Configuration
	registry *uds.Registry
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to a TOML protocol configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level",
		envOr("UDSCTL_LOG_LEVEL", "info"), "log level (trace, debug, info, warn, error)")
	requestCmd.Flags().StringVar(&subFunc, "sub", "",
		"sub-function byte in hex, for services which take one")
	rootCmd.AddCommand(decodeCmd, requestCmd, servicesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("udsctl failed")
	}
}

// initLogger sets up console logging to stderr.
func initLogger(app string, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).Level(level).With().Timestamp().
		Str("app", app).Logger()
	log.Logger = logger
	return logger
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func setup() error {
	level, err := zerolog.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := initLogger("udsctl", level)
	cfg = uds.DefaultConfiguration()
	if configPath != "" {
		if cfg, err = uds.LoadConfiguration(configPath); err != nil {
			return err
		}
		logger.Debug().Str("path", configPath).
			Stringer("address_byte_order", cfg.AddressByteOrder).
			Bool("extended_addressing", cfg.ExtendedAddressing).
			Msg("configuration loaded")
	}
	registry, err = uds.NewDefaultRegistry(uds.WithLogger(logger))
	return err
}

func parseHex(s string) ([]byte, error) {
	s = strings.NewReplacer(" ", "", ":", "", "0x", "", "0X", "").Replace(s)
	return hex.DecodeString(s)
}

func runInteractive() error {
	scanner := bufio.NewScanner(os.Stdin)
	log.Info().Msg("Paste a hex request frame and press Enter (Ctrl+D to exit).")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runDecode(line); err != nil {
			log.Error().Err(err).Msg("failed to decode request")
		}
	}
	return scanner.Err()
}

func runDecode(frame string) error {
	raw, err := parseHex(frame)
	if err != nil {
		return err
	}
	req, data, err := registry.Decode(raw, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("service:      %s (0x%02X)\n", req.Service(), uint8(req.Service()))
	if sf, ok := req.SubFunction(); ok {
		fmt.Printf("sub-function: %s\n", sf)
	}
	fmt.Printf("data:         %+v\n", data)
	return nil
}

func runRequest(name, payload string) error {
	codec, ok := registry.LookupName(name)
	if !ok {
		return fmt.Errorf("unknown service %q", name)
	}
	data, err := parseHex(payload)
	if err != nil {
		return err
	}
	var sf *uint8
	if subFunc != "" {
		v, err := strconv.ParseUint(strings.TrimPrefix(subFunc, "0x"), 16, 8)
		if err != nil {
			return fmt.Errorf("sub-function: %w", err)
		}
		b := uint8(v)
		sf = &b
	}
	req, err := codec.Request(data, sf, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("%X\n", req.Bytes(cfg))
	return nil
}
