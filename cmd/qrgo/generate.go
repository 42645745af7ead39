package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/doge0420/qrgo"
	"github.com/doge0420/qrgo/internal/config"
)

var generateCmd = &cobra.Command{
	Use:   "generate TEXT",
	Short: "Generate a QR Code symbol for TEXT",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

var (
	flagConfigPath string
	flagMode       string
	flagECLevel    string
	flagMask       int
	flagQuietZone  int
	flagLogLevel   string
	flagSVGOut     string
	flagOpen       bool
)

func init() {
	generateCmd.Flags().StringVar(&flagConfigPath, "config", "", "YAML file of default flag values")
	generateCmd.Flags().StringVar(&flagMode, "mode", "", "encoding mode: numeric, alphanumeric, byte (default from config, else byte)")
	generateCmd.Flags().StringVar(&flagECLevel, "ec-level", "", "error correction level: L, M, Q, H (default from config, else M)")
	generateCmd.Flags().IntVar(&flagMask, "mask", -1, "mask pattern, 0-7 (default from config, else 0)")
	generateCmd.Flags().IntVar(&flagQuietZone, "quiet-zone", -1, "quiet zone width in modules for the SVG export (default from config, else 4)")
	generateCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "debug, info, warn, error (default from config, else warn)")
	generateCmd.Flags().StringVar(&flagSVGOut, "svg", "", "write an SVG rendering to this path in addition to the terminal output")
	generateCmd.Flags().BoolVar(&flagOpen, "open", false, "render an SVG to a temp file and open it in the default browser")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := setupLogging(coalesce(flagLogLevel, cfg.LogLevel)); err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	mode, err := parseMode(coalesce(flagMode, cfg.Mode))
	if err != nil {
		return err
	}
	ec, err := parseECLevel(coalesce(flagECLevel, cfg.ECLevel))
	if err != nil {
		return err
	}
	mask := cfg.Mask
	if flagMask >= 0 {
		mask = flagMask
	}
	if mask < 0 || mask > 7 {
		return fmt.Errorf("mask must be 0-7, got %d", mask)
	}
	quietZone := cfg.QuietZone
	if flagQuietZone >= 0 {
		quietZone = flagQuietZone
	}

	slog.Info("generating symbol", "mode", mode, "ec_level", ec, "mask", mask)

	m, err := qrgo.Generate(args[0], mode, ec, qrgo.MaskPattern(mask))
	if err != nil {
		return fmt.Errorf("generating symbol: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), m.String())

	if flagSVGOut != "" {
		if err := writeSVG(m, flagSVGOut, quietZone); err != nil {
			return fmt.Errorf("writing svg: %w", err)
		}
		slog.Info("svg written", "path", flagSVGOut)
	}

	if flagOpen {
		path, err := writeSVGTemp(m, quietZone)
		if err != nil {
			return fmt.Errorf("rendering svg for --open: %w", err)
		}
		slog.Info("opening svg in browser", "path", path)
		if err := browser.OpenFile(path); err != nil {
			return fmt.Errorf("opening browser: %w", err)
		}
	}

	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Defaults(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config.Defaults(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func coalesce(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}

func parseMode(s string) (qrgo.EncodingMode, error) {
	switch strings.ToLower(s) {
	case "numeric":
		return qrgo.Numeric, nil
	case "alphanumeric":
		return qrgo.Alphanumeric, nil
	case "byte", "":
		return qrgo.Byte, nil
	case "kanji":
		return qrgo.Kanji, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

func parseECLevel(s string) (qrgo.ErrorCorrectionLevel, error) {
	switch strings.ToUpper(s) {
	case "L":
		return qrgo.L, nil
	case "M", "":
		return qrgo.M, nil
	case "Q":
		return qrgo.Q, nil
	case "H":
		return qrgo.H, nil
	default:
		return 0, fmt.Errorf("unknown error correction level %q", s)
	}
}

func writeSVG(m *qrgo.Matrix, path string, quietZone int) error {
	svg, err := m.SVG(quietZone)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

func writeSVGTemp(m *qrgo.Matrix, quietZone int) (string, error) {
	svg, err := m.SVG(quietZone)
	if err != nil {
		return "", err
	}
	f, err := os.CreateTemp("", "qrgo-*.svg")
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := f.WriteString(svg); err != nil {
		return "", err
	}
	return f.Name(), nil
}

// setupLogging configures the default slog handler to write structured
// text logs to stderr at the given level.
func setupLogging(level string) error {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}
