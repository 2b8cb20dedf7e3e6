package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/internal/ble"
)

const scanTimeout = 5 * time.Second

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for GoCube smart cubes",
	Long:  `Scan for nearby GoCube devices over Bluetooth LE. A found cube can drive the play view with --smartcube.`,
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Scanning for GoCube devices...")

	_, results, err := scanForGoCube(cmd.Context(), logger)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No GoCube found.")
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(out, "%s\t%s\tRSSI %d\n", r.Name, r.Address.String(), r.RSSI)
	}
	return nil
}

// scanForGoCube performs a single scan, which is enough for macOS discovery.
func scanForGoCube(ctx context.Context, logger *slog.Logger) (*ble.Client, []ble.ScanResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := ble.NewClient(logger)
	if err != nil {
		return nil, nil, fmt.Errorf("BLE not available: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, scanTimeout)
	defer cancel()

	results, err := client.Scan(ctx, scanTimeout)
	if err != nil {
		return client, nil, err
	}
	return client, results, nil
}
