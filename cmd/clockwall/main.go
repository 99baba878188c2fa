package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/five82/clockwall/internal/app"
	"github.com/five82/clockwall/internal/config"
	"github.com/five82/clockwall/internal/face"
	"github.com/five82/clockwall/internal/geometry"
	"github.com/five82/clockwall/internal/prefs"
	"github.com/five82/clockwall/internal/presets"
	"github.com/five82/clockwall/internal/state"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "clockwall: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "clockwall",
	Short:         "A wall of analog clocks in the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		prefsPath, _ := cmd.Flags().GetString("prefs")
		radius, _ := cmd.Flags().GetInt("radius")

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		return app.Run(ctx, app.Options{
			ConfigPath: configPath,
			PrefsPath:  prefsPath,
			Radius:     radius,
		})
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the preset catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		return writePresets(cmd.OutOrStdout(), catalog)
	},
}

var faceCmd = &cobra.Command{
	Use:   "face",
	Short: "Render one clock face to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		at, _ := cmd.Flags().GetString("time")
		preset, _ := cmd.Flags().GetString("preset")
		radius, _ := cmd.Flags().GetInt("radius")
		plain, _ := cmd.Flags().GetBool("plain")

		rec, err := previewRecord(catalog, preset, at, clockwork.NewRealClock().Now())
		if err != nil {
			return err
		}
		if plain {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), face.Layout(rec, radius).String())
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), face.Render(rec, face.Options{Radius: radius}))
		return err
	},
}

func loadCatalog(cmd *cobra.Command) (*presets.Catalog, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg.Catalog(), nil
}

// previewRecord builds the record the face command draws. An empty at means
// now.
func previewRecord(catalog *presets.Catalog, preset, at string, now time.Time) (state.Record, error) {
	p, ok := catalog.Lookup(preset)
	if !ok {
		return state.Record{}, fmt.Errorf("unknown preset %q (have %s)", preset, strings.Join(catalog.Names(), ", "))
	}
	start := now
	if strings.TrimSpace(at) != "" {
		var err error
		start, err = geometry.ParseClockTime(at, now)
		if err != nil {
			return state.Record{}, err
		}
	}
	return state.Record{ID: "preview", Config: p.Config(start)}, nil
}

func writePresets(w io.Writer, catalog *presets.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tHANDS\tMARKERS\tBORDER\tNUMBERS\tDIGITAL\tBACKGROUND")
	for _, p := range catalog.All() {
		bg := p.BackgroundImage
		if bg == "" {
			bg = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Name, p.HandColor, p.MarkerColor, p.BorderColor,
			p.AnalogNumbersColor, p.DigitalNumbersColor, bg)
	}
	return tw.Flush()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.Flags().String("prefs", "", "preferences file (default "+prefs.DefaultPath()+")")
	rootCmd.Flags().Int("radius", face.DefaultRadius, "face radius in rows")

	faceCmd.Flags().StringP("time", "t", "", "time to show as HH:MM[:SS] (default now)")
	faceCmd.Flags().StringP("preset", "p", "classic", "preset name")
	faceCmd.Flags().Int("radius", face.DefaultRadius, "face radius in rows")
	faceCmd.Flags().Bool("plain", false, "print without colors")

	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(faceCmd)
}
