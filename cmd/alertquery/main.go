// Command alertquery fetches and ranks active disaster alerts from the
// command line. It queries the same satellite and seismic providers as the
// server, applies severity-then-distance ranking, and prints the result as a
// table.
//
// Usage:
//
//	go run ./cmd/alertquery -lat 10.0 -lon 76.0 -radius 500
//	go run ./cmd/alertquery -state Kerala -city Kochi
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/disaster-alert-service/internal/adapter/eonet"
	"github.com/couchcryptid/disaster-alert-service/internal/adapter/usgs"
	"github.com/couchcryptid/disaster-alert-service/internal/aggregator"
	"github.com/couchcryptid/disaster-alert-service/internal/config"
	"github.com/couchcryptid/disaster-alert-service/internal/domain"
	"github.com/couchcryptid/disaster-alert-service/internal/observability"
)

func main() {
	lat := flag.Float64("lat", 0, "observer latitude in degrees")
	lon := flag.Float64("lon", 0, "observer longitude in degrees")
	radius := flag.Float64("radius", 0, "radius in km around the observer (0 uses the configured default)")
	state := flag.String("state", "", "filter alerts to this state")
	city := flag.String("city", "", "filter alerts to this city")
	flag.Parse()

	if code := run(*lat, *lon, *radius, *state, *city); code != 0 {
		os.Exit(code)
	}
}

func run(lat, lon, radius float64, state, city string) int {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	logger := observability.NewLogger("warn", "text")
	metrics := observability.NewMetrics()

	satellite := eonet.NewClient(cfg.EONETBaseURL, cfg.ProviderTimeout, cfg.LookbackDays, logger)
	seismic := usgs.NewClient(cfg.USGSBaseURL, cfg.ProviderTimeout, cfg.MinMagnitude, cfg.LookbackDays, logger)

	agg := aggregator.New(logger, metrics, satellite, seismic)

	var observer *domain.Point
	if isSet("lat") || isSet("lon") {
		if !isSet("lat") || !isSet("lon") {
			fmt.Fprintln(os.Stderr, "-lat and -lon must be supplied together")
			return 1
		}
		observer = &domain.Point{Lat: lat, Lon: lon}
	}
	if radius <= 0 {
		radius = cfg.DefaultRadiusKm
	}

	ctx := context.Background()

	var alerts []domain.Alert
	if state != "" || city != "" {
		alerts = agg.GetAlertsForRegion(ctx, state, city, observer, radius)
	} else {
		alerts = agg.GetAllAlerts(ctx, observer, radius)
	}

	if len(alerts) == 0 {
		fmt.Println("no active alerts")
		return 0
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEVERITY\tCATEGORY\tTITLE\tDISTANCE\tAGE\tSOURCE")
	for _, a := range alerts {
		distance := "-"
		if observer != nil {
			distance = domain.FormatDistance(a.Distance)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			a.Severity, a.Category, a.Title, distance, domain.FormatAge(a.StartTime), a.Source)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "write table: %v\n", err)
		return 1
	}

	return 0
}

// isSet reports whether the named flag was supplied on the command line, so
// that an explicit -lat 0 is distinguishable from an absent flag.
func isSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
