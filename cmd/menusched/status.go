package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"menuboard/internal/availability"
	"menuboard/internal/menu"
	"menuboard/internal/schedule"
)

var atFlag string

var statusCmd = &cobra.Command{
	Use:   "status <menu.json>",
	Short: "Show open/closed state for every item at a given instant",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&atFlag, "at", "", `query instant as "Mon 13:45" (default: now)`)
}

func runStatus(cmd *cobra.Command, args []string) error {
	doc, err := menu.Load(args[0])
	if err != nil {
		return err
	}

	now := time.Now()
	svc := availability.NewService(labels(), packName, &logger, newCache())

	fmt.Printf("%s\n\n", doc.Restaurant.Name)
	for _, it := range doc.Items {
		eff := doc.EffectiveHours(it)

		var res availability.Result
		if atFlag == "" {
			res = svc.Evaluate(cmd.Context(), eff, now)
		} else {
			at, err := parseInstant(atFlag)
			if err != nil {
				return err
			}
			res = availability.Result{
				Open:  schedule.IsOpenAt(eff, at),
				Label: schedule.Describe(eff, at, labels()),
			}
		}

		state := "CLOSED"
		if res.Open {
			state = "OPEN"
		}
		line := fmt.Sprintf("%-6s  %s", state, it.Name)
		if res.Label != "" {
			line += "  —  " + res.Label
		}
		fmt.Println(line)
	}
	return nil
}

var dayAbbrevs = map[string]schedule.Weekday{
	"mon": schedule.Monday,
	"tue": schedule.Tuesday,
	"wed": schedule.Wednesday,
	"thu": schedule.Thursday,
	"fri": schedule.Friday,
	"sat": schedule.Saturday,
	"sun": schedule.Sunday,
}

// parseInstant parses a query moment like "Mon 13:45".
func parseInstant(s string) (schedule.Instant, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return schedule.Instant{}, fmt.Errorf(`invalid instant %q: expected "Mon 13:45"`, s)
	}

	day, ok := dayAbbrevs[strings.ToLower(parts[0])]
	if !ok {
		return schedule.Instant{}, fmt.Errorf("unknown weekday %q", parts[0])
	}

	clock, err := schedule.ParseClock(parts[1])
	if err != nil {
		return schedule.Instant{}, err
	}

	return schedule.Instant{Day: day, Time: clock}, nil
}

// newCache builds the label cache from config: redis primary with an
// in-memory fallback when an address is configured, plain in-memory
// otherwise.
func newCache() availability.Cache {
	memory := availability.NewMemoryCache(cfg.CacheTTL())
	if cfg.Redis.Address == "" {
		return memory
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	primary := availability.NewRedisCache(client, cfg.CacheTTL())
	return availability.NewFailoverCache(primary, memory, &logger)
}
