package cmds

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"wowcpe/internal/app/wcpe"
	"wowcpe/internal/app/wcpe/classical"
	"wowcpe/internal/pkg/pagecache"
	"wowcpe/internal/pkg/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const pageCacheDirName = "pages"

var (
	timeArg string
	noCache bool
)

func NewPlayingCLI() *cobra.Command {
	playingCmd := &cobra.Command{
		Use:   "playing",
		Short: "Look up the piece and program airing at a given time.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate the config file.
			if err := conf.Validate(); err != nil {
				return err
			}

			// Default to now; sub-second precision means nothing here.
			reqTime := time.Now().Truncate(time.Second)
			if timeArg != "" {
				t, err := parseTimeArg(timeArg, time.Now())
				if err != nil {
					return fmt.Errorf("%s: invalid time\nFor more information try --help", timeArg)
				}
				reqTime = t
			}

			// Create the WCPE client.
			c, err := classical.NewClient(&http.Client{
				Timeout: conf.HTTPTimeout,
			}, conf.Station, conf.StationTimezone, conf.AvailabilityWindow, conf.Headers, newPageCache())
			if err != nil {
				return err
			}

			entry, err := c.Lookup(cmd.Context(), wcpe.Request{Time: reqTime})
			if err != nil {
				return err
			}

			printEntry(cmd, entry)
			return nil
		},
	}

	playingCmd.Flags().StringVarP(&timeArg, "time", "t", "", "Look up a specific time today, e.g. `15:30`, 3:30pm or 15.")
	playingCmd.Flags().BoolVar(&noCache, "no-cache", false, "Fetch the playlist page even when a fresh cached copy exists.")

	return playingCmd
}

// parseTimeArg reads the --time argument as a wall-clock time today in the
// caller's local timezone. A bare hour such as "15" means "15:00".
func parseTimeArg(arg string, now time.Time) (time.Time, error) {
	text := strings.TrimSpace(arg)

	var hour, minute int
	if strings.ContainsRune(text, ':') {
		var err error
		if hour, minute, err = wcpe.ParseClock(text); err != nil {
			return time.Time{}, err
		}
	} else if h, err := strconv.Atoi(text); err == nil && h >= 0 && h <= 23 {
		hour = h
	} else {
		return time.Time{}, fmt.Errorf("%w: %q", wcpe.ErrBadTime, arg)
	}

	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), nil
}

// newPageCache opens the on-disk page cache, unless --no-cache asked for a
// bypass. The cache is a convenience: failing to open one costs a warning,
// never the lookup.
func newPageCache() *pagecache.Cache {
	if noCache {
		return nil
	}

	dir := conf.CacheDir
	if dir == "" {
		currDir, err := util.GetCurrentAbPathByExecutable()
		if err != nil {
			zap.L().Sugar().Warnf("Failed to locate the page cache directory, caching is off. Error: %v", err)
			return nil
		}
		dir = filepath.Join(currDir, pageCacheDirName)
	}

	cache, err := pagecache.New(dir, conf.CacheTTL)
	if err != nil {
		zap.L().Sugar().Warnf("Failed to open the page cache at %s, caching is off. Error: %v", dir, err)
		return nil
	}
	return cache
}

// printEntry writes the resolved entry as aligned label/value lines, with the
// broadcast interval rendered in the caller's local timezone.
func printEntry(cmd *cobra.Command, entry *wcpe.ResolvedEntry) {
	const clockLayout = "15:04:05"
	start := entry.StartTime.Local().Format(clockLayout)
	end := entry.EndTime.Local().Format(clockLayout)

	cmd.Printf("%-14s%s\n", "Program", entry.Program)
	cmd.Printf("%-14s%s - %s\n", "Time", start, end)
	cmd.Printf("%-14s%s\n", "Composer", entry.Composer)
	cmd.Printf("%-14s%s\n", "Title", entry.Title)
	cmd.Printf("%-14s%s\n", "Performers", entry.Performers)
	cmd.Printf("%-14s%s\n", "Record Label", entry.RecordLabel)
}
