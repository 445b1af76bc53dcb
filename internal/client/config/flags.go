package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/driverdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-u string   login name
//	-m int      failed attempts before lockout
//	-l int      lockout duration (seconds)
//	-i int      inactivity timeout (seconds)
//	-v string   log level
//
// args are filtered with flagx.FilterArgs first so the config-file flags do
// not trip this FlagSet. A malformed value panics. The durations are changed
// only when -l or -i is given.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-u", "-m", "-l", "-i", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Username, "u", cfg.Username, "login name accepted by the gate")
	fs.IntVar(&cfg.MaxAttempts, "m", cfg.MaxAttempts, "failed attempts before lockout")
	lock := fs.Int("l", int(cfg.LockDuration.Seconds()), "lockout duration (in seconds)")
	idle := fs.Int("i", int(cfg.InactivityTimeout.Seconds()), "inactivity timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only flags present on the command line override earlier sources, so
	// sub-second values from env or file survive.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "l":
			cfg.LockDuration = time.Duration(*lock) * time.Second
		case "i":
			cfg.InactivityTimeout = time.Duration(*idle) * time.Second
		}
	})
}
