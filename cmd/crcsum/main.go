package main

import (
	"encoding/json"
	"fmt"
	stdlog "log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/chronos-tachyon/checksums"
	"github.com/hashicorp/go-multierror"
	getopt "github.com/pborman/getopt/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	flagVersion   = false
	flagDebug     = false
	flagTrace     = false
	flagLogStderr = false

	flagKind      = KindFlag{checksums.CRC32CKind}
	flagEngine    = EngineFlag{checksums.AutoEngine}
	flagSeed      = SeedFlag{0}
	flagMmap      = false
	flagJobs      = 1
	flagFeatures  = false
	flagSelfTest  = false
	flagBenchmark = false
	flagJSON      = false

	flagCPUProfile = ""
	flagMemProfile = ""
)

func init() {
	getopt.SetParameters("[<file>...]")

	getopt.FlagLong(&flagVersion, "version", 'V', "print version and exit")

	getopt.FlagLong(&flagDebug, "verbose", 'v', "enable debug logging")
	getopt.FlagLong(&flagTrace, "debug", 'D', "enable debug and trace logging")
	getopt.FlagLong(&flagLogStderr, "log-stderr", 'L', "log JSON to stderr")

	getopt.FlagLong(&flagCPUProfile, "cpu-profile", 0, "CPU profile output file")
	getopt.FlagLong(&flagMemProfile, "mem-profile", 0, "memory profile output file")

	getopt.FlagLong(&flagKind, "kind", 'k', "checksum kind; one of crc32 or crc32c")
	getopt.FlagLong(&flagEngine, "engine", 'E', "engine; one of auto, portable, sse42, clmul, armv8-crc, vx, or vpmsum")
	getopt.FlagLong(&flagSeed, "seed", 's', "previous checksum to continue from, in hex")
	getopt.FlagLong(&flagMmap, "mmap", 'm', "memory-map input files and checksum them as direct buffers")
	getopt.FlagLong(&flagJobs, "jobs", 'j', "number of concurrent chunks per file")
	getopt.FlagLong(&flagJSON, "json", 'J', "print one JSON object per file")

	getopt.FlagLong(&flagFeatures, "features", 'F', "print detected processor features and exit").SetGroup("mode")
	getopt.FlagLong(&flagSelfTest, "self-test", 'T', "verify every available engine and exit").SetGroup("mode")
	getopt.FlagLong(&flagBenchmark, "benchmark", 'B', "measure every available engine and exit").SetGroup("mode")
}

func main() {
	getopt.Parse()

	if flagVersion {
		fmt.Println(strings.TrimSpace(version))
		os.Exit(0)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.DurationFieldUnit = time.Second
	zerolog.DurationFieldInteger = false
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if flagTrace {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	switch {
	case flagLogStderr:
		// do nothing

	default:
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)

	if flagJobs < 1 {
		log.Logger.Fatal().
			Int("jobs", flagJobs).
			Msg("--jobs must be at least 1")
	}

	if flagMmap && !haveMmap {
		log.Logger.Warn().
			Msg("--mmap is not supported on this platform; reading files instead")
		flagMmap = false
	}

	if flagCPUProfile != "" {
		f, err := os.OpenFile(flagCPUProfile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
		if err != nil {
			log.Logger.Fatal().
				Str("filename", flagCPUProfile).
				Err(err).
				Msg("os.OpenFile(O_WRONLY|O_CREATE|O_TRUNC) failed")
		}

		defer func() {
			err := f.Close()
			if err != nil {
				log.Logger.Error().
					Str("filename", flagCPUProfile).
					Err(err).
					Msg("failed to Close CPU profiling output file")
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Logger.Fatal().
				Err(err).
				Msg("pprof.StartCPUProfile failed")
		}

		defer pprof.StopCPUProfile()
	}

	d := checksums.NewDispatcher(
		checksums.WithEngine(flagEngine.Value),
		checksums.WithEnvironment(true),
		checksums.WithTracers(checksums.Log(log.Logger)),
	)

	log.Logger.Debug().
		Str("dispatcher", d.String()).
		Msg("engines selected")

	exitCode := 0
	switch {
	case flagFeatures:
		printFeatures(d)

	case flagSelfTest:
		if err := checksums.SelfTest(d); err != nil {
			log.Logger.Error().
				Err(err).
				Msg("self-test failed")
			exitCode = 1
		} else {
			fmt.Println("self-test passed")
		}

	case flagBenchmark:
		runBenchmark(os.Stdout)

	default:
		if err := sumAll(d, getopt.Args()); err != nil {
			exitCode = 1
		}
	}

	if flagMemProfile != "" {
		f, err := os.OpenFile(flagMemProfile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
		if err != nil {
			log.Logger.Fatal().
				Str("filename", flagMemProfile).
				Err(err).
				Msg("failed to Open memory profiling output file")
		}
		err = pprof.Lookup("allocs").WriteTo(f, 0)
		if err != nil {
			_ = f.Close()
			log.Logger.Fatal().
				Str("filename", flagMemProfile).
				Err(err).
				Msg("failed to Write memory profile to output file")
		}
		err = f.Close()
		if err != nil {
			log.Logger.Fatal().
				Str("filename", flagMemProfile).
				Err(err).
				Msg("failed to Close memory profile output file")
		}
	}

	if exitCode != 0 {
		pprof.StopCPUProfile()
		os.Exit(exitCode)
	}
}

type result struct {
	File     string               `json:"file"`
	Kind     checksums.Kind       `json:"kind"`
	Engine   checksums.Engine     `json:"engine"`
	Size     int64                `json:"size"`
	Checksum checksums.Checksum32 `json:"checksum"`
}

func sumAll(d *checksums.Dispatcher, names []string) error {
	if len(names) == 0 {
		names = []string{"-"}
	}

	kind := flagKind.Value
	enc := json.NewEncoder(os.Stdout)

	var errs *multierror.Error
	for _, name := range names {
		sum, size, err := sumOne(d, kind, name)
		if err != nil {
			log.Logger.Error().
				Str("filename", name).
				Err(err).
				Msg("failed to checksum file")
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		if flagJSON {
			_ = enc.Encode(result{
				File:     name,
				Kind:     kind,
				Engine:   d.Select(kind),
				Size:     size,
				Checksum: checksums.Checksum32(sum),
			})
		} else {
			fmt.Printf("%08x  %s\n", sum, name)
		}
	}
	return errs.ErrorOrNil()
}

func printFeatures(d *checksums.Dispatcher) {
	fs := d.Features()
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(struct {
			Vendor       string                        `json:"vendor"`
			Brand        string                        `json:"brand"`
			LogicalCores int                           `json:"logicalCores"`
			Features     []string                      `json:"features"`
			Selected     map[string]checksums.Engine   `json:"selected"`
			Available    map[string][]checksums.Engine `json:"available"`
		}{
			Vendor:       fs.Vendor,
			Brand:        fs.Brand,
			LogicalCores: fs.LogicalCores,
			Features:     fs.Names(),
			Selected:     selectedEngines(d),
			Available:    availableEngines(d),
		})
		return
	}

	fmt.Printf("vendor:   %s\n", fs.Vendor)
	fmt.Printf("brand:    %s\n", fs.Brand)
	fmt.Printf("cores:    %d\n", fs.LogicalCores)
	fmt.Printf("features: %s\n", strings.Join(fs.Names(), " "))
	for _, kind := range checksums.Kinds() {
		engines := d.Engines(kind)
		names := make([]string, len(engines))
		for i, e := range engines {
			names[i] = e.String()
		}
		fmt.Printf("%-8s  selected=%s available=%s\n", kind, d.Select(kind), strings.Join(names, ","))
	}
}

func selectedEngines(d *checksums.Dispatcher) map[string]checksums.Engine {
	out := make(map[string]checksums.Engine)
	for _, kind := range checksums.Kinds() {
		out[kind.String()] = d.Select(kind)
	}
	return out
}

func availableEngines(d *checksums.Dispatcher) map[string][]checksums.Engine {
	out := make(map[string][]checksums.Engine)
	for _, kind := range checksums.Kinds() {
		out[kind.String()] = d.Engines(kind)
	}
	return out
}
