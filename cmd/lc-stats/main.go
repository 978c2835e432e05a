package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/grafana/globalconf"
	"github.com/raintank/lctank/conf"
	"github.com/raintank/lctank/logger"
	"github.com/raintank/lctank/stats"
	"github.com/raintank/lctank/table"
	"github.com/raintank/lctank/util"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	version = "(none)"

	showVersion = flag.Bool("version", false, "print version string")
	confFile    = flag.String("config", "/etc/lctank/lctank.ini", "configuration file path")
	bandsFile   = flag.String("bands-file", "/etc/lctank/bands.conf", "bandset definitions file path")
	bandSet     = flag.String("bandset", "default", "bandset to use when no band=file args are given")
	dir         = flag.String("dir", ".", "directory holding the per-band csv files")
	col         = flag.String("col", "", "magnitude column to summarize. overrides the bandset")
	format      = flag.String("format", "table", "output format. table|json|pickle")
	out         = flag.String("out", "-", "output file. - means stdout")
	logLevel    = flag.String("log-level", "info", "log level. panic|fatal|error|warning|info|debug")

	statList util.StringSliceFlag
)

func init() {
	formatter := &logger.TextFormatter{}
	formatter.TimestampFormat = "2006-01-02 15:04:05.000"
	formatter.ToolName = "lc-stats"
	log.SetFormatter(formatter)

	flag.Var(&statList, "stats", "comma separated stats to compute. max|mean|min|med|stddev|range. overrides the bandset")
}

func main() {
	flag.Usage = func() {
		fmt.Println("lc-stats")
		fmt.Println("Computes summary statistics across the bands of a lightcurve dataset")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println()
		fmt.Println("	lc-stats [flags] [band=file ...]")
		fmt.Println()
		fmt.Println("	When no band=file args are given, bands and their files come from the -bands-file bandset.")
		fmt.Println()
		fmt.Println("Flags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Only try and parse the conf file if it exists
	path := ""
	if _, err := os.Stat(*confFile); err == nil {
		path = *confFile
	}
	config, err := globalconf.NewWithOptions(&globalconf.Options{
		Filename:  path,
		EnvPrefix: "LC_",
	})
	if err != nil {
		log.Fatalf("error with configuration file: %s", err)
	}
	config.ParseAll()

	lvl, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("failed to parse log-level, %s", err.Error())
	}
	log.SetLevel(lvl)

	if *showVersion {
		fmt.Printf("lc-stats (version: %s - runtime: %s)\n", version, runtime.Version())
		return
	}

	var sel []stats.Stat
	for _, name := range statList {
		st := stats.FromName(name)
		if st == stats.None {
			log.Fatalf("unknown stat %q", name)
		}
		sel = append(sel, st)
	}

	var bands []string
	var paths []string

	if flag.NArg() > 0 {
		seen := make(map[string]struct{})
		for _, arg := range flag.Args() {
			parts := strings.SplitN(arg, "=", 2)
			if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
				log.Fatalf("invalid band spec %q. want band=file", arg)
			}
			if _, ok := seen[parts[0]]; ok {
				log.Fatalf("band %q given more than once", parts[0])
			}
			seen[parts[0]] = struct{}{}
			bands = append(bands, parts[0])
			paths = append(paths, parts[1])
		}
		if *col == "" {
			*col = "mag"
		}
	} else {
		sets, err := conf.ReadBandSets(*bandsFile)
		if err != nil {
			log.Fatalf("error reading bands file %q: %s", *bandsFile, err)
		}
		set := sets.Get(*bandSet)
		bands = set.Bands
		for _, band := range bands {
			paths = append(paths, filepath.Join(*dir, fmt.Sprintf(set.Files, band)))
		}
		if *col == "" {
			*col = set.MagCol
		}
		if len(sel) == 0 {
			sel = set.Stats
		}
	}

	// the bands are independent files, so load them concurrently
	tables := make([]*table.Table, len(bands))
	var g errgroup.Group
	for i := range bands {
		i := i
		g.Go(func() error {
			t, err := table.Load(paths[i])
			if err != nil {
				return fmt.Errorf("band %q: %s", bands[i], err)
			}
			log.WithField("band", bands[i]).WithField("rows", t.NumRows()).Debug("loaded lightcurve")
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("loading lightcurves: %s", err)
	}

	lc := make(map[string]*table.Table, len(bands))
	for i, band := range bands {
		lc[band] = tables[i]
	}

	sum, err := stats.Calc(lc, bands, *col, sel...)
	if err != nil {
		log.Fatalf("computing stats: %s", err)
	}

	if err := write(sum); err != nil {
		log.Fatalf("writing output: %s", err)
	}
}

func write(sum *stats.Summary) error {
	w := os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch *format {
	case "table":
		return sum.WriteTable(w)
	case "json":
		buf, err := sum.MarshalJSONFast(nil)
		if err != nil {
			return err
		}
		buf = append(buf, '\n')
		_, err = w.Write(buf)
		return err
	case "pickle":
		buf, err := sum.Pickle(nil)
		if err != nil {
			return err
		}
		_, err = w.Write(buf)
		return err
	}
	return fmt.Errorf("unknown format %q", *format)
}
