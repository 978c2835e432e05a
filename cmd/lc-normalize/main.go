package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"

	"github.com/raintank/lctank/curve"
	"github.com/raintank/lctank/logger"
	"github.com/raintank/lctank/table"
	log "github.com/sirupsen/logrus"
)

var (
	version = "(none)"

	showVersion = flag.Bool("version", false, "print version string")
	col         = flag.String("col", "mag", "magnitude column to normalize")
	fill        = flag.Float64("fill", math.NaN(), "replace undefined normalized samples with this value")
	onEmpty     = flag.String("on-empty", "error", "behavior for a lightcurve without observations. error|none")
	precision   = flag.Int("precision", -1, "decimals to print. -1 means shortest exact representation")
	out         = flag.String("out", "-", "output file. - means stdout")
	logLevel    = flag.String("log-level", "info", "log level. panic|fatal|error|warning|info|debug")
)

func init() {
	formatter := &logger.TextFormatter{}
	formatter.TimestampFormat = "2006-01-02 15:04:05.000"
	formatter.ToolName = "lc-normalize"
	log.SetFormatter(formatter)
}

func main() {
	flag.Usage = func() {
		fmt.Println("lc-normalize")
		fmt.Println("Rescales the magnitude column of a lightcurve to the unit interval, one value per output line")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println()
		fmt.Println("	lc-normalize [flags] <file>")
		fmt.Println()
		fmt.Println("	<file> is a csv lightcurve (gzipped if it ends in .gz). - means stdin.")
		fmt.Println()
		fmt.Println("Example:")
		fmt.Println()
		fmt.Println("	lc-normalize -col psfMag -precision 6 lsst_g.csv")
		fmt.Println()
		fmt.Println("Flags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	lvl, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("failed to parse log-level, %s", err.Error())
	}
	log.SetLevel(lvl)

	if *showVersion {
		fmt.Printf("lc-normalize (version: %s - runtime: %s)\n", version, runtime.Version())
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(-1)
	}

	var policy curve.EmptyPolicy
	switch *onEmpty {
	case "error":
		policy = curve.EmptyError
	case "none":
		policy = curve.EmptyNone
	default:
		log.Fatalf("unknown on-empty behavior %q. want error or none", *onEmpty)
	}

	var t *table.Table
	if file := flag.Arg(0); file == "-" {
		t, err = table.LoadReader(os.Stdin)
	} else {
		t, err = table.Load(file)
	}
	if err != nil {
		log.Fatalf("loading lightcurve: %s", err)
	}
	log.WithField("rows", t.NumRows()).Debug("loaded lightcurve")

	normalized, err := curve.NormalizeWith(t, *col, policy)
	if err != nil {
		log.Fatalf("normalizing: %s", err)
	}
	if !math.IsNaN(*fill) {
		normalized = curve.Fill(normalized, *fill)
	}

	w := os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("writing output: %s", err)
		}
		defer f.Close()
		w = f
	}
	buf := bufio.NewWriter(w)
	for _, v := range normalized {
		buf.WriteString(strconv.FormatFloat(v, 'f', *precision, 64))
		buf.WriteByte('\n')
	}
	if err := buf.Flush(); err != nil {
		log.Fatalf("writing output: %s", err)
	}
}
