package cmd

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/raintank/dur"
	"github.com/raintank/lctank/curve"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// observations start at MJD 60000 and advance by the cadence
const startMJD = 60000

var csvCmd = &cobra.Command{
	Use:   "csv",
	Short: "Writes one random-walk lightcurve csv per band",
	Run: func(cmd *cobra.Command, args []string) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		log.WithField("seed", seed).Info("generating lightcurves")

		step, err := dur.ParseDuration(cadence)
		if err != nil {
			log.Fatalf("failed to parse cadence, %s", err.Error())
		}

		for _, band := range bands {
			file := band + ".csv"
			if gz {
				file += ".gz"
			}
			file = filepath.Join(outDir, file)
			if err := writeBand(rng, file, step); err != nil {
				log.Fatalf("band %q: %s", band, err)
			}
			log.WithField("band", band).WithField("file", file).Info("wrote lightcurve")
		}

		if bandsFileOut != "" {
			if err := writeBandsFile(bandsFileOut); err != nil {
				log.Fatalf("writing bands file: %s", err)
			}
			log.WithField("file", bandsFileOut).Info("wrote bands file")
		}
	},
}

var (
	bands        []string
	points       int
	cadence      string
	magCol       string
	timeCol      string
	baseMag      float64
	amplitude    float64
	gaps         float64
	gz           bool
	bandsFileOut string
)

func init() {
	rootCmd.AddCommand(csvCmd)
	csvCmd.Flags().StringSliceVar(&bands, "bands", []string{"u", "g", "r", "i", "z", "y"}, "bands to generate, one csv file per band")
	csvCmd.Flags().IntVar(&points, "points", 1000, "observations per band")
	csvCmd.Flags().StringVar(&cadence, "cadence", "1d", "time between observations (e.g. 30min, 1d)")
	csvCmd.Flags().StringVar(&magCol, "mag-col", "mag", "name of the magnitude column")
	csvCmd.Flags().StringVar(&timeCol, "time-col", "mjd", "name of the time column")
	csvCmd.Flags().Float64Var(&baseMag, "base", 15, "brightest magnitude of the generated curves")
	csvCmd.Flags().Float64Var(&amplitude, "amplitude", 2.5, "magnitude range of the generated curves")
	csvCmd.Flags().Float64Var(&gaps, "gaps", 0, "fraction of observations to leave without a magnitude")
	csvCmd.Flags().BoolVar(&gz, "gz", false, "gzip the generated files")
	csvCmd.Flags().StringVar(&bandsFileOut, "write-bands-file", "", "also write a bands.conf describing the generated dataset to this path")
}

// writeBand renders a random walk, rescaled to sit between base and
// base+amplitude, into a csv lightcurve.
func writeBand(rng *rand.Rand, file string, stepSec uint32) error {
	walk := make([]float64, points)
	v := float64(0)
	for i := range walk {
		v += rng.Float64() - 0.5
		walk[i] = v
	}
	mags := curve.Offset(curve.Scale(curve.MinMax(walk), amplitude), baseMag)

	write := func(w io.Writer) error {
		cw := csv.NewWriter(w)
		cw.Write([]string{timeCol, magCol})
		mjd := float64(startMJD)
		stepDays := float64(stepSec) / 86400
		rec := make([]string, 2)
		for i := 0; i < points; i++ {
			rec[0] = strconv.FormatFloat(mjd, 'f', 5, 64)
			if gaps > 0 && rng.Float64() < gaps {
				rec[1] = ""
			} else {
				rec[1] = strconv.FormatFloat(mags[i], 'f', 4, 64)
			}
			cw.Write(rec)
			mjd += stepDays
		}
		cw.Flush()
		return cw.Error()
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if strings.HasSuffix(file, ".gz") {
		gzw := gzip.NewWriter(f)
		if err := write(gzw); err != nil {
			f.Close()
			return err
		}
		if err := gzw.Close(); err != nil {
			f.Close()
			return err
		}
	} else {
		if err := write(f); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

// writeBandsFile renders a bands.conf section matching the generated dataset,
// ready for lc-stats -bands-file.
func writeBandsFile(file string) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# generated by lc-fakecurves csv (seed %d)\n", seed)
	fmt.Fprintf(&b, "[fake]\n")
	fmt.Fprintf(&b, "bands = %s\n", strings.Join(bands, ","))
	fmt.Fprintf(&b, "mag-col = %s\n", magCol)
	if gz {
		fmt.Fprintf(&b, "files = %%s.csv.gz\n")
	} else {
		fmt.Fprintf(&b, "files = %%s.csv\n")
	}
	return ioutil.WriteFile(file, b.Bytes(), 0644)
}
