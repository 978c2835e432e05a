package stats

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	ogórek "github.com/kisielk/og-rek"
)

// Summary holds one value per selected stat and band.
// Rows are stats and columns are bands, both in selection order.
type Summary struct {
	stats []Stat
	bands []string
	vals  [][]float64 // row major: vals[stat][band]
}

func newSummary(stats []Stat, bands []string) *Summary {
	vals := make([][]float64, len(stats))
	for i := range vals {
		vals[i] = make([]float64, len(bands))
	}
	return &Summary{
		stats: stats,
		bands: bands,
		vals:  vals,
	}
}

func (s *Summary) Stats() []Stat {
	return s.stats
}

func (s *Summary) Bands() []string {
	return s.bands
}

// Value returns the computed value for the given stat and band,
// and whether the summary holds that pair at all.
func (s *Summary) Value(stat Stat, band string) (float64, bool) {
	for i, st := range s.stats {
		if st != stat {
			continue
		}
		for j, b := range s.bands {
			if b == band {
				return s.vals[i][j], true
			}
		}
	}
	return math.NaN(), false
}

// MarshalJSONFast renders the summary as a band keyed object like
// {"g":{"max":9,"mean":5.25,"min":1},...}, appending to b.
// NaN is not valid JSON, so undefined values render as null.
func (s *Summary) MarshalJSONFast(b []byte) ([]byte, error) {
	b = append(b, '{')
	for j, band := range s.bands {
		b = strconv.AppendQuote(b, band)
		b = append(b, `:{`...)
		for i, st := range s.stats {
			b = strconv.AppendQuote(b, st.Row())
			b = append(b, ':')
			v := s.vals[i][j]
			if math.IsNaN(v) {
				b = append(b, `null,`...)
			} else {
				b = strconv.AppendFloat(b, v, 'f', -1, 64)
				b = append(b, ',')
			}
		}
		if len(s.stats) != 0 {
			b = b[:len(b)-1] // cut last comma
		}
		b = append(b, `},`...)
	}
	if len(s.bands) != 0 {
		b = b[:len(b)-1] // cut last comma
	}
	b = append(b, '}')
	return b, nil
}

func (s *Summary) MarshalJSON() ([]byte, error) {
	return s.MarshalJSONFast(nil)
}

// forPickle lays the summary out as a dict of per-band dicts, which pandas
// reads straight back into a stats frame.
func (s *Summary) forPickle() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(s.bands))
	for j, band := range s.bands {
		col := make(map[string]float64, len(s.stats))
		for i, st := range s.stats {
			col[st.Row()] = s.vals[i][j]
		}
		out[band] = col
	}
	return out
}

// Pickle renders the summary in pickle format, appending to buf.
func (s *Summary) Pickle(buf []byte) ([]byte, error) {
	buffer := bytes.NewBuffer(buf)
	encoder := ogórek.NewEncoder(buffer)
	err := encoder.Encode(s.forPickle())
	return buffer.Bytes(), err
}

// WriteTable renders the summary as an aligned text table, one row per stat
// and one column per band.
func (s *Summary) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprint(tw, "stat")
	for _, band := range s.bands {
		fmt.Fprintf(tw, "\t%s", band)
	}
	fmt.Fprintln(tw)
	for i, st := range s.stats {
		fmt.Fprint(tw, st.Row())
		for j := range s.bands {
			fmt.Fprintf(tw, "\t%v", s.vals[i][j])
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
