package conf

import (
	"fmt"
	"strings"

	"github.com/alyu/configparser"
	"github.com/raintank/lctank/stats"
)

// BandSet describes one survey's photometric bands and how to summarize them.
type BandSet struct {
	Name   string
	Bands  []string
	MagCol string
	Files  string // file name pattern with a %s placeholder for the band
	Stats  []stats.Stat
}

// BandSets holds the bandset definitions
type BandSets struct {
	Data           []BandSet
	DefaultBandSet BandSet
}

// NewBandSets create instance of BandSets
func NewBandSets() BandSets {
	return BandSets{
		Data:           make([]BandSet, 0),
		DefaultBandSet: defaultBandSet(),
	}
}

func defaultBandSet() BandSet {
	return BandSet{
		Name:   "default",
		Bands:  []string{"u", "g", "r", "i", "z", "y"},
		MagCol: "mag",
		Files:  "%s.csv",
		Stats:  []stats.Stat{stats.Max, stats.Mean, stats.Min},
	}
}

// ReadBandSets returns the bandsets defined in a bands.conf file
// and adds the default
func ReadBandSets(file string) (BandSets, error) {
	config, err := configparser.Read(file)
	if err != nil {
		return BandSets{}, err
	}
	sections, err := config.AllSections()
	if err != nil {
		return BandSets{}, err
	}

	result := NewBandSets()

	for _, s := range sections {
		item := BandSet{}
		item.Name = strings.Trim(strings.SplitN(s.String(), "\n", 2)[0], " []")
		if item.Name == "" || strings.HasPrefix(item.Name, "#") {
			continue
		}

		bandsStr := s.ValueOf("bands")
		if bandsStr == "" {
			return BandSets{}, fmt.Errorf("[%s]: missing bands", item.Name)
		}
		for _, band := range strings.Split(bandsStr, ",") {
			band = strings.TrimSpace(band)
			if band == "" {
				return BandSets{}, fmt.Errorf("[%s]: empty band in %q", item.Name, bandsStr)
			}
			item.Bands = append(item.Bands, band)
		}

		item.MagCol = s.ValueOf("mag-col")
		if item.MagCol == "" {
			item.MagCol = "mag"
		}

		item.Files = s.ValueOf("files")
		if item.Files == "" {
			item.Files = "%s.csv"
		}
		if !strings.Contains(item.Files, "%s") {
			return BandSets{}, fmt.Errorf("[%s]: files pattern %q lacks a %%s placeholder", item.Name, item.Files)
		}

		statsStr := s.ValueOf("stats")
		if statsStr == "" {
			item.Stats = append(item.Stats, stats.DefaultStats...)
		} else {
			for _, statStr := range strings.Split(statsStr, ",") {
				statStr = strings.TrimSpace(statStr)
				st := stats.FromName(statStr)
				if st == stats.None {
					return BandSets{}, fmt.Errorf("[%s]: unknown stat %q", item.Name, statStr)
				}
				item.Stats = append(item.Stats, st)
			}
		}

		result.Data = append(result.Data, item)
	}

	return result, nil
}

// Get returns the bandset with the given name
// it can always find one, because there's a default
func (b BandSets) Get(name string) BandSet {
	for _, s := range b.Data {
		if s.Name == name {
			return s
		}
	}
	return b.DefaultBandSet
}
