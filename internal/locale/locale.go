// Package locale supplies label packs for the schedule formatter. The
// engine itself is locale-agnostic and only consumes injected strings;
// this package owns the actual language data, with two built-in packs
// and YAML files for everything else.
package locale

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"menuboard/internal/schedule"
)

// English is the default label pack.
func English() schedule.Labels {
	return schedule.Labels{
		Days:      [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Closed:    "Closed",
		Open:      "Open",
		ClosedNow: "Closed now; available %s",
	}
}

// Russian is built in because the first deployments ran in Russian.
func Russian() schedule.Labels {
	return schedule.Labels{
		Days:      [7]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"},
		Closed:    "Закрыто",
		Open:      "Открыто",
		ClosedNow: "Сейчас закрыто; доступно %s",
	}
}

type packFile struct {
	Days      []string `yaml:"days"`
	Closed    string   `yaml:"closed"`
	Open      string   `yaml:"open"`
	ClosedNow string   `yaml:"closed_now"`
	Seps      struct {
		DayRange string `yaml:"day_range"`
		Time     string `yaml:"time"`
		Slot     string `yaml:"slot"`
		Group    string `yaml:"group"`
	} `yaml:"seps"`
}

// Load reads one YAML label pack. The pack must declare exactly seven
// day abbreviations, Monday first; everything else is optional and
// falls back to the formatter's defaults.
func Load(path string) (schedule.Labels, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schedule.Labels{}, err
	}

	var pf packFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return schedule.Labels{}, fmt.Errorf("parse label pack %s: %w", path, err)
	}

	if len(pf.Days) != 7 {
		return schedule.Labels{}, fmt.Errorf("label pack %s: need 7 day abbreviations, got %d", path, len(pf.Days))
	}

	labels := schedule.Labels{
		Closed:      pf.Closed,
		Open:        pf.Open,
		ClosedNow:   pf.ClosedNow,
		DayRangeSep: pf.Seps.DayRange,
		TimeSep:     pf.Seps.Time,
		SlotSep:     pf.Seps.Slot,
		GroupSep:    pf.Seps.Group,
	}
	copy(labels.Days[:], pf.Days)
	return labels, nil
}

// LoadDir loads every *.yaml pack in dir, keyed by file stem
// ("de.yaml" -> "de"). Built-in "en" and "ru" packs are always
// present; files may shadow them.
func LoadDir(dir string) (map[string]schedule.Labels, error) {
	packs := map[string]schedule.Labels{
		"en": English(),
		"ru": Russian(),
	}
	if dir == "" {
		return packs, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return packs, nil
		}
		return nil, err
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		labels, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		packs[strings.TrimSuffix(e.Name(), ".yaml")] = labels
	}
	return packs, nil
}

// Get returns the named pack, falling back to English.
func Get(packs map[string]schedule.Labels, name string) schedule.Labels {
	if labels, ok := packs[name]; ok {
		return labels
	}
	return English()
}
