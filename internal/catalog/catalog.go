package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

type (
	// Unit is a single day's verse with translations and the expanded meaning.
	Unit struct {
		Day           int    `yaml:"day"`
		Verse         string `yaml:"verse"`
		TranslationEN string `yaml:"translation_en"`
		TranslationHI string `yaml:"translation_hi"`
		Meaning       string `yaml:"meaning"`
	}

	// Catalog is the ordered day-indexed verse sequence. It is populated once
	// at startup and never mutated, so concurrent reads need no locking.
	Catalog struct {
		units map[int]Unit
	}

	catalogFile struct {
		Units []Unit `yaml:"units"`
	}
)

// Load reads and validates the catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal catalog file: %w", err)
	}

	return New(file.Units)
}

// New builds a catalog from units, validating that days are contiguous from 1.
func New(units []Unit) (*Catalog, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	byDay := make(map[int]Unit, len(units))
	for _, u := range units {
		if u.Verse == "" {
			return nil, fmt.Errorf("day %d: empty verse", u.Day)
		}
		if _, ok := byDay[u.Day]; ok {
			return nil, fmt.Errorf("day %d: duplicate entry", u.Day)
		}
		byDay[u.Day] = u
	}

	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Ints(days)
	for i, day := range days {
		if day != i+1 {
			return nil, fmt.Errorf("days must be contiguous from 1, got %d at position %d", day, i+1)
		}
	}

	return &Catalog{units: byDay}, nil
}

// Get returns the unit for a day, if the catalog has one.
func (c *Catalog) Get(day int) (Unit, bool) {
	u, ok := c.units[day]
	return u, ok
}

// Size returns the number of days in the catalog.
func (c *Catalog) Size() int {
	return len(c.units)
}
