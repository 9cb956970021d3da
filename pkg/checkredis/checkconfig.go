package checkredis

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ApplyConfig applies one --check-config entry to the matching check.
// The format is "key,warning,critical,direction,min,max" where the
// fields after key are optional and apply left to right. An empty field
// keeps the previous setting, direction is "a" (ascending, default) or
// "d" (descending). Entries for checks not part of this run are
// ignored, malformed entries are an error.
func (cs CheckSet) ApplyConfig(spec string) error {
	fields := strings.Split(spec, ",")
	key := fields[0]
	if key == "" {
		return fmt.Errorf("check config %q: missing check name", spec)
	}
	if len(fields) > 6 {
		return fmt.Errorf("check config %s: too many fields in %q", key, spec)
	}

	check, ok := cs[key]
	if !ok {
		log.Debugf("check config for %s ignored, not part of this run", key)

		return nil
	}

	targets := []**float64{&check.WarningLimit, &check.CriticalLimit, nil, &check.Minimum, &check.Maximum}
	for i, field := range fields[1:] {
		if field == "" {
			continue
		}
		if i == 2 { // direction
			switch field {
			case "a":
				check.Ascending = true
			case "d":
				check.Ascending = false
			default:
				return fmt.Errorf("check config %s: direction must be 'a' or 'd', got %q", key, field)
			}

			continue
		}
		num, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("check config %s: %q is not a number", key, field)
		}
		*targets[i] = &num
	}

	return nil
}

// CheckDefinition is the yaml layout of one entry in a checks file.
type CheckDefinition struct {
	Warning   *float64 `yaml:"warning"`
	Critical  *float64 `yaml:"critical"`
	Direction string   `yaml:"direction"`
	Min       *float64 `yaml:"min"`
	Max       *float64 `yaml:"max"`
	Forced    *bool    `yaml:"forced"`
}

type checksFile struct {
	Checks map[string]CheckDefinition `yaml:"checks"`
}

// ApplyChecksFile merges per-check definitions from a yaml file into
// the set. Command line --check-config entries applied afterwards win.
func (cs CheckSet) ApplyChecksFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("checks file: %s", err.Error())
	}
	file := &checksFile{}
	if err := yaml.Unmarshal(raw, file); err != nil {
		return fmt.Errorf("checks file %s: %s", path, err.Error())
	}

	for key, def := range file.Checks {
		check, ok := cs[key]
		if !ok {
			log.Debugf("checks file entry for %s ignored, not part of this run", key)

			continue
		}
		if def.Warning != nil {
			check.WarningLimit = def.Warning
		}
		if def.Critical != nil {
			check.CriticalLimit = def.Critical
		}
		if def.Min != nil {
			check.Minimum = def.Min
		}
		if def.Max != nil {
			check.Maximum = def.Max
		}
		if def.Forced != nil {
			check.Forced = *def.Forced
		}
		switch def.Direction {
		case "", "a":
		case "d":
			check.Ascending = false
		default:
			return fmt.Errorf("checks file %s: direction of %s must be 'a' or 'd', got %q", path, key, def.Direction)
		}
	}

	return nil
}
