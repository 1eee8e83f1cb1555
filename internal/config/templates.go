package config

import (
	"fmt"
	"os"
)

func Template() string {
	return unitsTemplate
}

// WriteTemplate writes the sample definitions file to path. An existing
// file is kept unless overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(unitsTemplate), 0o600)
}

const unitsTemplate = `# Engine defaults for unitctl and the convert builder.
[engine]
precision = 9
rounding = "half_even"
mode = "decimal"
output = "raw"
division_precision = 32
anonymous_cache = 1024

# A new dimension maps a signature to its name so algebra results
# resolve to it.
[[dimension]]
name = "flow_rate"
signature = { length = 3, time = -1 }

[[unit]]
symbol = "m3/s"
aliases = ["cubic meter per second", "cumecs"]
dimension = "flow_rate"
[unit.derive]
mul = ["m@length", "m@length", "m@length"]
div = ["s"]

[[unit]]
symbol = "L/min"
aliases = ["lpm", "liter per minute", "liters per minute"]
dimension = "flow_rate"
[unit.derive]
mul = ["L"]
div = ["min"]

# Plain linear unit in a built-in dimension, floored at absolute zero.
[[unit]]
symbol = "mK"
aliases = ["millikelvin", "millikelvins"]
dimension = "temperature"
multiplier = "0.001"
offset = "-273150"
[unit.bound]
min = 0
message = "millikelvin cannot be negative"

# Gauge pressure: shifted by the context atmosphere on the way to Pa.
[[unit]]
symbol = "atg"
aliases = ["technical atmosphere gauge"]
dimension = "pressure"
multiplier = 98066.5
[unit.shift]
key = "atmospheric_pressure"
default = 101325
op = "add"
`
