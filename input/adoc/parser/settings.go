package parser

import (
	"strconv"

	"github.com/npillmayer/schuko"
)

// Settings control a parse.
type Settings struct {
	Strict bool // stop at the first error
}

// SettingsFromConfig reads parser settings from a configuration. Recognized
// keys are
//
//     adoc.strict     "true" for strict parsing
//
func SettingsFromConfig(conf schuko.Configuration) Settings {
	var settings Settings
	if conf == nil {
		return settings
	}
	if s := conf.GetString("adoc.strict"); s != "" {
		strict, err := strconv.ParseBool(s)
		if err != nil {
			tracer().Errorf("configuration key adoc.strict: %v", err)
		}
		settings.Strict = strict
	}
	return settings
}
