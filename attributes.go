package mfm

import (
	"regexp"
	"strconv"
	"strings"
)

var duration = regexp.MustCompile("^[0-9.]+s$")
var number = regexp.MustCompile("^-?[0-9]*(?:\\.[0-9]+)?$")
var color = regexp.MustCompile("^[0-9a-fA-F]{3,6}$")

// Arg is a single fn argument, either a bare flag (left) or a string value (speed=2s).
type Arg struct {
	Value string
	Flag  bool
}

// Args maps fn option names to their values.
type Args map[string]Arg

func FlagArg() Arg {
	return Arg{Flag: true}
}

func StringArg(value string) Arg {
	return Arg{Value: value}
}

// Flag reports whether option is present and truthy: a bare flag or a non-empty string.
func (a Args) Flag(name string) bool {
	arg, ok := a[name]
	return ok && (arg.Flag || arg.Value != "")
}

// String returns string value of option, flags have no string value.
func (a Args) String(name string) (string, bool) {
	arg, ok := a[name]
	if !ok || arg.Flag {
		return "", false
	}

	return arg.Value, true
}

// ParseArgs parses fn arguments in this format: flag,key=value, for example: left,speed=2s
func ParseArgs(raw string) Args {
	args := Args{}

	for _, part := range strings.Split(raw, ",") {
		n := strings.SplitN(part, "=", 2)
		key := strings.TrimSpace(n[0])
		if key == "" {
			continue
		}

		if len(n) == 1 {
			args[key] = FlagArg()
			continue
		}

		args[key] = StringArg(strings.TrimSpace(n[1]))
	}

	return args
}

// Duration validates time value, for example: 2s, 0.75s. Anything else is rejected.
func Duration(raw string) (string, bool) {
	if !duration.MatchString(raw) {
		return "", false
	}

	return raw, true
}

// Number parses decimal value and clamps it into [min, max].
func Number(raw string, min, max float64) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" || !number.MatchString(raw) {
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}

	if v < min {
		v = min
	}

	if v > max {
		v = max
	}

	return v, true
}

// Color validates hex color without leading #, for example: f00, 00ff7f
func Color(raw string) (string, bool) {
	if !color.MatchString(raw) {
		return "", false
	}

	return raw, true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
