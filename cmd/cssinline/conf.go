package main

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracers lists the trace keys of the packages of this module.
var tracers = []string{
	"cssinline",
	"cssinline.cssom",
	"cssinline.dom",
	"cssinline.style",
}

// config is a flat key/value configuration, filled from the command line.
type config map[string]string

func (c config) InitDefaults() {
	c["tracing.adapter"] = "go"
	c["tracelevel.root"] = "Error"
}

func (c config) IsSet(key string) bool {
	_, found := c[key]
	return found
}

func (c config) GetString(key string) string {
	return c[key]
}

func (c config) GetInt(key string) int {
	n, _ := strconv.Atoi(c[key])
	return n
}

func (c config) GetBool(key string) bool {
	return strings.EqualFold(c[key], "true")
}

func (c config) IsInteractive() bool { return false }

var _ schuko.Configuration = config{}

// setupTracing routes tracing of all packages to the Go standard logger,
// using trace level level ("Error", "Info" or "Debug").
func setupTracing(level string) error {
	conf := config{}
	conf.InitDefaults()
	level = tracing.TraceLevelFromString(level).String()
	for _, key := range tracers {
		conf["tracelevel."+key] = level
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), true)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
