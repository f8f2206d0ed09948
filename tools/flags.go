package tools

import (
	"flag"
	"log"
)

const (
	CommandMesh  = "mesh"
	CommandFrame = "frame"
)

type FlagsGlobal struct {
	Help    *bool `json:"help"`
	Version *bool `json:"version"`
}

type MesherFlags struct {
	Width       *int     `json:"width"`
	Height      *int     `json:"height"`
	BBox        *string  `json:"bbox"`
	Peak        *float64 `json:"peak"`
	HeightScale *float64 `json:"height_scale"`
	Opacity     *float64 `json:"opacity"`
	MaxGridSize *int     `json:"max_grid_size"`
	Wireframe   *bool    `json:"wireframe"`
	Hidden      *bool    `json:"hidden"`
	Projection  *string  `json:"projection"`
	Workers     *int     `json:"workers"`
}

type FlagsForCommandMesh struct {
	MesherFlags
	Metrics      *bool
	Silent       *bool
	LogTimestamp *bool
	Help         *bool
	Version      *bool
}

type FlagsForCommandFrame struct {
	MesherFlags
}

func ParseFlagsGlobal() FlagsGlobal {
	help := defineBoolFlag("help", "h", false, "Displays this help.")
	version := defineBoolFlag("version", "", false, "Displays the version of the terrain mesher.")

	flag.Parse()

	return FlagsGlobal{
		Help:    help,
		Version: version,
	}
}

// Registers the flags describing the raster and the mesher settings, shared by all commands
func defineMesherFlags(flagCommand *flag.FlagSet) MesherFlags {
	return MesherFlags{
		Width:       defineIntFlagCommand(flagCommand, "width", "W", 256, "Number of columns of the synthetic raster."),
		Height:      defineIntFlagCommand(flagCommand, "height", "H", 256, "Number of rows of the synthetic raster."),
		BBox:        defineStringFlagCommand(flagCommand, "bbox", "b", "139.0,35.0,140.0,36.0", "Geographic extent of the raster as minLon,minLat,maxLon,maxLat in degrees."),
		Peak:        defineFloat64FlagCommand(flagCommand, "peak", "p", 1500, "Height in meters of the hill in the synthetic raster."),
		HeightScale: defineFloat64FlagCommand(flagCommand, "height-scale", "z", 1.0, "Exaggeration applied to every height, between 0.1 and 10."),
		Opacity:     defineFloat64FlagCommand(flagCommand, "opacity", "a", 0.8, "Opacity of the terrain material, between 0.1 and 1."),
		MaxGridSize: defineIntFlagCommand(flagCommand, "max-grid-size", "m", 50, "Target number of samples along the shorter raster side."),
		Wireframe:   defineBoolFlagCommand(flagCommand, "wireframe", "w", false, "Draws the mesh as a wireframe."),
		Hidden:      defineBoolFlagCommand(flagCommand, "hidden", "", false, "Builds the mesh without showing it."),
		Projection:  defineStringFlagCommand(flagCommand, "projection", "", "ELLIPSOID", "Geodetic to cartesian projection, can be 'ELLIPSOID' or 'PROJ4'. PROJ4 needs a build with the proj4 tag."),
		Workers:     defineIntFlagCommand(flagCommand, "workers", "j", 0, "Number of goroutines projecting mesh rows, 0 means one per CPU."),
	}
}

func ParseFlagsForCommandMesh(args []string) FlagsForCommandMesh {
	log.Println(FmtJSONString(args))

	flagCommand := flag.NewFlagSet("command-mesh", flag.ExitOnError)

	mesherFlags := defineMesherFlags(flagCommand)
	metrics := defineBoolFlagCommand(flagCommand, "metrics", "", false, "Prints the collected metrics after the run.")
	silent := defineBoolFlagCommand(flagCommand, "silent", "s", false, "Use to suppress all the non-error messages.")
	logTimestamp := defineBoolFlagCommand(flagCommand, "timestamp", "t", false, "Adds timestamp to log messages.")
	help := defineBoolFlagCommand(flagCommand, "help", "h", false, "Displays this help.")
	version := defineBoolFlagCommand(flagCommand, "version", "v", false, "Displays the version of the terrain mesher.")

	flagCommand.Parse(args)

	return FlagsForCommandMesh{
		MesherFlags:  mesherFlags,
		Metrics:      metrics,
		Silent:       silent,
		LogTimestamp: logTimestamp,
		Help:         help,
		Version:      version,
	}
}

func ParseFlagsForCommandFrame(args []string) FlagsForCommandFrame {
	log.Println(FmtJSONString(args))

	flagCommand := flag.NewFlagSet("command-frame", flag.ExitOnError)
	mesherFlags := defineMesherFlags(flagCommand)

	flagCommand.Parse(args)

	return FlagsForCommandFrame{
		MesherFlags: mesherFlags,
	}
}

func defineBoolFlag(name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flag.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flag.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineStringFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue string, usage string) *string {
	var output string
	flagCommand.StringVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.StringVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineIntFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue int, usage string) *int {
	var output int
	flagCommand.IntVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.IntVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineFloat64FlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue float64, usage string) *float64 {
	var output float64
	flagCommand.Float64Var(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.Float64Var(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineBoolFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flagCommand.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}
