/*
 * This file is part of the Cesium terrain mesher distribution (https://github.com/ecopia-map/cesium_terrain_mesher).
 * Copyright (c) 2019 Massimo Federico Bonfigli - m.federico.bonfigli@gmail.com
 *
 * This program is free software; you can redistribute it and/or modify it
 * under the terms of the GNU Lesser General Public License Version 3 as
 * published by the Free Software Foundation;
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program. If not, see <http://www.gnu.org/licenses/>.
 *
 * This software also uses third party components. You can find information
 * on their credits and licensing in the file LICENSE-3RD-PARTIES.md that
 * you should have received togheter with the source code.
 */

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ecopia-map/cesium_terrain_mesher/internal/data"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/metrics"
	"github.com/ecopia-map/cesium_terrain_mesher/internal/terrain"
	"github.com/ecopia-map/cesium_terrain_mesher/pkg"
	"github.com/ecopia-map/cesium_terrain_mesher/pkg/algorithm_manager/std_algorithm_manager"
	"github.com/ecopia-map/cesium_terrain_mesher/pkg/viewer"
	"github.com/ecopia-map/cesium_terrain_mesher/tools"
	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const VERSION = "0.3.0"

const logo = `
  _                      _                              _
 | |_ ___ _ __ _ __ __ _(_)_ __    _ __ ___   ___  ___| |__   ___ _ __
 | __/ _ \ '__| '__/ _  | | '_ \  | '_   _ \ / _ \/ __| '_ \ / _ \ '__|
 | ||  __/ |  | | | (_| | | | | | | | | | | |  __/\__ \ | | |  __/ |
  \__\___|_|  |_|  \__,_|_|_| |_| |_| |_| |_|\___||___/_| |_|\___|_|
  Cesium terrain meshes from elevation rasters, written in golang
  Copyright YYYY
`

func main() {
	log.SetPrefix("[mesher] ")
	log.SetFlags(log.LUTC | log.Ldate | log.Lmicroseconds | log.Lshortfile)

	flagsGlobal := tools.ParseFlagsGlobal()
	defer glog.Flush()

	if *flagsGlobal.Help {
		showHelp()
		return
	}
	if *flagsGlobal.Version {
		printVersion()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		log.Fatal("Please specify a subcommand [mesh|frame].")
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case tools.CommandMesh:
		mainCommandMesh(args)
	case tools.CommandFrame:
		mainCommandFrame(args)
	default:
		log.Fatalf("Unrecognized command [%q]. Command must be one of [mesh|frame]", cmd)
	}
}

func mainCommandMesh(args []string) {
	flags := tools.ParseFlagsForCommandMesh(args)

	if *flags.Help {
		showHelp()
		return
	}
	if *flags.Version {
		printVersion()
		return
	}

	// set logging and timestamp logging
	if *flags.Silent {
		tools.DisableLogger()
	} else {
		printLogo()
	}
	if !*flags.LogTimestamp {
		tools.DisableLoggerTimestamp()
	}

	opts := newMesherOptions(&flags.MesherFlags)
	raster, msg, ok := validateMesherFlags(opts, &flags.MesherFlags)
	if !ok {
		log.Fatal("Error parsing input parameters: " + msg)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewMetrics(registry)
	mesher := pkg.NewMesher(std_algorithm_manager.NewAlgorithmManager, collector)
	session := viewer.NewSession(mesher, viewer.NewLogRenderer(), opts, collector)

	tools.LogOutputf("Meshing %dx%d raster...", raster.Width, raster.Height)
	start := time.Now()
	result, err := session.Submit(raster, nil)
	if err != nil {
		log.Fatal("Error while meshing: ", err)
	}
	timeTrack(start, "meshing")

	fmt.Println(tools.FmtJSONString(newRunReport(result)))

	if *flags.Metrics {
		if err := printMetrics(registry); err != nil {
			log.Fatal("Error while printing metrics: ", err)
		}
	}

	tools.LogOutput("Conversion Completed")
}

func mainCommandFrame(args []string) {
	flags := tools.ParseFlagsForCommandFrame(args)

	opts := newMesherOptions(&flags.MesherFlags)
	raster, msg, ok := validateMesherFlags(opts, &flags.MesherFlags)
	if !ok {
		log.Fatal("Error parsing input parameters: " + msg)
	}

	result, err := pkg.NewMesher(std_algorithm_manager.NewAlgorithmManager, nil).Run(1, raster, opts)
	if err != nil {
		log.Fatal("Error while meshing: ", err)
	}

	fmt.Println(tools.FmtJSONString(newFrameReport(result.Frame)))
}

// Puts the command line flags inside a MesherOptions struct
func newMesherOptions(flags *tools.MesherFlags) *terrain.MesherOptions {
	return &terrain.MesherOptions{
		HeightScale:   *flags.HeightScale,
		Opacity:       *flags.Opacity,
		MaxGridSize:   *flags.MaxGridSize,
		ShowWireframe: *flags.Wireframe,
		ShowTerrain:   !*flags.Hidden,
		Projection:    terrain.ParseProjection(*flags.Projection),
		Workers:       *flags.Workers,
	}
}

// Validates the settings against the ranges the viewer offers and builds the synthetic raster
func validateMesherFlags(opts *terrain.MesherOptions, flags *tools.MesherFlags) (*data.RasterGrid, string, bool) {
	if opts.Projection == "" {
		return nil, "projection should be either ELLIPSOID or PROJ4", false
	}
	if !std_algorithm_manager.IsProjectionAvailable(opts.Projection) {
		return nil, "projection " + string(opts.Projection) + " is not available in this build", false
	}
	if err := opts.ValidateUIDomain(); err != nil {
		return nil, err.Error(), false
	}
	if err := opts.Validate(); err != nil {
		return nil, err.Error(), false
	}

	bbox, err := tools.ParseBoundingBox(*flags.BBox)
	if err != nil {
		return nil, err.Error(), false
	}
	if *flags.Width < 0 || *flags.Height < 0 {
		return nil, "raster width and height cannot be negative", false
	}

	return data.NewSyntheticRaster(*flags.Width, *flags.Height, bbox, *flags.Peak), "", true
}

func printMetrics(gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(os.Stdout, family); err != nil {
			return err
		}
	}
	return nil
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	tools.LogOutput(fmt.Sprintf("%s took %s", name, elapsed))
}

func printLogo() {
	fmt.Println(strings.ReplaceAll(logo, "YYYY", strconv.Itoa(time.Now().Year())))
}

func showHelp() {
	printLogo()
	fmt.Println("***")
	fmt.Println("The terrain mesher turns an elevation raster into a triangulated Cesium terrain mesh and a camera frame")
	printVersion()
	fmt.Println("***")
	fmt.Println("")
	fmt.Println("Commands: mesh, frame. Use <command> -help for the command flags.")
	fmt.Println("Command line flags: ")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}

func printVersion() {
	fmt.Println("v." + VERSION)
}
