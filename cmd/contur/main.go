package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/esimov/contur"
	"github.com/esimov/contur/utils"
)

const helpBanner = `
┌─┐┌─┐┌┐┌┌┬┐┬ ┬┬─┐
│  │ ││││ │ │ │├┬┘
└─┘└─┘┘└┘ ┴ └─┘┴└─

Raster image to DXF outline converter.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source image")
	destination = flag.String("out", pipeName, "Destination file")
	width       = flag.Float64("width", 0, "Target width in millimetres")
	height      = flag.Float64("height", 0, "Target height in millimetres")
	threshold   = flag.Int("threshold", 128, "Luminance threshold between background and object")
	simplify    = flag.Float64("simplify", 0.5, "Contour simplification aggressiveness (0.0-1.0)")
	blurRadius  = flag.Float64("blur", 1, "Blur radius applied before thresholding")
	sharpen     = flag.Float64("sharpen", 0, "Sharpen sigma applied before thresholding")
	contrast    = flag.Float64("contrast", 0, "Contrast adjustment (-100 to 100)")
	edgeDetect  = flag.Bool("edge", false, "Trace gradient edges instead of dark regions")
	invert      = flag.Bool("invert", false, "Trace light shapes on a dark background")
	bound       = flag.Int("bound", 1024, "Maximum image dimension in pixels before tracing")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
	presetPath  = flag.String("preset", "", "YAML preset file with conversion settings")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *presetPath != "" {
		preset, err := loadPreset(*presetPath)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the preset file: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		preset.apply(explicitFlags())
	}

	if (*width > 0) == (*height > 0) {
		flag.Usage()
		log.Fatal(fmt.Sprintf("%s%s",
			utils.DecorateText("\nPlease provide either a target width or a target height, but not both!", utils.ErrorMessage),
			utils.DefaultColor,
		))
	}
	if *threshold < 0 || *threshold > 255 {
		log.Fatal(utils.DecorateText("The threshold should be in the range 0-255!", utils.ErrorMessage))
	}
	if *simplify < 0 || *simplify > 1 {
		log.Fatal(utils.DecorateText("The simplify factor should be in the range 0.0-1.0!", utils.ErrorMessage))
	}

	axis, size := contur.AxisWidth, *width
	if *height > 0 {
		axis, size = contur.AxisHeight, *height
	}

	proc := &contur.Processor{
		Threshold:  *threshold,
		Simplify:   *simplify,
		TargetSize: size,
		Axis:       axis,
		MaxBound:   *bound,
		BlurRadius: *blurRadius,
		Sharpen:    *sharpen,
		Contrast:   *contrast,
		EdgeDetect: *edgeDetect,
		Invert:     *invert,
	}

	proc.Execute(&contur.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
	})
}
