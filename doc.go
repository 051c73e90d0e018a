/*
Package contur converts a binary raster image into a single closed vector outline
and serializes it as a DXF document built from straight line entities.

The conversion runs a strictly sequential pipeline: the image is preprocessed and
thresholded into a binary grid, the grid boundary is traced with the Moore
neighborhood, the raw contour is refined through a fixed sequence of cleanup
stages and scaled to physical units, and the result is emitted as a minimal R12
DXF file.

The package provides a command line interface, supporting various flags for the
different conversion settings. To check the supported commands type:

	$ contur --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"github.com/esimov/contur"
	)

	func main() {
		p := &contur.Processor{
			// Initialize struct variables
		}

		if err := p.Process(in, out); err != nil {
			fmt.Printf("Error converting image: %s", err.Error())
		}
	}
*/
package contur
