// Command `vecmath` evaluates the vector operations listed in a JSON job file
// and prints each result.
//
// Flags:
//
//	-job:   path to the job file (default vecmath.json; a bare argument also works)
//	-debug: print vectors and rotation matrices as they are used
//	-round: round rotation results to integers
//	-ieee:  also print vector results as IEEE754 float32 hex
//	-step:  wait for a key between operations
//	-log:   append a transcript of the results to this file
//
// Env:
//
//	VECMATH_NO_COLOR=1 disables colored output.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/CK6170/vecmath-go/file"
	"github.com/CK6170/vecmath-go/internal/eval"
	"github.com/CK6170/vecmath-go/matrix"
	"github.com/CK6170/vecmath-go/models"
	"github.com/CK6170/vecmath-go/ui"
)

func main() {
	var (
		jobPath = flag.String("job", "vecmath.json", "path to the job file")
		debug   = flag.Bool("debug", false, "print vectors and rotation matrices")
		round   = flag.Bool("round", false, "round rotation results to integers")
		ieee    = flag.Bool("ieee", false, "print vector results as IEEE754 hex")
		step    = flag.Bool("step", false, "wait for a key between operations")
		logPath = flag.String("log", "", "append a transcript to this file")
	)
	flag.Parse()
	if flag.NArg() > 0 && !strings.HasPrefix(flag.Arg(0), "-") {
		*jobPath = flag.Arg(0)
	}

	log.SetFormatter(&log.TextFormatter{DisableColors: ui.NoColor, DisableTimestamp: true})
	log.SetOutput(ui.NewRedWriter(os.Stderr))

	job, err := file.LoadJob(*jobPath)
	if err != nil {
		log.Fatal(err)
	}
	if job.DEBUG {
		*debug = true
	}
	if *debug {
		log.SetLevel(log.DebugLevel)
	}
	log.WithFields(log.Fields{"job": *jobPath, "vectors": len(job.VECTORS), "ops": len(job.OPS)}).Debug("job loaded")

	ev := eval.New(job, *round)
	if *debug {
		names := make([]string, 0, len(job.VECTORS))
		for name := range job.VECTORS {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			v, _ := ev.Vector(name)
			matrix.PrintVector(v, name, true)
		}
	}

	transcript := ""
	failed := 0
	for i, op := range job.OPS {
		res, err := ev.Apply(op)
		if err != nil {
			failed++
			log.WithFields(log.Fields{"op": op.String(), "index": i}).Error(err)
			transcript += fmt.Sprintf("%s = error: %v\n", op, err)
			continue
		}
		ui.Greenf("%-32s", op.String())
		fmt.Printf(" = %s\n", res)
		transcript += fmt.Sprintf("%s = %s\n", op, res)

		if *debug && op.OP == models.ROTATE {
			if a, ok := ev.Vector(op.A); ok {
				transcript = printRotation(transcript, op, a.Len())
			}
		}
		if res.Kind == eval.KindVector {
			if *debug {
				transcript = file.RecordData(transcript, res.Vector, op.String(), "")
			}
			if *ieee {
				matrix.PrintIEEE(res.Vector, op.String())
			}
		}

		if *step && i < len(job.OPS)-1 {
			switch ui.NextStep("Press <Enter> for next, 'C' to run to the end, <ESC> to stop") {
			case 'C':
				*step = false
			case 27:
				finish(*logPath, transcript, failed)
				return
			}
		}
	}
	finish(*logPath, transcript, failed)
}

// printRotation shows the matrix a rotate op applied and appends it to the
// transcript.
func printRotation(transcript string, op *models.OP, dim int) string {
	theta := *op.K * math.Pi / 180
	var (
		r     *matrix.Matrix
		title string
	)
	if dim == 2 {
		r, title = matrix.RotationMatrix2D(theta), "rotation 2D"
	} else {
		axis, err := matrix.ParseAxis(op.AXIS)
		if err == nil {
			r, err = matrix.AxisRotationMatrix(axis, theta)
		}
		if err != nil {
			ui.Debugf(true, "no rotation matrix: %v\n", err)
			return transcript
		}
		title = "rotation about " + axis.String()
	}
	matrix.PrintMatrix(r, title, true)
	_, line := r.ToStrings(title, "")
	return transcript + line + "\n"
}

// finish restores the terminal, writes the transcript and exits non-zero if
// any op failed.
func finish(logPath, transcript string, failed int) {
	ui.StopKeyEvents()
	if logPath != "" && transcript != "" {
		file.AppendToFile(logPath, strings.TrimSuffix(transcript, "\n"))
	}
	if failed > 0 {
		ui.Warningf("%d operation(s) failed\n", failed)
		os.Exit(1)
	}
}
