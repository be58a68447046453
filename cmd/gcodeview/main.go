package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kpango/glg"

	"toolpath/internal/toolpath"
	"toolpath/internal/viewer"
)

func main() {
	headless := flag.Bool("headless", false, "print the path summary and exit without opening a window")
	verbose := flag.Bool("v", false, "log skipped lines")
	speed := flag.Float64("speed", 5.0, "camera step per frame")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	labels := flag.Bool("labels", true, "draw the text overlay")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] <file.gcode | ->\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := flag.Arg(0)

	log := glg.Get()
	if !*verbose {
		log.SetLevelMode(glg.DEBG, glg.NONE)
	}

	path, _, err := toolpath.Load(input, toolpath.Options{Log: log})
	if err != nil {
		glg.Fatalf("error opening file: %v", err)
	}
	summary := toolpath.Summarize(path)

	if *headless {
		fmt.Println(summary)
		return
	}

	err = viewer.Run(path, viewer.Options{
		Title:  filepath.Base(input),
		Width:  *width,
		Height: *height,
		Speed:  *speed,
		Labels: *labels,
	})
	if err != nil {
		glg.Fatal(err)
	}
}
