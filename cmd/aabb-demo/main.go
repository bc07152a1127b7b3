package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	quickmath "aabb.theprimeagen.com/pkg/quick-math"
	"aabb.theprimeagen.com/pkg/scenario"
)

const (
	collision   = "collision detected"
	noCollision = "no collision"
)

func verdict(a, b quickmath.Rect) string {
	if quickmath.Overlaps(a, b) {
		return collision
	}
	return noCollision
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("aabb-demo", flag.ContinueOnError)
	flags.SetOutput(stderr)

	aFlag := flags.String("a", "0,0,16,16", "first box as x,y,width,height")
	bFlag := flags.String("b", "17,17,16,16", "second box as x,y,width,height")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	a, err := scenario.ParseRect(*aFlag)
	if err != nil {
		fmt.Fprintf(stderr, "-a: %s\n", err)
		flags.Usage()
		return 2
	}

	b, err := scenario.ParseRect(*bFlag)
	if err != nil {
		fmt.Fprintf(stderr, "-b: %s\n", err)
		flags.Usage()
		return 2
	}

	fmt.Fprintln(stdout, verdict(a, b))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
