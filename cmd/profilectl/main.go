package main

import (
	"os"
)

func main() {
	c := &cli{out: os.Stdout, errOut: os.Stderr, in: os.Stdin}
	err := newRootCmd(c).Execute()
	if cerr := c.close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		os.Exit(1)
	}
}
