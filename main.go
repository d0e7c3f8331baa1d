package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/zeebo/clingy"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ok, err := clingy.Environment{
		Name: "fizzbar",
		Args: os.Args[1:],
	}.Run(ctx, commands)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	}
	if !ok || err != nil {
		os.Exit(1)
	}
}

func commands(cmds clingy.Commands) {
	cmds.New("fizzbuzz", "print fizzbuzz up to a bound read from stdin", new(cmdFizzBuzz))
	cmds.New("foobar", "print foo and bar using subtraction based modulo", new(cmdFooBar))
	cmds.New("mod", "print the subtraction based remainder of x and y", new(cmdMod))
	cmds.New("run", "run fixtures and write a report", new(cmdRun))
}
