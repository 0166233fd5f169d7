// Command parkdemo exercises parkinglot's Park/UnparkOne/UnparkAll under
// concurrent load, through the parkmutex and parksignal packages built
// on top of it.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&stressCmd{}, "")
	subcommands.Register(&benchCmd{}, "")

	flag.Parse()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	os.Exit(int(subcommands.Execute(context.Background())))
}
