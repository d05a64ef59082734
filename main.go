package main

import (
	"os"
	"os/signal"
	"syscall"

	"lsbsteg/internal/cli"
)

func main() {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM) // subscribe to system signals
	go func() {
		<-c
		cli.StopCPUProfiler()
		cli.StopMemoryProfiler()
		os.Exit(0)
	}()

	if err := cli.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
