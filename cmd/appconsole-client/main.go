// Command appconsole-client connects to the service at the client
// config's ServiceAddr and presents an interactive command line
// driven by its command catalog. The instance name argument is stored
// in the config; it is not resolved through discovery.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/apparata/appconsole/config"
	"github.com/apparata/appconsole/session"
)

// stdinLines is the default LineReader: one line of stdin at a time.
type stdinLines struct {
	scanner *bufio.Scanner
}

func newStdinLines() *stdinLines {
	return &stdinLines{scanner: bufio.NewScanner(os.Stdin)}
}

func (l *stdinLines) ReadLine() (string, error) {
	fmt.Print("> ")
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("appconsole-client: stdin closed")
	}
	return l.scanner.Text(), nil
}

func main() {
	verbose := flag.Bool("v", false, "verbose logging")
	flag.BoolVar(verbose, "verbose", false, "verbose logging")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: appconsole-client [-v|--verbose] <instanceName>")
		os.Exit(1)
	}
	instanceName := flag.Arg(0)

	cfg := config.DefaultClientConfig()
	cfg.InstanceName = instanceName
	cfg.Verbose = *verbose

	logger := session.DefaultLogger()
	if !cfg.Verbose {
		logger = session.NoopLogger()
	}

	client := session.NewClient(cfg.ServiceAddr, newStdinLines(), logger)

	info, err := client.Connect()
	if err != nil {
		fmt.Fprintf(os.Stderr, "appconsole-client: connecting to %s: %v\n", cfg.ServiceAddr, err)
		os.Exit(1)
	}
	fmt.Printf("connected to %s (%s)\n", info.Name, info.Version)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if err := client.RunOne(); err != nil {
				fmt.Fprintf(os.Stderr, "appconsole-client: %v\n", err)
				return
			}
		}
	}()

	select {
	case <-sigCh:
		fmt.Println("\nshutting down")
	case <-done:
	}
	client.Close()
}
