package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdf/golednet"
	"github.com/pdf/golednet/common"
	"github.com/pdf/golednet/protocol"
)

// Command words may be abbreviated to any unambiguous prefix, so `lednet s r
// f red 50` works the same as `lednet set rgb full red 50`
var (
	topTokens = []string{`on`, `off`, `status`, `get`, `set`, `bashcomp`, `docs`, `help`, `completion`}

	getFields   = []string{`rgb`, `cct`, `mono`, `on`, `address`, `port`}
	getRGBModes = []string{`color`, `brightness`, `exact`}
	getCCTModes = []string{`temperature`, `brightness`}

	setFields   = []string{`rgb`, `cct`, `mono`}
	setRGBModes = []string{`full`, `color`, `brightness`, `exact`}
	setCCTModes = []string{`full`, `temperature`, `brightness`}
)

var (
	cmdOn = &cobra.Command{
		Use:     `on`,
		Short:   "turn devices on",
		Aliases: golednet.Prefixes(`on`, topTokens),
		PreRun:  setupClient,
		PostRun: closeClient,
		Run: func(c *cobra.Command, args []string) {
			run(golednet.SetPower{On: true})
		},
	}

	cmdOff = &cobra.Command{
		Use:     `off`,
		Short:   "turn devices off",
		Aliases: golednet.Prefixes(`off`, topTokens),
		PreRun:  setupClient,
		PostRun: closeClient,
		Run: func(c *cobra.Command, args []string) {
			run(golednet.SetPower{On: false})
		},
	}

	cmdStatus = &cobra.Command{
		Use:     `status`,
		Short:   "show the full state of each device",
		Aliases: golednet.Prefixes(`status`, topTokens),
		PreRun:  setupClient,
		PostRun: closeClient,
		Run: func(c *cobra.Command, args []string) {
			run(golednet.Status{})
		},
	}

	cmdGet = &cobra.Command{
		Use:     `get <field> [mode]`,
		Short:   "read a device field: rgb [color|brightness|exact], cct [temperature|brightness], mono, on, address, port",
		Aliases: golednet.Prefixes(`get`, topTokens),
		Args:    cobra.RangeArgs(1, 2),
		PreRun:  setupClient,
		PostRun: closeClient,
		Run:     runGet,
	}

	cmdSet = &cobra.Command{
		Use:     `set <field> <mode> <args...>`,
		Short:   "write a device field: rgb full|color|brightness|exact, cct full|temperature|brightness, mono",
		Aliases: golednet.Prefixes(`set`, topTokens),
		Args:    cobra.RangeArgs(2, 4),
		PreRun:  setupClient,
		PostRun: closeClient,
		Run:     runSet,
	}
)

func setupClient(c *cobra.Command, args []string) {
	client = golednet.NewClient(&protocol.LedNet{})
	client.SetTimeout(flagTimeout)

	sub, err := client.NewSubscription()
	if err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed initializing client`)
	}
	go func() {
		for event := range sub.Events() {
			if e, ok := event.(common.EventNewDevice); ok {
				logger.WithField(`device`, e.Device.ID()).Debugln(`Found device`)
			}
		}
	}()

	for _, addr := range flagAddrs {
		if _, err := client.AddTarget(addr); err != nil {
			logger.WithFields(logrus.Fields{
				`addr`:  addr,
				`error`: err,
			}).Fatalln(`Failed adding target`)
		}
	}
	if flagDiscover || len(flagAddrs) == 0 {
		if err := client.Discover(); err != nil {
			logger.WithField(`error`, err).Fatalln(`Discovery failed`)
		}
	}

	if _, err := client.Devices(); err != nil {
		logger.Fatalln(`No devices found`)
	}
}

func closeClient(c *cobra.Command, args []string) {
	if err := client.Close(); err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed closing client`)
	}
}

// run executes cmd against every known device and prints one line per
// result.  A failure on one device is reported and does not suppress output
// for the others, but does make the process exit non-zero.
func run(cmd golednet.Command) {
	results, err := client.Execute(cmd)
	if err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed executing command`)
	}

	failed := false
	for _, res := range results {
		if res.Err != nil {
			failed = true
			logger.WithFields(logrus.Fields{
				`device`: res.Device.ID(),
				`error`:  res.Err,
			}).Errorln(`Operation failed`)
			continue
		}
		if res.Response == nil {
			continue
		}
		if _, ok := res.Response.(golednet.StatusResponse); ok {
			fmt.Println(res.Response)
		} else {
			fmt.Printf("%s: %s\n", res.Device.ID(), res.Response)
		}
	}
	if failed {
		closeClient(nil, nil)
		os.Exit(1)
	}
}

func runGet(c *cobra.Command, args []string) {
	switch resolve(args[0], getFields) {
	case `on`:
		run(golednet.GetPower{})
	case `address`:
		run(golednet.GetAddress{})
	case `port`:
		run(golednet.GetPort{})
	case `mono`:
		run(golednet.GetMono{})
	case `rgb`:
		mode := `color`
		if len(args) > 1 {
			mode = resolve(args[1], getRGBModes)
		}
		switch mode {
		case `color`:
			run(golednet.GetRGBColor{})
		case `brightness`:
			run(golednet.GetRGBBrightness{})
		case `exact`:
			run(golednet.GetRGBExact{})
		}
	case `cct`:
		mode := `temperature`
		if len(args) > 1 {
			mode = resolve(args[1], getCCTModes)
		}
		switch mode {
		case `temperature`:
			run(golednet.GetCCTTemperature{})
		case `brightness`:
			run(golednet.GetCCTBrightness{})
		}
	}
}

func runSet(c *cobra.Command, args []string) {
	switch resolve(args[0], setFields) {
	case `mono`:
		run(golednet.SetMono{Brightness: parseBrightness(args[1])})
	case `rgb`:
		switch resolve(args[1], setRGBModes) {
		case `full`:
			needArgs(args, 4)
			run(golednet.SetRGB{Color: parseColor(args[2]), Brightness: parseBrightness(args[3])})
		case `color`:
			needArgs(args, 3)
			run(golednet.SetRGBColor{Color: parseColor(args[2])})
		case `brightness`:
			needArgs(args, 3)
			run(golednet.SetRGBBrightness{Brightness: parseBrightness(args[2])})
		case `exact`:
			needArgs(args, 3)
			run(golednet.SetRGBExact{Color: parseColor(args[2])})
		}
	case `cct`:
		switch resolve(args[1], setCCTModes) {
		case `full`:
			needArgs(args, 4)
			run(golednet.SetCCT{Kelvin: parseKelvin(args[2]), Brightness: parseBrightness(args[3])})
		case `temperature`:
			needArgs(args, 3)
			run(golednet.SetCCTTemperature{Kelvin: parseKelvin(args[2])})
		case `brightness`:
			needArgs(args, 3)
			run(golednet.SetCCTBrightness{Brightness: parseBrightness(args[2])})
		}
	}
}

func resolve(token string, candidates []string) string {
	resolved, err := golednet.ResolveToken(token, candidates)
	if err != nil {
		logger.Fatalln(err)
	}
	return resolved
}

func needArgs(args []string, n int) {
	if len(args) < n {
		logger.Fatalf("Expected %d arguments, got %d\n", n, len(args))
	}
}

func parseColor(text string) common.Color {
	color, err := common.ParseColor(text)
	if err != nil {
		logger.Fatalln(err)
	}
	return color
}

func parseKelvin(text string) uint16 {
	kelvin, err := common.ParseKelvin(text)
	if err != nil {
		logger.Fatalln(err)
	}
	return uint16(kelvin)
}

func parseBrightness(text string) uint8 {
	v, err := strconv.ParseUint(strings.TrimSuffix(text, `%`), 10, 8)
	if err != nil || v > 100 {
		logger.Fatalf("Invalid brightness %q, expected 0-100\n", text)
	}
	return uint8(v)
}
