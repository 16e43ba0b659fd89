// Command lednet performs basic operations on LEDNET/Magic Home LED
// controllers over the LAN
package main

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/pdf/golednet"
	"github.com/pdf/golednet/common"
)

var (
	client *golednet.Client

	flagTimeout  time.Duration
	flagLogLevel string
	flagDiscover bool
	flagAddrs    []string
	flagConfig   string

	logger = logrus.New()
	app    = &cobra.Command{
		Use: `lednet`,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			applyConfig(c)
			setLogger()
		},
	}

	cmdGenerateBashComp = &cobra.Command{
		Use:   `bashcomp <filename>`,
		Short: "generate bash completion at <file>",
		Run:   generateBashComp,
	}

	cmdGenerateDocs = &cobra.Command{
		Use:   `docs <path>`,
		Short: "generate markdown documentation at <path>",
		Run:   generateDocs,
	}
)

func init() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	golednet.SetLogger(logger)

	app.PersistentFlags().DurationVarP(&flagTimeout, `timeout`, `t`, common.DefaultTimeout, `timeout for each device operation`)
	app.PersistentFlags().StringVarP(&flagLogLevel, `log-level`, `L`, `info`, `log level, one of: [debug,info,warn,error]`)
	app.PersistentFlags().BoolVarP(&flagDiscover, `discover`, `d`, false, `discover devices on the LAN even when addresses are configured`)
	app.PersistentFlags().StringArrayVarP(&flagAddrs, `addr`, `a`, nil, `device IP address, may be repeated (skips discovery)`)
	app.PersistentFlags().StringVarP(&flagConfig, `config`, `c`, ``, `path to config file`)

	app.AddCommand(cmdOn)
	app.AddCommand(cmdOff)
	app.AddCommand(cmdStatus)
	app.AddCommand(cmdGet)
	app.AddCommand(cmdSet)
	app.AddCommand(cmdGenerateBashComp)
	app.AddCommand(cmdGenerateDocs)
}

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateBashComp(c *cobra.Command, args []string) {
	if len(args) != 1 {
		_ = c.Usage()
		fmt.Println()
		logger.Fatalln(`Missing filename`)
	}

	buf := new(bytes.Buffer)
	f, err := os.Create(args[0])
	if err != nil {
		logger.WithFields(logrus.Fields{
			`filename`: args[0],
			`error`:    err,
		}).Fatalln(`Could not open file`)
	}
	_ = app.GenBashCompletion(buf)
	_, _ = buf.WriteTo(f)
}

func generateDocs(c *cobra.Command, args []string) {
	if len(args) != 1 {
		_ = c.Usage()
		fmt.Println()
		logger.Fatalln(`Missing output path`)
	}

	path := args[0]
	if path[len(path)-1] != os.PathSeparator {
		path += string(os.PathSeparator)
	}
	_ = doc.GenMarkdownTree(app, path)
}

func setLogger() {
	switch flagLogLevel {
	case `debug`:
		logger.Level = logrus.DebugLevel
	case `info`:
		logger.Level = logrus.InfoLevel
	case `warn`:
		logger.Level = logrus.WarnLevel
	case `error`:
		logger.Level = logrus.ErrorLevel
	default:
		logger.Level = logrus.InfoLevel
	}
}
