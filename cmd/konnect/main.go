package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/jinzhu/now"
	"github.com/sirupsen/logrus"

	"github.com/reoring/konnect"
	"github.com/reoring/konnect/i18n"
	js "github.com/reoring/konnect/jsonschema"
	"github.com/reoring/konnect/logical"
	"github.com/reoring/konnect/source"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// cli carries the per-invocation outputs and logger.
type cli struct {
	out io.Writer
	log *logrus.Logger
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	c := &cli{out: stdout, log: log}

	switch args[0] {
	case "encode":
		return c.encodeCmd(args[1:])
	case "decode":
		return c.decodeCmd(args[1:])
	case "jsonschema":
		return c.jsonSchemaCmd(args[1:])
	case "describe":
		return c.describeCmd(args[1:])
	default:
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "konnect CLI\n\nUsage:\n  konnect encode [-schema FILE] -date YYYY-MM-DD\n  konnect decode [-schema FILE] -value STRING\n  konnect jsonschema [-schema FILE]\n  konnect describe\n\nCommon flags:\n  -v      enable debug logs\n  -lang   message language (en|ja)\n\nWithout -schema the built-in Date descriptor is used.")
}

type common struct {
	schemaPath string
	verbose    bool
	lang       string
}

func (c *cli) flags(name string, cm *common) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.log.Out)
	fs.StringVar(&cm.schemaPath, "schema", "", "descriptor file (.json, .yaml, .yml)")
	fs.BoolVar(&cm.verbose, "v", false, "enable debug logs")
	fs.StringVar(&cm.lang, "lang", "en", "message language (en|ja)")
	return fs
}

func (c *cli) apply(cm *common) {
	if cm.verbose {
		c.log.SetLevel(logrus.DebugLevel)
	}
	i18n.SetLanguage(cm.lang)
}

func (c *cli) loadSchema(cm *common) (*konnect.Schema, error) {
	if cm.schemaPath == "" {
		c.log.Debug("using built-in Date schema")
		return logical.DateSchema, nil
	}
	s, err := source.LoadFile(cm.schemaPath)
	if err != nil {
		return nil, err
	}
	c.log.WithFields(logrus.Fields{"path": cm.schemaPath, "schema": s.String()}).Debug("loaded descriptor")
	return s, nil
}

func (c *cli) encodeCmd(args []string) int {
	var cm common
	var date string
	fs := c.flags("encode", &cm)
	fs.StringVar(&date, "date", "", "calendar date to encode")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if date == "" {
		fs.Usage()
		return 2
	}
	c.apply(&cm)
	s, err := c.loadSchema(&cm)
	if err != nil {
		return c.fail(err)
	}
	t, err := now.ParseInLocation(time.UTC, date)
	if err != nil {
		return c.fail(err)
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	c.log.WithField("date", day.Format(time.DateOnly)).Debug("encoding")
	out, err := logical.DateFromLogical(s, day)
	if err != nil {
		return c.fail(err)
	}
	fmt.Fprintln(c.out, out)
	return 0
}

func (c *cli) decodeCmd(args []string) int {
	var cm common
	var value string
	fs := c.flags("decode", &cm)
	fs.StringVar(&value, "value", "", "encoded date string")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if value == "" {
		fs.Usage()
		return 2
	}
	c.apply(&cm)
	s, err := c.loadSchema(&cm)
	if err != nil {
		return c.fail(err)
	}
	out, err := logical.DateToLogical(s, value)
	if err != nil {
		return c.fail(err)
	}
	fmt.Fprintln(c.out, out)
	return 0
}

func (c *cli) jsonSchemaCmd(args []string) int {
	var cm common
	fs := c.flags("jsonschema", &cm)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	c.apply(&cm)
	s, err := c.loadSchema(&cm)
	if err != nil {
		return c.fail(err)
	}
	j, err := s.JSONSchema()
	if err != nil {
		return c.fail(err)
	}
	b, err := js.MarshalIndent(j)
	if err != nil {
		return c.fail(err)
	}
	fmt.Fprintln(c.out, string(b))
	return 0
}

func (c *cli) describeCmd(args []string) int {
	var cm common
	fs := c.flags("describe", &cm)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	c.apply(&cm)
	b, err := json.MarshalIndent(logical.DateSchema, "", "  ")
	if err != nil {
		return c.fail(err)
	}
	fmt.Fprintln(c.out, string(b))
	return 0
}

// fail logs err, expanding Issues into one entry per issue, and returns the
// exit status.
func (c *cli) fail(err error) int {
	if iss, ok := konnect.AsIssues(err); ok {
		for _, it := range iss {
			e := c.log.WithFields(logrus.Fields{"code": it.Code, "path": it.Path})
			if it.Hint != "" {
				e = e.WithField("hint", it.Hint)
			}
			if it.Cause != nil && !konnect.IsSchemaMismatch(it.Cause) {
				e = e.WithError(it.Cause)
			}
			e.Error(it.Message)
		}
		return 1
	}
	c.log.WithError(err).Error("konnect failed")
	return 1
}
