package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/npillmayer/adoc/backend/html"
	"github.com/npillmayer/adoc/core"
	"github.com/npillmayer/adoc/core/diag"
	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/engine/ast/astdebug"
	"github.com/npillmayer/adoc/input/adoc/parser"
)

var traceKeys = []string{
	"adoc.core", "adoc.lexer", "adoc.ast", "adoc.parser", "adoc.table",
	"adoc.eval", "adoc.backend", "adoc.cli",
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	strict := flag.Bool("strict", false, "Stop at the first error")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	outname := flag.String("o", "", "HTML output file (default stdout)")
	dotname := flag.String("dot", "", "Write the document tree as GraphViz DOT")
	tables := flag.Bool("tables", false, "Preview parsed tables")
	interactive := flag.Bool("repl", false, "Read markup interactively")
	embedded := flag.Bool("embedded", false, "Omit the HTML document frame")
	highlight := flag.String("highlight", "", "Source highlighter [chroma]")
	flag.Parse()
	setTraceLevel(*tlevel)
	tracer().Infof("Trace level is %s", *tlevel)

	appConf := testconfig.Conf{
		"adoc.strict":             strconv.FormatBool(*strict),
		"adoc.embedded":           strconv.FormatBool(*embedded || *interactive),
		"adoc.source-highlighter": *highlight,
	}
	conv := &job{
		settings: parser.SettingsFromConfig(appConf),
		opts:     html.OptionsFromConfig(appConf),
		tables:   *tables,
		dotname:  *dotname,
		outname:  *outname,
	}

	if *interactive {
		pterm.Info.Println("Welcome to the adoc REPL")
		repl, err := readline.New(prompt)
		if err != nil {
			tracer().Errorf("%v", err)
			os.Exit(3)
		}
		defer repl.Close()
		conv.tables = true
		intp := &Intp{repl: repl, job: conv}
		pterm.Info.Println("Convert with :go, quit with :quit or <ctrl>D")
		intp.REPL()
		return
	}

	if flag.NArg() != 1 {
		pterm.Error.Println("usage: adoc [flags] file.adoc")
		flag.PrintDefaults()
		os.Exit(core.ExitCode(core.Error(core.EINVALID, "missing input file")))
	}
	name := flag.Arg(0)
	text, err := os.ReadFile(name)
	if err != nil {
		err = core.WrapError(err, core.EMISSING, "cannot read %s", name)
		report(err)
		os.Exit(core.ExitCode(err))
	}
	conv.opts.Title = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if err := conv.run(name, string(text)); err != nil {
		os.Exit(core.ExitCode(err))
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " Warn ",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
}

func setTraceLevel(level string) {
	l := tracing.LevelError
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
}

// --- Conversion ------------------------------------------------------------

// job is a conversion as configured from the command line.
type job struct {
	settings parser.Settings
	opts     html.Options
	tables   bool
	dotname  string
	outname  string
}

// run parses markup and writes its HTML, plus whatever else the
// command line asked for.
func (j *job) run(name, text string) error {
	result, err := parser.ParseString(name, text, j.settings)
	if err != nil {
		report(err)
		return err
	}
	for _, d := range result.Warnings {
		printDiagnostic(d)
	}
	if j.tables {
		previewTables(result.Document)
	}
	if j.dotname != "" {
		if err := j.writeDot(result.Document); err != nil {
			report(err)
			return err
		}
	}
	out, err := html.Convert(result.Document, j.opts)
	if err != nil {
		report(err)
		return err
	}
	if j.outname == "" {
		_, err = io.WriteString(os.Stdout, out)
	} else if err = os.WriteFile(j.outname, []byte(out), 0644); err == nil {
		pterm.Info.Printfln("HTML written to %s", j.outname)
	}
	if err != nil {
		report(err)
	}
	return err
}

func (j *job) writeDot(doc *ast.Document) error {
	f, err := os.Create(j.dotname)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = astdebug.ToGraphViz(doc, f, tracer()); err == nil {
		pterm.Info.Printfln("document graph written to %s", j.dotname)
	}
	return err
}

func report(err error) {
	var list diag.List
	if errors.As(err, &list) {
		for _, d := range list {
			printDiagnostic(d)
		}
		return
	}
	var d *diag.Diagnostic
	if errors.As(err, &d) {
		printDiagnostic(d)
		return
	}
	pterm.Error.Println(core.UserMessage(err))
}

func printDiagnostic(d *diag.Diagnostic) {
	if d.Severity == diag.Error {
		pterm.Error.Println(d.PlainText())
		return
	}
	pterm.Warning.Println(d.PlainText())
}
