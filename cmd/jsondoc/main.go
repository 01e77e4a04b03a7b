package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/inspectkit/jsondoc"
)

var cli struct {
	Input   string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Path    string `help:"Path to the target location, tokens joined by '.', array indices as [N] (e.g. items.[0].name)." short:"p"`
	NoColor bool   `help:"Disable colored output."`

	Fmt      FmtCmd      `cmd:"" help:"Pretty-print the document with sorted keys."`
	Validate ValidateCmd `cmd:"" help:"Check that the input is a valid JSON container."`
	Count    CountCmd    `cmd:"" help:"Count top-level members or elements."`
	Get      GetCmd      `cmd:"" help:"Print the value at --path."`
	Add      AddCmd      `cmd:"" help:"Insert or overwrite a key in the object at --path."`
	Append   AppendCmd   `cmd:"" help:"Append a value to the array at --path."`
	Delete   DeleteCmd   `cmd:"" help:"Delete the value at --path."`
	Update   UpdateCmd   `cmd:"" help:"Replace the value at --path, upserting missing object keys."`
	Diff     DiffCmd     `cmd:"" help:"Diff the input against a second document."`
	Yaml     YamlCmd     `cmd:"" help:"Render the document as YAML."`
}

// appContext carries the document text into command Run methods.
type appContext struct {
	doc string
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("jsondoc"),
		kong.Description("Inspect and edit JSON documents by path."),
		kong.UsageOnError(),
	)

	if cli.NoColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	doc, err := readInput()
	kctx.FatalIfErrorf(err)

	kctx.FatalIfErrorf(kctx.Run(&appContext{doc: doc}))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func readInput() (string, error) {
	if cli.Input != "" {
		data, err := os.ReadFile(cli.Input)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func targetPath() jsondoc.Path {
	if cli.Path == "" {
		return nil
	}
	return jsondoc.ParsePath(strings.Split(cli.Path, "."))
}

// parseLiteral decodes a JSON value given as a command argument. Scalars
// are accepted: `'"text"'`, `42`, `true`, `null`, or any container.
func parseLiteral(arg string) (jsondoc.Value, error) {
	res := jsondoc.Parse(arg)
	if !res.IsValid {
		if res.Err != nil {
			return nil, fmt.Errorf("value argument: %w", res.Err)
		}
		return nil, fmt.Errorf("value argument is empty")
	}
	return res.Value, nil
}

type FmtCmd struct {
	Minify bool `help:"Emit a single line instead of indented output." short:"m"`
}

func (c *FmtCmd) Run(app *appContext) error {
	if c.Minify {
		out, err := jsondoc.Minify(app.doc)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	res := jsondoc.Parse(app.doc)
	if !res.IsValid {
		if res.Err != nil {
			return res.Err
		}
		return fmt.Errorf("no input")
	}
	printColored(os.Stdout, res.Value, 0)
	fmt.Println()
	return nil
}

type ValidateCmd struct{}

func (c *ValidateCmd) Run(app *appContext) error {
	if jsondoc.IsValid(app.doc) {
		fmt.Printf("valid: %d top-level elements\n", jsondoc.CountElements(app.doc))
		return nil
	}
	res := jsondoc.Parse(app.doc)
	if res.Err != nil {
		return res.Err
	}
	if res.IsValid {
		return fmt.Errorf("valid JSON, but not a container (top-level %s)", res.Value.Kind())
	}
	return fmt.Errorf("no input")
}

type CountCmd struct{}

func (c *CountCmd) Run(app *appContext) error {
	fmt.Println(jsondoc.CountElements(app.doc))
	return nil
}

type GetCmd struct{}

func (c *GetCmd) Run(app *appContext) error {
	res := jsondoc.Parse(app.doc)
	if !res.IsValid {
		if res.Err != nil {
			return res.Err
		}
		return fmt.Errorf("no input")
	}
	r := jsondoc.Resolve(res.Value, targetPath())
	switch r.State {
	case jsondoc.NavigationFailed:
		return fmt.Errorf("path %s: not found (step %d)", cli.Path, r.Step+1)
	case jsondoc.TypeFailed:
		return fmt.Errorf("path %s: wrong container type (step %d)", cli.Path, r.Step+1)
	}
	printColored(os.Stdout, r.Value, 0)
	fmt.Println()
	return nil
}

type AddCmd struct {
	Key   string `arg:"" help:"Member key to insert or overwrite."`
	Value string `arg:"" help:"JSON value literal."`
}

func (c *AddCmd) Run(app *appContext) error {
	v, err := parseLiteral(c.Value)
	if err != nil {
		return err
	}
	return runMutation(app, func() (string, error) {
		return jsondoc.AddToObject(app.doc, targetPath(), c.Key, v)
	})
}

type AppendCmd struct {
	Value string `arg:"" help:"JSON value literal."`
}

func (c *AppendCmd) Run(app *appContext) error {
	v, err := parseLiteral(c.Value)
	if err != nil {
		return err
	}
	return runMutation(app, func() (string, error) {
		return jsondoc.AppendToArray(app.doc, targetPath(), v)
	})
}

type DeleteCmd struct{}

func (c *DeleteCmd) Run(app *appContext) error {
	return runMutation(app, func() (string, error) {
		return jsondoc.Delete(app.doc, targetPath())
	})
}

type UpdateCmd struct {
	Value string `arg:"" help:"JSON value literal."`
}

func (c *UpdateCmd) Run(app *appContext) error {
	v, err := parseLiteral(c.Value)
	if err != nil {
		return err
	}
	return runMutation(app, func() (string, error) {
		return jsondoc.Update(app.doc, targetPath(), v)
	})
}

func runMutation(app *appContext, op func() (string, error)) error {
	out, err := op()
	if err != nil {
		return err
	}
	if out == app.doc {
		fmt.Fprintln(os.Stderr, "no change: path not found")
	}
	fmt.Println(out)
	return nil
}

type DiffCmd struct {
	File  string `arg:"" help:"Document to compare against." type:"path"`
	Merge bool   `help:"Print an RFC 7386 merge patch instead of a text diff."`
}

func (c *DiffCmd) Run(app *appContext) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.File, err)
	}
	if c.Merge {
		patch, err := jsondoc.MergePatch(app.doc, string(data))
		if err != nil {
			return err
		}
		fmt.Println(patch)
		return nil
	}
	for _, line := range strings.Split(strings.TrimSuffix(jsondoc.TextDiff(app.doc, string(data)), "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "-"):
			color.Red("%s", line)
		case strings.HasPrefix(line, "+"):
			color.Green("%s", line)
		default:
			fmt.Println(line)
		}
	}
	return nil
}

type YamlCmd struct{}

func (c *YamlCmd) Run(app *appContext) error {
	out, err := jsondoc.ToYAML(app.doc)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

var (
	keyColor     = color.New(color.FgCyan).SprintFunc()
	stringColor  = color.New(color.FgGreen).SprintFunc()
	numberColor  = color.New(color.FgYellow).SprintFunc()
	literalColor = color.New(color.FgMagenta).SprintFunc()
)

// printColored mirrors the canonical pretty layout (two-space indent,
// sorted keys) with per-token coloring.
func printColored(w io.Writer, v jsondoc.Value, depth int) {
	pad := strings.Repeat("  ", depth+1)
	switch v := v.(type) {
	case jsondoc.Object:
		if len(v) == 0 {
			fmt.Fprint(w, "{}")
			return
		}
		keys := make([]string, 0, len(v))
		byKey := make(map[string]jsondoc.Value, len(v))
		for _, m := range v {
			if _, seen := byKey[m.Key]; !seen {
				keys = append(keys, m.Key)
			}
			byKey[m.Key] = m.Value
		}
		sort.Strings(keys)
		fmt.Fprint(w, "{")
		for i, k := range keys {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, "\n%s%s: ", pad, keyColor(strconv.Quote(k)))
			printColored(w, byKey[k], depth+1)
		}
		fmt.Fprintf(w, "\n%s}", strings.Repeat("  ", depth))
	case jsondoc.Array:
		if len(v) == 0 {
			fmt.Fprint(w, "[]")
			return
		}
		fmt.Fprint(w, "[")
		for i, elem := range v {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, "\n%s", pad)
			printColored(w, elem, depth+1)
		}
		fmt.Fprintf(w, "\n%s]", strings.Repeat("  ", depth))
	case jsondoc.String:
		fmt.Fprint(w, stringColor(strconv.Quote(string(v))))
	case jsondoc.Number:
		fmt.Fprint(w, numberColor(strconv.FormatFloat(float64(v), 'g', -1, 64)))
	case jsondoc.Bool:
		fmt.Fprint(w, literalColor(strconv.FormatBool(bool(v))))
	case jsondoc.Null:
		fmt.Fprint(w, literalColor("null"))
	}
}
