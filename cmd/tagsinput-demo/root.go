package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iw2rmb/tagfield"
	"github.com/iw2rmb/tagfield/form"
	"github.com/iw2rmb/tagfield/internal/logging"
	"github.com/iw2rmb/tagfield/tags"
	"github.com/iw2rmb/tagfield/tagsinput"
)

//go:embed example.yaml
var exampleForm []byte

type options struct {
	formPath  string
	selector  string
	delimiter string

	lowercase    bool
	uppercase    bool
	noDuplicates bool
	noDelete     bool

	logPath string
	debug   bool
}

// NewRootCmd creates the demo command.
func NewRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "tagsinput-demo",
		Short: "Edit the tag fields of a form in the terminal",
		Long: `tagsinput-demo loads a YAML form and turns every field matching the
selector into a tags input. Type and press enter, tab or the delimiter to
add a tag; backspace and the arrow keys select and remove tags.

When stdin is not a terminal, every input line is added to the first
matching field ("name: a,b" targets the field called name). The encoded
form is printed on exit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       tagfield.VersionTag(),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, opts)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), failure(err.Error()))
			}
			return err
		},
	}

	fl := rootCmd.Flags()
	fl.StringVarP(&opts.formPath, "form", "f", "", "YAML form file (default: built-in example)")
	fl.StringVarP(&opts.selector, "selector", "s", form.DefaultSelector, "fields to enhance")
	fl.StringVarP(&opts.delimiter, "delimiter", "d", ",", "tag delimiter, first character is used")
	fl.BoolVar(&opts.lowercase, "lowercase", false, "lowercase every tag")
	fl.BoolVar(&opts.uppercase, "uppercase", false, "uppercase every tag")
	fl.BoolVar(&opts.noDuplicates, "no-duplicates", false, "reject tags already present")
	fl.BoolVar(&opts.noDelete, "no-delete", false, "hide the × delete targets")
	fl.StringVar(&opts.logPath, "log", "", "append debug logs to this file")
	fl.BoolVar(&opts.debug, "debug", false, "log every keystroke")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := tagfield.ParseSemver(tagfield.Version())
			if err != nil {
				return err
			}
			line := "tagsinput-demo v" + v.String()
			if !v.Stable() {
				line += " (unstable API)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}

// Execute runs the demo.
func Execute() error {
	return NewRootCmd().Execute()
}

func run(cmd *cobra.Command, opts options) error {
	log, err := logging.Open(opts.logPath, "tagsinput-demo")
	if err != nil {
		return err
	}
	defer log.Close()
	log.SetDebug(opts.debug)

	if err := runWith(cmd, opts, log); err != nil {
		log.Errorf("tagsinput-demo: %v", err)
		return err
	}
	return nil
}

func runWith(cmd *cobra.Command, opts options, log *logging.Logger) error {
	f, err := loadForm(opts.formPath)
	if err != nil {
		return err
	}
	fields, err := bindFields(f, opts, log)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return fmt.Errorf("no field matches %q", opts.selector)
	}
	log.Info().Int("fields", len(fields)).Str("selector", opts.selector).Msg("form loaded")

	out := cmd.OutOrStdout()
	if !isTerminal(cmd.InOrStdin()) || !isTerminal(out) {
		if err := runLines(cmd.InOrStdin(), fields, log); err != nil {
			return err
		}
		return printResult(out, f, true)
	}

	a := newApp(f, fields, log)
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	res := final.(app)
	log.Infof("tui closed, submitted=%t", res.submitted)
	return printResult(out, f, res.submitted)
}

func loadForm(path string) (*form.Form, error) {
	if path == "" {
		return form.Load(bytes.NewReader(exampleForm))
	}
	return form.LoadFile(path)
}

// fieldConfig maps the command line flags onto a tags input Config. Unset
// flags leave the host's data attributes in charge.
func fieldConfig(opts options) tagsinput.Config {
	cfg := tagsinput.Config{
		Delimiter: opts.delimiter,
		KeyMap:    tagsinput.DefaultKeyMap(),
		Style:     tagsinput.DefaultStyle(),
	}
	if opts.lowercase {
		cfg.Lowercase = tagsinput.On
	}
	if opts.uppercase {
		cfg.Uppercase = tagsinput.On
	}
	if opts.noDuplicates {
		cfg.Duplicates = tagsinput.Off
	}
	if opts.noDelete {
		cfg.AllowDelete = tagsinput.Off
	}
	return cfg
}

// bindFields creates one tags input per matching field, each logging its
// own events.
func bindFields(f *form.Form, opts options, log *logging.Logger) ([]field, error) {
	hosts, err := f.Query(opts.selector)
	if err != nil {
		return nil, err
	}

	out := make([]field, 0, len(hosts))
	for _, fd := range hosts {
		name := fd.Name
		cfg := fieldConfig(opts)
		cfg.OnChange = func(ch tags.Change) {
			log.Info().
				Str("field", name).
				Int("added", len(ch.Added)).
				Int("removed", len(ch.Removed)).
				Str("value", ch.Value).
				Msg("tags changed")
		}
		cfg.OnSelect = func(ev tags.SelectEvent) {
			log.Debug().Str("field", name).Str("tag", ev.Tag.Text).Bool("active", ev.Active).Msg("selection")
		}
		cfg.OnInput = func(ev tagsinput.InputEvent) {
			log.Debug().Str("field", name).Str("text", ev.Text).Msg("input")
		}

		m, err := tagsinput.NewFromForm(f, name, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, field{name: name, model: m})
	}
	return out, nil
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func printResult(w io.Writer, f *form.Form, submitted bool) error {
	if !submitted {
		fmt.Fprintln(w, warning("form not submitted"))
		return nil
	}
	target := f.Action
	if target == "" {
		target = "form"
	}
	fmt.Fprintln(w, success(fmt.Sprintf("submitted %s", target)))
	fmt.Fprintln(w, f.Encode())
	return nil
}
