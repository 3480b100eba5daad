package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/hini/lang"
	"github.com/ardnew/hini/log"
	"github.com/ardnew/hini/profile"
)

// Init generates a default configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config section undefined")
	}

	// Check if file exists and force not set
	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	file, err := os.Create(confPath)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}
	defer file.Close()

	root := i.buildTree(ctx)

	_, err = root.WriteTo(file)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// buildTree constructs the configuration tree from current flag values.
func (i *Init) buildTree(ctx context.Context) *lang.Section {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ktx := kongContextFrom(ctx)

	root := lang.NewSection("")
	section := root.AddSection(ConfigIdentifier)

	prefixIgnore := []string{"help", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		val, ok := i.flagValue(ctx, flag.Name)
		if ok {
			section.SetKey(flag.Name, val)
		}
	}

	return root
}

// flagValue renders the current value of a CLI flag, or false if the
// flag is unset or empty.
func (i *Init) flagValue(ctx context.Context, name string) (string, bool) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ktx := kongContextFrom(ctx)

	idx := slices.IndexFunc(ktx.Model.Flags, func(flag *kong.Flag) bool {
		return flag.Name == name
	})
	if idx == -1 {
		return "", false
	}

	val := ktx.FlagValue(ktx.Model.Flags[idx])
	if val == nil {
		return "", false
	}

	switch v := val.(type) {
	case bool:
		return strconv.FormatBool(v), true

	case string:
		if v == "" {
			return "", false
		}

		return v, true

	case []string:
		if len(v) == 0 {
			return "", false
		}

		return strings.Join(v, ","), true

	default:
		s := fmt.Sprint(v)
		if s == "" {
			return "", false
		}

		return s, true
	}
}
