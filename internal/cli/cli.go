package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/babarot/drash/internal/config"
	"github.com/babarot/drash/internal/drash"
	"github.com/babarot/drash/internal/env"
	"github.com/babarot/drash/internal/ui"
	"github.com/babarot/drash/internal/utils/debug"
	"github.com/babarot/drash/internal/utils/log"
	"github.com/jessevdk/go-flags"
	"github.com/rs/xid"
)

type Option struct {
	Force  bool   `short:"f" long:"force" description:"Delete files permanently instead of trashing them"`
	Config string `long:"config" description:"Path to config file" default:""`

	Meta MetaOption `group:"Meta Options"`

	List    ListCommand    `command:"list" alias:"ls" description:"List trashed entries"`
	Remove  RemoveCommand  `command:"remove" alias:"rm" description:"Permanently delete entries from the drashcan"`
	Restore RestoreCommand `command:"restore" description:"Move entries back to where they were trashed from"`
	Empty   EmptyCommand   `command:"empty" description:"Permanently delete everything in the drashcan"`
	Check   CheckCommand   `command:"check" description:"Report records and payloads that lost their pair"`
}

type MetaOption struct {
	Version bool   `short:"V" long:"version" description:"Show version"`
	Debug   string `long:"debug" description:"View debug logs (default: \"full\")" optional-value:"full" optional:"yes" choice:"full" choice:"live"`
}

type ListCommand struct{}

type RemoveCommand struct{}

type RestoreCommand struct {
	Overwrite bool `short:"o" long:"overwrite" description:"Replace whatever is at the original path without asking"`
}

type EmptyCommand struct {
	Yes bool `short:"y" long:"yes" description:"Do not ask for confirmation"`
}

type CheckCommand struct{}

type CLI struct {
	version Version
	option  Option
	config  config.Config
	engine  *drash.Engine

	selector drash.Selector
	stdout   io.Writer
	stderr   io.Writer
}

var runID = sync.OnceValue(func() string {
	return xid.New().String()
})

func Run(v Version) error {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = v.AppName
	parser.Usage = "[-f] [files...] | <command>"
	parser.SubcommandsOptional = true
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	if opt.Meta.Version {
		fmt.Fprint(os.Stdout, v.Print())
		return nil
	}

	cfg, err := config.Parse(opt.Config)
	if err != nil {
		return err
	}

	closeLog, err := setupLogger(cfg.Core.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	defer slog.Debug("main function finished")
	slog.Debug("main function started", "version", v.Version, "revision", v.Revision, "buildDate", v.BuildDate)

	if opt.Meta.Debug != "" {
		return debug.Logs(os.Stdout, env.DRASH_LOG_PATH, cfg.Core.Logging.Enabled, opt.Meta.Debug == "live")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot locate the drashcan: %w", err)
	}
	root, err := cfg.Core.TrashRoot(home)
	if err != nil {
		return fmt.Errorf("cannot locate the drashcan: %w", err)
	}
	store, err := drash.NewStore(root, drash.WithCrossDevice(cfg.Core.AllowCrossDevice))
	if err != nil {
		return err
	}

	selector := ui.NewSelector(cfg.UI, os.Stdin, os.Stderr)
	engine, err := drash.New(store,
		drash.WithResolver(ui.NewResolver(os.Stdin, os.Stderr)),
		drash.WithSelector(selector),
		drash.WithFilter(cfg.View.FilterOptions()),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize drashcan: %w", err)
	}

	c := CLI{
		version:  v,
		option:   opt,
		config:   cfg,
		engine:   engine,
		selector: selector,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}

	var command string
	if parser.Active != nil {
		command = parser.Active.Name
	}
	if err := c.Run(command, args); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.run failed: %w", err))
		return err
	}
	return nil
}

func (c CLI) Run(command string, args []string) error {
	switch command {
	case "list":
		return c.List()
	case "remove":
		return c.Remove(args)
	case "restore":
		return c.Restore(args, c.option.Restore.Overwrite)
	case "empty":
		return c.Empty(c.option.Empty.Yes)
	case "check":
		return c.Check()
	default:
		return c.Put(args)
	}
}

// setupLogger sends logs to the rotating debug log, or nowhere when logging
// is disabled
func setupLogger(cfg config.LoggingConfig) (func(), error) {
	var w io.Writer = io.Discard
	closer := func() {}

	if cfg.Enabled {
		rw, err := log.NewRotateWriter(env.DRASH_LOG_PATH, cfg.Rotation.MaxSize, cfg.Rotation.MaxFiles)
		if err != nil {
			return closer, fmt.Errorf("failed to open log file: %w", err)
		}
		w = rw
		closer = func() { rw.Close() }
	}

	log.New(
		log.UseOutput(w),
		log.UseLevel(log.ParseLevel(cfg.Level)),
		log.UseReportTimestamp(true),
		log.UseTimeFormat(time.DateTime),
		log.With("run_id", runID()),
		log.AsDefault(),
	)
	return closer, nil
}

// choose turns the queries of remove and restore into identifiers. The
// empty drashcan and a canceled selection yield no identifiers, not an
// error.
func (c CLI) choose(prompt string, queries []string) ([]drash.Identifier, error) {
	if len(queries) == 0 {
		queries = []string{""}
	}

	var ids []drash.Identifier
	for _, q := range queries {
		picked, err := c.engine.Choose(prompt, q)
		switch {
		case drash.IsEmptyTrash(err):
			fmt.Fprintln(c.stderr, "drashcan is empty")
			return nil, nil
		case errors.Is(err, ui.ErrCanceled):
			return nil, nil
		case err != nil:
			return nil, err
		}
		ids = append(ids, picked...)
	}
	return ids, nil
}
