package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/agentictools/taskboard/internal/logging"
	"github.com/agentictools/taskboard/internal/storage"
	"github.com/agentictools/taskboard/internal/store"
)

var (
	errFlagRequiresArg = errors.New("flag requires an argument")
	errUnknownFlag     = errors.New("unknown flag")
	errUnknownCommand  = errors.New("unknown command")
)

// App bundles the wired application for command execution.
type App struct {
	Cfg   Config
	Store *store.Store
	Log   *logrus.Logger
}

// Commands returns all commands in help display order.
func Commands(app *App) []*Command {
	return []*Command{
		LsCmd(app),
		StatsCmd(app),
		CreateCmd(app),
		DraftCmd(app),
		StatusCmd(app),
		ToggleCmd(app),
		RmCmd(app),
		PrintConfigCmd(app),
	}
}

// globalFlags are the flags accepted before the command name.
type globalFlags struct {
	workDir    string
	configPath string
	boardFile  string
	remaining  []string
}

// parseGlobalFlags extracts the global flags that precede the command.
func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	i := 0
	for i < len(args) {
		arg := args[i]

		if !strings.HasPrefix(arg, "-") {
			break
		}

		name, inline, hasInline := strings.Cut(arg, "=")

		consume := func(target *string) error {
			if hasInline {
				*target = inline
				i++

				return nil
			}

			if i+1 >= len(args) {
				return fmt.Errorf("%w: %s", errFlagRequiresArg, name)
			}

			*target = args[i+1]
			i += 2

			return nil
		}

		switch name {
		case "-C", "--cwd":
			if err := consume(&flags.workDir); err != nil {
				return globalFlags{}, err
			}
		case "-c", "--config":
			if err := consume(&flags.configPath); err != nil {
				return globalFlags{}, err
			}
		case "--board-file":
			if err := consume(&flags.boardFile); err != nil {
				return globalFlags{}, err
			}
		case "-h", "--help":
			flags.remaining = append([]string{"help"}, args[i+1:]...)

			return flags, nil
		default:
			return globalFlags{}, fmt.Errorf("%w: %s", errUnknownFlag, name)
		}
	}

	flags.remaining = args[i:]

	return flags, nil
}

// Run is the main entry point. Returns exit code.
func Run(stdin io.Reader, out, errOut io.Writer, args []string, env map[string]string) int {
	o := NewIO(stdin, out, errOut)

	if len(args) < 2 {
		printUsage(o, nil)

		return 0
	}

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	cfg, err := LoadConfig(LoadConfigInput{
		WorkDirOverride:   flags.workDir,
		ConfigPath:        flags.configPath,
		BoardFileOverride: flags.boardFile,
		Env:               env,
	})
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	log := logging.New(cfg.LogFileAbs)

	st := store.New(storage.New(cfg.BoardFileAbs), store.Options{Log: log})
	st.Hydrate()

	app := &App{Cfg: cfg, Store: st, Log: log}
	commands := Commands(app)

	if len(flags.remaining) == 0 {
		printUsage(o, commands)

		return 0
	}

	name := flags.remaining[0]
	if name == "help" {
		printUsage(o, commands)

		return 0
	}

	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd.Run(o, flags.remaining[1:])
		}
	}

	o.ErrPrintln("error:", fmt.Errorf("%w: %s", errUnknownCommand, name))
	printUsage(NewIO(stdin, errOut, errOut), commands)

	return 1
}

func printUsage(o *IO, commands []*Command) {
	o.Println("Usage: taskboard [global flags] <command> [args]")
	o.Println()
	o.Println("A local task board split across fixed work groups.")
	o.Println()
	o.Println("Global flags:")
	o.Println("  -C, --cwd <dir>       Run as if started in <dir>")
	o.Println("  -c, --config <file>   Use an explicit config file")
	o.Println("      --board-file <f>  Override the board file path")
	o.Println()

	if len(commands) == 0 {
		return
	}

	o.Println("Commands:")

	for _, cmd := range commands {
		o.Println(cmd.HelpLine())
	}
}
