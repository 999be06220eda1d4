// Package cli implements the protectx command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/comalice/protectedx/builder"
	"github.com/comalice/protectedx/internal/logging"
	"github.com/comalice/protectedx/internal/primitives"
	"github.com/comalice/protectedx/internal/production"
)

type app struct {
	v      *viper.Viper
	logger *slog.Logger
	vis    *production.DefaultVisualizer
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the protectx command tree.
func NewRootCommand() *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: logging.Nop(),
		vis:    &production.DefaultVisualizer{},
	}

	root := &cobra.Command{
		Use:   "protectx",
		Short: "Explore guarded-state hierarchies",
		Long: `protectx constructs instances from a hierarchy file and shows how the
guarded state is shared between the levels of each instance.

Every level of an instance sees the same guarded state. A level's slot is
written once, so redelivering a different state after construction is a
no-op, and guarded calls made with a foreign state are rejected.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "config file (yaml)")
	flags.StringP("file", "f", "", "hierarchy file (.yaml, .yml or .json)")
	flags.String("log-level", "warn", "log level: "+strings.Join(logging.ValidLevels(), ", "))
	flags.String("log-format", logging.FormatText, "log format: text or json")
	for _, name := range []string{"config", "file", "log-level", "log-format"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	a.v.SetEnvPrefix("PROTECTX")
	// e.g. PROTECTX_LOG_LEVEL for log-level
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.inspectCmd(),
		a.graphCmd(),
		a.tamperCmd(),
		a.peekCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cfgFile := a.v.GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	logger, err := logging.New(cmd.ErrOrStderr(), a.v.GetString("log-level"), a.v.GetString("log-format"))
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) load() (*primitives.HierarchyConfig, error) {
	path := a.v.GetString("file")
	if path == "" {
		return nil, errors.New("no hierarchy file: set --file or PROTECTX_FILE")
	}
	cfg, err := production.LoadHierarchy(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("hierarchy loaded", "path", path, "id", cfg.ID, "version", cfg.Version, "levels", len(cfg.Levels))
	return cfg, nil
}

func report(obj *builder.Object, state map[string]any, note string) production.Report {
	return production.Report{
		Hierarchy: obj.Hierarchy(),
		Version:   obj.Version(),
		Level:     obj.Level(),
		Chain:     obj.Chain(),
		Pending:   obj.PendingLen(),
		State:     state,
		Note:      note,
	}
}

func (a *app) write(w io.Writer, r production.Report, format string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(format) {
	case "yaml", "yml":
		data, err = a.vis.ExportYAML(r)
	case "json":
		data, err = a.vis.ExportJSON(r)
		data = append(data, '\n')
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
