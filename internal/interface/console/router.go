// Package console is the text interface of EduTrack: a Router that runs one
// command line at a time against the model, and a Session that feeds it
// lines from a reader.
package console

import (
	"context"
	"time"

	"github.com/DonovanJJ/tp/internal/application/command"
	"github.com/DonovanJJ/tp/internal/domain/roster"
	"github.com/DonovanJJ/tp/internal/domain/shared"
	"github.com/DonovanJJ/tp/internal/interface/console/parser"
	"github.com/DonovanJJ/tp/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROUTER CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// MessageSaveFailed prefixes storage failures reported after a successful command.
const MessageSaveFailed = "Could not save data: "

// RouterConfig contains configuration for the router.
type RouterConfig struct {
	// Logger for structured logging. Defaults to a no-op logger.
	Logger *logger.Logger

	// Registry maps command words to parsers. Defaults to parser.NewRegistry().
	Registry *parser.Registry

	// Repository receives a snapshot after every successful command.
	// Nil disables saving.
	Repository roster.Repository
}

// ══════════════════════════════════════════════════════════════════════════════
// ROUTER
// ══════════════════════════════════════════════════════════════════════════════

// Router parses and executes command lines. It is not safe for concurrent
// use: lines are handled strictly one after another.
type Router struct {
	parser *parser.EduTrackParser
	model  *command.Model
	repo   roster.Repository
	log    *logger.Logger
}

// NewRouter creates a router over model.
func NewRouter(model *command.Model, cfg RouterConfig) *Router {
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	return &Router{
		parser: parser.NewEduTrackParser(cfg.Registry),
		model:  model,
		repo:   cfg.Repository,
		log:    cfg.Logger.With(logger.Component("router")),
	}
}

// Model returns the model commands run against.
func (r *Router) Model() *command.Model {
	return r.model
}

// Handle runs one line.
//
// A parse or execution failure returns the zero Result and leaves the model
// unchanged. When the command succeeded but the snapshot could not be saved,
// both the Result and an ErrStorage error are returned: the change stands
// in memory.
func (r *Router) Handle(ctx context.Context, line string) (command.Result, error) {
	start := time.Now()

	cmd, err := r.parser.ParseCommand(line)
	if err != nil {
		r.log.Info("command rejected",
			logger.CommandWord(r.parser.CommandWord(line)),
			logger.String("kind", kindOf(err)),
			logger.Err(err),
		)
		return command.Result{}, err
	}

	log := r.log.With(fields(cmd)...)
	log.Debug("executing command")

	res, err := cmd.Execute(ctx, r.model)
	if err != nil {
		log.Info("command failed", logger.String("kind", kindOf(err)), logger.Err(err))
		return command.Result{}, err
	}

	if r.repo != nil {
		if err := r.repo.Save(ctx, r.model.Roster().Snapshot()); err != nil {
			log.Error("failed to save roster", logger.Err(err))
			return res, shared.WrapError("console", "Save", shared.ErrStorage,
				MessageSaveFailed+shared.Message(err), err)
		}
	}

	log.Debug("command completed", logger.Latency(time.Since(start)))
	return res, nil
}

// fields describes a command for the log.
func fields(cmd command.Command) []logger.Field {
	out := []logger.Field{logger.CommandWord(cmd.Word())}
	switch c := cmd.(type) {
	case command.AddClassCommand:
		out = append(out, logger.ClassName(c.Name.String()))
	case command.RemoveClassCommand:
		out = append(out, logger.ClassName(c.Name.String()))
	case command.EditClassCommand:
		out = append(out, logger.ClassName(c.Name.String()))
	case command.StartLessonCommand:
		out = append(out, logger.ClassName(c.Name.String()))
	case command.ViewClassCommand:
		out = append(out, logger.ClassName(c.Name.String()))
	case command.AddStudentCommand:
		out = append(out, logger.ClassName(c.Class.String()))
	case command.RemoveStudentCommand:
		out = append(out, logger.ClassName(c.Class.String()), logger.StudentIndex(c.Index.OneBased()))
	case command.MarkStudentPresentCommand:
		out = append(out, logger.ClassName(c.Class.String()), logger.StudentIndex(c.Index.OneBased()))
	case command.MarkStudentAbsentCommand:
		out = append(out, logger.ClassName(c.Class.String()), logger.StudentIndex(c.Index.OneBased()))
	case command.EditStudentCommand:
		out = append(out, logger.Int("class_index", c.ClassIndex.OneBased()), logger.StudentIndex(c.StudentIndex.OneBased()))
	case command.FindCommand:
		out = append(out, logger.Int("keywords", len(c.Predicate.Keywords)))
	case command.ListCommand, command.ClearCommand, command.HelpCommand, command.ExitCommand:
	}
	return out
}

func kindOf(err error) string {
	switch {
	case shared.IsValidation(err):
		return "validation"
	case shared.IsCommandFormat(err):
		return "command_format"
	case shared.IsUnknownCommand(err):
		return "unknown_command"
	case shared.IsCommandExecution(err):
		return "command_execution"
	default:
		return "internal"
	}
}
