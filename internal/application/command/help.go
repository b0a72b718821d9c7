package command

import (
	"context"
	"strings"
)

const (
	WordHelp = "help"

	UsageHelp = WordHelp + ": Shows program usage instructions.\n" +
		"Example: " + WordHelp

	MessageShowingHelp = "Showing help."
)

// HelpCommand asks the presentation layer for the usage guide.
type HelpCommand struct{}

// Word implements Command.
func (HelpCommand) Word() string { return WordHelp }

// Execute implements Command.
func (HelpCommand) Execute(context.Context, *Model) (Result, error) {
	return Result{Feedback: MessageShowingHelp, ShowHelp: true}, nil
}

func (HelpCommand) sealed() {}

// Guide is the usage text shown for "help", one entry per command.
func Guide() string {
	usages := []string{
		UsageAddClass,
		UsageAddStudent,
		UsageRemoveClass,
		UsageRemoveStudent,
		UsageEditClass,
		UsageEditStudent,
		UsageMarkPresent,
		UsageMarkAbsent,
		UsageStartLesson,
		UsageViewClass,
		UsageList,
		UsageFind,
		UsageClear,
		UsageHelp,
		UsageExit,
	}
	return strings.Join(usages, "\n\n")
}
