package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/qavit/ekiti/internal/domain"
	"github.com/qavit/ekiti/internal/quiz"
)

// TerminalPresenter renders quiz turns to a terminal and reads raw
// input lines. It implements quiz.Presenter.
type TerminalPresenter struct {
	in  *bufio.Reader
	out io.Writer

	green  func(format string, a ...interface{}) string
	red    func(format string, a ...interface{}) string
	yellow func(format string, a ...interface{}) string
	blue   func(format string, a ...interface{}) string
	bold   func(format string, a ...interface{}) string
}

// NewTerminalPresenter wires a presenter to the given streams.
func NewTerminalPresenter(in io.Reader, out io.Writer) *TerminalPresenter {
	return &TerminalPresenter{
		in:     bufio.NewReader(in),
		out:    out,
		green:  color.New(color.FgGreen).SprintfFunc(),
		red:    color.New(color.FgRed).SprintfFunc(),
		yellow: color.New(color.FgYellow).SprintfFunc(),
		blue:   color.New(color.FgBlue).SprintfFunc(),
		bold:   color.New(color.Bold).SprintfFunc(),
	}
}

func (p *TerminalPresenter) ShowQuestion(q *quiz.Question, number, total int) {
	fmt.Fprintf(p.out, "\nQuestion %d of %d\n", number, total)
	fmt.Fprintf(p.out, "%s\n", p.bold("%s", q.Prompt))
	for i, option := range q.Options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, option)
	}
}

func (p *TerminalPresenter) ShowHint(prefix string) {
	fmt.Fprintf(p.out, "%s\n", p.blue("Hint: %s...", prefix))
}

func (p *TerminalPresenter) ShowHelp() {
	fmt.Fprintln(p.out, "Available commands:")
	fmt.Fprintln(p.out, "  h - show this help")
	fmt.Fprintln(p.out, "  s - skip this word")
	fmt.Fprintln(p.out, "  ? - get a hint")
	fmt.Fprintln(p.out, "  u - mark as unfamiliar")
	fmt.Fprintln(p.out, "  q - quit the quiz")
	fmt.Fprintln(p.out, "  anything else is treated as your answer")
}

func (p *TerminalPresenter) ShowFeedback(outcome domain.Outcome, verdict quiz.Verdict, correct string) {
	switch outcome {
	case domain.OutcomeCorrect:
		fmt.Fprintf(p.out, "%s\n", p.green("✓ Correct!"))
	case domain.OutcomeIncorrect:
		if verdict == quiz.VerdictClose {
			fmt.Fprintf(p.out, "%s\n", p.yellow("✗ So close. The correct answer is: %s", correct))
		} else {
			fmt.Fprintf(p.out, "%s\n", p.red("✗ Incorrect. The correct answer is: %s", correct))
		}
	case domain.OutcomeSkipped:
		fmt.Fprintf(p.out, "%s\n", p.yellow("Skipped. The answer was: %s", correct))
	case domain.OutcomeUnfamiliar:
		fmt.Fprintf(p.out, "%s\n", p.yellow("Marked as unfamiliar. The answer was: %s", correct))
	}
}

func (p *TerminalPresenter) ShowMessage(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p *TerminalPresenter) ShowSummary(sum quiz.Summary) {
	fmt.Fprintf(p.out, "\n%s\n", p.bold("Quiz complete!"))
	fmt.Fprintf(p.out, "Correct: %d  Incorrect: %d  Skipped: %d  Unfamiliar: %d\n",
		sum.Correct, sum.Incorrect, sum.Skipped, sum.Unfamiliar)
	if sum.Correct+sum.Incorrect > 0 {
		fmt.Fprintf(p.out, "Accuracy: %.1f%%\n", sum.Accuracy())
	}
	if len(sum.UnfamiliarWords) > 0 {
		fmt.Fprintf(p.out, "\n%s\n", p.yellow("Words to review:"))
		for _, card := range sum.UnfamiliarWords {
			fmt.Fprintf(p.out, "  - %s (%s)\n", card.Word, card.Primary())
		}
	}
}

func (p *TerminalPresenter) ReadLine() (string, error) {
	fmt.Fprint(p.out, "> ")
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
