package argsparser

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var usageName = color.New(color.Bold).SprintFunc()

// WriteUsage writes a line for each registered argument, positionals first.
func (p *Parser) WriteUsage(w io.Writer) {
	fmt.Fprintf(w, "arguments:\n")
	p.each(func(d *Descriptor) {
		u := d.usage(p.longPrefix, p.shortPrefix)
		fmt.Fprintf(w, "  ")
		if len(u.Switches) != 0 {
			fmt.Fprint(w, usageName(strings.Join(u.Switches, "|")))
			if len(u.Arguments) != 0 {
				fmt.Fprint(w, " ")
			}
		}
		for i, arg := range u.Arguments {
			if i != 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "<%v>", arg)
		}
		fmt.Fprintf(w, "\n")
		if u.Help != "" {
			fmt.Fprintf(w, "\t%v\n", u.Help)
		}
	})
}

// RegisterHelp registers the switch --help, aliased -h, which writes usage to
// w when given.
func (p *Parser) RegisterHelp(w io.Writer) (Token, error) {
	return p.RegisterSwitch("help",
		Short('h'),
		Help("show this help"),
		AfterParse(func() { p.WriteUsage(w) }),
	)
}
