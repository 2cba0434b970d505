package argsparser

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/kballard/go-shellquote"
)

const (
	defaultLongPrefix  = "--"
	defaultShortPrefix = "-"
)

// Parser matches command line arguments against its registered arguments.
// Register everything first: registration closes when Parse is first called.
// A Parser is not safe for concurrent use.
type Parser struct {
	Registry

	longPrefix  string
	shortPrefix string
	permissive  bool
	critical    bool
	logger      *log.Logger
}

type ParserOpt func(*Parser)

// LongPrefix sets the prefix of long names, "--" by default. Given alone, the
// prefix ends option processing.
func LongPrefix(prefix string) ParserOpt {
	return func(p *Parser) {
		p.longPrefix = prefix
	}
}

// ShortPrefix sets the prefix of short aliases, "-" by default. The empty
// string disables short aliases. It may equal the long prefix, in which case a
// name that isn't a long name is tried as a short alias.
func ShortPrefix(prefix string) ParserOpt {
	return func(p *Parser) {
		p.shortPrefix = prefix
	}
}

// Permissive collects unprefixed arguments beyond the registered positionals
// in Result.Extra instead of failing on them.
func Permissive() ParserOpt {
	return func(p *Parser) {
		p.permissive = true
	}
}

// FailFast makes every failure abort the parse, as if all arguments were
// registered Critical.
func FailFast() ParserOpt {
	return func(p *Parser) {
		p.critical = true
	}
}

func WithLogger(logger *log.Logger) ParserOpt {
	return func(p *Parser) {
		p.logger = logger
	}
}

func NewParser(opts ...ParserOpt) *Parser {
	p := &Parser{
		longPrefix:  defaultLongPrefix,
		shortPrefix: defaultShortPrefix,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.longPrefix == "" {
		panic("long prefix must not be empty")
	}
	if len(p.shortPrefix) > len(p.longPrefix) && strings.HasPrefix(p.shortPrefix, p.longPrefix) {
		panic(fmt.Sprintf("short prefix %q extends long prefix %q", p.shortPrefix, p.longPrefix))
	}
	return p
}

// Parse matches args against the registered arguments. The Result is always
// returned. The error is nil if nothing failed, the aborting *Failure if a
// critical argument failed, and otherwise the Result's Failures.
func (p *Parser) Parse(args []string) (*Result, error) {
	p.sealed = true
	ps := &pass{
		Parser: p,
		res:    newResult(&p.Registry),
		args:   args,
	}
	if err := ps.run(); err != nil {
		return ps.res, err
	}
	if len(ps.res.Failures) != 0 {
		return ps.res, ps.res.Failures
	}
	return ps.res, nil
}

// ParseString splits cmdline the way a POSIX shell would and parses the
// resulting words.
func (p *Parser) ParseString(cmdline string) (*Result, error) {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		return newResult(&p.Registry), fmt.Errorf("splitting command line: %w", err)
	}
	return p.Parse(args)
}

// A single run over the arguments.
type pass struct {
	*Parser
	res  *Result
	args []string
	// Index of the next positional to fill. A repeated positional stays next.
	nextPos int
	posOnly bool
}

func (ps *pass) run() error {
	for len(ps.args) > 0 {
		if err := ps.parseOne(); err != nil {
			return err
		}
	}
	return ps.checkRequired()
}

func (ps *pass) parseOne() error {
	arg := ps.args[0]
	ps.args = ps.args[1:]
	if !ps.posOnly {
		if arg == ps.longPrefix {
			ps.posOnly = true
			return nil
		}
		if len(arg) > len(ps.longPrefix) && strings.HasPrefix(arg, ps.longPrefix) {
			return ps.parseLong(arg, arg[len(ps.longPrefix):])
		}
		if ps.shortPrefix != "" && len(arg) > len(ps.shortPrefix) && strings.HasPrefix(arg, ps.shortPrefix) {
			return ps.parseNamed(arg, ps.lookupShort(arg[len(ps.shortPrefix):]), "", false)
		}
	}
	return ps.parsePositional(arg)
}

func (ps *pass) parseLong(arg, name string) error {
	name, inline, hasInline := strings.Cut(name, "=")
	if t, ok := ps.long[name]; ok {
		return ps.parseNamed(arg, t, inline, hasInline)
	}
	if t, ok := ps.negated[name]; ok && !hasInline {
		return ps.parseNamed(arg, t, "false", true)
	}
	// The prefixes may overlap, as with "-" for both.
	if ps.shortPrefix != "" && strings.HasPrefix(arg, ps.shortPrefix) {
		return ps.parseNamed(arg, ps.lookupShort(arg[len(ps.shortPrefix):]), "", false)
	}
	return ps.parseNamed(arg, NullToken, "", false)
}

func (ps *pass) parseNamed(arg string, t Token, inline string, hasInline bool) error {
	d, ok := ps.Descriptor(t)
	if !ok {
		return ps.fail(nil, &Failure{Kind: UnrecognizedArgument, Arg: arg})
	}
	ps.logger.Debug("matched argument", "arg", arg, "token", t)
	raw := "true"
	switch {
	case hasInline:
		raw = inline
	case d.RequiresValue():
		if len(ps.args) != 0 {
			raw = ps.args[0]
			ps.args = ps.args[1:]
			break
		}
		if !d.allowEmpty {
			*ps.res.state(t) = argState{supplied: true}
			return ps.fail(d, &Failure{Token: t, Kind: MissingValue, Arg: arg})
		}
		raw = ""
	}
	return ps.accept(d, raw)
}

func (ps *pass) parsePositional(arg string) error {
	pos := ps.Positionals()
	if ps.nextPos < len(pos) {
		d := pos[ps.nextPos]
		if !d.repeated {
			ps.nextPos++
		}
		ps.logger.Debug("matched argument", "arg", arg, "token", d.token)
		return ps.accept(d, arg)
	}
	if ps.permissive {
		ps.res.Extra = append(ps.res.Extra, arg)
		return nil
	}
	return ps.fail(nil, &Failure{Kind: UnrecognizedArgument, Arg: arg})
}

// Failures for missing required arguments are collected rather than
// reported one at a time.
func (ps *pass) checkRequired() (err error) {
	ps.each(func(d *Descriptor) {
		if err != nil || !d.Required() || ps.res.WasSupplied(d.token) {
			return
		}
		err = ps.fail(d, &Failure{Token: d.token, Kind: MissingRequired, Arg: d.name})
	})
	return
}
