package lang

import (
	"context"
	"log/slog"
	"slices"
	"strconv"

	"github.com/ardnew/buildfile/lang/arena"
	"github.com/ardnew/buildfile/lang/ast"
	"github.com/ardnew/buildfile/lang/intern"
	"github.com/ardnew/buildfile/lang/lex"
	"github.com/ardnew/buildfile/log"
)

type token = lex.Token[lex.TokenKind]

// Parser turns one input buffer into an [ast.File].
// A Parser is single-use: call Parse once.
type Parser struct {
	input  []byte
	lexer  *lex.Lexer
	table  *intern.Table
	file   *ast.File
	logger log.Logger
}

// NewParser returns a Parser over input.
// The input must not be modified until Parse returns.
func NewParser(input []byte, opts ...Option) *Parser {
	p := &Parser{
		input: input,
		lexer: lex.New(input),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse reads every declaration of the input. Names are interned in table,
// which may be shared across parses but not concurrently.
//
// The first failure aborts the parse and is returned as a [*SyntaxError];
// no partial file is returned. Parse also stops when ctx is done.
func (p *Parser) Parse(ctx context.Context, table *intern.Table) (*ast.File, error) {
	p.table = table
	p.file = ast.NewFile()

	p.logger.TraceContext(ctx, "parse start",
		slog.Int("source_bytes", len(p.input)))

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		decl, ok, err := p.lexer.LexDecl()
		if err != nil {
			return nil, p.lexError(err)
		}

		if !ok {
			break
		}

		switch decl.Kind {
		case lex.DeclNewline:
			continue

		case lex.DeclRule:
			err = p.parseRule()

		case lex.DeclBuild:
			err = p.parseBuild()

		case lex.DeclDefault:
			err = p.parseDefault()

		case lex.DeclPool:
			err = p.parsePool(decl.Location)

		case lex.DeclIdentifier:
			err = p.parseTopLevelBinding(decl.Location)

		case lex.DeclInclude, lex.DeclSubninja:
			err = p.fail(
				ErrUnsupported.With(slog.String("keyword", decl.Kind.String())),
				decl.Location,
			)

		default:
			err = p.fail(ErrLex.Wrap(lex.ErrInvalidDeclStart), decl.Location)
		}

		if err != nil {
			return nil, err
		}

		p.logger.TraceContext(ctx, "declaration",
			slog.String("kind", decl.Kind.String()),
			slog.Int("line", decl.Location.Line))
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.Int("declarations", p.file.Declarations().Len()),
		slog.Int("scopes", p.file.Scopes().Len()),
		slog.Int("symbols", p.table.Len()))

	return p.file, nil
}

// rule name NEWLINE scope.
func (p *Parser) parseRule() error {
	name, err := p.parseIdentifier()
	if err != nil {
		return err
	}

	if _, err := p.expect(lex.TokenNewline); err != nil {
		return err
	}

	scope, err := p.parseScope()
	if err != nil {
		return err
	}

	p.file.Declarations().AddRule(ast.Rule{Name: name, Scope: scope})

	return nil
}

// build outputs [| implicit] : rule [inputs] [| implicit] [|| order]
// NEWLINE scope.
func (p *Parser) parseBuild() error {
	var (
		build ast.Build
		err   error
	)

	if build.Outputs, err = p.parseTargets(true); err != nil {
		return err
	}

	tok, err := p.next()
	if err != nil {
		return err
	}

	switch tok.Kind {
	case lex.TokenPipe:
		if build.ImplicitOutputs, err = p.parseTargets(true); err != nil {
			return err
		}

		if _, err := p.expect(lex.TokenColon); err != nil {
			return err
		}

	case lex.TokenColon:

	default:
		return p.unexpected(tok)
	}

	if build.Rule, err = p.parseIdentifier(); err != nil {
		return err
	}

	if build.Inputs, err = p.parseTargets(false); err != nil {
		return err
	}

	if tok, err = p.next(); err != nil {
		return err
	}

	switch tok.Kind {
	case lex.TokenNewline:

	case lex.TokenPipe:
		if build.ImplicitInputs, err = p.parseTargets(false); err != nil {
			return err
		}

		if tok, err = p.next(); err != nil {
			return err
		}

		switch tok.Kind {
		case lex.TokenNewline:

		case lex.TokenPipePipe:
			if err := p.parseOrderInputs(&build); err != nil {
				return err
			}

		default:
			return p.unexpected(tok)
		}

	case lex.TokenPipePipe:
		if err := p.parseOrderInputs(&build); err != nil {
			return err
		}

	default:
		return p.unexpected(tok)
	}

	if build.Scope, err = p.parseScope(); err != nil {
		return err
	}

	p.file.Declarations().AddBuild(build)

	return nil
}

// parseOrderInputs reads the targets following '||' through the newline.
func (p *Parser) parseOrderInputs(build *ast.Build) error {
	var err error

	if build.OrderInputs, err = p.parseTargets(false); err != nil {
		return err
	}

	_, err = p.expect(lex.TokenNewline)

	return err
}

// default targets NEWLINE.
func (p *Parser) parseDefault() error {
	targets, err := p.parseTargets(true)
	if err != nil {
		return err
	}

	if _, err := p.expect(lex.TokenNewline); err != nil {
		return err
	}

	p.file.Declarations().AddDefault(ast.Default{Targets: targets})

	return nil
}

// pool name NEWLINE scope, where the scope holds exactly one binding named
// depth with an empty or non-negative decimal value.
func (p *Parser) parsePool(at lex.SourceLocation) error {
	name, err := p.parseIdentifier()
	if err != nil {
		return err
	}

	if _, err := p.expect(lex.TokenNewline); err != nil {
		return err
	}

	id, err := p.parseScope()
	if err != nil {
		return err
	}

	scope := p.file.Scopes().Scope(id)
	if scope.Len() != 1 {
		return p.fail(
			ErrPoolDepthInvalid.With(slog.Int("bindings", scope.Len())),
			at,
		)
	}

	value, ok := scope.Get(lex.NewIdentifierString(p.table, "depth"))
	if !ok {
		return p.fail(
			ErrPoolDepthInvalid.With(slog.String("reason", "missing depth")),
			at,
		)
	}

	var depth uint64

	if !value.IsEmpty() {
		depth, err = strconv.ParseUint(value.String(), 10, 64)
		if err != nil {
			return p.fail(
				ErrPoolDepthInvalid.Wrap(err).With(slog.String("depth", value.String())),
				at,
			)
		}
	}

	p.file.Declarations().AddPool(ast.Pool{Name: name, Depth: depth})

	return nil
}

// name = value NEWLINE at file level; the name was already read as the
// declaration token.
func (p *Parser) parseTopLevelBinding(at lex.SourceLocation) error {
	name := lex.NewIdentifier(p.table, p.lexer.Lexeme(at))

	binding, err := p.parseBinding(name)
	if err != nil {
		return err
	}

	top := p.file.Scopes().Scope(p.file.Scopes().Top())
	if err := top.Push(binding); err != nil {
		return p.fail(
			ErrAST.Wrap(err).With(slog.String("name", string(p.lexer.Lexeme(at)))),
			at,
		)
	}

	return nil
}

// parseScope reads the indented bindings following a declaration line and
// stores them in a new scope. Lines holding only indentation or a comment
// are skipped; indentation at end of input is not a line.
func (p *Parser) parseScope() (arena.ID[ast.Scope], error) {
	var (
		bindings []ast.Binding
		at       = p.lexer.Location()
	)

	for p.lexer.TryIndent() {
		if _, err := p.expect(lex.TokenIndent); err != nil {
			return arena.ID[ast.Scope]{}, err
		}

		tok, err := p.next()
		if err != nil {
			return arena.ID[ast.Scope]{}, err
		}

		switch tok.Kind {
		case lex.TokenNewline:
			continue

		case lex.TokenIdentifier:

		default:
			return arena.ID[ast.Scope]{}, p.failToken(ErrExpected, tok, lex.TokenIdentifier)
		}

		lexeme := p.lexer.Lexeme(tok.Location)

		binding, err := p.parseBinding(lex.NewIdentifier(p.table, lexeme))
		if err != nil {
			return arena.ID[ast.Scope]{}, err
		}

		if slices.ContainsFunc(bindings, func(b ast.Binding) bool {
			return b.Name == binding.Name
		}) {
			return arena.ID[ast.Scope]{}, p.fail(
				ErrAST.Wrap(ast.ErrDuplicateBinding).With(slog.String("name", string(lexeme))),
				tok.Location,
			)
		}

		bindings = append(bindings, binding)
	}

	id, err := p.file.Scopes().NewScope(bindings)
	if err != nil {
		return arena.ID[ast.Scope]{}, p.fail(ErrAST.Wrap(err), at)
	}

	return id, nil
}

// parseBinding reads "= value NEWLINE" and expands the value against the
// file-level scope.
func (p *Parser) parseBinding(name lex.Identifier) (ast.Binding, error) {
	if _, err := p.expect(lex.TokenEqual); err != nil {
		return ast.Binding{}, err
	}

	value, err := p.parseValue()
	if err != nil {
		return ast.Binding{}, err
	}

	if _, err := p.expect(lex.TokenNewline); err != nil {
		return ast.Binding{}, err
	}

	top := p.file.Scopes().Scope(p.file.Scopes().Top())

	return ast.Binding{Name: name, Value: top.Evaluate(value.Value)}, nil
}

func (p *Parser) parseValue() (ast.Value, error) {
	v, err := p.lexer.LexValue(p.table)
	if err != nil {
		return ast.Value{}, p.lexError(err)
	}

	return ast.Value{Value: v}, nil
}

// parseTargets reads a space-separated target list. When required is set,
// an empty list fails on the token that follows it.
func (p *Parser) parseTargets(required bool) ([]ast.Target, error) {
	var targets []ast.Target

	for {
		v, ok, err := p.lexer.LexTarget(p.table)
		if err != nil {
			return nil, p.lexError(err)
		}

		if !ok {
			break
		}

		targets = append(targets, ast.Target{Value: v})
	}

	if required && len(targets) == 0 {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}

		return nil, p.unexpected(tok)
	}

	return targets, nil
}

func (p *Parser) parseIdentifier() (lex.Identifier, error) {
	tok, err := p.expect(lex.TokenIdentifier)
	if err != nil {
		return lex.Identifier{}, err
	}

	return lex.NewIdentifier(p.table, p.lexer.Lexeme(tok.Location)), nil
}

// next returns the next generic token; end of input is an error.
func (p *Parser) next() (token, error) {
	tok, ok, err := p.lexer.Lex()
	if err != nil {
		return token{}, p.lexError(err)
	}

	if !ok {
		return token{}, p.fail(ErrUnexpectedEOF, p.lexer.Location())
	}

	return tok, nil
}

// expect returns the next token if it has the given kind.
func (p *Parser) expect(kind lex.TokenKind) (token, error) {
	tok, err := p.next()
	if err != nil {
		return token{}, err
	}

	if tok.Kind == kind {
		return tok, nil
	}

	if kind == lex.TokenNewline {
		return token{}, p.failToken(ErrMissingNewline, tok, kind)
	}

	return token{}, p.failToken(ErrExpected, tok, kind)
}

func (p *Parser) unexpected(tok token) error {
	return p.failToken(ErrUnexpectedToken, tok, lex.TokenNone)
}

func (p *Parser) lexError(err error) error {
	return p.fail(ErrLex.Wrap(err), p.lexer.Location())
}

func (p *Parser) failToken(err error, got token, expected lex.TokenKind) error {
	return newSyntaxError(p.input, err, got.Location, expected, got.Kind)
}

func (p *Parser) fail(err error, at lex.SourceLocation) error {
	return newSyntaxError(p.input, err, at, lex.TokenNone, lex.TokenNone)
}
