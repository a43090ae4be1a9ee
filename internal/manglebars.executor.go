package internal

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// ExecutorConfig holds executor configuration options.
type ExecutorConfig struct {
	MaxDepth     int  // Maximum operator nesting depth (0 = unlimited)
	NestingAware bool // Lexer matches closing tags by depth
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		MaxDepth:     DefaultMaxDepth,
		NestingAware: false,
	}
}

// Executor compiles template text into node lists and renders them against a data context.
// An Executor holds no per-render state and may be shared by concurrent renders.
type Executor struct {
	registry *Registry
	config   ExecutorConfig
	cache    *BodyCache
	logger   *zap.Logger
}

// NewExecutor creates a new executor. cache may be nil to recompile bodies on every render.
func NewExecutor(registry *Registry, config ExecutorConfig, cache *BodyCache, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgExecutorCreated)

	return &Executor{
		registry: registry,
		config:   config,
		cache:    cache,
		logger:   logger,
	}
}

// Registry returns the operator registry the executor resolves handlers from.
func (e *Executor) Registry() *Registry {
	return e.registry
}

// Cache returns the body cache, or nil when caching is disabled.
func (e *Executor) Cache() *BodyCache {
	return e.cache
}

// Tokenize splits source into raw tokens using the executor's lexer settings.
// start is the position of the first source byte within the outermost template.
func (e *Executor) Tokenize(source string, start Position) ([]Token, error) {
	lexer := NewLexerWithConfig(source, LexerConfig{
		NestingAware: e.config.NestingAware,
		Start:        start,
	}, e.logger)
	return lexer.Tokenize()
}

// Compile tokenizes and classifies source into an immutable node list.
func (e *Executor) Compile(source string, start Position) ([]Node, error) {
	tokens, err := e.Tokenize(source, start)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens, e.logger).Parse()
}

// Execute renders the node list against data and returns the output.
func (e *Executor) Execute(ctx context.Context, nodes []Node, data map[string]any) (string, error) {
	e.logger.Debug(LogMsgExecutorStart, zap.Int(LogFieldNodes, len(nodes)))

	result, err := e.executeNodes(ctx, nodes, data, 0)
	if err != nil {
		return "", err
	}

	e.logger.Debug(LogMsgExecutorEnd)
	return result, nil
}

// executeNodes processes a slice of nodes and concatenates their output.
func (e *Executor) executeNodes(ctx context.Context, nodes []Node, data map[string]any, depth int) (string, error) {
	if e.config.MaxDepth > 0 && depth > e.config.MaxDepth {
		return "", NewRenderError(ErrMsgMaxDepthExceeded, StringValueEmpty, Position{}, nil)
	}

	var sb strings.Builder

	for _, node := range nodes {
		output, err := e.executeNode(ctx, node, data, depth)
		if err != nil {
			return "", err
		}
		sb.WriteString(output)
	}

	return sb.String(), nil
}

// executeNode processes a single node and returns its output.
func (e *Executor) executeNode(ctx context.Context, node Node, data map[string]any, depth int) (string, error) {
	switch n := node.(type) {
	case *TextNode:
		return n.Content, nil

	case *BindingNode:
		return ValueToString(data[n.Key]), nil

	case *OperatorNode:
		return e.executeOperator(ctx, n, data, depth)

	default:
		return "", NewRenderError(ErrMsgUnknownNodeType, StringValueEmpty, node.Pos(), nil)
	}
}

// executeOperator resolves arguments, looks up the handler and invokes it.
func (e *Executor) executeOperator(ctx context.Context, n *OperatorNode, data map[string]any, depth int) (string, error) {
	handler, ok := e.registry.Get(n.Name)
	if !ok {
		suggestions := FindSimilarOperators(n.Name, e.registry.List(), DefaultMaxSuggestions)
		return "", NewLookupError(n.Name, n.Pos(), suggestions)
	}

	args := make([]any, len(n.ArgKeys))
	for i, key := range n.ArgKeys {
		args[i] = data[key]
	}

	e.logger.Debug(LogMsgOperatorInvoked,
		zap.String(LogFieldOperator, n.Name),
		zap.Int(LogFieldArgs, len(args)),
		zap.Int(LogFieldDepth, depth))

	call := &Call{
		Name:     n.Name,
		Args:     args,
		ArgKeys:  n.ArgKeys,
		Body:     n.Body,
		Data:     data,
		pos:      n.Pos(),
		bodyPos:  n.BodyPos,
		depth:    depth,
		executor: e,
	}

	result, err := handler(ctx, call)
	if err != nil {
		return "", annotateOperatorError(err, n)
	}

	e.logger.Debug(LogMsgOperatorComplete, zap.String(LogFieldOperator, n.Name))
	return result, nil
}

// renderBody compiles body (or fetches it from the cache) and renders it one level deeper.
func (e *Executor) renderBody(ctx context.Context, body string, bodyPos Position, data map[string]any, depth int) (string, error) {
	nodes, ok := e.cache.Get(body, bodyPos)
	if !ok {
		var err error
		nodes, err = e.Compile(body, bodyPos)
		if err != nil {
			return "", err
		}
		e.cache.Set(body, bodyPos, nodes)
	}
	return e.executeNodes(ctx, nodes, data, depth+1)
}

// annotateOperatorError attaches the operator name and position to a handler failure.
// Engine errors raised deeper in the tree keep their own position; foreign errors are wrapped.
func annotateOperatorError(err error, n *OperatorNode) error {
	if e, ok := err.(*Error); ok {
		// Handlers may return a shared error value; annotate a copy.
		annotated := *e
		if annotated.Operator == StringValueEmpty {
			annotated.Operator = n.Name
		}
		if annotated.Position.Line == 0 {
			annotated.Position = n.Pos()
		}
		return &annotated
	}
	if KindOf(err) != ErrorKindUnknown {
		return err
	}
	return NewRenderError(ErrMsgOperatorFailed, n.Name, n.Pos(), err)
}
