package internal

// Validate compiles source and every operator body beneath it, and checks that
// each operator name is registered. It returns the first failure found.
// Argument values are not checked; they depend on the data supplied at render time.
func (e *Executor) Validate(source string, start Position) error {
	nodes, err := e.Compile(source, start)
	if err != nil {
		return err
	}

	for _, node := range nodes {
		op, ok := node.(*OperatorNode)
		if !ok {
			continue
		}
		if !e.registry.Has(op.Name) {
			suggestions := FindSimilarOperators(op.Name, e.registry.List(), DefaultMaxSuggestions)
			return NewLookupError(op.Name, op.Pos(), suggestions)
		}
		if err := e.Validate(op.Body, op.BodyPos); err != nil {
			return err
		}
	}
	return nil
}
