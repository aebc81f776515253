/*
Package operation implements the fan-out copy at the heart of overwrite.

🎯 Purpose:
- Expands the input pattern at any depth below the workspace
- Copies every match onto the sibling file named <output>
- Reports each success and failure to a log.Sink

🔄 Flow:
1. Expander returns the match set
2. One goroutine per match: read, then write the sibling
3. errgroup waits for all of them, the first failure becomes the terminal failure

⚡ Key Responsibilities:
- Destination computation (Destination)
- Partial failure semantics: a failing path never stops its siblings
- Result collection without shared counters (Report)

🤝 Interfaces:
- glob.Expander: source of paths
- workspace.Files: reads and atomic writes
- log.Sink: info, error and fail events

🔍 Example:

	copier, err := operation.New(operation.Options{
		Expander: glob.NewDoublestarExpander(fs),
		Files:    workspace.New(fs),
		Sink:     logger,
	})
	if err != nil {
		return err
	}
	report, err := copier.Run(ctx, cfg)
*/
package operation
