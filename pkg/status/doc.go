/*
Package status prints what a run did to the workspace.

	+-------------+        +-------------+
	|  operation  | -----> |   status    |
	|   Report    |        |  (Printer)  |
	+-------------+        +------+------+
	                              |
	                   +----------+----------+
	                   |                     |
	             +-----+-----+         +-----+-----+
	             |  Results  |         |  Totals   |
	             |  (color)  |         |  (pterm)  |
	             +-----------+         +-----------+

🎯 Purpose:
- Classifies every copy as created, overwritten or failed
- Formats one aligned line per result
- Prints the end-of-run totals

🔄 Flow:
1. Receives the report once every path has settled
2. Optionally lists each result
3. Prints copied and failed counts

🤝 Interfaces:
- Printer: writes the summary to any io.Writer
- FormatResult: formats a single result

🔍 Example:

	report, err := copier.Run(ctx, cfg)
	if err != nil {
		return err
	}
	status.NewPrinter(os.Stdout, debug).Print(report)
*/
package status
