/*
Package config resolves the settings of an overwrite run.

	+----------+   +-------------+   +-----------+
	| defaults |-->| config file |-->|    env    |--> flags --> Config
	+----------+   | yaml/json/  |   | INPUT_*   |
	               |    hcl      |   +-----------+
	               +-------------+

🎯 Purpose:
- Layers defaults, an optional config file, the environment and CLI flags
- Reads GitHub Actions inputs the way @actions/core does (INPUT_<NAME>, trimmed)
- Parses .overwrite.yaml, .overwrite.json and .overwrite.hcl through a parser registry

⚡ Key Responsibilities:
- Format abstraction (Parser, Register, GetParser)
- Layering (Resolve, Merge)
- Validation of the fields with a fixed domain (concurrency, format)

📝 Design Philosophy:
Input and output are never validated. An empty or odd pattern is passed to the
glob engine as-is and simply matches nothing, which is what a CI step expects.

🔍 Example:

	cfg, err := config.Resolve(ctx, config.Sources{
		Lookup: os.LookupEnv,
		Flags:  &config.Config{Input: "test.env", Output: "output.env"},
	})
	if err != nil {
		return err
	}
*/
package config
