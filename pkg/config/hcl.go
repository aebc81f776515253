// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{Environ: os.Environ})
}

// 🔧 HCLParser implements the Parser interface for HCL files.
// Expressions can read the environment through the env object, e.g.
//
//	output = "${env.STAGE}.env"
type HCLParser struct {
	Environ func() []string
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": p.envObject(),
		},
	}

	type hclConfig struct {
		Input       string `hcl:"input,optional"`
		Output      string `hcl:"output,optional"`
		Workspace   string `hcl:"workspace,optional"`
		Concurrency int    `hcl:"concurrency,optional"`
		Format      string `hcl:"format,optional"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &Config{
		Input:       hclCfg.Input,
		Output:      hclCfg.Output,
		Workspace:   hclCfg.Workspace,
		Concurrency: hclCfg.Concurrency,
		Format:      hclCfg.Format,
	}, nil
}

// envObject exposes the environment as a cty object
func (p *HCLParser) envObject() cty.Value {
	vars := map[string]cty.Value{}
	if p.Environ != nil {
		for _, kv := range p.Environ() {
			name, value, ok := strings.Cut(kv, "=")
			if !ok || name == "" {
				continue
			}
			vars[name] = cty.StringVal(value)
		}
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}
