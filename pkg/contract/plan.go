// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contract

import (
	"encoding/json"
	"fmt"

	"github.com/ava-labs/tenk-cli/pkg/clierrors"
	"github.com/ava-labs/tenk-cli/pkg/constants"
	"github.com/ava-labs/tenk-cli/pkg/models"
	"github.com/ava-labs/tenk-cli/pkg/near"
	"github.com/ava-labs/tenk-cli/pkg/nft"

	"gopkg.in/yaml.v3"
)

type Plan struct {
	ContractID  string
	Signer      string
	Network     models.Network
	WasmPath    string
	CodeSize    int
	CodeHash    string
	HasContract bool
	// set when an initialize call is appended
	InitArgs *nft.InitArgs

	tx *near.TransactionBuilder
}

func (p *Plan) WillInitialize() bool {
	return p.InitArgs != nil
}

func (p *Plan) Actions() []near.Action {
	return p.tx.Actions()
}

type plannedAction struct {
	Kind     string `json:"kind" yaml:"kind"`
	CodeSize int    `json:"code_size,omitempty" yaml:"code_size,omitempty"`
	Method   string `json:"method,omitempty" yaml:"method,omitempty"`
	Gas      string `json:"gas,omitempty" yaml:"gas,omitempty"`
	Deposit  string `json:"deposit,omitempty" yaml:"deposit,omitempty"`
}

type planView struct {
	ContractID  string          `json:"contract_id" yaml:"contract_id"`
	Signer      string          `json:"signer" yaml:"signer"`
	Network     string          `json:"network" yaml:"network"`
	WasmPath    string          `json:"wasm_path" yaml:"wasm_path"`
	CodeHash    string          `json:"code_hash" yaml:"code_hash"`
	HasContract bool            `json:"has_contract" yaml:"has_contract"`
	Actions     []plannedAction `json:"actions" yaml:"actions"`
	InitArgs    *nft.InitArgs   `json:"init_args,omitempty" yaml:"init_args,omitempty"`
}

func (p *Plan) view() planView {
	v := planView{
		ContractID:  p.ContractID,
		Signer:      p.Signer,
		Network:     p.Network.ID(),
		WasmPath:    p.WasmPath,
		CodeHash:    p.CodeHash,
		HasContract: p.HasContract,
		InitArgs:    p.InitArgs,
	}
	for _, a := range p.Actions() {
		pa := plannedAction{Kind: a.Kind()}
		switch a.Enum {
		case near.ActionDeployContract:
			pa.CodeSize = len(a.DeployContract.Code)
		case near.ActionFunctionCall:
			pa.Method = a.FunctionCall.MethodName
			pa.Gas = near.Gas(a.FunctionCall.Gas).String()
			pa.Deposit = near.FormatNEAR(&a.FunctionCall.Deposit)
		}
		v.Actions = append(v.Actions, pa)
	}
	return v
}

// Render prints the plan as indented JSON or YAML.
func (p *Plan) Render(format string) ([]byte, error) {
	switch format {
	case constants.DryRunFormatJSON:
		return json.MarshalIndent(p.view(), "", "  ")
	case constants.DryRunFormatYAML:
		return yaml.Marshal(p.view())
	}
	return nil, fmt.Errorf("%w: %q", clierrors.ErrInvalidFormat, format)
}
