// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package near

import (
	"encoding/json"
)

type StatusKind int

const (
	StatusUnknown StatusKind = iota
	StatusSuccess
	StatusFailure
)

func (k StatusKind) String() string {
	switch k {
	case StatusSuccess:
		return "Success"
	case StatusFailure:
		return "Failure"
	}
	return "Unknown"
}

// ExecutionStatus is the final status of a transaction, decoded into a
// tagged value. Only a SuccessValue counts as success; SuccessReceiptId and
// the pending states are reported as StatusUnknown with the raw payload kept.
type ExecutionStatus struct {
	Kind StatusKind
	// base64 encoded return value, set for StatusSuccess
	Value string
	// set for StatusFailure
	Failure json.RawMessage
	Raw     json.RawMessage
}

func (s *ExecutionStatus) UnmarshalJSON(b []byte) error {
	s.Raw = append(json.RawMessage(nil), b...)
	var variants map[string]json.RawMessage
	if err := json.Unmarshal(b, &variants); err != nil {
		// plain string variants such as "NotStarted" or "Started"
		s.Kind = StatusUnknown
		return nil
	}
	if v, ok := variants["SuccessValue"]; ok {
		s.Kind = StatusSuccess
		return json.Unmarshal(v, &s.Value)
	}
	if v, ok := variants["Failure"]; ok {
		s.Kind = StatusFailure
		s.Failure = v
		return nil
	}
	s.Kind = StatusUnknown
	return nil
}

func (s ExecutionStatus) MarshalJSON() ([]byte, error) {
	if len(s.Raw) == 0 {
		return []byte("null"), nil
	}
	return s.Raw, nil
}

func (s ExecutionStatus) IsSuccess() bool {
	return s.Kind == StatusSuccess
}

type ExecutionOutcome struct {
	Logs        []string        `json:"logs"`
	ReceiptIDs  []string        `json:"receipt_ids"`
	GasBurnt    uint64          `json:"gas_burnt"`
	TokensBurnt string          `json:"tokens_burnt"`
	ExecutorID  string          `json:"executor_id"`
	Status      json.RawMessage `json:"status"`
}

type ExecutionOutcomeWithID struct {
	ID      string           `json:"id"`
	BlockID string           `json:"block_hash,omitempty"`
	Outcome ExecutionOutcome `json:"outcome"`
}

// FinalExecutionOutcome is the reply of broadcast_tx_commit.
type FinalExecutionOutcome struct {
	Status             ExecutionStatus          `json:"status"`
	Transaction        json.RawMessage          `json:"transaction"`
	TransactionOutcome ExecutionOutcomeWithID   `json:"transaction_outcome"`
	ReceiptsOutcome    []ExecutionOutcomeWithID `json:"receipts_outcome"`
}

func (o *FinalExecutionOutcome) TxID() string {
	return o.TransactionOutcome.ID
}

// TotalGasBurnt sums the gas burnt by the transaction and all its receipts.
func (o *FinalExecutionOutcome) TotalGasBurnt() Gas {
	total := o.TransactionOutcome.Outcome.GasBurnt
	for _, r := range o.ReceiptsOutcome {
		total += r.Outcome.GasBurnt
	}
	return Gas(total)
}
