// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package nft

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ava-labs/tenk-cli/pkg/constants"
	"github.com/ava-labs/tenk-cli/pkg/models"
	"github.com/ava-labs/tenk-cli/pkg/near"
)

var ErrZeroSize = errors.New("collection size must be positive")

// InitArgs is the argument object of the contract's initializer.
type InitArgs struct {
	OwnerID  string   `json:"owner_id" yaml:"owner_id"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
	Size     uint32   `json:"size" yaml:"size"`
	Sale     Sale     `json:"sale" yaml:"sale"`
}

// NewInitArgs assembles the initializer arguments for a deployment on
// network, owned by ownerID.
func NewInitArgs(ownerID string, network models.Network, now time.Time) (InitArgs, error) {
	args := InitArgs{
		OwnerID:  ownerID,
		Metadata: DefaultMetadata(),
		Size:     constants.CollectionSize,
		Sale:     DefaultSale().ForNetwork(network, now),
	}
	if err := args.Validate(); err != nil {
		return InitArgs{}, err
	}
	return args, nil
}

func (a InitArgs) Validate() error {
	if err := near.ValidateAccountID(a.OwnerID); err != nil {
		return fmt.Errorf("owner: %w", err)
	}
	if a.Size == 0 {
		return ErrZeroSize
	}
	if err := a.Metadata.Validate(); err != nil {
		return err
	}
	return a.Sale.Validate()
}

func (a InitArgs) JSON() ([]byte, error) {
	return json.Marshal(a)
}
