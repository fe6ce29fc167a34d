package blsdk

import (
	"context"
	"net/url"
)

// GetFrontDeskInstructions returns the resident's active standing
// instructions for the front desk.
func (c *Client) GetFrontDeskInstructions(ctx context.Context) ([]FrontDeskInstruction, error) {
	query := url.Values{"excludeReplacedExpired": {"true"}}

	var list []FrontDeskInstruction
	err := c.getJSON(ctx, "get front desk instructions",
		c.hosts.FrontDesk+"/instruction/sync",
		query, &list)
	if err != nil {
		return nil, err
	}

	return list, nil
}

// GetFrontDeskInstructionTypes returns the instruction categories referenced
// by FrontDeskInstruction.InstructionTypeID.
func (c *Client) GetFrontDeskInstructionTypes(ctx context.Context) ([]FrontDeskInstructionType, error) {
	query := url.Values{"excludeReplacedExpired": {"true"}}

	var list []FrontDeskInstructionType
	err := c.getJSON(ctx, "get front desk instruction types",
		c.hosts.FrontDesk+"/instruction-type/sync",
		query, &list)
	if err != nil {
		return nil, err
	}

	return list, nil
}
