package usecasees

import (
	"math/big"
	"strings"

	"recifi/internal/controllers"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// erc20Caller packs and reads the small ERC-20 surface the trade engine
// needs: decimals, balances, approve and transfer call data.
type erc20Caller struct {
	chainController controllers.ChainCtrl
	abi             abi.ABI
}

func newERC20Caller(chainController controllers.ChainCtrl) (*erc20Caller, error) {
	parsed, err := abi.JSON(strings.NewReader(erc20ABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "parse erc20 abi")
	}

	return &erc20Caller{
		chainController: chainController,
		abi:             parsed,
	}, nil
}

func (c *erc20Caller) Decimals(token common.Address) (int32, error) {
	data, err := c.abi.Pack("decimals")
	if err != nil {
		return 0, err
	}

	out, err := c.chainController.CallContract(token, data)
	if err != nil {
		return 0, err
	}

	values, err := c.abi.Unpack("decimals", out)
	if err != nil {
		return 0, err
	}

	return int32(values[0].(uint8)), nil
}

func (c *erc20Caller) BalanceOf(token common.Address, owner common.Address) (*big.Int, error) {
	data, err := c.abi.Pack("balanceOf", owner)
	if err != nil {
		return nil, err
	}

	out, err := c.chainController.CallContract(token, data)
	if err != nil {
		return nil, err
	}

	values, err := c.abi.Unpack("balanceOf", out)
	if err != nil {
		return nil, err
	}

	return values[0].(*big.Int), nil
}

func (c *erc20Caller) PackApprove(spender common.Address, amount *big.Int) ([]byte, error) {
	return c.abi.Pack("approve", spender, amount)
}

func (c *erc20Caller) PackTransfer(to common.Address, amount *big.Int) ([]byte, error) {
	return c.abi.Pack("transfer", to, amount)
}
