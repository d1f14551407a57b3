// Package deploy provides the deployment procedure of the OpenWork
// Marketplace contract to a Neo blockchain network.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"

	"github.com/openwork-network/openwork-contract/rpc/marketplace"
)

// Blockchain groups services of a particular Neo blockchain network required
// for the marketplace contract deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns an error with 'Unknown
	// contract' substring if the requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups the parameters of the marketplace deployment procedure.
type Prm struct {
	// Writes progress into the log. Defaults to nop.
	Logger *zap.Logger

	// Particular Neo blockchain instance to be used as the home network of
	// the marketplace.
	Blockchain Blockchain

	// Account funded enough to send the deployment transaction. It becomes
	// the deployer of the contract.
	LocalAccount *wallet.Account

	// Compiled contract executable and its manifest.
	NEF      nef.File
	Manifest manifest.Manifest

	// Platform administrator set into the contract configuration at deploy.
	Admin util.Uint160

	// Configuration values passed to the contract at deploy. Negative values
	// select the contract defaults.
	PlatformFeePercent int64
	MinEscrowAmount    int64
	DisputePeriodDays  int64
	MaxJobDurationDays int64
}

// Deploy deploys the marketplace contract to the Neo network represented by
// Prm.Blockchain and returns its address. If the contract deployed from the
// same account with the same name already exists on the chain, Deploy treats
// the deployment as done and returns the address of the existing contract.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	l := prm.Logger
	if l == nil {
		l = zap.NewNop()
	}

	if prm.LocalAccount == nil {
		return util.Uint160{}, errors.New("missing local account")
	}
	if prm.Admin.Equals(util.Uint160{}) {
		return util.Uint160{}, errors.New("missing platform admin")
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender: %w", err)
	}

	// Contract address is fully determined by the deployer, the executable
	// checksum and the manifest name, so it is known before the deployment.
	hash := state.CreateContractHash(prm.LocalAccount.ScriptHash(), prm.NEF.Checksum, prm.Manifest.Name)

	alreadyDeployed, err := contractExists(prm.Blockchain, hash)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("check contract presence on the chain: %w", err)
	}

	if alreadyDeployed {
		version, err := marketplace.NewReader(act, hash).Version()
		if err != nil {
			return util.Uint160{}, fmt.Errorf("read version of the on-chain contract: %w", err)
		}

		l.Info("contract is already on the chain, deployment skipped",
			zap.Stringer("address", hash), zap.Stringer("version", version))
		return hash, nil
	}

	if err := ctx.Err(); err != nil {
		return util.Uint160{}, fmt.Errorf("wait for deployment: %w", err)
	}

	l.Info("deploying the contract...", zap.Stringer("address", hash))

	data := []any{prm.Admin, prm.PlatformFeePercent, prm.MinEscrowAmount,
		prm.DisputePeriodDays, prm.MaxJobDurationDays}

	txHash, vub, err := management.New(act).Deploy(&prm.NEF, &prm.Manifest, data)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send deployment transaction: %w", err)
	}

	l.Info("deployment transaction sent, waiting for the receipt...",
		zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	res, err := act.Wait(txHash, vub, nil)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("wait for deployment transaction receipt: %w", err)
	}

	if res.VMState != vmstate.Halt {
		return util.Uint160{}, fmt.Errorf("deployment transaction faulted: %s", res.FaultException)
	}

	l.Info("contract is successfully deployed", zap.Stringer("address", hash))

	return hash, nil
}

func contractExists(b Blockchain, hash util.Uint160) (bool, error) {
	_, err := b.GetContractStateByHash(hash)
	if err != nil {
		if strings.Contains(err.Error(), "Unknown contract") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
