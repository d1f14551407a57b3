// Package reentrant is a NEP-17-looking token used in tests to prove the
// marketplace reentrancy guard. Pay forwards a fake deposit notification to
// the marketplace, so an escrow denominated in this token can be created;
// Transfer, invoked by the marketplace during payout, re-enters the
// marketplace when an attack is armed.
package reentrant

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	marketKey = "market"
	attackKey = "attack"
)

func Symbol() string {
	return "EVIL"
}

func Decimals() int {
	return 8
}

func BalanceOf(acc interop.Hash160) int {
	return 1_000_000_000
}

// Pay calls onNEP17Payment of the marketplace as if from had transferred
// amount of this token to it.
func Pay(market interop.Hash160, from interop.Hash160, amount int, data any) {
	storage.Put(storage.GetContext(), marketKey, market)
	contract.Call(market, "onNEP17Payment", contract.All, from, amount, data)
}

// Arm stores the deposit data Transfer will replay into the marketplace.
func Arm(data any) {
	ctx := storage.GetContext()
	storage.Put(ctx, attackKey, 1)
	setAttackData(ctx, data)
}

// Disarm turns Transfer back into a well-behaved no-op.
func Disarm() {
	storage.Delete(storage.GetContext(), attackKey)
}

func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	if storage.Get(ctx, attackKey) != nil {
		market := storage.Get(ctx, marketKey).(interop.Hash160)
		contract.Call(market, "onNEP17Payment", contract.All, to, amount, attackData(ctx))
	}
	return true
}

func setAttackData(ctx storage.Context, data any) {
	args := data.([]any)
	storage.Put(ctx, "kind", args[0].(string))
	storage.Put(ctx, "id", args[1].(int))
}

func attackData(ctx storage.Context) []any {
	kind := storage.Get(ctx, "kind").(string)
	id := storage.Get(ctx, "id").(int)
	return []any{kind, id}
}
