package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/openwork-network/openwork-contract/contracts/marketplace/marketconst"
	"github.com/stretchr/testify/require"
)

// createBounty posts a two-winner bounty paying 50% and 30% of 10000 and
// returns its identifier.
func (m *marketplace) createBounty(t *testing.T) int64 {
	return m.invokeID(t, m.poster, "createBounty",
		m.poster.ScriptHash(), "Logo contest", "Design our logo", "design",
		[]any{"svg source"}, []any{"design"}, int64(10000), int64(2),
		[]any{int64(0), int64(1)}, []any{int64(50), int64(30)},
		futureDeadline(), int64(7))
}

func (m *marketplace) submitToBounty(t *testing.T, bountyID int64, who neotest.Signer) int64 {
	return m.invokeID(t, who, "submitToBounty",
		who.ScriptHash(), bountyID, "My entry", "Here is my take", []any{"ipfs://entry"})
}

func TestBountyTierValidation(t *testing.T) {
	m := newMarketplace(t)
	poster := m.poster.ScriptHash()
	deadline := futureDeadline()

	// Percentages summing over 100.
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidInput, "createBounty",
		poster, "b", "d", "c", []any{}, []any{}, int64(10000), int64(2),
		[]any{int64(0), int64(1)}, []any{int64(70), int64(40)}, deadline, int64(7))

	// Duplicate position.
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidInput, "createBounty",
		poster, "b", "d", "c", []any{}, []any{}, int64(10000), int64(2),
		[]any{int64(0), int64(0)}, []any{int64(50), int64(30)}, deadline, int64(7))

	// Position outside [0, maxWinners).
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidInput, "createBounty",
		poster, "b", "d", "c", []any{}, []any{}, int64(10000), int64(2),
		[]any{int64(0), int64(2)}, []any{int64(50), int64(30)}, deadline, int64(7))

	// Deadline in the past.
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidInput, "createBounty",
		poster, "b", "d", "c", []any{}, []any{}, int64(10000), int64(2),
		[]any{int64(0)}, []any{int64(50)}, int64(1), int64(7))
}

func TestBountySubmissionRules(t *testing.T) {
	m := newMarketplace(t)
	bountyID := m.createBounty(t)

	// Self-submission.
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidInput, "submitToBounty",
		m.poster.ScriptHash(), bountyID, "mine", "d", []any{})

	subID := m.submitToBounty(t, bountyID, m.freelancer)

	// Duplicate (bounty, submitter) pair.
	m.as(m.freelancer).InvokeFail(t, marketconst.ErrAlreadyExists, "submitToBounty",
		m.freelancer.ScriptHash(), bountyID, "again", "d", []any{})

	// Withdraw frees the pair.
	m.as(m.freelancer).Invoke(t, stackitem.Null{}, "withdrawBountySubmission",
		m.freelancer.ScriptHash(), subID)
	m.submitToBounty(t, bountyID, m.freelancer)
}

func TestWinnerSelectionValidation(t *testing.T) {
	m := newMarketplace(t)
	poster := m.poster.ScriptHash()
	bountyID := m.createBounty(t)

	alice := m.e.NewAccount(t)
	bob := m.e.NewAccount(t)
	subA := m.submitToBounty(t, bountyID, alice)
	subB := m.submitToBounty(t, bountyID, bob)

	// Same submission on two positions.
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidInput, "selectBountyWinners",
		poster, bountyID, []any{subA, subA}, []any{int64(0), int64(1)})

	// Two submissions on one position.
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidInput, "selectBountyWinners",
		poster, bountyID, []any{subA, subB}, []any{int64(0), int64(0)})

	// Position out of range.
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidInput, "selectBountyWinners",
		poster, bountyID, []any{subA}, []any{int64(5)})

	// A withdrawn submission cannot win.
	m.as(bob).Invoke(t, stackitem.Null{}, "withdrawBountySubmission", bob.ScriptHash(), subB)
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidState, "selectBountyWinners",
		poster, bountyID, []any{subB}, []any{int64(0)})

	// Poster only.
	m.as(alice).InvokeFail(t, marketconst.ErrUnauthorized, "selectBountyWinners",
		alice.ScriptHash(), bountyID, []any{subA}, []any{int64(0)})

	m.as(m.poster).Invoke(t, stackitem.Null{}, "selectBountyWinners",
		poster, bountyID, []any{subA}, []any{int64(0)})

	// Winners are selected once.
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidState, "selectBountyWinners",
		poster, bountyID, []any{subA}, []any{int64(1)})
}

func TestBountyRewardDistribution(t *testing.T) {
	m := newMarketplace(t)
	poster := m.poster.ScriptHash()
	bountyID := m.createBounty(t)

	alice := m.e.NewAccount(t)
	bob := m.e.NewAccount(t)
	subA := m.submitToBounty(t, bountyID, alice)
	subB := m.submitToBounty(t, bountyID, bob)

	m.as(m.poster).Invoke(t, stackitem.Null{}, "reviewBountySubmission",
		poster, subA, int64(2), int64(90), "clean work") // Approved
	m.as(m.poster).Invoke(t, stackitem.Null{}, "reviewBountySubmission",
		poster, subB, int64(2), int64(75), "solid")

	m.as(m.poster).Invoke(t, stackitem.Null{}, "selectBountyWinners",
		poster, bountyID, []any{subA, subB}, []any{int64(0), int64(1)})

	// No payout before funding.
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidState, "releaseBountyRewards",
		poster, bountyID)

	m.as(m.poster).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {},
		"createBountyEscrow", poster, bountyID, int64(10000))

	// Bounty escrows carry no platform fee.
	bounty := m.structItems(t, "getBounty", bountyID)
	escrowID := itemBytes(t, bounty[14])
	esc := m.structItems(t, "getEscrow", escrowID)
	require.EqualValues(t, 0, itemInt(t, esc[escrowFieldFee]))

	aBefore := m.balance(alice)
	bBefore := m.balance(bob)
	contractBefore := m.e.Chain.GetUtilityTokenBalance(m.Hash).Int64()

	m.as(m.poster).Invoke(t, stackitem.Null{}, "releaseBountyRewards", poster, bountyID)

	// 50% and 30% of 10000; the 20% remainder returns to the poster, so the
	// contract retains nothing.
	require.EqualValues(t, aBefore+5000, m.balance(alice))
	require.EqualValues(t, bBefore+3000, m.balance(bob))
	require.EqualValues(t, contractBefore-10000, m.e.Chain.GetUtilityTokenBalance(m.Hash).Int64())

	bounty = m.structItems(t, "getBounty", bountyID)
	require.EqualValues(t, 2, itemInt(t, bounty[bountyFieldStatus])) // Completed

	esc = m.structItems(t, "getEscrow", escrowID)
	require.True(t, itemBool(t, esc[escrowFieldReleased]))

	// No second payout.
	m.as(m.poster).InvokeFail(t, "already released", "releaseBountyRewards", poster, bountyID)

	sub := m.structItems(t, "getBountySubmission", subA)
	require.EqualValues(t, 4, itemInt(t, sub[submissionFieldStatus])) // Winner
	require.EqualValues(t, 0, itemInt(t, sub[submissionFieldPosition]))
}

func TestBountyCancelRefundsEscrow(t *testing.T) {
	m := newMarketplace(t)
	poster := m.poster.ScriptHash()
	bountyID := m.createBounty(t)

	m.as(m.poster).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {},
		"createBountyEscrow", poster, bountyID, int64(10000))

	bounty := m.structItems(t, "getBounty", bountyID)
	escrowID := itemBytes(t, bounty[14])

	m.as(m.poster).Invoke(t, stackitem.Null{}, "cancelBounty", poster, bountyID)

	esc := m.structItems(t, "getEscrow", escrowID)
	require.True(t, itemBool(t, esc[escrowFieldRefunded]))
	require.False(t, itemBool(t, esc[escrowFieldReleased]))

	bounty = m.structItems(t, "getBounty", bountyID)
	require.EqualValues(t, 3, itemInt(t, bounty[bountyFieldStatus])) // Cancelled
}

func TestBountyEscrowAmountMismatch(t *testing.T) {
	m := newMarketplace(t)
	bountyID := m.createBounty(t)

	m.as(m.poster).InvokeFail(t, marketconst.ErrInsufficientFunds, "createBountyEscrow",
		m.poster.ScriptHash(), bountyID, int64(9999))
}
