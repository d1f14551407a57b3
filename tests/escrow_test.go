package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/openwork-network/openwork-contract/contracts/marketplace/marketconst"
	"github.com/stretchr/testify/require"
)

func TestEscrowCreationRules(t *testing.T) {
	m := newMarketplace(t)
	poster := m.poster.ScriptHash()

	jobID := m.postJob(t, 5000)
	// No escrow before a freelancer is assigned.
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidState, "createEscrowNative",
		poster, jobID, int64(5000))

	jobID = m.acceptedJob(t, 5000)
	// Under- and over-payment are both rejected.
	m.as(m.poster).InvokeFail(t, marketconst.ErrInsufficientFunds, "createEscrowNative",
		poster, jobID, int64(4000))
	m.as(m.poster).InvokeFail(t, marketconst.ErrInsufficientFunds, "createEscrowNative",
		poster, jobID, int64(6000))

	// Only the poster funds.
	m.as(m.freelancer).InvokeFail(t, marketconst.ErrUnauthorized, "createEscrowNative",
		m.freelancer.ScriptHash(), jobID, int64(5000))

	m.as(m.poster).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {},
		"createEscrowNative", poster, jobID, int64(5000))

	// One escrow per job.
	m.as(m.poster).InvokeFail(t, marketconst.ErrAlreadyExists, "createEscrowNative",
		poster, jobID, int64(5000))

	// Amounts below the configured minimum are rejected.
	small := m.acceptedJob(t, 500)
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidInput, "createEscrowNative",
		poster, small, int64(500))
}

func TestFundEscrowLegacyAlias(t *testing.T) {
	m := newMarketplace(t)
	poster := m.poster.ScriptHash()

	jobID := m.acceptedJob(t, 5000)
	m.as(m.poster).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {},
		"fundEscrow", poster, jobID, int64(5000))

	esc := m.structItems(t, "getJobEscrow", jobID)
	require.EqualValues(t, 5000, itemInt(t, esc[escrowFieldAmount]))

	// The legacy path obeys the same single-escrow invariant.
	m.as(m.poster).InvokeFail(t, marketconst.ErrAlreadyExists, "fundEscrow",
		poster, jobID, int64(5000))
}

func TestEscrowDoubleRelease(t *testing.T) {
	m := newMarketplace(t)

	jobID, escrowID := m.fundedJob(t, 5000)
	m.as(m.poster).Invoke(t, stackitem.Null{}, "completeJob", m.poster.ScriptHash(), jobID)

	// The second release fails and no double payout occurs.
	before := m.balance(m.freelancer)
	m.as(m.poster).InvokeFail(t, "already released", "releaseEscrow",
		m.poster.ScriptHash(), escrowID)
	require.EqualValues(t, before, m.balance(m.freelancer))
}

func TestEscrowReleaseAuthorization(t *testing.T) {
	m := newMarketplace(t)

	_, escrowID := m.fundedJob(t, 5000)

	// Before the dispute deadline only the payer can release.
	stranger := m.e.NewAccount(t)
	m.as(stranger).InvokeFail(t, marketconst.ErrUnauthorized, "releaseEscrow",
		stranger.ScriptHash(), escrowID)
	m.as(m.freelancer).InvokeFail(t, marketconst.ErrUnauthorized, "releaseEscrow",
		m.freelancer.ScriptHash(), escrowID)

	fBefore := m.balance(m.freelancer)
	m.as(m.poster).Invoke(t, stackitem.Null{}, "releaseEscrow",
		m.poster.ScriptHash(), escrowID)
	require.EqualValues(t, fBefore+4750, m.balance(m.freelancer))

	// Release completes the job.
	esc := m.structItems(t, "getEscrow", escrowID)
	require.True(t, itemBool(t, esc[escrowFieldReleased]))

	// Completion alone does not open the escrow to other parties before the
	// dispute window closes.
	m.as(m.freelancer).InvokeFail(t, marketconst.ErrUnauthorized, "releaseEscrow",
		m.freelancer.ScriptHash(), escrowID)
}

func TestEscrowRefund(t *testing.T) {
	m := newMarketplace(t)

	jobID, escrowID := m.fundedJob(t, 5000)

	// Admin only.
	m.as(m.poster).InvokeFail(t, marketconst.ErrUnauthorized, "refundEscrow",
		m.poster.ScriptHash(), escrowID)

	pBefore := m.balance(m.poster)
	m.as(m.admin).Invoke(t, stackitem.Null{}, "refundEscrow",
		m.admin.ScriptHash(), escrowID)

	// Full amount back, fee not collected.
	require.EqualValues(t, pBefore+5000, m.balance(m.poster))

	esc := m.structItems(t, "getEscrow", escrowID)
	require.False(t, itemBool(t, esc[escrowFieldReleased]))
	require.True(t, itemBool(t, esc[escrowFieldRefunded]))

	job := m.structItems(t, "getJob", jobID)
	require.EqualValues(t, 3, itemInt(t, job[jobFieldStatus])) // Cancelled
}

func TestDisputeLifecycle(t *testing.T) {
	m := newMarketplace(t)
	poster := m.poster.ScriptHash()
	freelancer := m.freelancer.ScriptHash()

	jobID, escrowID := m.fundedJob(t, 5000)

	// Only the parties can raise a dispute.
	stranger := m.e.NewAccount(t)
	m.as(stranger).InvokeFail(t, marketconst.ErrUnauthorized, "raiseDispute",
		stranger.ScriptHash(), jobID, "not my job", []any{})

	m.as(m.freelancer).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {},
		"raiseDispute", freelancer, jobID, "work delivered, payment withheld", []any{})

	// One open dispute per job.
	m.as(m.poster).InvokeFail(t, marketconst.ErrAlreadyExists, "raiseDispute",
		poster, jobID, "counter-claim", []any{})

	// A raised dispute blocks ordinary release and refund.
	m.as(m.poster).InvokeFail(t, "under dispute", "releaseEscrow", poster, escrowID)
	m.as(m.admin).InvokeFail(t, "through ResolveDispute", "refundEscrow",
		m.admin.ScriptHash(), escrowID)

	job := m.structItems(t, "getJob", jobID)
	require.EqualValues(t, 4, itemInt(t, job[jobFieldStatus])) // Disputed

	res, err := m.TestInvoke(t, "getJobDisputes", jobID)
	require.NoError(t, err)
	disputes, ok := res.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, disputes, 1)
	disputeID := itemBytes(t, disputes[0].Value().([]stackitem.Item)[disputeFieldID])

	// Admin only.
	m.as(m.poster).InvokeFail(t, marketconst.ErrUnauthorized, "resolveDispute",
		poster, disputeID, false, "no")

	pBefore := m.balance(m.poster)
	m.as(m.admin).Invoke(t, stackitem.Null{}, "resolveDispute",
		m.admin.ScriptHash(), disputeID, false, "refund the poster in full")
	require.EqualValues(t, pBefore+5000, m.balance(m.poster))

	// Terminal: no reopening, no release of a refunded escrow.
	m.as(m.admin).InvokeFail(t, "already resolved", "resolveDispute",
		m.admin.ScriptHash(), disputeID, true, "changed my mind")
	m.as(m.poster).InvokeFail(t, "already refunded", "releaseEscrow", poster, escrowID)

	dispute := m.structItems(t, "getDispute", disputeID)
	require.EqualValues(t, 1, itemInt(t, dispute[disputeFieldStatus])) // Resolved
}

func TestDisputeResolvedForFreelancer(t *testing.T) {
	m := newMarketplace(t)

	jobID, _ := m.fundedJob(t, 5000)
	m.as(m.poster).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {},
		"raiseDispute", m.poster.ScriptHash(), jobID, "quality concerns", []any{"ipfs://evidence"})

	res, err := m.TestInvoke(t, "getUserDisputes", m.poster.ScriptHash())
	require.NoError(t, err)
	disputes := res.Top().Item().Value().([]stackitem.Item)
	require.Len(t, disputes, 1)
	disputeID := itemBytes(t, disputes[0].Value().([]stackitem.Item)[disputeFieldID])

	fBefore := m.balance(m.freelancer)
	aBefore := m.balance(m.admin)
	m.as(m.admin).Invoke(t, stackitem.Null{}, "resolveDispute",
		m.admin.ScriptHash(), disputeID, true, "work meets the requirements")

	require.EqualValues(t, fBefore+4750, m.balance(m.freelancer))
	require.EqualValues(t, aBefore+250, m.balance(m.admin))

	job := m.structItems(t, "getJob", jobID)
	require.EqualValues(t, 2, itemInt(t, job[jobFieldStatus])) // Completed
}

func TestDisputeRefundAfterMilestonePayout(t *testing.T) {
	m := newMarketplace(t)
	poster := m.poster.ScriptHash()
	freelancer := m.freelancer.ScriptHash()

	jobID := m.invokeID(t, m.poster, "postJob",
		poster, "Two-part job", "First design, then build", "development",
		[]any{"go"}, int64(5000), int64(60),
		[]any{"design", "build"}, []any{int64(3000), int64(2000)}, []any{int64(20), int64(40)})
	propID := m.submitProposal(t, jobID)
	m.as(m.poster).Invoke(t, stackitem.Null{}, "acceptProposal", poster, jobID, propID)
	m.as(m.poster).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {},
		"createEscrowNative", poster, jobID, int64(5000))

	m.as(m.freelancer).Invoke(t, stackitem.Null{}, "completeMilestone", freelancer, jobID, int64(0))
	m.as(m.poster).Invoke(t, stackitem.Null{}, "approveMilestone", poster, jobID, int64(0))

	// The plain admin refund rejects a partially released escrow.
	escrowID := m.jobEscrowID(t, jobID)
	m.as(m.admin).InvokeFail(t, "through ResolveDispute", "refundEscrow",
		m.admin.ScriptHash(), escrowID)

	m.as(m.freelancer).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {},
		"raiseDispute", freelancer, jobID, "second milestone blocked", []any{})

	res, err := m.TestInvoke(t, "getJobDisputes", jobID)
	require.NoError(t, err)
	disputes := res.Top().Item().Value().([]stackitem.Item)
	require.Len(t, disputes, 1)
	disputeID := itemBytes(t, disputes[0].Value().([]stackitem.Item)[disputeFieldID])

	// Refund in the payer's favor returns only the unreleased remainder; the
	// approved milestone stays paid.
	pBefore := m.balance(m.poster)
	m.as(m.admin).Invoke(t, stackitem.Null{}, "resolveDispute",
		m.admin.ScriptHash(), disputeID, false, "remaining work not delivered")
	require.EqualValues(t, pBefore+2000, m.balance(m.poster))

	esc := m.structItems(t, "getEscrow", escrowID)
	require.True(t, itemBool(t, esc[escrowFieldRefunded]))
	require.False(t, itemBool(t, esc[escrowFieldReleased]))

	job := m.structItems(t, "getJob", jobID)
	require.EqualValues(t, 3, itemInt(t, job[jobFieldStatus])) // Cancelled
}

func TestDisputeRequiresFundedEscrow(t *testing.T) {
	m := newMarketplace(t)

	jobID := m.acceptedJob(t, 5000)
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidState, "raiseDispute",
		m.poster.ScriptHash(), jobID, "nothing at stake", []any{})
}

func TestPlatformStats(t *testing.T) {
	m := newMarketplace(t)

	jobID, _ := m.fundedJob(t, 5000)
	m.as(m.poster).Invoke(t, stackitem.Null{}, "completeJob", m.poster.ScriptHash(), jobID)

	stats := m.structItems(t, "getPlatformStats")
	require.EqualValues(t, 1, itemInt(t, stats[0]))    // jobs
	require.EqualValues(t, 1, itemInt(t, stats[1]))    // proposals
	require.EqualValues(t, 0, itemInt(t, stats[2]))    // bounties
	require.EqualValues(t, 5000, itemInt(t, stats[3])) // escrow volume
	require.EqualValues(t, 250, itemInt(t, stats[4]))  // fees
}
