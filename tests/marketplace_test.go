package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/openwork-network/openwork-contract/contracts/marketplace/marketconst"
	"github.com/stretchr/testify/require"
)

func TestDeployDefaults(t *testing.T) {
	m := newMarketplace(t)

	cfg := m.structItems(t, "getConfig")
	require.Equal(t, m.admin.ScriptHash(), itemUint160(t, cfg[0]))
	require.EqualValues(t, 5, itemInt(t, cfg[1]))
	require.EqualValues(t, 1000, itemInt(t, cfg[2]))
	require.EqualValues(t, 7, itemInt(t, cfg[3]))
	require.EqualValues(t, 365, itemInt(t, cfg[4]))
	require.False(t, itemBool(t, cfg[5]))
}

func TestPostJobValidation(t *testing.T) {
	m := newMarketplace(t)
	c := m.as(m.poster)
	poster := m.poster.ScriptHash()

	c.InvokeFail(t, marketconst.ErrInvalidInput, "postJob",
		poster, "", "description", "development", []any{}, int64(0), int64(30),
		[]any{}, []any{}, []any{})
	c.InvokeFail(t, marketconst.ErrInvalidInput, "postJob",
		poster, "title", "description", "development", []any{}, int64(0), int64(0),
		[]any{}, []any{}, []any{})
	c.InvokeFail(t, marketconst.ErrInvalidInput, "postJob",
		poster, "title", "description", "development", []any{}, int64(0), int64(1000),
		[]any{}, []any{}, []any{})
	// Milestones must sum to the budget.
	c.InvokeFail(t, marketconst.ErrInvalidInput, "postJob",
		poster, "title", "description", "development", []any{}, int64(5000), int64(30),
		[]any{"half"}, []any{int64(2000)}, []any{int64(10)})
}

func TestJobLifecycle(t *testing.T) {
	m := newMarketplace(t)

	jobID := m.postJob(t, 5000)
	require.EqualValues(t, 0, jobID)

	propID := m.submitProposal(t, jobID)
	require.EqualValues(t, 0, propID)

	m.as(m.poster).Invoke(t, stackitem.Null{}, "acceptProposal",
		m.poster.ScriptHash(), jobID, propID)

	job := m.structItems(t, "getJob", jobID)
	require.EqualValues(t, 1, itemInt(t, job[jobFieldStatus])) // InProgress
	require.Equal(t, m.freelancer.ScriptHash(), itemUint160(t, job[jobFieldFreelancer]))

	m.as(m.poster).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {},
		"createEscrowNative", m.poster.ScriptHash(), jobID, int64(5000))

	esc := m.structItems(t, "getJobEscrow", jobID)
	require.EqualValues(t, 5000, itemInt(t, esc[escrowFieldAmount]))
	require.EqualValues(t, 250, itemInt(t, esc[escrowFieldFee]))
	require.False(t, itemBool(t, esc[escrowFieldReleased]))

	freelancerBefore := m.balance(m.freelancer)
	adminBefore := m.balance(m.admin)

	m.as(m.poster).Invoke(t, stackitem.Null{}, "completeJob", m.poster.ScriptHash(), jobID)

	require.EqualValues(t, freelancerBefore+4750, m.balance(m.freelancer))
	require.EqualValues(t, adminBefore+250, m.balance(m.admin))

	job = m.structItems(t, "getJob", jobID)
	require.EqualValues(t, 2, itemInt(t, job[jobFieldStatus])) // Completed

	esc = m.structItems(t, "getJobEscrow", jobID)
	require.True(t, itemBool(t, esc[escrowFieldReleased]))
	require.False(t, itemBool(t, esc[escrowFieldRefunded]))
}

func TestProposalRules(t *testing.T) {
	m := newMarketplace(t)
	jobID := m.postJob(t, 5000)

	// Self-proposal.
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidInput, "submitProposal",
		m.poster.ScriptHash(), jobID, "me again", int64(14), []any{}, []any{}, []any{})

	propID := m.submitProposal(t, jobID)

	// Duplicate (job, freelancer) pair.
	m.as(m.freelancer).InvokeFail(t, marketconst.ErrAlreadyExists, "submitProposal",
		m.freelancer.ScriptHash(), jobID, "again", int64(14), []any{}, []any{}, []any{})

	// Withdraw frees the pair.
	m.as(m.freelancer).Invoke(t, stackitem.Null{}, "withdrawProposal",
		m.freelancer.ScriptHash(), propID)
	m.submitProposal(t, jobID)

	// Only the submitting freelancer can edit.
	m.as(m.poster).InvokeFail(t, marketconst.ErrUnauthorized, "editProposal",
		m.poster.ScriptHash(), propID, "better", int64(7))

	// A withdrawn proposal cannot be accepted.
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidState, "acceptProposal",
		m.poster.ScriptHash(), jobID, propID)
}

func TestEditAndDeleteJob(t *testing.T) {
	m := newMarketplace(t)
	jobID := m.postJob(t, 5000)

	m.as(m.freelancer).InvokeFail(t, marketconst.ErrUnauthorized, "editJob",
		m.freelancer.ScriptHash(), jobID, "stolen", "", "", []any{}, int64(-1), int64(-1))

	m.as(m.poster).Invoke(t, stackitem.Null{}, "editJob",
		m.poster.ScriptHash(), jobID, "Build a better thing", "", "", []any{}, int64(-1), int64(-1))

	// A job with proposals cannot be deleted.
	m.submitProposal(t, jobID)
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidState, "deleteJob",
		m.poster.ScriptHash(), jobID)

	fresh := m.postJob(t, 2000)
	m.as(m.poster).Invoke(t, stackitem.Null{}, "deleteJob", m.poster.ScriptHash(), fresh)
	m.InvokeFail(t, marketconst.ErrNotFound, "getJob", fresh)

	// An accepted job cannot be edited.
	accepted := m.acceptedJob(t, 3000)
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidState, "editJob",
		m.poster.ScriptHash(), accepted, "late edit", "", "", []any{}, int64(-1), int64(-1))
}

func TestCancelJob(t *testing.T) {
	m := newMarketplace(t)

	jobID := m.postJob(t, 5000)
	m.as(m.poster).Invoke(t, stackitem.Null{}, "cancelJob", m.poster.ScriptHash(), jobID)
	job := m.structItems(t, "getJob", jobID)
	require.EqualValues(t, 3, itemInt(t, job[jobFieldStatus])) // Cancelled

	// A funded job cannot be cancelled directly.
	funded, _ := m.fundedJob(t, 5000)
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidState, "cancelJob",
		m.poster.ScriptHash(), funded)
}

func TestMilestoneFlow(t *testing.T) {
	m := newMarketplace(t)
	poster := m.poster.ScriptHash()
	freelancer := m.freelancer.ScriptHash()

	m.as(m.poster).Invoke(t, stackitem.Make(0), "postJob",
		poster, "Two-part job", "First design, then build", "development",
		[]any{"go"}, int64(5000), int64(60),
		[]any{"design", "build"}, []any{int64(3000), int64(2000)}, []any{int64(20), int64(40)})

	propID := m.submitProposal(t, 0)
	m.as(m.poster).Invoke(t, stackitem.Null{}, "acceptProposal", poster, int64(0), propID)
	m.as(m.poster).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {},
		"createEscrowNative", poster, int64(0), int64(5000))

	// Approval before completion is rejected.
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidState, "approveMilestone",
		poster, int64(0), int64(0))

	m.as(m.freelancer).Invoke(t, stackitem.Null{}, "completeMilestone", freelancer, int64(0), int64(0))

	fBefore := m.balance(m.freelancer)
	aBefore := m.balance(m.admin)
	m.as(m.poster).Invoke(t, stackitem.Null{}, "approveMilestone", poster, int64(0), int64(0))

	// 3000 minus its share of the 250 fee: 250*3000/5000 = 150.
	require.EqualValues(t, fBefore+2850, m.balance(m.freelancer))
	require.EqualValues(t, aBefore+150, m.balance(m.admin))

	// Double approval is rejected.
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidState, "approveMilestone",
		poster, int64(0), int64(0))

	m.as(m.freelancer).Invoke(t, stackitem.Null{}, "completeMilestone", freelancer, int64(0), int64(1))

	fBefore = m.balance(m.freelancer)
	aBefore = m.balance(m.admin)
	m.as(m.poster).Invoke(t, stackitem.Null{}, "approveMilestone", poster, int64(0), int64(1))

	require.EqualValues(t, fBefore+1900, m.balance(m.freelancer))
	require.EqualValues(t, aBefore+100, m.balance(m.admin))

	// The last approval completes the job and releases the escrow in full.
	job := m.structItems(t, "getJob", int64(0))
	require.EqualValues(t, 2, itemInt(t, job[jobFieldStatus]))
	esc := m.structItems(t, "getJobEscrow", int64(0))
	require.True(t, itemBool(t, esc[escrowFieldReleased]))
}

func TestPause(t *testing.T) {
	m := newMarketplace(t)

	m.as(m.poster).InvokeFail(t, marketconst.ErrUnauthorized, "pauseContract",
		m.poster.ScriptHash())

	m.as(m.admin).Invoke(t, stackitem.Null{}, "pauseContract", m.admin.ScriptHash())

	m.as(m.poster).InvokeFail(t, marketconst.ErrPaused, "postJob",
		m.poster.ScriptHash(), "title", "description", "development",
		[]any{}, int64(0), int64(30), []any{}, []any{}, []any{})

	// Admin configuration stays available while paused.
	m.as(m.admin).Invoke(t, stackitem.Null{}, "updateConfig",
		m.admin.ScriptHash(), []byte{}, int64(7), int64(-1), int64(-1), int64(-1))

	m.as(m.admin).Invoke(t, stackitem.Null{}, "unpauseContract", m.admin.ScriptHash())
	m.postJob(t, 0)
}

func TestBlockList(t *testing.T) {
	m := newMarketplace(t)
	poster := m.poster.ScriptHash()

	m.Invoke(t, stackitem.Make(false), "isAddressBlocked", poster)

	m.as(m.admin).Invoke(t, stackitem.Null{}, "blockAddress",
		m.admin.ScriptHash(), poster, "spamming")
	m.Invoke(t, stackitem.Make(true), "isAddressBlocked", poster)

	m.as(m.poster).InvokeFail(t, marketconst.ErrBlocked, "postJob",
		poster, "title", "description", "development",
		[]any{}, int64(0), int64(30), []any{}, []any{}, []any{})

	m.as(m.admin).InvokeFail(t, marketconst.ErrAlreadyExists, "blockAddress",
		m.admin.ScriptHash(), poster, "again")

	m.as(m.admin).Invoke(t, stackitem.Null{}, "unblockAddress", m.admin.ScriptHash(), poster)
	m.Invoke(t, stackitem.Make(false), "isAddressBlocked", poster)
	m.postJob(t, 0)

	m.as(m.poster).InvokeFail(t, marketconst.ErrUnauthorized, "blockAddress",
		poster, m.freelancer.ScriptHash(), "not an admin")
}

func TestRateLimit(t *testing.T) {
	m := newMarketplace(t)
	poster := m.poster.ScriptHash()

	for i := 0; i < 5; i++ {
		m.as(m.poster).Invoke(t, stackitem.Make(i), "postJob",
			poster, "title", "description", "development",
			[]any{}, int64(0), int64(30), []any{}, []any{}, []any{})
	}

	m.as(m.poster).InvokeFail(t, marketconst.ErrRateLimit, "postJob",
		poster, "title", "description", "development",
		[]any{}, int64(0), int64(30), []any{}, []any{}, []any{})

	status := m.structItems(t, "getRateLimitStatus", poster, int64(marketconst.ActionJob))
	require.EqualValues(t, 5, itemInt(t, status[0]))
	require.EqualValues(t, 5, itemInt(t, status[1]))

	m.as(m.admin).Invoke(t, stackitem.Null{}, "resetRateLimit",
		m.admin.ScriptHash(), poster, int64(marketconst.ActionJob))

	m.as(m.poster).Invoke(t, stackitem.Make(5), "postJob",
		poster, "title", "description", "development",
		[]any{}, int64(0), int64(30), []any{}, []any{}, []any{})
}

func TestUpdateConfig(t *testing.T) {
	m := newMarketplace(t)

	m.as(m.poster).InvokeFail(t, marketconst.ErrUnauthorized, "updateConfig",
		m.poster.ScriptHash(), []byte{}, int64(7), int64(-1), int64(-1), int64(-1))

	m.as(m.admin).InvokeFail(t, marketconst.ErrFeeTooHigh, "updateConfig",
		m.admin.ScriptHash(), []byte{}, int64(11), int64(-1), int64(-1), int64(-1))

	m.as(m.admin).Invoke(t, stackitem.Null{}, "updateConfig",
		m.admin.ScriptHash(), []byte{}, int64(7), int64(500), int64(-1), int64(-1))

	cfg := m.structItems(t, "getConfig")
	require.EqualValues(t, 7, itemInt(t, cfg[1]))
	require.EqualValues(t, 500, itemInt(t, cfg[2]))
	require.EqualValues(t, 7, itemInt(t, cfg[3])) // untouched
}

func TestAuditLog(t *testing.T) {
	m := newMarketplace(t)

	m.as(m.admin).Invoke(t, stackitem.Null{}, "blockAddress",
		m.admin.ScriptHash(), m.poster.ScriptHash(), "spamming")
	m.as(m.admin).Invoke(t, stackitem.Null{}, "unblockAddress",
		m.admin.ScriptHash(), m.poster.ScriptHash())
	m.as(m.admin).Invoke(t, stackitem.Null{}, "updateConfig",
		m.admin.ScriptHash(), []byte{}, int64(6), int64(-1), int64(-1), int64(-1))

	res, err := m.TestInvoke(t, "getAuditLogs", int64(-1), int64(10))
	require.NoError(t, err)
	entries, ok := res.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, entries, 3)

	// Pagination: startAfter the first entry.
	res, err = m.TestInvoke(t, "getAuditLogs", int64(0), int64(10))
	require.NoError(t, err)
	entries, ok = res.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, entries, 2)
}

func TestRatings(t *testing.T) {
	m := newMarketplace(t)
	poster := m.poster.ScriptHash()
	freelancer := m.freelancer.ScriptHash()

	jobID, _ := m.fundedJob(t, 5000)

	// Only a completed job can be rated.
	m.as(m.poster).InvokeFail(t, marketconst.ErrInvalidState, "submitRating",
		poster, jobID, int64(5), "great work")

	m.as(m.poster).Invoke(t, stackitem.Null{}, "completeJob", poster, jobID)

	m.as(m.poster).Invoke(t, stackitem.Null{}, "submitRating",
		poster, jobID, int64(5), "great work")
	m.as(m.poster).InvokeFail(t, marketconst.ErrAlreadyExists, "submitRating",
		poster, jobID, int64(4), "on second thought")

	stranger := m.e.NewAccount(t)
	m.as(stranger).InvokeFail(t, marketconst.ErrUnauthorized, "submitRating",
		stranger.ScriptHash(), jobID, int64(1), "drive-by")

	m.as(m.freelancer).Invoke(t, stackitem.Null{}, "submitRating",
		freelancer, jobID, int64(4), "paid on time")

	stats := m.structItems(t, "getUserStats", freelancer)
	require.EqualValues(t, 1, itemInt(t, stats[statsFieldJobsCompleted]))
	require.EqualValues(t, 4750, itemInt(t, stats[statsFieldEarned]))
	require.EqualValues(t, 5, itemInt(t, stats[statsFieldRatingSum]))
	require.EqualValues(t, 1, itemInt(t, stats[statsFieldRatings]))

	stats = m.structItems(t, "getUserStats", poster)
	require.EqualValues(t, 5000, itemInt(t, stats[statsFieldSpent]))
}

func TestUserProfile(t *testing.T) {
	m := newMarketplace(t)
	poster := m.poster.ScriptHash()

	m.InvokeFail(t, marketconst.ErrNotFound, "getUserProfile", poster)

	m.as(m.poster).Invoke(t, stackitem.Null{}, "updateUserProfile",
		poster, "Ada", "I build things", []any{"go", "rust"}, []any{"https://example.com"})

	profile := m.structItems(t, "getUserProfile", poster)
	require.Equal(t, []byte("Ada"), itemBytes(t, profile[0]))
}

func TestJobQueries(t *testing.T) {
	m := newMarketplace(t)

	m.postJob(t, 0)
	m.postJob(t, 0)
	jobID := m.postJob(t, 0)
	m.submitProposal(t, jobID)

	res, err := m.TestInvoke(t, "getAllJobs", int64(-1), int64(2))
	require.NoError(t, err)
	jobs, ok := res.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, jobs, 2)

	res, err = m.TestInvoke(t, "getAllJobs", int64(1), int64(10))
	require.NoError(t, err)
	jobs, ok = res.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, jobs, 1)

	res, err = m.TestInvoke(t, "getUserJobs", m.poster.ScriptHash())
	require.NoError(t, err)
	jobs, ok = res.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, jobs, 3)

	res, err = m.TestInvoke(t, "getJobProposals", jobID)
	require.NoError(t, err)
	props, ok := res.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Len(t, props, 1)
}
