package tests

import (
	"path"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	marketplacePath = "../contracts/marketplace"
	reentrantPath   = "../internal/testcontracts/reentrant"
)

// marketplace bundles the deployed contract with the accounts every test
// needs: the admin configured at deploy, a job poster and a freelancer.
type marketplace struct {
	*neotest.ContractInvoker

	e          *neotest.Executor
	admin      neotest.Signer
	poster     neotest.Signer
	freelancer neotest.Signer
}

func newMarketplace(t *testing.T) *marketplace {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	c := neotest.CompileFile(t, e.CommitteeHash, marketplacePath,
		path.Join(marketplacePath, "config.yml"))

	admin := e.NewAccount(t)
	e.DeployContract(t, c, []any{admin.ScriptHash(), int64(-1), int64(-1), int64(-1), int64(-1)})

	return &marketplace{
		ContractInvoker: e.CommitteeInvoker(c.Hash),
		e:               e,
		admin:           admin,
		poster:          e.NewAccount(t),
		freelancer:      e.NewAccount(t),
	}
}

func (m *marketplace) as(s neotest.Signer) *neotest.ContractInvoker {
	return m.WithSigners(s)
}

func (m *marketplace) balance(s neotest.Signer) int64 {
	return m.e.Chain.GetUtilityTokenBalance(s.ScriptHash()).Int64()
}

// invokeID invokes a signed mutator that returns a fresh entity identifier
// and extracts it from the result stack.
func (m *marketplace) invokeID(t *testing.T, s neotest.Signer, method string, args ...any) int64 {
	var id int64
	m.as(s).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {
		require.Len(t, stack, 1)
		v, err := stack[0].TryInteger()
		require.NoError(t, err)
		id = v.Int64()
	}, method, args...)
	return id
}

// postJob posts a plain job without milestones and returns its identifier.
func (m *marketplace) postJob(t *testing.T, budget int64) int64 {
	return m.invokeID(t, m.poster, "postJob",
		m.poster.ScriptHash(), "Build a thing", "A thing needs building", "development",
		[]any{"go"}, budget, int64(30), []any{}, []any{}, []any{})
}

func (m *marketplace) submitProposal(t *testing.T, jobID int64) int64 {
	return m.invokeID(t, m.freelancer, "submitProposal",
		m.freelancer.ScriptHash(), jobID, "I can build it", int64(14),
		[]any{}, []any{}, []any{})
}

// acceptedJob drives a fresh job to InProgress with the freelancer assigned
// and returns the job identifier.
func (m *marketplace) acceptedJob(t *testing.T, budget int64) int64 {
	jobID := m.postJob(t, budget)
	propID := m.submitProposal(t, jobID)
	m.as(m.poster).Invoke(t, stackitem.Null{}, "acceptProposal",
		m.poster.ScriptHash(), jobID, propID)
	return jobID
}

// fundedJob drives a fresh job all the way to a funded native escrow and
// returns the job identifier and the escrow identifier.
func (m *marketplace) fundedJob(t *testing.T, budget int64) (int64, []byte) {
	jobID := m.acceptedJob(t, budget)
	m.as(m.poster).InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {},
		"createEscrowNative", m.poster.ScriptHash(), jobID, budget)
	return jobID, m.jobEscrowID(t, jobID)
}

func (m *marketplace) jobEscrowID(t *testing.T, jobID int64) []byte {
	esc := m.structItems(t, "getJobEscrow", jobID)
	return itemBytes(t, esc[escrowFieldID])
}

// structItems test-invokes a query returning a struct and unwraps its
// fields.
func (m *marketplace) structItems(t *testing.T, method string, args ...any) []stackitem.Item {
	res, err := m.TestInvoke(t, method, args...)
	require.NoError(t, err)
	items, ok := res.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	return items
}

// Field indices of the structs returned by contract queries, in declaration
// order.
const (
	jobFieldStatus     = 8
	jobFieldFreelancer = 9
	jobFieldEscrowID   = 11
	jobFieldProposals  = 12

	escrowFieldID       = 0
	escrowFieldToken    = 5
	escrowFieldAmount   = 6
	escrowFieldFee      = 7
	escrowFieldReleased = 12
	escrowFieldRefunded = 13
	escrowFieldDisputed = 14

	bountyFieldStatus = 12

	submissionFieldStatus   = 6
	submissionFieldPosition = 9

	disputeFieldID     = 0
	disputeFieldStatus = 5

	statsFieldJobsCompleted = 1
	statsFieldEarned        = 3
	statsFieldSpent         = 4
	statsFieldRatingSum     = 5
	statsFieldRatings       = 6
)

func itemInt(t *testing.T, item stackitem.Item) int64 {
	v, err := item.TryInteger()
	require.NoError(t, err)
	return v.Int64()
}

func itemBool(t *testing.T, item stackitem.Item) bool {
	v, err := item.TryBool()
	require.NoError(t, err)
	return v
}

func itemBytes(t *testing.T, item stackitem.Item) []byte {
	v, err := item.TryBytes()
	require.NoError(t, err)
	return v
}

func itemUint160(t *testing.T, item stackitem.Item) util.Uint160 {
	u, err := util.Uint160DecodeBytesBE(itemBytes(t, item))
	require.NoError(t, err)
	return u
}

func futureDeadline() int64 {
	return time.Now().Add(30 * 24 * time.Hour).UnixMilli()
}
