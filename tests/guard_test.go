package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/openwork-network/openwork-contract/contracts/marketplace/marketconst"
	"github.com/stretchr/testify/require"
)

// deployReentrant deploys the hostile token and returns invokers for it.
func deployReentrant(t *testing.T, m *marketplace) *neotest.ContractInvoker {
	c := neotest.CompileFile(t, m.e.CommitteeHash, reentrantPath,
		path.Join(reentrantPath, "config.yml"))
	m.e.DeployContract(t, c, nil)
	return m.e.CommitteeInvoker(c.Hash)
}

func TestTokenEscrowFunding(t *testing.T) {
	m := newMarketplace(t)
	tok := deployReentrant(t, m)
	jobID := m.acceptedJob(t, 5000)

	tok.WithSigners(m.poster).Invoke(t, stackitem.Null{}, "pay",
		m.Hash, m.poster.ScriptHash(), int64(5000), []any{"job", jobID})

	esc := m.structItems(t, "getJobEscrow", jobID)
	require.Equal(t, tok.Hash.BytesBE(), itemBytes(t, esc[escrowFieldToken]))
	require.EqualValues(t, 5000, itemInt(t, esc[escrowFieldAmount]))
	require.EqualValues(t, 250, itemInt(t, esc[escrowFieldFee]))

	// Only the poster can fund the job escrow.
	jobID2 := m.acceptedJob(t, 5000)
	tok.WithSigners(m.freelancer).InvokeFail(t, marketconst.ErrUnauthorized, "pay",
		m.Hash, m.freelancer.ScriptHash(), int64(5000), []any{"job", jobID2})

	// Malformed transfer data is rejected.
	tok.WithSigners(m.poster).InvokeFail(t, marketconst.ErrInvalidInput, "pay",
		m.Hash, m.poster.ScriptHash(), int64(5000), []any{"job"})
}

func TestReentrancyGuard(t *testing.T) {
	m := newMarketplace(t)
	tok := deployReentrant(t, m)
	jobID := m.acceptedJob(t, 5000)
	poster := m.poster.ScriptHash()

	tok.WithSigners(m.poster).Invoke(t, stackitem.Null{}, "pay",
		m.Hash, poster, int64(5000), []any{"job", jobID})
	escID := m.jobEscrowID(t, jobID)

	// While armed, the token re-enters the marketplace from inside the
	// payout transfer. The call must fault and leave the escrow intact.
	tok.Invoke(t, stackitem.Null{}, "arm", []any{"job", jobID})
	m.as(m.poster).InvokeFail(t, marketconst.ErrReentrancy, "releaseEscrow",
		poster, escID)

	esc := m.structItems(t, "getJobEscrow", jobID)
	require.False(t, itemBool(t, esc[escrowFieldReleased]))

	tok.Invoke(t, stackitem.Null{}, "disarm")
	m.as(m.poster).Invoke(t, stackitem.Null{}, "releaseEscrow", poster, escID)

	esc = m.structItems(t, "getJobEscrow", jobID)
	require.True(t, itemBool(t, esc[escrowFieldReleased]))

	job := m.structItems(t, "getJob", jobID)
	require.EqualValues(t, marketconst.JobCompleted, itemInt(t, job[jobFieldStatus]))
}

func TestTokenDepositBlockedWhenPaused(t *testing.T) {
	m := newMarketplace(t)
	tok := deployReentrant(t, m)
	jobID := m.acceptedJob(t, 5000)

	m.as(m.admin).Invoke(t, stackitem.Null{}, "pauseContract", m.admin.ScriptHash())
	tok.WithSigners(m.poster).InvokeFail(t, marketconst.ErrPaused, "pay",
		m.Hash, m.poster.ScriptHash(), int64(5000), []any{"job", jobID})

	// Plain deposits carry no data and are always accepted.
	tok.WithSigners(m.poster).Invoke(t, stackitem.Null{}, "pay",
		m.Hash, m.poster.ScriptHash(), int64(5000), nil)
}
