package marketplace

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/openwork-network/openwork-contract/common"
	cst "github.com/openwork-network/openwork-contract/contracts/marketplace/marketconst"
)

type (
	// Escrow custodies funds between creation and release or refund. Exactly
	// one of JobID and BountyID is set, the other is -1. A nil Token means
	// native GAS. Fee is fixed at funding time and never recomputed.
	Escrow struct {
		ID              []byte
		JobID           int
		BountyID        int
		Payer           interop.Hash160
		Payee           interop.Hash160
		Token           interop.Hash160
		Amount          int
		Fee             int
		FeePaid         int
		ReleasedAmount  int
		FundedAt        int
		DisputeDeadline int
		Released        bool
		Refunded        bool
		Disputed        bool
	}

	Dispute struct {
		ID                  []byte
		JobID               int
		RaisedBy            interop.Hash160
		Reason              string
		Evidence            []string
		Status              int
		Resolution          string
		ReleaseToFreelancer bool
		CreatedAt           int
		ResolvedAt          int
	}
)

// CreateEscrowNative creates and funds a job escrow with native GAS moved
// from the payer to the contract inside this call, and returns the escrow
// identifier. Poster only, job must be InProgress with a freelancer
// assigned. The amount must equal the job budget exactly; the platform fee
// is computed here at the fee percent currently in effect.
func CreateEscrowNative(payer interop.Hash160, jobID, amount int) []byte {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, payer)
	bumpRateLimit(ctx, payer, cst.ActionEscrow)

	job := mustGetJob(ctx, jobID)
	esc := buildJobEscrow(cfg, job, payer, amount, nil)

	enterGuard(ctx)
	if !gas.Transfer(payer, runtime.GetExecutingScriptHash(), amount, nil) {
		panic(cst.ErrInsufficientFunds + ": GAS transfer failed")
	}
	exitGuard(ctx)

	storeJobEscrow(ctx, job, esc)
	return esc.ID
}

// CreateEscrow is an alias of CreateEscrowNative.
func CreateEscrow(payer interop.Hash160, jobID, amount int) []byte {
	return CreateEscrowNative(payer, jobID, amount)
}

// FundEscrow is a deprecated alias of CreateEscrowNative kept for backward
// compatibility. It creates and funds the escrow in one step; a second call
// on the same job fails with AlreadyExists.
//
// Deprecated: use CreateEscrowNative.
func FundEscrow(payer interop.Hash160, jobID, amount int) []byte {
	return CreateEscrowNative(payer, jobID, amount)
}

// OnNEP17Payment is the NEP-17 receive hook. A transfer with nil data is a
// plain deposit and is accepted without side effects; this is also the
// internal leg of native escrow funding. A transfer carrying
// ["job", jobID] or ["bounty", bountyID] funds a token-denominated escrow
// for the referenced entity, with the calling token contract recorded as
// the escrow denomination.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	if data == nil {
		return
	}

	ctx := storage.GetContext()
	if storage.Get(ctx, []byte{guardKey}) != nil {
		panic(cst.ErrReentrancy + ": reentrant call")
	}
	cfg := getConfig(ctx)
	requireActive(cfg)
	requireNotBlocked(ctx, from)
	bumpRateLimit(ctx, from, cst.ActionEscrow)

	token := runtime.GetCallingScriptHash()
	args := data.([]any)
	if len(args) != 2 {
		panic(cst.ErrInvalidInput + ": expected [kind, id] transfer data")
	}
	kind := args[0].(string)
	id := args[1].(int)

	switch kind {
	case "job":
		job := mustGetJob(ctx, id)
		if !job.Poster.Equals(from) {
			panic(cst.ErrUnauthorized + ": only the poster can fund the job escrow")
		}
		esc := buildJobEscrow(cfg, job, from, amount, token)
		storeJobEscrow(ctx, job, esc)
	case "bounty":
		bounty := mustGetBounty(ctx, id)
		if !bounty.Poster.Equals(from) {
			panic(cst.ErrUnauthorized + ": only the poster can fund the bounty escrow")
		}
		esc := buildBountyEscrow(cfg, bounty, from, amount, token)
		storeBountyEscrow(ctx, bounty, esc)
	default:
		panic(cst.ErrInvalidInput + ": unknown escrow kind " + kind)
	}
}

// ReleaseEscrow releases the remaining balance of a job escrow: the poster
// may release at any time, and once the job is completed and the dispute
// deadline has passed anyone may trigger the release. A raised dispute
// blocks the release until it is resolved.
func ReleaseEscrow(caller interop.Hash160, escrowID []byte) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, caller)

	esc := mustGetEscrow(ctx, escrowID)
	if esc.JobID < 0 {
		panic(cst.ErrInvalidState + ": bounty escrows are released through ReleaseBountyRewards")
	}
	job := mustGetJob(ctx, esc.JobID)

	if !caller.Equals(esc.Payer) &&
		(job.Status != cst.JobCompleted || runtime.GetTime() < esc.DisputeDeadline) {
		panic(cst.ErrUnauthorized + ": only the payer can release before completion and the dispute deadline")
	}

	esc = settleEscrow(ctx, cfg, esc)
	if job.Status != cst.JobCompleted {
		finishJob(ctx, job, esc)
	}
}

// RefundEscrow returns the full escrow amount to the payer, fee included.
// Admin only; used for cancellation before work begins. An escrow under an
// open dispute or with milestone payouts behind it is unwound through
// ResolveDispute instead.
func RefundEscrow(caller interop.Hash160, escrowID []byte) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireAdmin(cfg, caller)
	bumpRateLimit(ctx, caller, cst.ActionAdmin)

	esc := mustGetEscrow(ctx, escrowID)
	if esc.Disputed {
		panic(cst.ErrInvalidState + ": disputed escrow is settled through ResolveDispute")
	}
	if esc.ReleasedAmount > 0 {
		panic(cst.ErrInvalidState + ": partially released escrow is settled through ResolveDispute")
	}

	esc = refundEscrow(ctx, esc)

	if esc.JobID >= 0 {
		job := mustGetJob(ctx, esc.JobID)
		job.Status = cst.JobCancelled
		job.UpdatedAt = runtime.GetTime()
		putJob(ctx, job)
	} else {
		bounty := mustGetBounty(ctx, esc.BountyID)
		bounty.Status = cst.BountyCancelled
		bounty.UpdatedAt = runtime.GetTime()
		putBounty(ctx, bounty)
	}

	appendAudit(ctx, caller, "refund_escrow", escrowID, "")
}

// RaiseDispute opens a dispute over a funded job escrow and returns the
// dispute identifier. Job poster or assigned freelancer only; at most one
// open dispute per job. Raising blocks ordinary release and refund until
// the admin resolves.
func RaiseDispute(caller interop.Hash160, jobID int, reason string, evidence []string) []byte {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, caller)
	bumpRateLimit(ctx, caller, cst.ActionDispute)

	job := mustGetJob(ctx, jobID)
	if !caller.Equals(job.Poster) && !caller.Equals(job.Freelancer) {
		panic(cst.ErrUnauthorized + ": only the poster or the assigned freelancer can raise a dispute")
	}
	if job.EscrowID == nil {
		panic(cst.ErrInvalidState + ": job has no funded escrow")
	}

	esc := mustGetEscrow(ctx, job.EscrowID)
	if esc.Released || esc.Refunded {
		panic(cst.ErrInvalidState + ": escrow is already settled")
	}
	if esc.Disputed {
		panic(cst.ErrAlreadyExists + ": dispute for this job already exists")
	}

	requireText(reason, cst.MaxReasonLen, "reason")
	if len(evidence) > cst.MaxDocuments {
		panic(cst.ErrInvalidInput + ": at most " + std.Itoa(cst.MaxDocuments, 10) + " evidence references allowed")
	}

	now := runtime.GetTime()
	id := contentID(jobID, caller, now)
	dispute := Dispute{
		ID:        id,
		JobID:     jobID,
		RaisedBy:  caller,
		Reason:    reason,
		Evidence:  evidence,
		Status:    cst.DisputeRaised,
		CreatedAt: now,
	}
	common.SetSerialized(ctx, append([]byte{disputePrefix}, id...), dispute)
	storage.Put(ctx, append(append([]byte{jobDisputePrefix}, idSuffix(jobID)...), id...), id)
	storage.Put(ctx, append(append([]byte{userDisputePrefix}, caller...), id...), id)

	esc.Disputed = true
	putEscrow(ctx, esc)

	job.Status = cst.JobDisputed
	job.UpdatedAt = now
	putJob(ctx, job)

	m := getSecurityMetrics(ctx)
	m.TotalDisputes += 1
	common.SetSerialized(ctx, []byte{metricsKey}, m)

	runtime.Notify("DisputeRaised", id, jobID, caller)
	return id
}

// ResolveDispute settles an open dispute. Admin only and terminal: the
// escrow is either released to the freelancer or refunded in full to the
// payer, and the dispute can never be reopened.
func ResolveDispute(caller interop.Hash160, disputeID []byte, releaseToFreelancer bool, resolution string) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireAdmin(cfg, caller)
	bumpRateLimit(ctx, caller, cst.ActionAdmin)

	dispute := mustGetDispute(ctx, disputeID)
	if dispute.Status != cst.DisputeRaised {
		panic(cst.ErrInvalidState + ": dispute is already resolved")
	}
	requireText(resolution, cst.MaxReasonLen, "resolution")

	job := mustGetJob(ctx, dispute.JobID)
	esc := mustGetEscrow(ctx, job.EscrowID)
	esc.Disputed = false

	now := runtime.GetTime()
	if releaseToFreelancer {
		esc = settleEscrow(ctx, cfg, esc)
		finishJob(ctx, job, esc)
	} else {
		refundEscrow(ctx, esc)
		job.Status = cst.JobCancelled
		job.UpdatedAt = now
		putJob(ctx, job)
	}

	dispute.Status = cst.DisputeResolved
	dispute.Resolution = resolution
	dispute.ReleaseToFreelancer = releaseToFreelancer
	dispute.ResolvedAt = now
	common.SetSerialized(ctx, append([]byte{disputePrefix}, disputeID...), dispute)

	appendAudit(ctx, caller, "resolve_dispute", disputeID, resolution)
	runtime.Notify("DisputeResolved", disputeID, releaseToFreelancer)
}

// GetEscrow returns an escrow by identifier.
func GetEscrow(escrowID []byte) Escrow {
	ctx := storage.GetReadOnlyContext()
	return mustGetEscrow(ctx, escrowID)
}

// GetJobEscrow returns the escrow of a job.
func GetJobEscrow(jobID int) Escrow {
	ctx := storage.GetReadOnlyContext()
	ref := storage.Get(ctx, append([]byte{jobEscrowPrefix}, idSuffix(jobID)...))
	if ref == nil {
		panic(cst.ErrNotFound + ": job has no escrow")
	}
	return mustGetEscrow(ctx, ref.([]byte))
}

// GetDispute returns a dispute by identifier.
func GetDispute(disputeID []byte) Dispute {
	ctx := storage.GetReadOnlyContext()
	return mustGetDispute(ctx, disputeID)
}

// GetJobDisputes returns all disputes raised over a job.
func GetJobDisputes(jobID int) []Dispute {
	ctx := storage.GetReadOnlyContext()
	refs := collectRefs(ctx, append([]byte{jobDisputePrefix}, idSuffix(jobID)...))
	return disputesByRefs(ctx, refs)
}

// GetUserDisputes returns all disputes raised by the given account.
func GetUserDisputes(addr interop.Hash160) []Dispute {
	ctx := storage.GetReadOnlyContext()
	refs := collectRefs(ctx, append([]byte{userDisputePrefix}, addr...))
	return disputesByRefs(ctx, refs)
}

// buildJobEscrow validates the funding of a job escrow and assembles the
// record. The job must be InProgress with a freelancer assigned, the job
// must not be funded yet and the amount must match the budget exactly.
func buildJobEscrow(cfg Config, job Job, payer interop.Hash160, amount int, token interop.Hash160) Escrow {
	if job.Status != cst.JobInProgress {
		panic(cst.ErrInvalidState + ": job is not in progress")
	}
	if !job.Poster.Equals(payer) {
		panic(cst.ErrUnauthorized + ": only the poster can fund the escrow")
	}
	if job.Freelancer == nil {
		panic(cst.ErrInvalidState + ": job has no assigned freelancer")
	}
	if job.EscrowID != nil {
		panic(cst.ErrAlreadyExists + ": escrow for this job already exists")
	}
	if amount != job.Budget {
		panic(cst.ErrInsufficientFunds + ": payment must equal the job budget of " + std.Itoa(job.Budget, 10))
	}
	if amount < cfg.MinEscrowAmount {
		panic(cst.ErrInvalidInput + ": amount is below the minimum of " + std.Itoa(cfg.MinEscrowAmount, 10))
	}

	now := runtime.GetTime()
	return Escrow{
		ID:              contentID(job.ID, payer, now),
		JobID:           job.ID,
		BountyID:        -1,
		Payer:           payer,
		Payee:           job.Freelancer,
		Token:           token,
		Amount:          amount,
		Fee:             amount * cfg.PlatformFeePercent / 100,
		FundedAt:        now,
		DisputeDeadline: now + cfg.DisputePeriodDays*cst.MillisecondsInDay,
	}
}

func storeJobEscrow(ctx storage.Context, job Job, esc Escrow) {
	putEscrow(ctx, esc)
	storage.Put(ctx, append([]byte{jobEscrowPrefix}, idSuffix(job.ID)...), esc.ID)

	job.EscrowID = esc.ID
	job.UpdatedAt = esc.FundedAt
	putJob(ctx, job)

	stats := getPlatformStats(ctx)
	stats.TotalEscrowVolume += esc.Amount
	putPlatformStats(ctx, stats)

	runtime.Notify("EscrowCreated", esc.ID, esc.JobID, esc.Amount, esc.Fee)
}

// settleEscrow pays out the remaining escrow balance: the unreleased amount
// minus the outstanding fee to the payee and the outstanding fee to the
// admin. Total disbursed over the escrow lifetime equals the funded amount
// exactly.
func settleEscrow(ctx storage.Context, cfg Config, esc Escrow) Escrow {
	requireSettleable(esc)

	feeDue := esc.Fee - esc.FeePaid
	payeeDue := esc.Amount - esc.ReleasedAmount - feeDue

	enterGuard(ctx)
	transferOut(esc, esc.Payee, payeeDue)
	transferOut(esc, cfg.Admin, feeDue)
	exitGuard(ctx)

	esc.ReleasedAmount = esc.Amount
	esc.FeePaid = esc.Fee
	esc.Released = true
	putEscrow(ctx, esc)

	stats := getPlatformStats(ctx)
	stats.TotalFeesCollected += feeDue
	putPlatformStats(ctx, stats)

	runtime.Notify("EscrowReleased", esc.ID, payeeDue, feeDue)
	return esc
}

// releaseMilestoneAmount pays one approved milestone: its amount minus the
// proportional fee share to the payee, the fee share to the admin. The sum
// of released amounts can never exceed the escrow amount.
func releaseMilestoneAmount(ctx storage.Context, cfg Config, esc Escrow, amount int) Escrow {
	requireSettleable(esc)
	if esc.ReleasedAmount+amount > esc.Amount {
		panic(cst.ErrInvalidState + ": release exceeds the escrow amount")
	}

	feeShare := esc.Fee * amount / esc.Amount

	enterGuard(ctx)
	transferOut(esc, esc.Payee, amount-feeShare)
	transferOut(esc, cfg.Admin, feeShare)
	exitGuard(ctx)

	esc.ReleasedAmount += amount
	esc.FeePaid += feeShare
	if esc.ReleasedAmount == esc.Amount {
		esc.Released = true
	}
	putEscrow(ctx, esc)

	stats := getPlatformStats(ctx)
	stats.TotalFeesCollected += feeShare
	putPlatformStats(ctx, stats)

	return esc
}

// refundEscrow returns the unreleased balance to the payer. Amounts already
// paid out on approved milestones stay paid; the fee is not collected on the
// refunded part.
func refundEscrow(ctx storage.Context, esc Escrow) Escrow {
	requireSettleable(esc)

	remainder := esc.Amount - esc.ReleasedAmount

	enterGuard(ctx)
	transferOut(esc, esc.Payer, remainder)
	exitGuard(ctx)

	esc.Refunded = true
	putEscrow(ctx, esc)

	runtime.Notify("EscrowRefunded", esc.ID, remainder)
	return esc
}

func requireSettleable(esc Escrow) {
	if esc.Released {
		panic(cst.ErrInvalidState + ": escrow is already released")
	}
	if esc.Refunded {
		panic(cst.ErrInvalidState + ": escrow is already refunded")
	}
	if esc.Disputed {
		panic(cst.ErrInvalidState + ": escrow is under dispute")
	}
}

// transferOut moves funds from the contract to a recipient in the escrow's
// denomination. Callers hold the reentrancy guard around it.
func transferOut(esc Escrow, to interop.Hash160, amount int) {
	if amount <= 0 {
		return
	}
	self := runtime.GetExecutingScriptHash()
	if esc.Token == nil {
		if !gas.Transfer(self, to, amount, nil) {
			panic(cst.ErrInsufficientFunds + ": GAS payout failed")
		}
		return
	}
	if !contract.Call(esc.Token, "transfer", contract.All, self, to, amount, nil).(bool) {
		panic(cst.ErrInsufficientFunds + ": token payout failed")
	}
}

func putEscrow(ctx storage.Context, esc Escrow) {
	common.SetSerialized(ctx, append([]byte{escrowPrefix}, esc.ID...), esc)
}

func mustGetEscrow(ctx storage.Context, escrowID []byte) Escrow {
	data := storage.Get(ctx, append([]byte{escrowPrefix}, escrowID...))
	if data == nil {
		panic(cst.ErrNotFound + ": escrow does not exist")
	}
	return std.Deserialize(data.([]byte)).(Escrow)
}

func mustGetDispute(ctx storage.Context, disputeID []byte) Dispute {
	data := storage.Get(ctx, append([]byte{disputePrefix}, disputeID...))
	if data == nil {
		panic(cst.ErrNotFound + ": dispute does not exist")
	}
	return std.Deserialize(data.([]byte)).(Dispute)
}

func disputesByRefs(ctx storage.Context, refs [][]byte) []Dispute {
	res := []Dispute{}
	for i := 0; i < len(refs); i++ {
		data := storage.Get(ctx, append([]byte{disputePrefix}, refs[i]...))
		if data != nil {
			res = append(res, std.Deserialize(data.([]byte)).(Dispute))
		}
	}
	return res
}

// contentID derives an opaque identifier from the referenced entity, the
// acting account and the creation time.
func contentID(id int, addr interop.Hash160, now int) []byte {
	data := append(idSuffix(id), addr...)
	data = append(data, idSuffix(now)...)
	return crypto.Sha256(data)
}
