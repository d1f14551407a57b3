package marketplace

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/openwork-network/openwork-contract/common"
	cst "github.com/openwork-network/openwork-contract/contracts/marketplace/marketconst"
)

type (
	// Milestone is a partial-payment checkpoint within a job. Amounts of all
	// milestones of a job sum to the job budget.
	Milestone struct {
		ID           int
		Title        string
		Amount       int
		DeadlineDays int
		Completed    bool
		Approved     bool
	}

	Job struct {
		ID           int
		Poster       interop.Hash160
		Title        string
		Description  string
		Category     string
		Skills       []string
		Budget       int
		DurationDays int
		Status       int
		Freelancer   interop.Hash160
		Milestones   []Milestone
		EscrowID     []byte
		Proposals    int
		CreatedAt    int
		UpdatedAt    int
	}

	Proposal struct {
		ID           int
		JobID        int
		Freelancer   interop.Hash160
		CoverLetter  string
		DeliveryDays int
		Milestones   []Milestone
		Status       int
		SubmittedAt  int
	}
)

// PostJob creates a new job in Open status and returns its identifier.
// Milestones are passed as three parallel arrays and must sum to the budget
// when present. Budget zero means an unpaid engagement.
func PostJob(poster interop.Hash160, title, description, category string, skills []string, budget, durationDays int, milestoneTitles []string, milestoneAmounts []int, milestoneDeadlines []int) int {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, poster)
	bumpRateLimit(ctx, poster, cst.ActionJob)

	requireText(title, cst.MaxTitleLen, "title")
	requireText(description, cst.MaxDescriptionLen, "description")
	requireText(category, cst.MaxTitleLen, "category")
	requireSkills(skills)
	if budget < 0 {
		panic(cst.ErrInvalidInput + ": budget must not be negative")
	}
	if durationDays < 1 || durationDays > cfg.MaxJobDurationDays {
		panic(cst.ErrInvalidInput + ": duration must be between 1 and " + std.Itoa(cfg.MaxJobDurationDays, 10) + " days")
	}

	milestones := buildMilestones(milestoneTitles, milestoneAmounts, milestoneDeadlines, budget)

	now := runtime.GetTime()
	id := nextID(ctx, kindJob)
	job := Job{
		ID:           id,
		Poster:       poster,
		Title:        title,
		Description:  description,
		Category:     category,
		Skills:       skills,
		Budget:       budget,
		DurationDays: durationDays,
		Status:       cst.JobOpen,
		Freelancer:   nil,
		Milestones:   milestones,
		EscrowID:     nil,
		Proposals:    0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	putJob(ctx, job)
	storage.Put(ctx, ownerIDKey(jobOwnerPrefix, poster, id), idSuffix(id))

	stats := getPlatformStats(ctx)
	stats.TotalJobs += 1
	putPlatformStats(ctx, stats)

	us := getUserStats(ctx, poster)
	us.JobsPosted += 1
	putUserStats(ctx, poster, us)

	runtime.Notify("JobPosted", id, poster)
	return id
}

// EditJob partially updates an Open job. Pass an empty string, nil slice or
// a negative integer to keep the previous value. Poster only. Budget can be
// changed only before an escrow exists.
func EditJob(poster interop.Hash160, jobID int, title, description, category string, skills []string, budget, durationDays int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, poster)

	job := mustGetJob(ctx, jobID)
	if !job.Poster.Equals(poster) {
		panic(cst.ErrUnauthorized + ": only the poster can edit the job")
	}
	if job.Status != cst.JobOpen {
		panic(cst.ErrInvalidState + ": only an open job can be edited")
	}

	if len(title) > 0 {
		requireText(title, cst.MaxTitleLen, "title")
		job.Title = title
	}
	if len(description) > 0 {
		requireText(description, cst.MaxDescriptionLen, "description")
		job.Description = description
	}
	if len(category) > 0 {
		requireText(category, cst.MaxTitleLen, "category")
		job.Category = category
	}
	if len(skills) > 0 {
		requireSkills(skills)
		job.Skills = skills
	}
	if budget >= 0 && budget != job.Budget {
		if job.EscrowID != nil {
			panic(cst.ErrInvalidState + ": budget is fixed after escrow creation")
		}
		if len(job.Milestones) > 0 && sumMilestones(job.Milestones) != budget {
			panic(cst.ErrInvalidInput + ": milestone amounts must sum to the budget")
		}
		job.Budget = budget
	}
	if durationDays > 0 {
		if durationDays > cfg.MaxJobDurationDays {
			panic(cst.ErrInvalidInput + ": duration must not exceed " + std.Itoa(cfg.MaxJobDurationDays, 10) + " days")
		}
		job.DurationDays = durationDays
	}

	job.UpdatedAt = runtime.GetTime()
	putJob(ctx, job)
	runtime.Notify("JobEdited", jobID)
}

// DeleteJob physically removes a job record. Poster only, and only while the
// job has no proposals and no escrow.
func DeleteJob(poster interop.Hash160, jobID int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, poster)

	job := mustGetJob(ctx, jobID)
	if !job.Poster.Equals(poster) {
		panic(cst.ErrUnauthorized + ": only the poster can delete the job")
	}
	if job.Proposals > 0 {
		panic(cst.ErrInvalidState + ": job with proposals cannot be deleted")
	}
	if job.EscrowID != nil {
		panic(cst.ErrInvalidState + ": job with escrow cannot be deleted")
	}

	storage.Delete(ctx, idKey(jobPrefix, jobID))
	storage.Delete(ctx, ownerIDKey(jobOwnerPrefix, poster, jobID))
	runtime.Notify("JobDeleted", jobID)
}

// CancelJob moves a job to the terminal Cancelled status. Poster only.
// Permitted while Open, or while InProgress before an escrow is funded; a
// funded job is unwound through the dispute or refund path instead.
func CancelJob(poster interop.Hash160, jobID int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, poster)

	job := mustGetJob(ctx, jobID)
	if !job.Poster.Equals(poster) {
		panic(cst.ErrUnauthorized + ": only the poster can cancel the job")
	}
	if job.Status != cst.JobOpen && job.Status != cst.JobInProgress {
		panic(cst.ErrInvalidState + ": job is already terminal")
	}
	if job.EscrowID != nil {
		panic(cst.ErrInvalidState + ": funded job cannot be cancelled, raise a dispute or request a refund")
	}

	job.Status = cst.JobCancelled
	job.UpdatedAt = runtime.GetTime()
	putJob(ctx, job)
	runtime.Notify("JobCancelled", jobID)
}

// SubmitProposal submits a freelancer's proposal on an Open job and returns
// the proposal identifier. Proposing on one's own job and duplicate
// proposals on the same job are rejected.
func SubmitProposal(freelancer interop.Hash160, jobID int, coverLetter string, deliveryDays int, milestoneTitles []string, milestoneAmounts []int, milestoneDeadlines []int) int {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, freelancer)
	bumpRateLimit(ctx, freelancer, cst.ActionProposal)

	job := mustGetJob(ctx, jobID)
	if job.Status != cst.JobOpen {
		panic(cst.ErrInvalidState + ": job is not open for proposals")
	}
	if job.Poster.Equals(freelancer) {
		panic(cst.ErrInvalidInput + ": cannot propose on own job")
	}

	pairKey := pairIDKey(proposalPairPrefix, jobID, freelancer)
	if storage.Get(ctx, pairKey) != nil {
		panic(cst.ErrAlreadyExists + ": proposal for this job already exists")
	}

	requireText(coverLetter, cst.MaxCoverLetterLen, "cover letter")
	if deliveryDays < 1 || deliveryDays > cfg.MaxJobDurationDays {
		panic(cst.ErrInvalidInput + ": delivery time must be between 1 and " + std.Itoa(cfg.MaxJobDurationDays, 10) + " days")
	}
	milestones := buildMilestones(milestoneTitles, milestoneAmounts, milestoneDeadlines, job.Budget)

	id := nextID(ctx, kindProposal)
	prop := Proposal{
		ID:           id,
		JobID:        jobID,
		Freelancer:   freelancer,
		CoverLetter:  coverLetter,
		DeliveryDays: deliveryDays,
		Milestones:   milestones,
		Status:       cst.ProposalActive,
		SubmittedAt:  runtime.GetTime(),
	}
	putProposal(ctx, prop)
	storage.Put(ctx, pairIDSuffixKey(jobProposalPrefix, jobID, id), idSuffix(id))
	storage.Put(ctx, ownerIDKey(userProposalPrefix, freelancer, id), idSuffix(id))
	storage.Put(ctx, pairKey, idSuffix(id))

	job.Proposals += 1
	putJob(ctx, job)

	stats := getPlatformStats(ctx)
	stats.TotalProposals += 1
	putPlatformStats(ctx, stats)

	runtime.Notify("ProposalSubmitted", id, jobID, freelancer)
	return id
}

// EditProposal updates the cover letter or delivery time of an active
// proposal. Submitting freelancer only; an accepted proposal is immutable.
func EditProposal(freelancer interop.Hash160, proposalID int, coverLetter string, deliveryDays int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, freelancer)

	prop := mustGetProposal(ctx, proposalID)
	if !prop.Freelancer.Equals(freelancer) {
		panic(cst.ErrUnauthorized + ": only the submitting freelancer can edit the proposal")
	}
	if prop.Status != cst.ProposalActive {
		panic(cst.ErrInvalidState + ": only an active proposal can be edited")
	}

	if len(coverLetter) > 0 {
		requireText(coverLetter, cst.MaxCoverLetterLen, "cover letter")
		prop.CoverLetter = coverLetter
	}
	if deliveryDays > 0 {
		if deliveryDays > cfg.MaxJobDurationDays {
			panic(cst.ErrInvalidInput + ": delivery time must not exceed " + std.Itoa(cfg.MaxJobDurationDays, 10) + " days")
		}
		prop.DeliveryDays = deliveryDays
	}
	putProposal(ctx, prop)
}

// WithdrawProposal marks an active proposal Withdrawn and frees the
// (job, freelancer) pair for a future proposal. Submitting freelancer only.
func WithdrawProposal(freelancer interop.Hash160, proposalID int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, freelancer)

	prop := mustGetProposal(ctx, proposalID)
	if !prop.Freelancer.Equals(freelancer) {
		panic(cst.ErrUnauthorized + ": only the submitting freelancer can withdraw the proposal")
	}
	if prop.Status != cst.ProposalActive {
		panic(cst.ErrInvalidState + ": only an active proposal can be withdrawn")
	}

	prop.Status = cst.ProposalWithdrawn
	putProposal(ctx, prop)
	storage.Delete(ctx, pairIDKey(proposalPairPrefix, prop.JobID, freelancer))
}

// AcceptProposal accepts one proposal of an Open job. Poster only. The job
// becomes InProgress with the proposing freelancer assigned; acceptance is
// irreversible except through cancellation or dispute of the job.
func AcceptProposal(poster interop.Hash160, jobID, proposalID int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, poster)

	job := mustGetJob(ctx, jobID)
	if !job.Poster.Equals(poster) {
		panic(cst.ErrUnauthorized + ": only the poster can accept a proposal")
	}
	if job.Status != cst.JobOpen {
		panic(cst.ErrInvalidState + ": job is not open")
	}

	prop := mustGetProposal(ctx, proposalID)
	if prop.JobID != jobID {
		panic(cst.ErrInvalidInput + ": proposal belongs to another job")
	}
	if prop.Status != cst.ProposalActive {
		panic(cst.ErrInvalidState + ": proposal is not active")
	}

	prop.Status = cst.ProposalAccepted
	putProposal(ctx, prop)

	job.Status = cst.JobInProgress
	job.Freelancer = prop.Freelancer
	job.UpdatedAt = runtime.GetTime()
	putJob(ctx, job)

	runtime.Notify("ProposalAccepted", proposalID, jobID, prop.Freelancer)
}

// CompleteJob finishes an InProgress job with a funded escrow: the remaining
// escrow balance is released to the freelancer, the fee to the admin, and
// the job becomes Completed. Poster only.
func CompleteJob(poster interop.Hash160, jobID int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, poster)

	job := mustGetJob(ctx, jobID)
	if !job.Poster.Equals(poster) {
		panic(cst.ErrUnauthorized + ": only the poster can complete the job")
	}
	if job.Status != cst.JobInProgress {
		panic(cst.ErrInvalidState + ": job is not in progress")
	}
	if job.EscrowID == nil {
		if job.Budget > 0 {
			panic(cst.ErrInvalidState + ": job has no funded escrow")
		}
		// Unpaid engagement, nothing to release.
		finishJob(ctx, job, Escrow{})
		return
	}

	esc := mustGetEscrow(ctx, job.EscrowID)
	settleEscrow(ctx, cfg, esc)
	finishJob(ctx, job, esc)
}

// CompleteMilestone marks one milestone of an InProgress job as done.
// Assigned freelancer only; payment follows on the poster's approval.
func CompleteMilestone(freelancer interop.Hash160, jobID, milestoneID int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, freelancer)

	job := mustGetJob(ctx, jobID)
	if job.Status != cst.JobInProgress {
		panic(cst.ErrInvalidState + ": job is not in progress")
	}
	if !job.Freelancer.Equals(freelancer) {
		panic(cst.ErrUnauthorized + ": only the assigned freelancer can complete a milestone")
	}

	found := false
	for i := 0; i < len(job.Milestones); i++ {
		if job.Milestones[i].ID == milestoneID {
			if job.Milestones[i].Completed {
				panic(cst.ErrInvalidState + ": milestone is already completed")
			}
			job.Milestones[i].Completed = true
			found = true
			break
		}
	}
	if !found {
		panic(cst.ErrNotFound + ": milestone does not exist")
	}

	job.UpdatedAt = runtime.GetTime()
	putJob(ctx, job)
}

// ApproveMilestone approves a completed milestone and releases its amount,
// minus the proportional fee share, from the job escrow to the freelancer.
// Poster only. When the last milestone is approved the job is completed.
func ApproveMilestone(poster interop.Hash160, jobID, milestoneID int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, poster)

	job := mustGetJob(ctx, jobID)
	if !job.Poster.Equals(poster) {
		panic(cst.ErrUnauthorized + ": only the poster can approve a milestone")
	}
	if job.Status != cst.JobInProgress {
		panic(cst.ErrInvalidState + ": job is not in progress")
	}
	if job.EscrowID == nil {
		panic(cst.ErrInvalidState + ": job has no funded escrow")
	}

	var amount int
	found := false
	allApproved := true
	for i := 0; i < len(job.Milestones); i++ {
		m := job.Milestones[i]
		if m.ID == milestoneID {
			if !m.Completed {
				panic(cst.ErrInvalidState + ": milestone is not completed")
			}
			if m.Approved {
				panic(cst.ErrInvalidState + ": milestone is already approved")
			}
			job.Milestones[i].Approved = true
			amount = m.Amount
			found = true
		}
		if !job.Milestones[i].Approved {
			allApproved = false
		}
	}
	if !found {
		panic(cst.ErrNotFound + ": milestone does not exist")
	}

	esc := mustGetEscrow(ctx, job.EscrowID)
	esc = releaseMilestoneAmount(ctx, cfg, esc, amount)

	job.UpdatedAt = runtime.GetTime()
	if allApproved {
		finishJob(ctx, job, esc)
	} else {
		putJob(ctx, job)
	}

	runtime.Notify("MilestoneApproved", jobID, milestoneID, amount)
}

// GetJob returns a job by identifier.
func GetJob(jobID int) Job {
	ctx := storage.GetReadOnlyContext()
	return mustGetJob(ctx, jobID)
}

// GetJobs returns a page of jobs filtered by category, status and poster.
// Pass an empty category, a negative status or an empty poster to skip the
// corresponding filter; startAfter -1 reads from the beginning.
func GetJobs(startAfter, limit int, category string, status int, poster interop.Hash160) []Job {
	ctx := storage.GetReadOnlyContext()
	limit = normalizeLimit(limit)
	total := nextIDValue(ctx, kindJob)

	res := []Job{}
	for id := startAfter + 1; id < total && len(res) < limit; id++ {
		data := storage.Get(ctx, idKey(jobPrefix, id))
		if data == nil {
			continue
		}
		job := std.Deserialize(data.([]byte)).(Job)
		if len(category) > 0 && job.Category != category {
			continue
		}
		if status >= 0 && job.Status != status {
			continue
		}
		if len(poster) == interop.Hash160Len && !job.Poster.Equals(poster) {
			continue
		}
		res = append(res, job)
	}
	return res
}

// GetAllJobs returns a page of all jobs without filters.
func GetAllJobs(startAfter, limit int) []Job {
	return GetJobs(startAfter, limit, "", -1, nil)
}

// GetUserJobs returns jobs posted by the given account.
func GetUserJobs(addr interop.Hash160) []Job {
	ctx := storage.GetReadOnlyContext()
	refs := collectRefs(ctx, append([]byte{jobOwnerPrefix}, addr...))

	res := []Job{}
	for i := 0; i < len(refs); i++ {
		data := storage.Get(ctx, append([]byte{jobPrefix}, refs[i]...))
		if data != nil {
			res = append(res, std.Deserialize(data.([]byte)).(Job))
		}
	}
	return res
}

// GetProposal returns a proposal by identifier.
func GetProposal(proposalID int) Proposal {
	ctx := storage.GetReadOnlyContext()
	return mustGetProposal(ctx, proposalID)
}

// GetJobProposals returns all proposals submitted on a job.
func GetJobProposals(jobID int) []Proposal {
	ctx := storage.GetReadOnlyContext()
	prefix := append([]byte{jobProposalPrefix}, idSuffix(jobID)...)
	refs := collectRefs(ctx, prefix)

	res := []Proposal{}
	for i := 0; i < len(refs); i++ {
		data := storage.Get(ctx, append([]byte{proposalPrefix}, refs[i]...))
		if data != nil {
			res = append(res, std.Deserialize(data.([]byte)).(Proposal))
		}
	}
	return res
}

// GetUserProposals returns proposals submitted by the given account.
func GetUserProposals(addr interop.Hash160) []Proposal {
	ctx := storage.GetReadOnlyContext()
	refs := collectRefs(ctx, append([]byte{userProposalPrefix}, addr...))

	res := []Proposal{}
	for i := 0; i < len(refs); i++ {
		data := storage.Get(ctx, append([]byte{proposalPrefix}, refs[i]...))
		if data != nil {
			res = append(res, std.Deserialize(data.([]byte)).(Proposal))
		}
	}
	return res
}

func putJob(ctx storage.Context, job Job) {
	common.SetSerialized(ctx, idKey(jobPrefix, job.ID), job)
}

func mustGetJob(ctx storage.Context, jobID int) Job {
	data := storage.Get(ctx, idKey(jobPrefix, jobID))
	if data == nil {
		panic(cst.ErrNotFound + ": job does not exist")
	}
	return std.Deserialize(data.([]byte)).(Job)
}

func putProposal(ctx storage.Context, prop Proposal) {
	common.SetSerialized(ctx, idKey(proposalPrefix, prop.ID), prop)
}

func mustGetProposal(ctx storage.Context, proposalID int) Proposal {
	data := storage.Get(ctx, idKey(proposalPrefix, proposalID))
	if data == nil {
		panic(cst.ErrNotFound + ": proposal does not exist")
	}
	return std.Deserialize(data.([]byte)).(Proposal)
}

// finishJob moves a job to Completed and updates both parties' aggregates.
func finishJob(ctx storage.Context, job Job, esc Escrow) {
	job.Status = cst.JobCompleted
	job.UpdatedAt = runtime.GetTime()
	putJob(ctx, job)

	fs := getUserStats(ctx, job.Freelancer)
	fs.JobsCompleted += 1
	fs.Earned += esc.Amount - esc.Fee
	putUserStats(ctx, job.Freelancer, fs)

	ps := getUserStats(ctx, job.Poster)
	ps.Spent += esc.Amount
	putUserStats(ctx, job.Poster, ps)

	runtime.Notify("JobCompleted", job.ID, job.Freelancer)
}

func requireText(s string, max int, field string) {
	if len(s) == 0 {
		panic(cst.ErrInvalidInput + ": " + field + " must not be empty")
	}
	if len(s) > max {
		panic(cst.ErrInvalidInput + ": " + field + " must not exceed " + std.Itoa(max, 10) + " characters")
	}
}

func requireSkills(skills []string) {
	if len(skills) > cst.MaxSkills {
		panic(cst.ErrInvalidInput + ": at most " + std.Itoa(cst.MaxSkills, 10) + " skills allowed")
	}
	for i := 0; i < len(skills); i++ {
		requireText(skills[i], cst.MaxTitleLen, "skill")
	}
}

// buildMilestones assembles milestones from parallel arrays and checks their
// amounts sum to the budget. Empty input means no milestones.
func buildMilestones(titles []string, amounts []int, deadlines []int, budget int) []Milestone {
	if len(titles) == 0 {
		return []Milestone{}
	}
	if len(titles) != len(amounts) || len(titles) != len(deadlines) {
		panic(cst.ErrInvalidInput + ": milestone arrays must have equal length")
	}
	if len(titles) > cst.MaxMilestones {
		panic(cst.ErrInvalidInput + ": at most " + std.Itoa(cst.MaxMilestones, 10) + " milestones allowed")
	}

	res := []Milestone{}
	sum := 0
	for i := 0; i < len(titles); i++ {
		requireText(titles[i], cst.MaxTitleLen, "milestone title")
		if amounts[i] <= 0 {
			panic(cst.ErrInvalidInput + ": milestone amount must be positive")
		}
		if deadlines[i] < 1 {
			panic(cst.ErrInvalidInput + ": milestone deadline must be positive")
		}
		sum += amounts[i]
		res = append(res, Milestone{
			ID:           i,
			Title:        titles[i],
			Amount:       amounts[i],
			DeadlineDays: deadlines[i],
			Completed:    false,
			Approved:     false,
		})
	}
	if sum != budget {
		panic(cst.ErrInvalidInput + ": milestone amounts must sum to the budget")
	}
	return res
}

func sumMilestones(ms []Milestone) int {
	sum := 0
	for i := 0; i < len(ms); i++ {
		sum += ms[i].Amount
	}
	return sum
}

func ownerIDKey(prefix byte, addr interop.Hash160, id int) []byte {
	key := append([]byte{prefix}, addr...)
	return append(key, idSuffix(id)...)
}

func pairIDKey(prefix byte, id int, addr interop.Hash160) []byte {
	key := append([]byte{prefix}, idSuffix(id)...)
	return append(key, addr...)
}

func pairIDSuffixKey(prefix byte, first, second int) []byte {
	key := append([]byte{prefix}, idSuffix(first)...)
	return append(key, idSuffix(second)...)
}
