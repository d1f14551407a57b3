package marketplace

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/openwork-network/openwork-contract/common"
	cst "github.com/openwork-network/openwork-contract/contracts/marketplace/marketconst"
)

type (
	// RewardTier assigns a percentage of the total reward to one winner
	// position. Percentages across the tiers of a bounty sum to at most 100.
	RewardTier struct {
		Position   int
		Percentage int
	}

	Bounty struct {
		ID                 int
		Poster             interop.Hash160
		Title              string
		Description        string
		Category           string
		Requirements       []string
		Skills             []string
		TotalReward        int
		Tiers              []RewardTier
		MaxWinners         int
		SubmissionDeadline int
		ReviewPeriodDays   int
		Status             int
		Winners            []int
		EscrowID           []byte
		Submissions        int
		CreatedAt          int
		UpdatedAt          int
	}

	BountySubmission struct {
		ID             int
		BountyID       int
		Submitter      interop.Hash160
		Title          string
		Description    string
		Deliverables   []string
		Status         int
		Score          int
		ReviewNotes    string
		WinnerPosition int
		SubmittedAt    int
	}
)

// CreateBounty creates a new bounty in Open status and returns its
// identifier. Reward tiers are passed as two parallel arrays of positions
// and percentages; positions must be unique, lie in [0, maxWinners) and the
// percentages must sum to at most 100. The distribution is fixed here and
// cannot be changed later.
func CreateBounty(poster interop.Hash160, title, description, category string, requirements, skills []string, totalReward, maxWinners int, tierPositions, tierPercentages []int, submissionDeadline, reviewPeriodDays int) int {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, poster)
	bumpRateLimit(ctx, poster, cst.ActionBounty)

	requireText(title, cst.MaxTitleLen, "title")
	requireText(description, cst.MaxDescriptionLen, "description")
	requireText(category, cst.MaxTitleLen, "category")
	requireSkills(skills)
	requireRefs(requirements, "requirement")
	if totalReward <= 0 {
		panic(cst.ErrInvalidInput + ": total reward must be positive")
	}
	if maxWinners < 1 {
		panic(cst.ErrInvalidInput + ": at least one winner position required")
	}

	now := runtime.GetTime()
	if submissionDeadline <= now {
		panic(cst.ErrInvalidInput + ": submission deadline must be in the future")
	}
	if reviewPeriodDays < 1 {
		panic(cst.ErrInvalidInput + ": review period must be positive")
	}

	tiers := buildTiers(tierPositions, tierPercentages, maxWinners)

	id := nextID(ctx, kindBounty)
	bounty := Bounty{
		ID:                 id,
		Poster:             poster,
		Title:              title,
		Description:        description,
		Category:           category,
		Requirements:       requirements,
		Skills:             skills,
		TotalReward:        totalReward,
		Tiers:              tiers,
		MaxWinners:         maxWinners,
		SubmissionDeadline: submissionDeadline,
		ReviewPeriodDays:   reviewPeriodDays,
		Status:             cst.BountyOpen,
		Winners:            []int{},
		EscrowID:           nil,
		Submissions:        0,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	putBounty(ctx, bounty)
	storage.Put(ctx, ownerIDKey(bountyOwnerPrefix, poster, id), idSuffix(id))

	stats := getPlatformStats(ctx)
	stats.TotalBounties += 1
	putPlatformStats(ctx, stats)

	us := getUserStats(ctx, poster)
	us.BountiesPosted += 1
	putUserStats(ctx, poster, us)

	runtime.Notify("BountyCreated", id, poster, totalReward)
	return id
}

// EditBounty partially updates an Open bounty. Pass an empty string, nil
// slice or a negative integer to keep the previous value. Poster only. The
// reward amount and distribution are immutable.
func EditBounty(poster interop.Hash160, bountyID int, title, description, category string, requirements, skills []string, submissionDeadline int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, poster)

	bounty := mustGetBounty(ctx, bountyID)
	if !bounty.Poster.Equals(poster) {
		panic(cst.ErrUnauthorized + ": only the poster can edit the bounty")
	}
	if bounty.Status != cst.BountyOpen {
		panic(cst.ErrInvalidState + ": only an open bounty can be edited")
	}

	if len(title) > 0 {
		requireText(title, cst.MaxTitleLen, "title")
		bounty.Title = title
	}
	if len(description) > 0 {
		requireText(description, cst.MaxDescriptionLen, "description")
		bounty.Description = description
	}
	if len(category) > 0 {
		requireText(category, cst.MaxTitleLen, "category")
		bounty.Category = category
	}
	if len(requirements) > 0 {
		requireRefs(requirements, "requirement")
		bounty.Requirements = requirements
	}
	if len(skills) > 0 {
		requireSkills(skills)
		bounty.Skills = skills
	}
	if submissionDeadline > 0 {
		if submissionDeadline <= runtime.GetTime() {
			panic(cst.ErrInvalidInput + ": submission deadline must be in the future")
		}
		bounty.SubmissionDeadline = submissionDeadline
	}

	bounty.UpdatedAt = runtime.GetTime()
	putBounty(ctx, bounty)
}

// CancelBounty terminates a bounty before winners are selected and refunds
// the escrow, if funded, back to the poster. Poster only. A bounty past its
// submission deadline ends up Expired, otherwise Cancelled.
func CancelBounty(poster interop.Hash160, bountyID int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, poster)

	bounty := mustGetBounty(ctx, bountyID)
	if !bounty.Poster.Equals(poster) {
		panic(cst.ErrUnauthorized + ": only the poster can cancel the bounty")
	}
	if bounty.Status != cst.BountyOpen && bounty.Status != cst.BountyInReview {
		panic(cst.ErrInvalidState + ": bounty is already terminal")
	}
	if len(bounty.Winners) > 0 {
		panic(cst.ErrInvalidState + ": bounty with selected winners cannot be cancelled")
	}

	if bounty.EscrowID != nil {
		esc := mustGetEscrow(ctx, bounty.EscrowID)
		refundEscrow(ctx, esc)
	}

	if runtime.GetTime() >= bounty.SubmissionDeadline {
		bounty.Status = cst.BountyExpired
	} else {
		bounty.Status = cst.BountyCancelled
	}
	bounty.UpdatedAt = runtime.GetTime()
	putBounty(ctx, bounty)
	runtime.Notify("BountyCancelled", bountyID)
}

// SubmitToBounty submits an entry on an Open bounty before its deadline and
// returns the submission identifier. Submitting on one's own bounty and
// duplicate submissions are rejected.
func SubmitToBounty(submitter interop.Hash160, bountyID int, title, description string, deliverables []string) int {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, submitter)
	bumpRateLimit(ctx, submitter, cst.ActionProposal)

	bounty := mustGetBounty(ctx, bountyID)
	if bounty.Status != cst.BountyOpen {
		panic(cst.ErrInvalidState + ": bounty is not open for submissions")
	}
	if runtime.GetTime() >= bounty.SubmissionDeadline {
		panic(cst.ErrInvalidState + ": submission deadline has passed")
	}
	if bounty.Poster.Equals(submitter) {
		panic(cst.ErrInvalidInput + ": cannot submit to own bounty")
	}

	pairKey := pairIDKey(submissionPairPrefix, bountyID, submitter)
	if storage.Get(ctx, pairKey) != nil {
		panic(cst.ErrAlreadyExists + ": submission for this bounty already exists")
	}

	requireText(title, cst.MaxTitleLen, "title")
	requireText(description, cst.MaxDescriptionLen, "description")
	requireRefs(deliverables, "deliverable")

	id := nextID(ctx, kindSubmission)
	sub := BountySubmission{
		ID:             id,
		BountyID:       bountyID,
		Submitter:      submitter,
		Title:          title,
		Description:    description,
		Deliverables:   deliverables,
		Status:         cst.SubmissionSubmitted,
		Score:          -1,
		ReviewNotes:    "",
		WinnerPosition: -1,
		SubmittedAt:    runtime.GetTime(),
	}
	putSubmission(ctx, sub)
	storage.Put(ctx, pairIDSuffixKey(bountySubPrefix, bountyID, id), idSuffix(id))
	storage.Put(ctx, ownerIDKey(userSubPrefix, submitter, id), idSuffix(id))
	storage.Put(ctx, pairKey, idSuffix(id))

	bounty.Submissions += 1
	putBounty(ctx, bounty)

	runtime.Notify("SubmissionReceived", id, bountyID, submitter)
	return id
}

// EditBountySubmission updates an own submission before winners are
// selected. Submitting account only.
func EditBountySubmission(submitter interop.Hash160, submissionID int, title, description string, deliverables []string) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, submitter)

	sub := mustGetSubmission(ctx, submissionID)
	if !sub.Submitter.Equals(submitter) {
		panic(cst.ErrUnauthorized + ": only the submitter can edit the submission")
	}
	if sub.Status != cst.SubmissionSubmitted && sub.Status != cst.SubmissionUnderReview {
		panic(cst.ErrInvalidState + ": submission can no longer be edited")
	}

	bounty := mustGetBounty(ctx, sub.BountyID)
	if bounty.Status != cst.BountyOpen {
		panic(cst.ErrInvalidState + ": bounty is no longer accepting changes")
	}

	if len(title) > 0 {
		requireText(title, cst.MaxTitleLen, "title")
		sub.Title = title
	}
	if len(description) > 0 {
		requireText(description, cst.MaxDescriptionLen, "description")
		sub.Description = description
	}
	if len(deliverables) > 0 {
		requireRefs(deliverables, "deliverable")
		sub.Deliverables = deliverables
	}
	putSubmission(ctx, sub)
}

// WithdrawBountySubmission marks an own submission Withdrawn and frees the
// (bounty, submitter) pair. A winning submission cannot be withdrawn.
func WithdrawBountySubmission(submitter interop.Hash160, submissionID int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, submitter)

	sub := mustGetSubmission(ctx, submissionID)
	if !sub.Submitter.Equals(submitter) {
		panic(cst.ErrUnauthorized + ": only the submitter can withdraw the submission")
	}
	if sub.Status == cst.SubmissionWinner {
		panic(cst.ErrInvalidState + ": winning submission cannot be withdrawn")
	}
	if sub.Status == cst.SubmissionWithdrawn {
		panic(cst.ErrInvalidState + ": submission is already withdrawn")
	}

	sub.Status = cst.SubmissionWithdrawn
	putSubmission(ctx, sub)
	storage.Delete(ctx, pairIDKey(submissionPairPrefix, sub.BountyID, submitter))
}

// ReviewBountySubmission records the poster's review: a status out of
// UnderReview, Approved or Rejected, an optional score and notes. The first
// review of an Open bounty moves it to InReview.
func ReviewBountySubmission(poster interop.Hash160, submissionID, status, score int, notes string) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, poster)

	sub := mustGetSubmission(ctx, submissionID)
	bounty := mustGetBounty(ctx, sub.BountyID)
	if !bounty.Poster.Equals(poster) {
		panic(cst.ErrUnauthorized + ": only the poster can review submissions")
	}
	if bounty.Status != cst.BountyOpen && bounty.Status != cst.BountyInReview {
		panic(cst.ErrInvalidState + ": bounty is not under review")
	}
	if sub.Status == cst.SubmissionWithdrawn || sub.Status == cst.SubmissionWinner {
		panic(cst.ErrInvalidState + ": submission cannot be reviewed")
	}
	if status != cst.SubmissionUnderReview && status != cst.SubmissionApproved && status != cst.SubmissionRejected {
		panic(cst.ErrInvalidInput + ": invalid review status")
	}
	if score < -1 || score > 100 {
		panic(cst.ErrInvalidInput + ": score must be between 0 and 100")
	}
	if len(notes) > cst.MaxCommentLen {
		panic(cst.ErrInvalidInput + ": notes must not exceed " + std.Itoa(cst.MaxCommentLen, 10) + " characters")
	}

	sub.Status = status
	sub.Score = score
	sub.ReviewNotes = notes
	putSubmission(ctx, sub)

	if bounty.Status == cst.BountyOpen {
		bounty.Status = cst.BountyInReview
		bounty.UpdatedAt = runtime.GetTime()
		putBounty(ctx, bounty)
	}
}

// SelectBountyWinners assigns submissions to winner positions. Poster only.
// Pairs are passed as two parallel arrays; every submission must exist on
// this bounty and be non-withdrawn, no submission or position may repeat,
// and every position must carry a reward tier.
func SelectBountyWinners(poster interop.Hash160, bountyID int, submissionIDs, positions []int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, poster)

	bounty := mustGetBounty(ctx, bountyID)
	if !bounty.Poster.Equals(poster) {
		panic(cst.ErrUnauthorized + ": only the poster can select winners")
	}
	if bounty.Status != cst.BountyOpen && bounty.Status != cst.BountyInReview {
		panic(cst.ErrInvalidState + ": bounty is not under review")
	}
	if len(bounty.Winners) > 0 {
		panic(cst.ErrInvalidState + ": winners are already selected")
	}
	if len(submissionIDs) == 0 || len(submissionIDs) != len(positions) {
		panic(cst.ErrInvalidInput + ": winner arrays must be non-empty and of equal length")
	}
	if len(submissionIDs) > bounty.MaxWinners {
		panic(cst.ErrInvalidInput + ": at most " + std.Itoa(bounty.MaxWinners, 10) + " winners allowed")
	}

	for i := 0; i < len(submissionIDs); i++ {
		for j := i + 1; j < len(submissionIDs); j++ {
			if submissionIDs[i] == submissionIDs[j] {
				panic(cst.ErrInvalidInput + ": submission selected twice")
			}
			if positions[i] == positions[j] {
				panic(cst.ErrInvalidInput + ": position used twice")
			}
		}
		if positions[i] < 0 || positions[i] >= bounty.MaxWinners {
			panic(cst.ErrInvalidInput + ": position out of range")
		}
		tierPercentage(bounty, positions[i])

		sub := mustGetSubmission(ctx, submissionIDs[i])
		if sub.BountyID != bountyID {
			panic(cst.ErrInvalidInput + ": submission belongs to another bounty")
		}
		if sub.Status == cst.SubmissionWithdrawn {
			panic(cst.ErrInvalidState + ": withdrawn submission cannot win")
		}

		sub.Status = cst.SubmissionWinner
		sub.WinnerPosition = positions[i]
		putSubmission(ctx, sub)
	}

	bounty.Winners = submissionIDs
	bounty.Status = cst.BountyInReview
	bounty.UpdatedAt = runtime.GetTime()
	putBounty(ctx, bounty)

	runtime.Notify("WinnersSelected", bountyID, len(submissionIDs))
}

// CreateBountyEscrow creates and funds the bounty escrow with native GAS
// moved from the poster inside this call, and returns the escrow
// identifier. The amount must equal the total reward exactly. Bounty
// escrows carry no platform fee.
func CreateBountyEscrow(poster interop.Hash160, bountyID, amount int) []byte {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, poster)
	bumpRateLimit(ctx, poster, cst.ActionEscrow)

	bounty := mustGetBounty(ctx, bountyID)
	if !bounty.Poster.Equals(poster) {
		panic(cst.ErrUnauthorized + ": only the poster can fund the bounty escrow")
	}
	esc := buildBountyEscrow(cfg, bounty, poster, amount, nil)

	enterGuard(ctx)
	if !gas.Transfer(poster, runtime.GetExecutingScriptHash(), amount, nil) {
		panic(cst.ErrInsufficientFunds + ": GAS transfer failed")
	}
	exitGuard(ctx)

	storeBountyEscrow(ctx, bounty, esc)
	return esc.ID
}

// ReleaseBountyRewards disburses the funded escrow to the selected winners
// in one atomic batch: every winner receives totalReward multiplied by its
// tier percentage over 100, and any remainder from truncation or from
// percentages summing below 100 is returned to the poster. The bounty is
// terminal Completed afterwards.
func ReleaseBountyRewards(poster interop.Hash160, bountyID int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, poster)

	bounty := mustGetBounty(ctx, bountyID)
	if !bounty.Poster.Equals(poster) {
		panic(cst.ErrUnauthorized + ": only the poster can release the rewards")
	}
	if len(bounty.Winners) == 0 {
		panic(cst.ErrInvalidState + ": no winners selected")
	}
	if bounty.EscrowID == nil {
		panic(cst.ErrInvalidState + ": bounty has no funded escrow")
	}

	esc := mustGetEscrow(ctx, bounty.EscrowID)
	requireSettleable(esc)

	paid := 0
	enterGuard(ctx)
	for i := 0; i < len(bounty.Winners); i++ {
		sub := mustGetSubmission(ctx, bounty.Winners[i])
		share := bounty.TotalReward * tierPercentage(bounty, sub.WinnerPosition) / 100
		transferOut(esc, sub.Submitter, share)
		paid += share

		ws := getUserStats(ctx, sub.Submitter)
		ws.Earned += share
		putUserStats(ctx, sub.Submitter, ws)
	}
	// Nothing is retained: what the winners did not receive goes back to
	// the poster.
	transferOut(esc, esc.Payer, esc.Amount-paid)
	exitGuard(ctx)

	esc.ReleasedAmount = esc.Amount
	esc.Released = true
	putEscrow(ctx, esc)

	bounty.Status = cst.BountyCompleted
	bounty.UpdatedAt = runtime.GetTime()
	putBounty(ctx, bounty)

	ps := getUserStats(ctx, poster)
	ps.Spent += paid
	putUserStats(ctx, poster, ps)

	runtime.Notify("RewardsReleased", bountyID, paid, esc.Amount-paid)
}

// GetBounty returns a bounty by identifier.
func GetBounty(bountyID int) Bounty {
	ctx := storage.GetReadOnlyContext()
	return mustGetBounty(ctx, bountyID)
}

// GetBounties returns a page of bounties filtered by category, status and
// poster. Pass an empty category, a negative status or an empty poster to
// skip the corresponding filter; startAfter -1 reads from the beginning.
func GetBounties(startAfter, limit int, category string, status int, poster interop.Hash160) []Bounty {
	ctx := storage.GetReadOnlyContext()
	limit = normalizeLimit(limit)
	total := nextIDValue(ctx, kindBounty)

	res := []Bounty{}
	for id := startAfter + 1; id < total && len(res) < limit; id++ {
		data := storage.Get(ctx, idKey(bountyPrefix, id))
		if data == nil {
			continue
		}
		bounty := std.Deserialize(data.([]byte)).(Bounty)
		if len(category) > 0 && bounty.Category != category {
			continue
		}
		if status >= 0 && bounty.Status != status {
			continue
		}
		if len(poster) == interop.Hash160Len && !bounty.Poster.Equals(poster) {
			continue
		}
		res = append(res, bounty)
	}
	return res
}

// GetAllBounties returns a page of all bounties without filters.
func GetAllBounties(startAfter, limit int) []Bounty {
	return GetBounties(startAfter, limit, "", -1, nil)
}

// GetUserBounties returns bounties posted by the given account.
func GetUserBounties(addr interop.Hash160) []Bounty {
	ctx := storage.GetReadOnlyContext()
	refs := collectRefs(ctx, append([]byte{bountyOwnerPrefix}, addr...))

	res := []Bounty{}
	for i := 0; i < len(refs); i++ {
		data := storage.Get(ctx, append([]byte{bountyPrefix}, refs[i]...))
		if data != nil {
			res = append(res, std.Deserialize(data.([]byte)).(Bounty))
		}
	}
	return res
}

// GetBountySubmission returns a submission by identifier.
func GetBountySubmission(submissionID int) BountySubmission {
	ctx := storage.GetReadOnlyContext()
	return mustGetSubmission(ctx, submissionID)
}

// GetBountySubmissions returns all submissions of a bounty.
func GetBountySubmissions(bountyID int) []BountySubmission {
	ctx := storage.GetReadOnlyContext()
	prefix := append([]byte{bountySubPrefix}, idSuffix(bountyID)...)
	return submissionsByRefs(ctx, collectRefs(ctx, prefix))
}

// GetUserBountySubmissions returns submissions made by the given account.
func GetUserBountySubmissions(addr interop.Hash160) []BountySubmission {
	ctx := storage.GetReadOnlyContext()
	refs := collectRefs(ctx, append([]byte{userSubPrefix}, addr...))
	return submissionsByRefs(ctx, refs)
}

// buildBountyEscrow validates the funding of a bounty escrow and assembles
// the record. No platform fee is charged on bounty escrows; the payee is
// resolved per winner at release time.
func buildBountyEscrow(cfg Config, bounty Bounty, payer interop.Hash160, amount int, token interop.Hash160) Escrow {
	if bounty.Status != cst.BountyOpen && bounty.Status != cst.BountyInReview {
		panic(cst.ErrInvalidState + ": bounty is terminal")
	}
	if bounty.EscrowID != nil {
		panic(cst.ErrAlreadyExists + ": escrow for this bounty already exists")
	}
	if amount != bounty.TotalReward {
		panic(cst.ErrInsufficientFunds + ": payment must equal the total reward of " + std.Itoa(bounty.TotalReward, 10))
	}
	if amount < cfg.MinEscrowAmount {
		panic(cst.ErrInvalidInput + ": amount is below the minimum of " + std.Itoa(cfg.MinEscrowAmount, 10))
	}

	now := runtime.GetTime()
	return Escrow{
		ID:              contentID(bounty.ID, payer, now),
		JobID:           -1,
		BountyID:        bounty.ID,
		Payer:           payer,
		Payee:           nil,
		Token:           token,
		Amount:          amount,
		Fee:             0,
		FundedAt:        now,
		DisputeDeadline: now + cfg.DisputePeriodDays*cst.MillisecondsInDay,
	}
}

func storeBountyEscrow(ctx storage.Context, bounty Bounty, esc Escrow) {
	putEscrow(ctx, esc)

	bounty.EscrowID = esc.ID
	bounty.UpdatedAt = esc.FundedAt
	putBounty(ctx, bounty)

	stats := getPlatformStats(ctx)
	stats.TotalEscrowVolume += esc.Amount
	putPlatformStats(ctx, stats)

	runtime.Notify("EscrowCreated", esc.ID, esc.BountyID, esc.Amount, 0)
}

func tierPercentage(bounty Bounty, position int) int {
	for i := 0; i < len(bounty.Tiers); i++ {
		if bounty.Tiers[i].Position == position {
			return bounty.Tiers[i].Percentage
		}
	}
	panic(cst.ErrNotFound + ": no reward tier for position " + std.Itoa(position, 10))
}

// buildTiers assembles the reward distribution from parallel arrays,
// checking position uniqueness, range and the percentage sum.
func buildTiers(positions, percentages []int, maxWinners int) []RewardTier {
	if len(positions) == 0 || len(positions) != len(percentages) {
		panic(cst.ErrInvalidInput + ": tier arrays must be non-empty and of equal length")
	}
	if len(positions) > maxWinners {
		panic(cst.ErrInvalidInput + ": more tiers than winner positions")
	}

	res := []RewardTier{}
	sum := 0
	for i := 0; i < len(positions); i++ {
		if positions[i] < 0 || positions[i] >= maxWinners {
			panic(cst.ErrInvalidInput + ": tier position out of range")
		}
		for j := i + 1; j < len(positions); j++ {
			if positions[i] == positions[j] {
				panic(cst.ErrInvalidInput + ": duplicate tier position")
			}
		}
		if percentages[i] < 1 || percentages[i] > 100 {
			panic(cst.ErrInvalidInput + ": tier percentage must be between 1 and 100")
		}
		sum += percentages[i]
		res = append(res, RewardTier{Position: positions[i], Percentage: percentages[i]})
	}
	if sum > 100 {
		panic(cst.ErrInvalidInput + ": tier percentages must sum to at most 100")
	}
	return res
}

func requireRefs(refs []string, field string) {
	if len(refs) > cst.MaxDocuments {
		panic(cst.ErrInvalidInput + ": at most " + std.Itoa(cst.MaxDocuments, 10) + " " + field + " references allowed")
	}
	for i := 0; i < len(refs); i++ {
		requireText(refs[i], cst.MaxCommentLen, field)
	}
}

func putBounty(ctx storage.Context, bounty Bounty) {
	common.SetSerialized(ctx, idKey(bountyPrefix, bounty.ID), bounty)
}

func mustGetBounty(ctx storage.Context, bountyID int) Bounty {
	data := storage.Get(ctx, idKey(bountyPrefix, bountyID))
	if data == nil {
		panic(cst.ErrNotFound + ": bounty does not exist")
	}
	return std.Deserialize(data.([]byte)).(Bounty)
}

func putSubmission(ctx storage.Context, sub BountySubmission) {
	common.SetSerialized(ctx, idKey(submissionPrefix, sub.ID), sub)
}

func mustGetSubmission(ctx storage.Context, submissionID int) BountySubmission {
	data := storage.Get(ctx, idKey(submissionPrefix, submissionID))
	if data == nil {
		panic(cst.ErrNotFound + ": submission does not exist")
	}
	return std.Deserialize(data.([]byte)).(BountySubmission)
}

func submissionsByRefs(ctx storage.Context, refs [][]byte) []BountySubmission {
	res := []BountySubmission{}
	for i := 0; i < len(refs); i++ {
		data := storage.Get(ctx, append([]byte{submissionPrefix}, refs[i]...))
		if data != nil {
			res = append(res, std.Deserialize(data.([]byte)).(BountySubmission))
		}
	}
	return res
}
