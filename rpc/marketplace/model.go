package marketplace

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// ID is a content-derived escrow or dispute identifier. It renders in base58
// in logs and JSON, the form user-facing tooling shows it in.
type ID []byte

func (id ID) String() string {
	return base58.Encode(id)
}

// MarshalJSON implements [json.Marshaler].
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(base58.Encode(id))
}

// UnmarshalJSON implements [json.Unmarshaler].
func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	d, err := base58.Decode(s)
	if err != nil {
		return err
	}
	*id = d
	return nil
}

func fieldInt(item stackitem.Item) (int64, error) {
	v, err := item.TryInteger()
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

func fieldBool(item stackitem.Item) (bool, error) {
	return item.TryBool()
}

func fieldBytes(item stackitem.Item) ([]byte, error) {
	if _, ok := item.(stackitem.Null); ok {
		return nil, nil
	}
	return item.TryBytes()
}

func fieldString(item stackitem.Item) (string, error) {
	b, err := item.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("not a UTF-8 string")
	}
	return string(b), nil
}

func fieldUint160(item stackitem.Item) (util.Uint160, error) {
	if _, ok := item.(stackitem.Null); ok {
		return util.Uint160{}, nil
	}
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	if len(b) == 0 {
		return util.Uint160{}, nil
	}
	return util.Uint160DecodeBytesBE(b)
}

func fieldStrings(item stackitem.Item) ([]string, error) {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	res := make([]string, len(arr))
	for i := range arr {
		s, err := fieldString(arr[i])
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		res[i] = s
	}
	return res, nil
}

func fieldInts(item stackitem.Item) ([]int64, error) {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	res := make([]int64, len(arr))
	for i := range arr {
		v, err := fieldInt(arr[i])
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		res[i] = v
	}
	return res, nil
}

func structFields(item stackitem.Item, n int) ([]stackitem.Item, error) {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	if len(arr) != n {
		return nil, errors.New("wrong number of structure elements")
	}
	return arr, nil
}

// itemToMilestone converts stack item into *Milestone.
func itemToMilestone(item stackitem.Item, err error) (*Milestone, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Milestone)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Milestone from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Milestone) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 6)
	if err != nil {
		return err
	}
	if res.ID, err = fieldInt(arr[0]); err != nil {
		return fmt.Errorf("field ID: %w", err)
	}
	if res.Title, err = fieldString(arr[1]); err != nil {
		return fmt.Errorf("field Title: %w", err)
	}
	if res.Amount, err = fieldInt(arr[2]); err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}
	if res.DeadlineDays, err = fieldInt(arr[3]); err != nil {
		return fmt.Errorf("field DeadlineDays: %w", err)
	}
	if res.Completed, err = fieldBool(arr[4]); err != nil {
		return fmt.Errorf("field Completed: %w", err)
	}
	if res.Approved, err = fieldBool(arr[5]); err != nil {
		return fmt.Errorf("field Approved: %w", err)
	}
	return nil
}

func fieldMilestones(item stackitem.Item) ([]Milestone, error) {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	res := make([]Milestone, len(arr))
	for i := range arr {
		if err := res[i].FromStackItem(arr[i]); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return res, nil
}

// itemToJob converts stack item into *Job.
func itemToJob(item stackitem.Item, err error) (*Job, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Job)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Job from the given [stackitem.Item] or
// returns an error if it's not possible to do to so.
func (res *Job) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 15)
	if err != nil {
		return err
	}
	if res.ID, err = fieldInt(arr[0]); err != nil {
		return fmt.Errorf("field ID: %w", err)
	}
	if res.Poster, err = fieldUint160(arr[1]); err != nil {
		return fmt.Errorf("field Poster: %w", err)
	}
	if res.Title, err = fieldString(arr[2]); err != nil {
		return fmt.Errorf("field Title: %w", err)
	}
	if res.Description, err = fieldString(arr[3]); err != nil {
		return fmt.Errorf("field Description: %w", err)
	}
	if res.Category, err = fieldString(arr[4]); err != nil {
		return fmt.Errorf("field Category: %w", err)
	}
	if res.Skills, err = fieldStrings(arr[5]); err != nil {
		return fmt.Errorf("field Skills: %w", err)
	}
	if res.Budget, err = fieldInt(arr[6]); err != nil {
		return fmt.Errorf("field Budget: %w", err)
	}
	if res.DurationDays, err = fieldInt(arr[7]); err != nil {
		return fmt.Errorf("field DurationDays: %w", err)
	}
	if res.Status, err = fieldInt(arr[8]); err != nil {
		return fmt.Errorf("field Status: %w", err)
	}
	if res.Freelancer, err = fieldUint160(arr[9]); err != nil {
		return fmt.Errorf("field Freelancer: %w", err)
	}
	if res.Milestones, err = fieldMilestones(arr[10]); err != nil {
		return fmt.Errorf("field Milestones: %w", err)
	}
	if res.EscrowID, err = fieldBytes(arr[11]); err != nil {
		return fmt.Errorf("field EscrowID: %w", err)
	}
	if res.Proposals, err = fieldInt(arr[12]); err != nil {
		return fmt.Errorf("field Proposals: %w", err)
	}
	if res.CreatedAt, err = fieldInt(arr[13]); err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}
	if res.UpdatedAt, err = fieldInt(arr[14]); err != nil {
		return fmt.Errorf("field UpdatedAt: %w", err)
	}
	return nil
}

func itemsToJobs(items []stackitem.Item, err error) ([]*Job, error) {
	if err != nil {
		return nil, err
	}
	res := make([]*Job, len(items))
	for i := range items {
		if res[i], err = itemToJob(items[i], nil); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return res, nil
}

// itemToProposal converts stack item into *Proposal.
func itemToProposal(item stackitem.Item, err error) (*Proposal, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Proposal)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Proposal from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Proposal) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 8)
	if err != nil {
		return err
	}
	if res.ID, err = fieldInt(arr[0]); err != nil {
		return fmt.Errorf("field ID: %w", err)
	}
	if res.JobID, err = fieldInt(arr[1]); err != nil {
		return fmt.Errorf("field JobID: %w", err)
	}
	if res.Freelancer, err = fieldUint160(arr[2]); err != nil {
		return fmt.Errorf("field Freelancer: %w", err)
	}
	if res.CoverLetter, err = fieldString(arr[3]); err != nil {
		return fmt.Errorf("field CoverLetter: %w", err)
	}
	if res.DeliveryDays, err = fieldInt(arr[4]); err != nil {
		return fmt.Errorf("field DeliveryDays: %w", err)
	}
	if res.Milestones, err = fieldMilestones(arr[5]); err != nil {
		return fmt.Errorf("field Milestones: %w", err)
	}
	if res.Status, err = fieldInt(arr[6]); err != nil {
		return fmt.Errorf("field Status: %w", err)
	}
	if res.SubmittedAt, err = fieldInt(arr[7]); err != nil {
		return fmt.Errorf("field SubmittedAt: %w", err)
	}
	return nil
}

func itemsToProposals(items []stackitem.Item, err error) ([]*Proposal, error) {
	if err != nil {
		return nil, err
	}
	res := make([]*Proposal, len(items))
	for i := range items {
		if res[i], err = itemToProposal(items[i], nil); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return res, nil
}

// itemToEscrow converts stack item into *Escrow.
func itemToEscrow(item stackitem.Item, err error) (*Escrow, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Escrow)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Escrow from the given [stackitem.Item]
// or returns an error if it's not possible to do to so.
func (res *Escrow) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 15)
	if err != nil {
		return err
	}
	if res.ID, err = fieldBytes(arr[0]); err != nil {
		return fmt.Errorf("field ID: %w", err)
	}
	if res.JobID, err = fieldInt(arr[1]); err != nil {
		return fmt.Errorf("field JobID: %w", err)
	}
	if res.BountyID, err = fieldInt(arr[2]); err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}
	if res.Payer, err = fieldUint160(arr[3]); err != nil {
		return fmt.Errorf("field Payer: %w", err)
	}
	if res.Payee, err = fieldUint160(arr[4]); err != nil {
		return fmt.Errorf("field Payee: %w", err)
	}
	if res.Token, err = fieldBytes(arr[5]); err != nil {
		return fmt.Errorf("field Token: %w", err)
	}
	if res.Amount, err = fieldInt(arr[6]); err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}
	if res.Fee, err = fieldInt(arr[7]); err != nil {
		return fmt.Errorf("field Fee: %w", err)
	}
	if res.FeePaid, err = fieldInt(arr[8]); err != nil {
		return fmt.Errorf("field FeePaid: %w", err)
	}
	if res.ReleasedAmount, err = fieldInt(arr[9]); err != nil {
		return fmt.Errorf("field ReleasedAmount: %w", err)
	}
	if res.FundedAt, err = fieldInt(arr[10]); err != nil {
		return fmt.Errorf("field FundedAt: %w", err)
	}
	if res.DisputeDeadline, err = fieldInt(arr[11]); err != nil {
		return fmt.Errorf("field DisputeDeadline: %w", err)
	}
	if res.Released, err = fieldBool(arr[12]); err != nil {
		return fmt.Errorf("field Released: %w", err)
	}
	if res.Refunded, err = fieldBool(arr[13]); err != nil {
		return fmt.Errorf("field Refunded: %w", err)
	}
	if res.Disputed, err = fieldBool(arr[14]); err != nil {
		return fmt.Errorf("field Disputed: %w", err)
	}
	return nil
}

// itemToDispute converts stack item into *Dispute.
func itemToDispute(item stackitem.Item, err error) (*Dispute, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Dispute)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Dispute from the given [stackitem.Item]
// or returns an error if it's not possible to do to so.
func (res *Dispute) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 10)
	if err != nil {
		return err
	}
	if res.ID, err = fieldBytes(arr[0]); err != nil {
		return fmt.Errorf("field ID: %w", err)
	}
	if res.JobID, err = fieldInt(arr[1]); err != nil {
		return fmt.Errorf("field JobID: %w", err)
	}
	if res.RaisedBy, err = fieldUint160(arr[2]); err != nil {
		return fmt.Errorf("field RaisedBy: %w", err)
	}
	if res.Reason, err = fieldString(arr[3]); err != nil {
		return fmt.Errorf("field Reason: %w", err)
	}
	if res.Evidence, err = fieldStrings(arr[4]); err != nil {
		return fmt.Errorf("field Evidence: %w", err)
	}
	if res.Status, err = fieldInt(arr[5]); err != nil {
		return fmt.Errorf("field Status: %w", err)
	}
	if res.Resolution, err = fieldString(arr[6]); err != nil {
		return fmt.Errorf("field Resolution: %w", err)
	}
	if res.ReleaseToFreelancer, err = fieldBool(arr[7]); err != nil {
		return fmt.Errorf("field ReleaseToFreelancer: %w", err)
	}
	if res.CreatedAt, err = fieldInt(arr[8]); err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}
	if res.ResolvedAt, err = fieldInt(arr[9]); err != nil {
		return fmt.Errorf("field ResolvedAt: %w", err)
	}
	return nil
}

func itemsToDisputes(items []stackitem.Item, err error) ([]*Dispute, error) {
	if err != nil {
		return nil, err
	}
	res := make([]*Dispute, len(items))
	for i := range items {
		if res[i], err = itemToDispute(items[i], nil); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return res, nil
}

func fieldTiers(item stackitem.Item) ([]RewardTier, error) {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	res := make([]RewardTier, len(arr))
	for i := range arr {
		fields, err := structFields(arr[i], 2)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if res[i].Position, err = fieldInt(fields[0]); err != nil {
			return nil, fmt.Errorf("element %d, field Position: %w", i, err)
		}
		if res[i].Percentage, err = fieldInt(fields[1]); err != nil {
			return nil, fmt.Errorf("element %d, field Percentage: %w", i, err)
		}
	}
	return res, nil
}

// itemToBounty converts stack item into *Bounty.
func itemToBounty(item stackitem.Item, err error) (*Bounty, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Bounty)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Bounty from the given [stackitem.Item]
// or returns an error if it's not possible to do to so.
func (res *Bounty) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 18)
	if err != nil {
		return err
	}
	if res.ID, err = fieldInt(arr[0]); err != nil {
		return fmt.Errorf("field ID: %w", err)
	}
	if res.Poster, err = fieldUint160(arr[1]); err != nil {
		return fmt.Errorf("field Poster: %w", err)
	}
	if res.Title, err = fieldString(arr[2]); err != nil {
		return fmt.Errorf("field Title: %w", err)
	}
	if res.Description, err = fieldString(arr[3]); err != nil {
		return fmt.Errorf("field Description: %w", err)
	}
	if res.Category, err = fieldString(arr[4]); err != nil {
		return fmt.Errorf("field Category: %w", err)
	}
	if res.Requirements, err = fieldStrings(arr[5]); err != nil {
		return fmt.Errorf("field Requirements: %w", err)
	}
	if res.Skills, err = fieldStrings(arr[6]); err != nil {
		return fmt.Errorf("field Skills: %w", err)
	}
	if res.TotalReward, err = fieldInt(arr[7]); err != nil {
		return fmt.Errorf("field TotalReward: %w", err)
	}
	if res.Tiers, err = fieldTiers(arr[8]); err != nil {
		return fmt.Errorf("field Tiers: %w", err)
	}
	if res.MaxWinners, err = fieldInt(arr[9]); err != nil {
		return fmt.Errorf("field MaxWinners: %w", err)
	}
	if res.SubmissionDeadline, err = fieldInt(arr[10]); err != nil {
		return fmt.Errorf("field SubmissionDeadline: %w", err)
	}
	if res.ReviewPeriodDays, err = fieldInt(arr[11]); err != nil {
		return fmt.Errorf("field ReviewPeriodDays: %w", err)
	}
	if res.Status, err = fieldInt(arr[12]); err != nil {
		return fmt.Errorf("field Status: %w", err)
	}
	if res.Winners, err = fieldInts(arr[13]); err != nil {
		return fmt.Errorf("field Winners: %w", err)
	}
	if res.EscrowID, err = fieldBytes(arr[14]); err != nil {
		return fmt.Errorf("field EscrowID: %w", err)
	}
	if res.Submissions, err = fieldInt(arr[15]); err != nil {
		return fmt.Errorf("field Submissions: %w", err)
	}
	if res.CreatedAt, err = fieldInt(arr[16]); err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}
	if res.UpdatedAt, err = fieldInt(arr[17]); err != nil {
		return fmt.Errorf("field UpdatedAt: %w", err)
	}
	return nil
}

func itemsToBounties(items []stackitem.Item, err error) ([]*Bounty, error) {
	if err != nil {
		return nil, err
	}
	res := make([]*Bounty, len(items))
	for i := range items {
		if res[i], err = itemToBounty(items[i], nil); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return res, nil
}

// itemToBountySubmission converts stack item into *BountySubmission.
func itemToBountySubmission(item stackitem.Item, err error) (*BountySubmission, error) {
	if err != nil {
		return nil, err
	}
	var res = new(BountySubmission)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of BountySubmission from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *BountySubmission) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 11)
	if err != nil {
		return err
	}
	if res.ID, err = fieldInt(arr[0]); err != nil {
		return fmt.Errorf("field ID: %w", err)
	}
	if res.BountyID, err = fieldInt(arr[1]); err != nil {
		return fmt.Errorf("field BountyID: %w", err)
	}
	if res.Submitter, err = fieldUint160(arr[2]); err != nil {
		return fmt.Errorf("field Submitter: %w", err)
	}
	if res.Title, err = fieldString(arr[3]); err != nil {
		return fmt.Errorf("field Title: %w", err)
	}
	if res.Description, err = fieldString(arr[4]); err != nil {
		return fmt.Errorf("field Description: %w", err)
	}
	if res.Deliverables, err = fieldStrings(arr[5]); err != nil {
		return fmt.Errorf("field Deliverables: %w", err)
	}
	if res.Status, err = fieldInt(arr[6]); err != nil {
		return fmt.Errorf("field Status: %w", err)
	}
	if res.Score, err = fieldInt(arr[7]); err != nil {
		return fmt.Errorf("field Score: %w", err)
	}
	if res.ReviewNotes, err = fieldString(arr[8]); err != nil {
		return fmt.Errorf("field ReviewNotes: %w", err)
	}
	if res.WinnerPosition, err = fieldInt(arr[9]); err != nil {
		return fmt.Errorf("field WinnerPosition: %w", err)
	}
	if res.SubmittedAt, err = fieldInt(arr[10]); err != nil {
		return fmt.Errorf("field SubmittedAt: %w", err)
	}
	return nil
}

func itemsToBountySubmissions(items []stackitem.Item, err error) ([]*BountySubmission, error) {
	if err != nil {
		return nil, err
	}
	res := make([]*BountySubmission, len(items))
	for i := range items {
		if res[i], err = itemToBountySubmission(items[i], nil); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return res, nil
}

// itemToRating converts stack item into *Rating.
func itemToRating(item stackitem.Item, err error) (*Rating, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Rating)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Rating from the given [stackitem.Item]
// or returns an error if it's not possible to do to so.
func (res *Rating) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 6)
	if err != nil {
		return err
	}
	if res.JobID, err = fieldInt(arr[0]); err != nil {
		return fmt.Errorf("field JobID: %w", err)
	}
	if res.Rater, err = fieldUint160(arr[1]); err != nil {
		return fmt.Errorf("field Rater: %w", err)
	}
	if res.Rated, err = fieldUint160(arr[2]); err != nil {
		return fmt.Errorf("field Rated: %w", err)
	}
	if res.Stars, err = fieldInt(arr[3]); err != nil {
		return fmt.Errorf("field Stars: %w", err)
	}
	if res.Comment, err = fieldString(arr[4]); err != nil {
		return fmt.Errorf("field Comment: %w", err)
	}
	if res.CreatedAt, err = fieldInt(arr[5]); err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}
	return nil
}

func itemsToRatings(items []stackitem.Item, err error) ([]*Rating, error) {
	if err != nil {
		return nil, err
	}
	res := make([]*Rating, len(items))
	for i := range items {
		if res[i], err = itemToRating(items[i], nil); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return res, nil
}

// itemToUserStats converts stack item into *UserStats.
func itemToUserStats(item stackitem.Item, err error) (*UserStats, error) {
	if err != nil {
		return nil, err
	}
	var res = new(UserStats)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of UserStats from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *UserStats) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 7)
	if err != nil {
		return err
	}
	if res.JobsPosted, err = fieldInt(arr[0]); err != nil {
		return fmt.Errorf("field JobsPosted: %w", err)
	}
	if res.JobsCompleted, err = fieldInt(arr[1]); err != nil {
		return fmt.Errorf("field JobsCompleted: %w", err)
	}
	if res.BountiesPosted, err = fieldInt(arr[2]); err != nil {
		return fmt.Errorf("field BountiesPosted: %w", err)
	}
	if res.Earned, err = fieldInt(arr[3]); err != nil {
		return fmt.Errorf("field Earned: %w", err)
	}
	if res.Spent, err = fieldInt(arr[4]); err != nil {
		return fmt.Errorf("field Spent: %w", err)
	}
	if res.RatingSum, err = fieldInt(arr[5]); err != nil {
		return fmt.Errorf("field RatingSum: %w", err)
	}
	if res.Ratings, err = fieldInt(arr[6]); err != nil {
		return fmt.Errorf("field Ratings: %w", err)
	}
	return nil
}

// itemToUserProfile converts stack item into *UserProfile.
func itemToUserProfile(item stackitem.Item, err error) (*UserProfile, error) {
	if err != nil {
		return nil, err
	}
	var res = new(UserProfile)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of UserProfile from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *UserProfile) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 5)
	if err != nil {
		return err
	}
	if res.DisplayName, err = fieldString(arr[0]); err != nil {
		return fmt.Errorf("field DisplayName: %w", err)
	}
	if res.Bio, err = fieldString(arr[1]); err != nil {
		return fmt.Errorf("field Bio: %w", err)
	}
	if res.Skills, err = fieldStrings(arr[2]); err != nil {
		return fmt.Errorf("field Skills: %w", err)
	}
	if res.Links, err = fieldStrings(arr[3]); err != nil {
		return fmt.Errorf("field Links: %w", err)
	}
	if res.UpdatedAt, err = fieldInt(arr[4]); err != nil {
		return fmt.Errorf("field UpdatedAt: %w", err)
	}
	return nil
}

// itemToConfig converts stack item into *Config.
func itemToConfig(item stackitem.Item, err error) (*Config, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Config)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Config from the given [stackitem.Item]
// or returns an error if it's not possible to do to so.
func (res *Config) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 6)
	if err != nil {
		return err
	}
	if res.Admin, err = fieldUint160(arr[0]); err != nil {
		return fmt.Errorf("field Admin: %w", err)
	}
	if res.PlatformFeePercent, err = fieldInt(arr[1]); err != nil {
		return fmt.Errorf("field PlatformFeePercent: %w", err)
	}
	if res.MinEscrowAmount, err = fieldInt(arr[2]); err != nil {
		return fmt.Errorf("field MinEscrowAmount: %w", err)
	}
	if res.DisputePeriodDays, err = fieldInt(arr[3]); err != nil {
		return fmt.Errorf("field DisputePeriodDays: %w", err)
	}
	if res.MaxJobDurationDays, err = fieldInt(arr[4]); err != nil {
		return fmt.Errorf("field MaxJobDurationDays: %w", err)
	}
	if res.Paused, err = fieldBool(arr[5]); err != nil {
		return fmt.Errorf("field Paused: %w", err)
	}
	return nil
}

// itemToRateLimitStatus converts stack item into *RateLimitStatus.
func itemToRateLimitStatus(item stackitem.Item, err error) (*RateLimitStatus, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RateLimitStatus)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RateLimitStatus from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RateLimitStatus) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 3)
	if err != nil {
		return err
	}
	if res.Count, err = fieldInt(arr[0]); err != nil {
		return fmt.Errorf("field Count: %w", err)
	}
	if res.Limit, err = fieldInt(arr[1]); err != nil {
		return fmt.Errorf("field Limit: %w", err)
	}
	if res.WindowStart, err = fieldInt(arr[2]); err != nil {
		return fmt.Errorf("field WindowStart: %w", err)
	}
	return nil
}

// itemToAuditLogEntry converts stack item into *AuditLogEntry.
func itemToAuditLogEntry(item stackitem.Item, err error) (*AuditLogEntry, error) {
	if err != nil {
		return nil, err
	}
	var res = new(AuditLogEntry)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of AuditLogEntry from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *AuditLogEntry) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 6)
	if err != nil {
		return err
	}
	if res.ID, err = fieldInt(arr[0]); err != nil {
		return fmt.Errorf("field ID: %w", err)
	}
	if res.Actor, err = fieldUint160(arr[1]); err != nil {
		return fmt.Errorf("field Actor: %w", err)
	}
	if res.Action, err = fieldString(arr[2]); err != nil {
		return fmt.Errorf("field Action: %w", err)
	}
	if res.Target, err = fieldBytes(arr[3]); err != nil {
		return fmt.Errorf("field Target: %w", err)
	}
	if res.Detail, err = fieldString(arr[4]); err != nil {
		return fmt.Errorf("field Detail: %w", err)
	}
	if res.Timestamp, err = fieldInt(arr[5]); err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}
	return nil
}

func itemsToAuditLogEntries(items []stackitem.Item, err error) ([]*AuditLogEntry, error) {
	if err != nil {
		return nil, err
	}
	res := make([]*AuditLogEntry, len(items))
	for i := range items {
		if res[i], err = itemToAuditLogEntry(items[i], nil); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return res, nil
}

// itemToSecurityMetrics converts stack item into *SecurityMetrics.
func itemToSecurityMetrics(item stackitem.Item, err error) (*SecurityMetrics, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SecurityMetrics)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SecurityMetrics from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SecurityMetrics) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 3)
	if err != nil {
		return err
	}
	if res.TotalDisputes, err = fieldInt(arr[0]); err != nil {
		return fmt.Errorf("field TotalDisputes: %w", err)
	}
	if res.RateLimitHits, err = fieldInt(arr[1]); err != nil {
		return fmt.Errorf("field RateLimitHits: %w", err)
	}
	if res.BlockedAddresses, err = fieldInt(arr[2]); err != nil {
		return fmt.Errorf("field BlockedAddresses: %w", err)
	}
	return nil
}

// itemToPlatformStats converts stack item into *PlatformStats.
func itemToPlatformStats(item stackitem.Item, err error) (*PlatformStats, error) {
	if err != nil {
		return nil, err
	}
	var res = new(PlatformStats)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of PlatformStats from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *PlatformStats) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 5)
	if err != nil {
		return err
	}
	if res.TotalJobs, err = fieldInt(arr[0]); err != nil {
		return fmt.Errorf("field TotalJobs: %w", err)
	}
	if res.TotalProposals, err = fieldInt(arr[1]); err != nil {
		return fmt.Errorf("field TotalProposals: %w", err)
	}
	if res.TotalBounties, err = fieldInt(arr[2]); err != nil {
		return fmt.Errorf("field TotalBounties: %w", err)
	}
	if res.TotalEscrowVolume, err = fieldInt(arr[3]); err != nil {
		return fmt.Errorf("field TotalEscrowVolume: %w", err)
	}
	if res.TotalFeesCollected, err = fieldInt(arr[4]); err != nil {
		return fmt.Errorf("field TotalFeesCollected: %w", err)
	}
	return nil
}
