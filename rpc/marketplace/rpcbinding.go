// Package marketplace contains RPC wrappers for the OpenWork Marketplace
// contract.
package marketplace

import (
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Milestone is a partial-payment checkpoint within a job.
type Milestone struct {
	ID           int64
	Title        string
	Amount       int64
	DeadlineDays int64
	Completed    bool
	Approved     bool
}

// Job mirrors the job record returned by contract queries.
type Job struct {
	ID           int64
	Poster       util.Uint160
	Title        string
	Description  string
	Category     string
	Skills       []string
	Budget       int64
	DurationDays int64
	Status       int64
	Freelancer   util.Uint160
	Milestones   []Milestone
	EscrowID     ID
	Proposals    int64
	CreatedAt    int64
	UpdatedAt    int64
}

// Proposal mirrors the proposal record returned by contract queries.
type Proposal struct {
	ID           int64
	JobID        int64
	Freelancer   util.Uint160
	CoverLetter  string
	DeliveryDays int64
	Milestones   []Milestone
	Status       int64
	SubmittedAt  int64
}

// Escrow mirrors the escrow record returned by contract queries.
type Escrow struct {
	ID              ID
	JobID           int64
	BountyID        int64
	Payer           util.Uint160
	Payee           util.Uint160
	Token           []byte
	Amount          int64
	Fee             int64
	FeePaid         int64
	ReleasedAmount  int64
	FundedAt        int64
	DisputeDeadline int64
	Released        bool
	Refunded        bool
	Disputed        bool
}

// Dispute mirrors the dispute record returned by contract queries.
type Dispute struct {
	ID                  ID
	JobID               int64
	RaisedBy            util.Uint160
	Reason              string
	Evidence            []string
	Status              int64
	Resolution          string
	ReleaseToFreelancer bool
	CreatedAt           int64
	ResolvedAt          int64
}

// RewardTier assigns a percentage of the total reward to one winner position.
type RewardTier struct {
	Position   int64
	Percentage int64
}

// Bounty mirrors the bounty record returned by contract queries.
type Bounty struct {
	ID                 int64
	Poster             util.Uint160
	Title              string
	Description        string
	Category           string
	Requirements       []string
	Skills             []string
	TotalReward        int64
	Tiers              []RewardTier
	MaxWinners         int64
	SubmissionDeadline int64
	ReviewPeriodDays   int64
	Status             int64
	Winners            []int64
	EscrowID           ID
	Submissions        int64
	CreatedAt          int64
	UpdatedAt          int64
}

// BountySubmission mirrors the bounty submission record returned by contract
// queries.
type BountySubmission struct {
	ID             int64
	BountyID       int64
	Submitter      util.Uint160
	Title          string
	Description    string
	Deliverables   []string
	Status         int64
	Score          int64
	ReviewNotes    string
	WinnerPosition int64
	SubmittedAt    int64
}

// Rating is one party's review of the other over a completed job.
type Rating struct {
	JobID     int64
	Rater     util.Uint160
	Rated     util.Uint160
	Stars     int64
	Comment   string
	CreatedAt int64
}

// UserStats are the per-address counters maintained by the contract.
type UserStats struct {
	JobsPosted     int64
	JobsCompleted  int64
	BountiesPosted int64
	Earned         int64
	Spent          int64
	RatingSum      int64
	Ratings        int64
}

// UserProfile is the self-maintained public profile of an address.
type UserProfile struct {
	DisplayName string
	Bio         string
	Skills      []string
	Links       []string
	UpdatedAt   int64
}

// Config is the contract configuration record.
type Config struct {
	Admin              util.Uint160
	PlatformFeePercent int64
	MinEscrowAmount    int64
	DisputePeriodDays  int64
	MaxJobDurationDays int64
	Paused             bool
}

// RateLimitStatus reports the fixed-window counter for one (address, action)
// pair together with the applicable cap.
type RateLimitStatus struct {
	Count       int64
	Limit       int64
	WindowStart int64
}

// AuditLogEntry is one record of the append-only audit log.
type AuditLogEntry struct {
	ID        int64
	Actor     util.Uint160
	Action    string
	Target    []byte
	Detail    string
	Timestamp int64
}

// SecurityMetrics groups security-relevant counters of the contract.
type SecurityMetrics struct {
	TotalDisputes    int64
	RateLimitHits    int64
	BlockedAddresses int64
}

// PlatformStats groups platform-wide totals.
type PlatformStats struct {
	TotalJobs          int64
	TotalProposals     int64
	TotalBounties      int64
	TotalEscrowVolume  int64
	TotalFeesCollected int64
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract
// hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the
// given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// GetConfig invokes `getConfig` method of contract.
func (c *ContractReader) GetConfig() (*Config, error) {
	return itemToConfig(unwrap.Item(c.invoker.Call(c.hash, "getConfig")))
}

// GetJob invokes `getJob` method of contract.
func (c *ContractReader) GetJob(jobID int64) (*Job, error) {
	return itemToJob(unwrap.Item(c.invoker.Call(c.hash, "getJob", jobID)))
}

// GetJobs invokes `getJobs` method of contract.
func (c *ContractReader) GetJobs(startAfter, limit int64, category string, status int64, poster util.Uint160) ([]*Job, error) {
	return itemsToJobs(unwrap.Array(c.invoker.Call(c.hash, "getJobs", startAfter, limit, category, status, poster)))
}

// GetAllJobs invokes `getAllJobs` method of contract.
func (c *ContractReader) GetAllJobs(startAfter, limit int64) ([]*Job, error) {
	return itemsToJobs(unwrap.Array(c.invoker.Call(c.hash, "getAllJobs", startAfter, limit)))
}

// GetUserJobs invokes `getUserJobs` method of contract.
func (c *ContractReader) GetUserJobs(addr util.Uint160) ([]*Job, error) {
	return itemsToJobs(unwrap.Array(c.invoker.Call(c.hash, "getUserJobs", addr)))
}

// GetProposal invokes `getProposal` method of contract.
func (c *ContractReader) GetProposal(proposalID int64) (*Proposal, error) {
	return itemToProposal(unwrap.Item(c.invoker.Call(c.hash, "getProposal", proposalID)))
}

// GetJobProposals invokes `getJobProposals` method of contract.
func (c *ContractReader) GetJobProposals(jobID int64) ([]*Proposal, error) {
	return itemsToProposals(unwrap.Array(c.invoker.Call(c.hash, "getJobProposals", jobID)))
}

// GetUserProposals invokes `getUserProposals` method of contract.
func (c *ContractReader) GetUserProposals(addr util.Uint160) ([]*Proposal, error) {
	return itemsToProposals(unwrap.Array(c.invoker.Call(c.hash, "getUserProposals", addr)))
}

// GetEscrow invokes `getEscrow` method of contract.
func (c *ContractReader) GetEscrow(escrowID []byte) (*Escrow, error) {
	return itemToEscrow(unwrap.Item(c.invoker.Call(c.hash, "getEscrow", escrowID)))
}

// GetJobEscrow invokes `getJobEscrow` method of contract.
func (c *ContractReader) GetJobEscrow(jobID int64) (*Escrow, error) {
	return itemToEscrow(unwrap.Item(c.invoker.Call(c.hash, "getJobEscrow", jobID)))
}

// GetDispute invokes `getDispute` method of contract.
func (c *ContractReader) GetDispute(disputeID []byte) (*Dispute, error) {
	return itemToDispute(unwrap.Item(c.invoker.Call(c.hash, "getDispute", disputeID)))
}

// GetJobDisputes invokes `getJobDisputes` method of contract.
func (c *ContractReader) GetJobDisputes(jobID int64) ([]*Dispute, error) {
	return itemsToDisputes(unwrap.Array(c.invoker.Call(c.hash, "getJobDisputes", jobID)))
}

// GetUserDisputes invokes `getUserDisputes` method of contract.
func (c *ContractReader) GetUserDisputes(addr util.Uint160) ([]*Dispute, error) {
	return itemsToDisputes(unwrap.Array(c.invoker.Call(c.hash, "getUserDisputes", addr)))
}

// GetBounty invokes `getBounty` method of contract.
func (c *ContractReader) GetBounty(bountyID int64) (*Bounty, error) {
	return itemToBounty(unwrap.Item(c.invoker.Call(c.hash, "getBounty", bountyID)))
}

// GetBounties invokes `getBounties` method of contract.
func (c *ContractReader) GetBounties(startAfter, limit int64, category string, status int64, poster util.Uint160) ([]*Bounty, error) {
	return itemsToBounties(unwrap.Array(c.invoker.Call(c.hash, "getBounties", startAfter, limit, category, status, poster)))
}

// GetAllBounties invokes `getAllBounties` method of contract.
func (c *ContractReader) GetAllBounties(startAfter, limit int64) ([]*Bounty, error) {
	return itemsToBounties(unwrap.Array(c.invoker.Call(c.hash, "getAllBounties", startAfter, limit)))
}

// GetUserBounties invokes `getUserBounties` method of contract.
func (c *ContractReader) GetUserBounties(addr util.Uint160) ([]*Bounty, error) {
	return itemsToBounties(unwrap.Array(c.invoker.Call(c.hash, "getUserBounties", addr)))
}

// GetBountySubmission invokes `getBountySubmission` method of contract.
func (c *ContractReader) GetBountySubmission(submissionID int64) (*BountySubmission, error) {
	return itemToBountySubmission(unwrap.Item(c.invoker.Call(c.hash, "getBountySubmission", submissionID)))
}

// GetBountySubmissions invokes `getBountySubmissions` method of contract.
func (c *ContractReader) GetBountySubmissions(bountyID int64) ([]*BountySubmission, error) {
	return itemsToBountySubmissions(unwrap.Array(c.invoker.Call(c.hash, "getBountySubmissions", bountyID)))
}

// GetUserBountySubmissions invokes `getUserBountySubmissions` method of contract.
func (c *ContractReader) GetUserBountySubmissions(addr util.Uint160) ([]*BountySubmission, error) {
	return itemsToBountySubmissions(unwrap.Array(c.invoker.Call(c.hash, "getUserBountySubmissions", addr)))
}

// GetUserRatings invokes `getUserRatings` method of contract.
func (c *ContractReader) GetUserRatings(addr util.Uint160) ([]*Rating, error) {
	return itemsToRatings(unwrap.Array(c.invoker.Call(c.hash, "getUserRatings", addr)))
}

// GetJobRating invokes `getJobRating` method of contract.
func (c *ContractReader) GetJobRating(jobID int64, rater util.Uint160) (*Rating, error) {
	return itemToRating(unwrap.Item(c.invoker.Call(c.hash, "getJobRating", jobID, rater)))
}

// GetUserStats invokes `getUserStats` method of contract.
func (c *ContractReader) GetUserStats(addr util.Uint160) (*UserStats, error) {
	return itemToUserStats(unwrap.Item(c.invoker.Call(c.hash, "getUserStats", addr)))
}

// GetUserProfile invokes `getUserProfile` method of contract.
func (c *ContractReader) GetUserProfile(addr util.Uint160) (*UserProfile, error) {
	return itemToUserProfile(unwrap.Item(c.invoker.Call(c.hash, "getUserProfile", addr)))
}

// IsAddressBlocked invokes `isAddressBlocked` method of contract.
func (c *ContractReader) IsAddressBlocked(addr util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isAddressBlocked", addr))
}

// GetRateLimitStatus invokes `getRateLimitStatus` method of contract.
func (c *ContractReader) GetRateLimitStatus(addr util.Uint160, action int64) (*RateLimitStatus, error) {
	return itemToRateLimitStatus(unwrap.Item(c.invoker.Call(c.hash, "getRateLimitStatus", addr, action)))
}

// GetAuditLogs invokes `getAuditLogs` method of contract.
func (c *ContractReader) GetAuditLogs(startAfter, limit int64) ([]*AuditLogEntry, error) {
	return itemsToAuditLogEntries(unwrap.Array(c.invoker.Call(c.hash, "getAuditLogs", startAfter, limit)))
}

// GetSecurityMetrics invokes `getSecurityMetrics` method of contract.
func (c *ContractReader) GetSecurityMetrics() (*SecurityMetrics, error) {
	return itemToSecurityMetrics(unwrap.Item(c.invoker.Call(c.hash, "getSecurityMetrics")))
}

// GetPlatformStats invokes `getPlatformStats` method of contract.
func (c *ContractReader) GetPlatformStats() (*PlatformStats, error) {
	return itemToPlatformStats(unwrap.Item(c.invoker.Call(c.hash, "getPlatformStats")))
}

// PostJob creates a transaction invoking `postJob` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) PostJob(poster util.Uint160, title, description, category string, skills []string, budget, durationDays int64, milestoneTitles []string, milestoneAmounts, milestoneDeadlines []int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "postJob", poster, title, description, category, skills, budget, durationDays, milestoneTitles, milestoneAmounts, milestoneDeadlines)
}

// PostJobTransaction creates a transaction invoking `postJob` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PostJobTransaction(poster util.Uint160, title, description, category string, skills []string, budget, durationDays int64, milestoneTitles []string, milestoneAmounts, milestoneDeadlines []int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "postJob", poster, title, description, category, skills, budget, durationDays, milestoneTitles, milestoneAmounts, milestoneDeadlines)
}

// PostJobUnsigned creates a transaction invoking `postJob` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PostJobUnsigned(poster util.Uint160, title, description, category string, skills []string, budget, durationDays int64, milestoneTitles []string, milestoneAmounts, milestoneDeadlines []int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "postJob", nil, poster, title, description, category, skills, budget, durationDays, milestoneTitles, milestoneAmounts, milestoneDeadlines)
}

// EditJob creates a transaction invoking `editJob` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) EditJob(poster util.Uint160, jobID int64, title, description, category string, skills []string, budget, durationDays int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "editJob", poster, jobID, title, description, category, skills, budget, durationDays)
}

// EditJobTransaction creates a transaction invoking `editJob` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EditJobTransaction(poster util.Uint160, jobID int64, title, description, category string, skills []string, budget, durationDays int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "editJob", poster, jobID, title, description, category, skills, budget, durationDays)
}

// EditJobUnsigned creates a transaction invoking `editJob` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EditJobUnsigned(poster util.Uint160, jobID int64, title, description, category string, skills []string, budget, durationDays int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "editJob", nil, poster, jobID, title, description, category, skills, budget, durationDays)
}

// DeleteJob creates a transaction invoking `deleteJob` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DeleteJob(poster util.Uint160, jobID int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deleteJob", poster, jobID)
}

// DeleteJobTransaction creates a transaction invoking `deleteJob` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeleteJobTransaction(poster util.Uint160, jobID int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deleteJob", poster, jobID)
}

// DeleteJobUnsigned creates a transaction invoking `deleteJob` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeleteJobUnsigned(poster util.Uint160, jobID int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deleteJob", nil, poster, jobID)
}

// CancelJob creates a transaction invoking `cancelJob` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CancelJob(poster util.Uint160, jobID int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "cancelJob", poster, jobID)
}

// CancelJobTransaction creates a transaction invoking `cancelJob` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CancelJobTransaction(poster util.Uint160, jobID int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "cancelJob", poster, jobID)
}

// CancelJobUnsigned creates a transaction invoking `cancelJob` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CancelJobUnsigned(poster util.Uint160, jobID int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "cancelJob", nil, poster, jobID)
}

// SubmitProposal creates a transaction invoking `submitProposal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitProposal(freelancer util.Uint160, jobID int64, coverLetter string, deliveryDays int64, milestoneTitles []string, milestoneAmounts, milestoneDeadlines []int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitProposal", freelancer, jobID, coverLetter, deliveryDays, milestoneTitles, milestoneAmounts, milestoneDeadlines)
}

// SubmitProposalTransaction creates a transaction invoking `submitProposal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitProposalTransaction(freelancer util.Uint160, jobID int64, coverLetter string, deliveryDays int64, milestoneTitles []string, milestoneAmounts, milestoneDeadlines []int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitProposal", freelancer, jobID, coverLetter, deliveryDays, milestoneTitles, milestoneAmounts, milestoneDeadlines)
}

// SubmitProposalUnsigned creates a transaction invoking `submitProposal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitProposalUnsigned(freelancer util.Uint160, jobID int64, coverLetter string, deliveryDays int64, milestoneTitles []string, milestoneAmounts, milestoneDeadlines []int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitProposal", nil, freelancer, jobID, coverLetter, deliveryDays, milestoneTitles, milestoneAmounts, milestoneDeadlines)
}

// EditProposal creates a transaction invoking `editProposal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) EditProposal(freelancer util.Uint160, proposalID int64, coverLetter string, deliveryDays int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "editProposal", freelancer, proposalID, coverLetter, deliveryDays)
}

// EditProposalTransaction creates a transaction invoking `editProposal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EditProposalTransaction(freelancer util.Uint160, proposalID int64, coverLetter string, deliveryDays int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "editProposal", freelancer, proposalID, coverLetter, deliveryDays)
}

// EditProposalUnsigned creates a transaction invoking `editProposal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EditProposalUnsigned(freelancer util.Uint160, proposalID int64, coverLetter string, deliveryDays int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "editProposal", nil, freelancer, proposalID, coverLetter, deliveryDays)
}

// WithdrawProposal creates a transaction invoking `withdrawProposal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawProposal(freelancer util.Uint160, proposalID int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawProposal", freelancer, proposalID)
}

// WithdrawProposalTransaction creates a transaction invoking `withdrawProposal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawProposalTransaction(freelancer util.Uint160, proposalID int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawProposal", freelancer, proposalID)
}

// WithdrawProposalUnsigned creates a transaction invoking `withdrawProposal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawProposalUnsigned(freelancer util.Uint160, proposalID int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawProposal", nil, freelancer, proposalID)
}

// AcceptProposal creates a transaction invoking `acceptProposal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AcceptProposal(poster util.Uint160, jobID, proposalID int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "acceptProposal", poster, jobID, proposalID)
}

// AcceptProposalTransaction creates a transaction invoking `acceptProposal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AcceptProposalTransaction(poster util.Uint160, jobID, proposalID int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "acceptProposal", poster, jobID, proposalID)
}

// AcceptProposalUnsigned creates a transaction invoking `acceptProposal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AcceptProposalUnsigned(poster util.Uint160, jobID, proposalID int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "acceptProposal", nil, poster, jobID, proposalID)
}

// CompleteJob creates a transaction invoking `completeJob` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CompleteJob(poster util.Uint160, jobID int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "completeJob", poster, jobID)
}

// CompleteJobTransaction creates a transaction invoking `completeJob` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CompleteJobTransaction(poster util.Uint160, jobID int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "completeJob", poster, jobID)
}

// CompleteJobUnsigned creates a transaction invoking `completeJob` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CompleteJobUnsigned(poster util.Uint160, jobID int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "completeJob", nil, poster, jobID)
}

// CompleteMilestone creates a transaction invoking `completeMilestone` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CompleteMilestone(freelancer util.Uint160, jobID, milestoneID int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "completeMilestone", freelancer, jobID, milestoneID)
}

// CompleteMilestoneTransaction creates a transaction invoking `completeMilestone` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CompleteMilestoneTransaction(freelancer util.Uint160, jobID, milestoneID int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "completeMilestone", freelancer, jobID, milestoneID)
}

// CompleteMilestoneUnsigned creates a transaction invoking `completeMilestone` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CompleteMilestoneUnsigned(freelancer util.Uint160, jobID, milestoneID int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "completeMilestone", nil, freelancer, jobID, milestoneID)
}

// ApproveMilestone creates a transaction invoking `approveMilestone` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ApproveMilestone(poster util.Uint160, jobID, milestoneID int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "approveMilestone", poster, jobID, milestoneID)
}

// ApproveMilestoneTransaction creates a transaction invoking `approveMilestone` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ApproveMilestoneTransaction(poster util.Uint160, jobID, milestoneID int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "approveMilestone", poster, jobID, milestoneID)
}

// ApproveMilestoneUnsigned creates a transaction invoking `approveMilestone` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ApproveMilestoneUnsigned(poster util.Uint160, jobID, milestoneID int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "approveMilestone", nil, poster, jobID, milestoneID)
}

// CreateEscrowNative creates a transaction invoking `createEscrowNative` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateEscrowNative(payer util.Uint160, jobID, amount int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createEscrowNative", payer, jobID, amount)
}

// CreateEscrowNativeTransaction creates a transaction invoking `createEscrowNative` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateEscrowNativeTransaction(payer util.Uint160, jobID, amount int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createEscrowNative", payer, jobID, amount)
}

// CreateEscrowNativeUnsigned creates a transaction invoking `createEscrowNative` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateEscrowNativeUnsigned(payer util.Uint160, jobID, amount int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createEscrowNative", nil, payer, jobID, amount)
}

// ReleaseEscrow creates a transaction invoking `releaseEscrow` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ReleaseEscrow(caller util.Uint160, escrowID []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "releaseEscrow", caller, escrowID)
}

// ReleaseEscrowTransaction creates a transaction invoking `releaseEscrow` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReleaseEscrowTransaction(caller util.Uint160, escrowID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "releaseEscrow", caller, escrowID)
}

// ReleaseEscrowUnsigned creates a transaction invoking `releaseEscrow` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReleaseEscrowUnsigned(caller util.Uint160, escrowID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "releaseEscrow", nil, caller, escrowID)
}

// RefundEscrow creates a transaction invoking `refundEscrow` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RefundEscrow(caller util.Uint160, escrowID []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "refundEscrow", caller, escrowID)
}

// RefundEscrowTransaction creates a transaction invoking `refundEscrow` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RefundEscrowTransaction(caller util.Uint160, escrowID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "refundEscrow", caller, escrowID)
}

// RefundEscrowUnsigned creates a transaction invoking `refundEscrow` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RefundEscrowUnsigned(caller util.Uint160, escrowID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "refundEscrow", nil, caller, escrowID)
}

// RaiseDispute creates a transaction invoking `raiseDispute` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RaiseDispute(caller util.Uint160, jobID int64, reason string, evidence []string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "raiseDispute", caller, jobID, reason, evidence)
}

// RaiseDisputeTransaction creates a transaction invoking `raiseDispute` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RaiseDisputeTransaction(caller util.Uint160, jobID int64, reason string, evidence []string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "raiseDispute", caller, jobID, reason, evidence)
}

// RaiseDisputeUnsigned creates a transaction invoking `raiseDispute` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RaiseDisputeUnsigned(caller util.Uint160, jobID int64, reason string, evidence []string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "raiseDispute", nil, caller, jobID, reason, evidence)
}

// ResolveDispute creates a transaction invoking `resolveDispute` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ResolveDispute(caller util.Uint160, disputeID []byte, releaseToFreelancer bool, resolution string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "resolveDispute", caller, disputeID, releaseToFreelancer, resolution)
}

// ResolveDisputeTransaction creates a transaction invoking `resolveDispute` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ResolveDisputeTransaction(caller util.Uint160, disputeID []byte, releaseToFreelancer bool, resolution string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "resolveDispute", caller, disputeID, releaseToFreelancer, resolution)
}

// ResolveDisputeUnsigned creates a transaction invoking `resolveDispute` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ResolveDisputeUnsigned(caller util.Uint160, disputeID []byte, releaseToFreelancer bool, resolution string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "resolveDispute", nil, caller, disputeID, releaseToFreelancer, resolution)
}

// CreateBounty creates a transaction invoking `createBounty` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateBounty(poster util.Uint160, title, description, category string, requirements, skills []string, totalReward, maxWinners int64, tierPositions, tierPercentages []int64, submissionDeadline, reviewPeriodDays int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createBounty", poster, title, description, category, requirements, skills, totalReward, maxWinners, tierPositions, tierPercentages, submissionDeadline, reviewPeriodDays)
}

// CreateBountyTransaction creates a transaction invoking `createBounty` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateBountyTransaction(poster util.Uint160, title, description, category string, requirements, skills []string, totalReward, maxWinners int64, tierPositions, tierPercentages []int64, submissionDeadline, reviewPeriodDays int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createBounty", poster, title, description, category, requirements, skills, totalReward, maxWinners, tierPositions, tierPercentages, submissionDeadline, reviewPeriodDays)
}

// CreateBountyUnsigned creates a transaction invoking `createBounty` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateBountyUnsigned(poster util.Uint160, title, description, category string, requirements, skills []string, totalReward, maxWinners int64, tierPositions, tierPercentages []int64, submissionDeadline, reviewPeriodDays int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createBounty", nil, poster, title, description, category, requirements, skills, totalReward, maxWinners, tierPositions, tierPercentages, submissionDeadline, reviewPeriodDays)
}

// EditBounty creates a transaction invoking `editBounty` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) EditBounty(poster util.Uint160, bountyID int64, title, description, category string, requirements, skills []string, submissionDeadline int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "editBounty", poster, bountyID, title, description, category, requirements, skills, submissionDeadline)
}

// EditBountyTransaction creates a transaction invoking `editBounty` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EditBountyTransaction(poster util.Uint160, bountyID int64, title, description, category string, requirements, skills []string, submissionDeadline int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "editBounty", poster, bountyID, title, description, category, requirements, skills, submissionDeadline)
}

// EditBountyUnsigned creates a transaction invoking `editBounty` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EditBountyUnsigned(poster util.Uint160, bountyID int64, title, description, category string, requirements, skills []string, submissionDeadline int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "editBounty", nil, poster, bountyID, title, description, category, requirements, skills, submissionDeadline)
}

// CancelBounty creates a transaction invoking `cancelBounty` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CancelBounty(poster util.Uint160, bountyID int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "cancelBounty", poster, bountyID)
}

// CancelBountyTransaction creates a transaction invoking `cancelBounty` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CancelBountyTransaction(poster util.Uint160, bountyID int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "cancelBounty", poster, bountyID)
}

// CancelBountyUnsigned creates a transaction invoking `cancelBounty` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CancelBountyUnsigned(poster util.Uint160, bountyID int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "cancelBounty", nil, poster, bountyID)
}

// SubmitToBounty creates a transaction invoking `submitToBounty` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitToBounty(submitter util.Uint160, bountyID int64, title, description string, deliverables []string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitToBounty", submitter, bountyID, title, description, deliverables)
}

// SubmitToBountyTransaction creates a transaction invoking `submitToBounty` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitToBountyTransaction(submitter util.Uint160, bountyID int64, title, description string, deliverables []string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitToBounty", submitter, bountyID, title, description, deliverables)
}

// SubmitToBountyUnsigned creates a transaction invoking `submitToBounty` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitToBountyUnsigned(submitter util.Uint160, bountyID int64, title, description string, deliverables []string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitToBounty", nil, submitter, bountyID, title, description, deliverables)
}

// EditBountySubmission creates a transaction invoking `editBountySubmission` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) EditBountySubmission(submitter util.Uint160, submissionID int64, title, description string, deliverables []string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "editBountySubmission", submitter, submissionID, title, description, deliverables)
}

// EditBountySubmissionTransaction creates a transaction invoking `editBountySubmission` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) EditBountySubmissionTransaction(submitter util.Uint160, submissionID int64, title, description string, deliverables []string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "editBountySubmission", submitter, submissionID, title, description, deliverables)
}

// EditBountySubmissionUnsigned creates a transaction invoking `editBountySubmission` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) EditBountySubmissionUnsigned(submitter util.Uint160, submissionID int64, title, description string, deliverables []string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "editBountySubmission", nil, submitter, submissionID, title, description, deliverables)
}

// WithdrawBountySubmission creates a transaction invoking `withdrawBountySubmission` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawBountySubmission(submitter util.Uint160, submissionID int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawBountySubmission", submitter, submissionID)
}

// WithdrawBountySubmissionTransaction creates a transaction invoking `withdrawBountySubmission` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawBountySubmissionTransaction(submitter util.Uint160, submissionID int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawBountySubmission", submitter, submissionID)
}

// WithdrawBountySubmissionUnsigned creates a transaction invoking `withdrawBountySubmission` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawBountySubmissionUnsigned(submitter util.Uint160, submissionID int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawBountySubmission", nil, submitter, submissionID)
}

// ReviewBountySubmission creates a transaction invoking `reviewBountySubmission` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ReviewBountySubmission(poster util.Uint160, submissionID, status, score int64, notes string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "reviewBountySubmission", poster, submissionID, status, score, notes)
}

// ReviewBountySubmissionTransaction creates a transaction invoking `reviewBountySubmission` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReviewBountySubmissionTransaction(poster util.Uint160, submissionID, status, score int64, notes string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "reviewBountySubmission", poster, submissionID, status, score, notes)
}

// ReviewBountySubmissionUnsigned creates a transaction invoking `reviewBountySubmission` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReviewBountySubmissionUnsigned(poster util.Uint160, submissionID, status, score int64, notes string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "reviewBountySubmission", nil, poster, submissionID, status, score, notes)
}

// SelectBountyWinners creates a transaction invoking `selectBountyWinners` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SelectBountyWinners(poster util.Uint160, bountyID int64, submissionIDs, positions []int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "selectBountyWinners", poster, bountyID, submissionIDs, positions)
}

// SelectBountyWinnersTransaction creates a transaction invoking `selectBountyWinners` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SelectBountyWinnersTransaction(poster util.Uint160, bountyID int64, submissionIDs, positions []int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "selectBountyWinners", poster, bountyID, submissionIDs, positions)
}

// SelectBountyWinnersUnsigned creates a transaction invoking `selectBountyWinners` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SelectBountyWinnersUnsigned(poster util.Uint160, bountyID int64, submissionIDs, positions []int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "selectBountyWinners", nil, poster, bountyID, submissionIDs, positions)
}

// CreateBountyEscrow creates a transaction invoking `createBountyEscrow` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateBountyEscrow(poster util.Uint160, bountyID, amount int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createBountyEscrow", poster, bountyID, amount)
}

// CreateBountyEscrowTransaction creates a transaction invoking `createBountyEscrow` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateBountyEscrowTransaction(poster util.Uint160, bountyID, amount int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createBountyEscrow", poster, bountyID, amount)
}

// CreateBountyEscrowUnsigned creates a transaction invoking `createBountyEscrow` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateBountyEscrowUnsigned(poster util.Uint160, bountyID, amount int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createBountyEscrow", nil, poster, bountyID, amount)
}

// ReleaseBountyRewards creates a transaction invoking `releaseBountyRewards` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ReleaseBountyRewards(poster util.Uint160, bountyID int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "releaseBountyRewards", poster, bountyID)
}

// ReleaseBountyRewardsTransaction creates a transaction invoking `releaseBountyRewards` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ReleaseBountyRewardsTransaction(poster util.Uint160, bountyID int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "releaseBountyRewards", poster, bountyID)
}

// ReleaseBountyRewardsUnsigned creates a transaction invoking `releaseBountyRewards` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ReleaseBountyRewardsUnsigned(poster util.Uint160, bountyID int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "releaseBountyRewards", nil, poster, bountyID)
}

// SubmitRating creates a transaction invoking `submitRating` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitRating(rater util.Uint160, jobID, stars int64, comment string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitRating", rater, jobID, stars, comment)
}

// SubmitRatingTransaction creates a transaction invoking `submitRating` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitRatingTransaction(rater util.Uint160, jobID, stars int64, comment string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitRating", rater, jobID, stars, comment)
}

// SubmitRatingUnsigned creates a transaction invoking `submitRating` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitRatingUnsigned(rater util.Uint160, jobID, stars int64, comment string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitRating", nil, rater, jobID, stars, comment)
}

// UpdateUserProfile creates a transaction invoking `updateUserProfile` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateUserProfile(addr util.Uint160, displayName, bio string, skills, links []string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateUserProfile", addr, displayName, bio, skills, links)
}

// UpdateUserProfileTransaction creates a transaction invoking `updateUserProfile` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateUserProfileTransaction(addr util.Uint160, displayName, bio string, skills, links []string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateUserProfile", addr, displayName, bio, skills, links)
}

// UpdateUserProfileUnsigned creates a transaction invoking `updateUserProfile` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUserProfileUnsigned(addr util.Uint160, displayName, bio string, skills, links []string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateUserProfile", nil, addr, displayName, bio, skills, links)
}

// UpdateConfig creates a transaction invoking `updateConfig` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateConfig(caller, newAdmin util.Uint160, feePercent, minEscrowAmount, disputePeriodDays, maxJobDurationDays int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateConfig", caller, newAdmin, feePercent, minEscrowAmount, disputePeriodDays, maxJobDurationDays)
}

// UpdateConfigTransaction creates a transaction invoking `updateConfig` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateConfigTransaction(caller, newAdmin util.Uint160, feePercent, minEscrowAmount, disputePeriodDays, maxJobDurationDays int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateConfig", caller, newAdmin, feePercent, minEscrowAmount, disputePeriodDays, maxJobDurationDays)
}

// UpdateConfigUnsigned creates a transaction invoking `updateConfig` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateConfigUnsigned(caller, newAdmin util.Uint160, feePercent, minEscrowAmount, disputePeriodDays, maxJobDurationDays int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateConfig", nil, caller, newAdmin, feePercent, minEscrowAmount, disputePeriodDays, maxJobDurationDays)
}

// PauseContract creates a transaction invoking `pauseContract` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) PauseContract(caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "pauseContract", caller)
}

// PauseContractTransaction creates a transaction invoking `pauseContract` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) PauseContractTransaction(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "pauseContract", caller)
}

// PauseContractUnsigned creates a transaction invoking `pauseContract` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) PauseContractUnsigned(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "pauseContract", nil, caller)
}

// UnpauseContract creates a transaction invoking `unpauseContract` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UnpauseContract(caller util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unpauseContract", caller)
}

// UnpauseContractTransaction creates a transaction invoking `unpauseContract` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnpauseContractTransaction(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unpauseContract", caller)
}

// UnpauseContractUnsigned creates a transaction invoking `unpauseContract` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnpauseContractUnsigned(caller util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unpauseContract", nil, caller)
}

// BlockAddress creates a transaction invoking `blockAddress` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) BlockAddress(caller, addr util.Uint160, reason string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "blockAddress", caller, addr, reason)
}

// BlockAddressTransaction creates a transaction invoking `blockAddress` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BlockAddressTransaction(caller, addr util.Uint160, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "blockAddress", caller, addr, reason)
}

// BlockAddressUnsigned creates a transaction invoking `blockAddress` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BlockAddressUnsigned(caller, addr util.Uint160, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "blockAddress", nil, caller, addr, reason)
}

// UnblockAddress creates a transaction invoking `unblockAddress` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UnblockAddress(caller, addr util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unblockAddress", caller, addr)
}

// UnblockAddressTransaction creates a transaction invoking `unblockAddress` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnblockAddressTransaction(caller, addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unblockAddress", caller, addr)
}

// UnblockAddressUnsigned creates a transaction invoking `unblockAddress` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnblockAddressUnsigned(caller, addr util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unblockAddress", nil, caller, addr)
}

// ResetRateLimit creates a transaction invoking `resetRateLimit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ResetRateLimit(caller, addr util.Uint160, action int64) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "resetRateLimit", caller, addr, action)
}

// ResetRateLimitTransaction creates a transaction invoking `resetRateLimit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ResetRateLimitTransaction(caller, addr util.Uint160, action int64) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "resetRateLimit", caller, addr, action)
}

// ResetRateLimitUnsigned creates a transaction invoking `resetRateLimit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ResetRateLimitUnsigned(caller, addr util.Uint160, action int64) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "resetRateLimit", nil, caller, addr, action)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}
