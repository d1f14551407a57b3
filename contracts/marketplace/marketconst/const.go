// Package marketconst contains constants shared between the marketplace
// contract and off-chain callers: error kinds, entity statuses, validation
// limits and rate-limit caps. Contract methods panic with messages prefixed
// by one of the Err* kinds, so clients and tests can match failures without
// parsing free-form text.
package marketconst

// Error kinds. Every fault message produced by the contract starts with one
// of these, followed by ": " and a human-readable detail.
const (
	ErrUnauthorized      = "Unauthorized"
	ErrPaused            = "ContractPaused"
	ErrNotFound          = "NotFound"
	ErrAlreadyExists     = "AlreadyExists"
	ErrInvalidInput      = "InvalidInput"
	ErrInsufficientFunds = "InsufficientFunds"
	ErrRateLimit         = "RateLimitExceeded"
	ErrReentrancy        = "ReentrancyGuard"
	ErrInvalidState      = "InvalidStateTransition"
	ErrFeeTooHigh        = "PlatformFeeTooHigh"
	ErrBlocked           = "Blocked"
)

// Job statuses.
const (
	JobOpen = iota
	JobInProgress
	JobCompleted
	JobCancelled
	JobDisputed
)

// Proposal statuses.
const (
	ProposalActive = iota
	ProposalAccepted
	ProposalWithdrawn
)

// Bounty statuses.
const (
	BountyOpen = iota
	BountyInReview
	BountyCompleted
	BountyCancelled
	BountyExpired
)

// Bounty submission statuses.
const (
	SubmissionSubmitted = iota
	SubmissionUnderReview
	SubmissionApproved
	SubmissionRejected
	SubmissionWinner
	SubmissionWithdrawn
)

// Dispute statuses.
const (
	DisputeRaised = iota
	DisputeResolved
)

// Rate-limited action codes, one byte each. Counters are kept per
// (address, action) pair over a fixed UTC-day window.
const (
	ActionJob      int = 'j'
	ActionProposal int = 'p'
	ActionBounty   int = 'b'
	ActionDispute  int = 'd'
	ActionEscrow   int = 'e'
	ActionAdmin    int = 'a'
)

// Daily caps per action.
const (
	MaxJobsPerDay      = 5
	MaxProposalsPerDay = 20
	MaxBountiesPerDay  = 3
	MaxDisputesPerDay  = 2
	MaxEscrowsPerDay   = 10
	MaxAdminOpsPerDay  = 50
)

// Validation limits.
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 10000
	MaxCoverLetterLen = 5000
	MaxCommentLen     = 1000
	MaxReasonLen      = 1000
	MaxSkills         = 20
	MaxDocuments      = 10
	MaxMilestones     = 10

	// MaxPlatformFeePercent bounds Config.PlatformFeePercent.
	MaxPlatformFeePercent = 10
)

// Config defaults applied at deploy when the corresponding argument is
// omitted.
const (
	DefaultPlatformFeePercent = 5
	DefaultMinEscrowAmount    = 1000
	DefaultDisputePeriodDays  = 7
	DefaultMaxJobDuration     = 365
)

// Pagination bounds for list queries.
const (
	DefaultPageSize = 30
	MaxPageSize     = 50
)

// MillisecondsInDay is the rate-limit window and the unit of all *Days
// config fields when converted to chain time.
const MillisecondsInDay = 24 * 60 * 60 * 1000
