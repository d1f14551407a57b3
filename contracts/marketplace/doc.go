/*
Package marketplace contains implementation of OpenWork Marketplace contract
deployed in Neo N3 chains.

Marketplace contract matches job and bounty posters with freelancers,
custodies payment in escrow and adjudicates disputes. Jobs collect proposals
and are assigned to a single freelancer; bounties collect submissions and pay
out to ranked winners according to a reward distribution fixed at creation.
Funds are held by the contract between escrow creation and release or refund,
with the platform fee computed at funding time. An admin account configured at
deploy adjudicates disputes, maintains the block list and may pause the
contract; the committee retains contract update access.

All mutating methods take the acting account as the first argument and check
its witness. Faults are reported by panicking with a message prefixed by one
of the error kinds from the marketconst package.
*/
package marketplace

/*
Contract storage model.

# Summary
Current conventions:
 <id8>: 8-byte big-endian entity identifier
 <addr>: 20-byte account script hash (interop.Hash160)
 <eid>: 32-byte content-derived escrow or dispute identifier

Key-value storage format:
 - 's' -> std.Serialize(Config)
   contract configuration
 - 'g' -> 1
   reentrancy flag, present only while a fund-moving call is in flight
 - 'i<kind>' -> int
   next identifier per entity kind (job, proposal, bounty, submission, audit)
 - 'j<id8>' -> std.Serialize(Job)
   jobs by identifier
 - 'J<addr><id8>' -> <id8>
   user-by-user jobs
 - 'p<id8>' -> std.Serialize(Proposal)
   proposals by identifier
 - 'P<id8><id8>' -> <id8>
   per-job proposals (job id, then proposal id)
 - 'f<addr><id8>' -> <id8>
   user-by-user proposals
 - 'q<id8><addr>' -> <id8>
   (job, freelancer) pair guard against duplicate proposals
 - 'e<eid>' -> std.Serialize(Escrow)
   escrows by identifier
 - 'E<id8>' -> <eid>
   job escrow reference
 - 'b<id8>' -> std.Serialize(Bounty)
   bounties by identifier
 - 'B<addr><id8>' -> <id8>
   user-by-user bounties
 - 'w<id8>' -> std.Serialize(BountySubmission)
   bounty submissions by identifier
 - 'W<id8><id8>' -> <id8>
   per-bounty submissions (bounty id, then submission id)
 - 'u<addr><id8>' -> <id8>
   user-by-user submissions
 - 'v<id8><addr>' -> <id8>
   (bounty, submitter) pair guard against duplicate submissions
 - 'x<eid>' -> std.Serialize(Dispute)
   disputes by identifier
 - 'X<id8><eid>' -> <eid>
   per-job disputes
 - 'y<addr><eid>' -> <eid>
   user-by-user disputes
 - 'r<id8><addr>' -> std.Serialize(Rating)
   ratings by (job, rater)
 - 'R<addr><id8><addr>' -> []byte
   user-by-user received ratings, value is the 'r' key suffix
 - 't<addr>' -> std.Serialize(UserStats)
   per-user aggregates
 - 'n<addr>' -> std.Serialize(UserProfile)
   user profiles
 - 'k<addr>' -> std.Serialize(BlockEntry)
   block list
 - 'l<addr><action>' -> std.Serialize(RateLimit)
   fixed-window rate counters per (address, action)
 - 'a<id8>' -> std.Serialize(AuditLogEntry)
   append-only audit log
 - 'm' -> std.Serialize(SecurityMetrics)
   security counters
 - 'M' -> std.Serialize(PlatformStats)
   platform-wide totals

# Identifiers
Job, proposal, bounty, submission and audit identifiers are monotonic
integers, one counter per kind, never reused. Escrow and dispute identifiers
are SHA-256 hashes over the referenced entity, the parties and the creation
time, so they are opaque and content-derived.

# Funds
Native escrows are funded with GAS moved from the payer to the contract
inside the creating call. Token escrows are funded through the OnNEP17Payment
hook of any NEP-17 token. The contract never holds more than the sum of
outstanding escrow amounts.
*/
