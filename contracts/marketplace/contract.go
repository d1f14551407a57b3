package marketplace

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/openwork-network/openwork-contract/common"
	cst "github.com/openwork-network/openwork-contract/contracts/marketplace/marketconst"
)

type (
	// Config is the contract configuration record. It is written once by
	// _deploy and mutated only through UpdateConfig.
	Config struct {
		Admin              interop.Hash160
		PlatformFeePercent int
		MinEscrowAmount    int
		DisputePeriodDays  int
		MaxJobDurationDays int
		Paused             bool
	}

	// BlockEntry describes a block-listed account.
	BlockEntry struct {
		Reason    string
		BlockedAt int
	}

	// RateLimit is a fixed-window counter for one (address, action) pair.
	// WindowStart is the UTC day number of the window the counter belongs to.
	RateLimit struct {
		Count       int
		WindowStart int
	}

	// RateLimitStatus is the answer of GetRateLimitStatus.
	RateLimitStatus struct {
		Count       int
		Limit       int
		WindowStart int
	}

	// AuditLogEntry is one record of the append-only audit log.
	AuditLogEntry struct {
		ID        int
		Actor     interop.Hash160
		Action    string
		Target    []byte
		Detail    string
		Timestamp int
	}

	// SecurityMetrics groups security-relevant counters. RateLimitHits
	// counts window exhaustions: a failed call cannot persist writes, so the
	// counter is bumped by the call that consumes the last slot of a window.
	SecurityMetrics struct {
		TotalDisputes    int
		RateLimitHits    int
		BlockedAddresses int
	}

	// PlatformStats groups platform-wide totals.
	PlatformStats struct {
		TotalJobs          int
		TotalProposals     int
		TotalBounties      int
		TotalEscrowVolume  int
		TotalFeesCollected int
	}
)

const (
	configKey   = 's'
	guardKey    = 'g'
	counterKey  = 'i'
	metricsKey  = 'm'
	platformKey = 'M'

	jobPrefix             = 'j'
	jobOwnerPrefix        = 'J'
	proposalPrefix        = 'p'
	jobProposalPrefix     = 'P'
	userProposalPrefix    = 'f'
	proposalPairPrefix    = 'q'
	escrowPrefix          = 'e'
	jobEscrowPrefix       = 'E'
	bountyPrefix          = 'b'
	bountyOwnerPrefix     = 'B'
	submissionPrefix      = 'w'
	bountySubPrefix       = 'W'
	userSubPrefix         = 'u'
	submissionPairPrefix  = 'v'
	disputePrefix         = 'x'
	jobDisputePrefix      = 'X'
	userDisputePrefix     = 'y'
	ratingPrefix          = 'r'
	userRatingPrefix      = 'R'
	statsPrefix           = 't'
	profilePrefix         = 'n'
	blockPrefix           = 'k'
	ratePrefix            = 'l'
	auditPrefix           = 'a'

	kindJob        = 'j'
	kindProposal   = 'p'
	kindBounty     = 'b'
	kindSubmission = 'w'
	kindAudit      = 'a'

	idKeySize = 8
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)
		common.CheckVersion(version)
		return
	}

	cfg := Config{
		Admin:              common.CommitteeAddress(),
		PlatformFeePercent: cst.DefaultPlatformFeePercent,
		MinEscrowAmount:    cst.DefaultMinEscrowAmount,
		DisputePeriodDays:  cst.DefaultDisputePeriodDays,
		MaxJobDurationDays: cst.DefaultMaxJobDuration,
		Paused:             false,
	}

	if data != nil {
		args := data.([]any)
		if len(args) >= 1 && len(args[0].(interop.Hash160)) == interop.Hash160Len {
			cfg.Admin = args[0].(interop.Hash160)
		}
		if len(args) >= 2 && args[1].(int) >= 0 {
			cfg.PlatformFeePercent = args[1].(int)
		}
		if len(args) >= 3 && args[2].(int) >= 0 {
			cfg.MinEscrowAmount = args[2].(int)
		}
		if len(args) >= 4 && args[3].(int) > 0 {
			cfg.DisputePeriodDays = args[3].(int)
		}
		if len(args) >= 5 && args[4].(int) > 0 {
			cfg.MaxJobDurationDays = args[4].(int)
		}
	}

	if cfg.PlatformFeePercent > cst.MaxPlatformFeePercent {
		panic(cst.ErrFeeTooHigh + ": fee must not exceed " + std.Itoa(cst.MaxPlatformFeePercent, 10) + "%")
	}

	common.SetSerialized(ctx, configKey, cfg)
	runtime.Log("marketplace contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// by committee only.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("marketplace contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// GetConfig returns the current contract configuration.
func GetConfig() Config {
	ctx := storage.GetReadOnlyContext()
	return getConfig(ctx)
}

// UpdateConfig changes configuration fields. Admin only. Each field is
// independently optional: pass an empty newAdmin or a negative integer to
// keep the previous value.
func UpdateConfig(caller interop.Hash160, newAdmin interop.Hash160, feePercent, minEscrowAmount, disputePeriodDays, maxJobDurationDays int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireAdmin(cfg, caller)
	bumpRateLimit(ctx, caller, cst.ActionAdmin)

	if len(newAdmin) == interop.Hash160Len {
		cfg.Admin = newAdmin
	}
	if feePercent >= 0 {
		if feePercent > cst.MaxPlatformFeePercent {
			panic(cst.ErrFeeTooHigh + ": fee must not exceed " + std.Itoa(cst.MaxPlatformFeePercent, 10) + "%")
		}
		cfg.PlatformFeePercent = feePercent
	}
	if minEscrowAmount >= 0 {
		cfg.MinEscrowAmount = minEscrowAmount
	}
	if disputePeriodDays > 0 {
		cfg.DisputePeriodDays = disputePeriodDays
	}
	if maxJobDurationDays > 0 {
		cfg.MaxJobDurationDays = maxJobDurationDays
	}

	common.SetSerialized(ctx, configKey, cfg)
	appendAudit(ctx, caller, "config_update", nil, "")
	runtime.Notify("ConfigUpdated", caller)
}

// PauseContract stops all state-mutating methods except admin configuration
// and guard management. Admin only.
func PauseContract(caller interop.Hash160) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireAdmin(cfg, caller)
	if cfg.Paused {
		panic(cst.ErrInvalidState + ": contract is already paused")
	}

	cfg.Paused = true
	common.SetSerialized(ctx, configKey, cfg)
	appendAudit(ctx, caller, "pause", nil, "")
	runtime.Notify("Paused", caller)
}

// UnpauseContract resumes normal operation. Admin only.
func UnpauseContract(caller interop.Hash160) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireAdmin(cfg, caller)
	if !cfg.Paused {
		panic(cst.ErrInvalidState + ": contract is not paused")
	}

	cfg.Paused = false
	common.SetSerialized(ctx, configKey, cfg)
	appendAudit(ctx, caller, "unpause", nil, "")
	runtime.Notify("Unpaused", caller)
}

// BlockAddress puts an account on the block list. Admin only. Blocked
// accounts are rejected on every mutating entry point.
func BlockAddress(caller interop.Hash160, addr interop.Hash160, reason string) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireAdmin(cfg, caller)
	bumpRateLimit(ctx, caller, cst.ActionAdmin)
	if len(addr) != interop.Hash160Len {
		panic(cst.ErrInvalidInput + ": invalid address")
	}
	if addr.Equals(cfg.Admin) {
		panic(cst.ErrInvalidInput + ": cannot block the admin")
	}

	key := append([]byte{blockPrefix}, addr...)
	if storage.Get(ctx, key) != nil {
		panic(cst.ErrAlreadyExists + ": address is already blocked")
	}

	common.SetSerialized(ctx, key, BlockEntry{Reason: reason, BlockedAt: runtime.GetTime()})

	m := getSecurityMetrics(ctx)
	m.BlockedAddresses += 1
	common.SetSerialized(ctx, metricsKey, m)

	appendAudit(ctx, caller, "block_address", addr, reason)
	runtime.Notify("AddressBlocked", addr)
}

// UnblockAddress removes an account from the block list. Admin only.
func UnblockAddress(caller interop.Hash160, addr interop.Hash160) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireAdmin(cfg, caller)
	bumpRateLimit(ctx, caller, cst.ActionAdmin)

	key := append([]byte{blockPrefix}, addr...)
	if storage.Get(ctx, key) == nil {
		panic(cst.ErrNotFound + ": address is not blocked")
	}
	storage.Delete(ctx, key)

	m := getSecurityMetrics(ctx)
	m.BlockedAddresses -= 1
	common.SetSerialized(ctx, metricsKey, m)

	appendAudit(ctx, caller, "unblock_address", addr, "")
	runtime.Notify("AddressUnblocked", addr)
}

// IsAddressBlocked returns true if the account is on the block list.
func IsAddressBlocked(addr interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, append([]byte{blockPrefix}, addr...)) != nil
}

// ResetRateLimit clears the rate counter of one (address, action) pair
// before its window expires. Admin only.
func ResetRateLimit(caller interop.Hash160, addr interop.Hash160, action int) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireAdmin(cfg, caller)
	if rateCap(action) == 0 {
		panic(cst.ErrInvalidInput + ": unknown action")
	}

	storage.Delete(ctx, rateKey(addr, action))
	appendAudit(ctx, caller, "reset_rate_limit", addr, "")
}

// GetRateLimitStatus returns the current counter, the cap and the window of
// one (address, action) pair. A counter from an expired window reads as zero.
func GetRateLimitStatus(addr interop.Hash160, action int) RateLimitStatus {
	ctx := storage.GetReadOnlyContext()
	cap := rateCap(action)
	if cap == 0 {
		panic(cst.ErrInvalidInput + ": unknown action")
	}

	day := runtime.GetTime() / cst.MillisecondsInDay
	status := RateLimitStatus{Count: 0, Limit: cap, WindowStart: day}

	data := storage.Get(ctx, rateKey(addr, action))
	if data != nil {
		rl := std.Deserialize(data.([]byte)).(RateLimit)
		if rl.WindowStart == day {
			status.Count = rl.Count
		}
	}
	return status
}

// GetAuditLogs returns a page of the audit log starting after the given
// entry identifier (pass -1 to read from the beginning).
func GetAuditLogs(startAfter, limit int) []AuditLogEntry {
	ctx := storage.GetReadOnlyContext()
	limit = normalizeLimit(limit)
	total := nextIDValue(ctx, kindAudit)

	res := []AuditLogEntry{}
	for id := startAfter + 1; id < total && len(res) < limit; id++ {
		data := storage.Get(ctx, idKey(auditPrefix, id))
		if data == nil {
			continue
		}
		res = append(res, std.Deserialize(data.([]byte)).(AuditLogEntry))
	}
	return res
}

// GetSecurityMetrics returns the security counters.
func GetSecurityMetrics() SecurityMetrics {
	ctx := storage.GetReadOnlyContext()
	return getSecurityMetrics(ctx)
}

// GetPlatformStats returns platform-wide totals.
func GetPlatformStats() PlatformStats {
	ctx := storage.GetReadOnlyContext()
	return getPlatformStats(ctx)
}

func getConfig(ctx storage.Context) Config {
	data := storage.Get(ctx, []byte{configKey})
	if data == nil {
		panic("contract is not initialized")
	}
	return std.Deserialize(data.([]byte)).(Config)
}

func requireAdmin(cfg Config, caller interop.Hash160) {
	if !caller.Equals(cfg.Admin) {
		panic(cst.ErrUnauthorized + ": admin witness required")
	}
	common.CheckWitness(caller)
}

// requireActive panics when the contract is paused. Admin-only methods do
// not call it, so the admin can reconfigure and unpause a paused contract.
func requireActive(cfg Config) {
	if cfg.Paused {
		panic(cst.ErrPaused + ": contract is paused")
	}
}

func requireNotBlocked(ctx storage.Context, addr interop.Hash160) {
	if storage.Get(ctx, append([]byte{blockPrefix}, addr...)) != nil {
		panic(cst.ErrBlocked + ": address is blocked")
	}
}

// requireCaller is the standard entry gate of non-admin mutating methods.
func requireCaller(ctx storage.Context, cfg Config, caller interop.Hash160) {
	if len(caller) != interop.Hash160Len {
		panic(cst.ErrInvalidInput + ": invalid caller address")
	}
	requireActive(cfg)
	requireNotBlocked(ctx, caller)
	common.CheckWitness(caller)
}

func rateCap(action int) int {
	switch action {
	case cst.ActionJob:
		return cst.MaxJobsPerDay
	case cst.ActionProposal:
		return cst.MaxProposalsPerDay
	case cst.ActionBounty:
		return cst.MaxBountiesPerDay
	case cst.ActionDispute:
		return cst.MaxDisputesPerDay
	case cst.ActionEscrow:
		return cst.MaxEscrowsPerDay
	case cst.ActionAdmin:
		return cst.MaxAdminOpsPerDay
	}
	return 0
}

func rateKey(addr interop.Hash160, action int) []byte {
	key := append([]byte{ratePrefix}, addr...)
	return append(key, byte(action))
}

// bumpRateLimit counts one action against the caller's daily window and
// panics once the cap is exhausted. The window is the UTC day of the current
// chain time; a counter from a previous day restarts from zero.
func bumpRateLimit(ctx storage.Context, addr interop.Hash160, action int) {
	cap := rateCap(action)
	day := runtime.GetTime() / cst.MillisecondsInDay

	rl := RateLimit{Count: 0, WindowStart: day}
	key := rateKey(addr, action)
	data := storage.Get(ctx, key)
	if data != nil {
		stored := std.Deserialize(data.([]byte)).(RateLimit)
		if stored.WindowStart == day {
			rl = stored
		}
	}

	if rl.Count >= cap {
		panic(cst.ErrRateLimit + ": daily cap of " + std.Itoa(cap, 10) + " reached")
	}

	rl.Count += 1
	common.SetSerialized(ctx, key, rl)

	if rl.Count == cap {
		m := getSecurityMetrics(ctx)
		m.RateLimitHits += 1
		common.SetSerialized(ctx, metricsKey, m)
	}
}

func getSecurityMetrics(ctx storage.Context) SecurityMetrics {
	data := storage.Get(ctx, []byte{metricsKey})
	if data == nil {
		return SecurityMetrics{}
	}
	return std.Deserialize(data.([]byte)).(SecurityMetrics)
}

func getPlatformStats(ctx storage.Context) PlatformStats {
	data := storage.Get(ctx, []byte{platformKey})
	if data == nil {
		return PlatformStats{}
	}
	return std.Deserialize(data.([]byte)).(PlatformStats)
}

func putPlatformStats(ctx storage.Context, s PlatformStats) {
	common.SetSerialized(ctx, []byte{platformKey}, s)
}

// appendAudit writes one append-only audit record. The log is never mutated
// or truncated.
func appendAudit(ctx storage.Context, actor interop.Hash160, action string, target []byte, detail string) {
	id := nextID(ctx, kindAudit)
	entry := AuditLogEntry{
		ID:        id,
		Actor:     actor,
		Action:    action,
		Target:    target,
		Detail:    detail,
		Timestamp: runtime.GetTime(),
	}
	common.SetSerialized(ctx, idKey(auditPrefix, id), entry)
}

// nextID allocates the next identifier of the given entity kind. Identifiers
// are monotonic and never reused.
func nextID(ctx storage.Context, kind byte) int {
	key := []byte{counterKey, kind}
	id := 0
	data := storage.Get(ctx, key)
	if data != nil {
		id = data.(int)
	}
	storage.Put(ctx, key, id+1)
	return id
}

func nextIDValue(ctx storage.Context, kind byte) int {
	data := storage.Get(ctx, []byte{counterKey, kind})
	if data == nil {
		return 0
	}
	return data.(int)
}

// idKey builds a storage key from a prefix and a big-endian fixed-width
// identifier, so the range order of keys equals the numeric order of ids.
func idKey(prefix byte, id int) []byte {
	key := make([]byte, idKeySize+1)
	key[0] = prefix
	for i := idKeySize; i > 0; i-- {
		key[i] = byte(id & 0xff)
		id = id >> 8
	}
	return key
}

func idSuffix(id int) []byte {
	return idKey(0, id)[1:]
}

// enterGuard sets the reentrancy flag. Every fund-moving method sets it
// before the external transfer and clears it after; a nested call that
// observes the flag faults.
func enterGuard(ctx storage.Context) {
	if storage.Get(ctx, []byte{guardKey}) != nil {
		panic(cst.ErrReentrancy + ": reentrant call")
	}
	storage.Put(ctx, []byte{guardKey}, 1)
}

func exitGuard(ctx storage.Context) {
	storage.Delete(ctx, []byte{guardKey})
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return cst.DefaultPageSize
	}
	if limit > cst.MaxPageSize {
		return cst.MaxPageSize
	}
	return limit
}

// collectRefs reads identifier values stored under an index prefix.
func collectRefs(ctx storage.Context, prefix []byte) [][]byte {
	res := [][]byte{}
	it := storage.Find(ctx, prefix, storage.ValuesOnly)
	for iterator.Next(it) {
		res = append(res, iterator.Value(it).([]byte))
	}
	return res
}
