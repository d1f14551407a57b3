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
	// Rating is one party's review of the other over a completed job,
	// keyed by (job, rater) so the same engagement cannot be rated twice.
	Rating struct {
		JobID     int
		Rater     interop.Hash160
		Rated     interop.Hash160
		Stars     int
		Comment   string
		CreatedAt int
	}

	// UserStats are maintained incrementally on job, bounty and rating
	// transitions. Readers derive the average rating as RatingSum/Ratings.
	UserStats struct {
		JobsPosted     int
		JobsCompleted  int
		BountiesPosted int
		Earned         int
		Spent          int
		RatingSum      int
		Ratings        int
	}

	UserProfile struct {
		DisplayName string
		Bio         string
		Skills      []string
		Links       []string
		UpdatedAt   int
	}
)

// SubmitRating rates the counterparty of a completed job with 1 to 5 stars.
// The rater must be the poster or the assigned freelancer; the counterparty
// is rated. One rating per (job, rater).
func SubmitRating(rater interop.Hash160, jobID, stars int, comment string) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, rater)

	job := mustGetJob(ctx, jobID)
	if job.Status != cst.JobCompleted {
		panic(cst.ErrInvalidState + ": only a completed job can be rated")
	}

	var rated interop.Hash160
	if rater.Equals(job.Poster) {
		rated = job.Freelancer
	} else if rater.Equals(job.Freelancer) {
		rated = job.Poster
	} else {
		panic(cst.ErrUnauthorized + ": only the poster or the assigned freelancer can rate")
	}
	if rated == nil {
		panic(cst.ErrInvalidState + ": job has no counterparty to rate")
	}

	if stars < 1 || stars > 5 {
		panic(cst.ErrInvalidInput + ": stars must be between 1 and 5")
	}
	if len(comment) > cst.MaxCommentLen {
		panic(cst.ErrInvalidInput + ": comment must not exceed " + std.Itoa(cst.MaxCommentLen, 10) + " characters")
	}

	key := pairIDKey(ratingPrefix, jobID, rater)
	if storage.Get(ctx, key) != nil {
		panic(cst.ErrAlreadyExists + ": rating for this job already exists")
	}

	rating := Rating{
		JobID:     jobID,
		Rater:     rater,
		Rated:     rated,
		Stars:     stars,
		Comment:   comment,
		CreatedAt: runtime.GetTime(),
	}
	common.SetSerialized(ctx, key, rating)

	// Index received ratings by the rated account; the value is the 'r' key
	// suffix so the record can be looked up directly.
	idx := append(append([]byte{userRatingPrefix}, rated...), idSuffix(jobID)...)
	idx = append(idx, rater...)
	storage.Put(ctx, idx, key[1:])

	us := getUserStats(ctx, rated)
	us.RatingSum += stars
	us.Ratings += 1
	putUserStats(ctx, rated, us)

	runtime.Notify("RatingSubmitted", jobID, rater, rated, stars)
}

// UpdateUserProfile creates or replaces the caller's public profile.
func UpdateUserProfile(addr interop.Hash160, displayName, bio string, skills, links []string) {
	ctx := storage.GetContext()
	cfg := getConfig(ctx)
	requireCaller(ctx, cfg, addr)

	requireText(displayName, cst.MaxTitleLen, "display name")
	if len(bio) > cst.MaxDescriptionLen {
		panic(cst.ErrInvalidInput + ": bio must not exceed " + std.Itoa(cst.MaxDescriptionLen, 10) + " characters")
	}
	requireSkills(skills)
	requireRefs(links, "link")

	profile := UserProfile{
		DisplayName: displayName,
		Bio:         bio,
		Skills:      skills,
		Links:       links,
		UpdatedAt:   runtime.GetTime(),
	}
	common.SetSerialized(ctx, append([]byte{profilePrefix}, addr...), profile)
}

// GetUserRatings returns ratings received by the given account.
func GetUserRatings(addr interop.Hash160) []Rating {
	ctx := storage.GetReadOnlyContext()
	refs := collectRefs(ctx, append([]byte{userRatingPrefix}, addr...))

	res := []Rating{}
	for i := 0; i < len(refs); i++ {
		data := storage.Get(ctx, append([]byte{ratingPrefix}, refs[i]...))
		if data != nil {
			res = append(res, std.Deserialize(data.([]byte)).(Rating))
		}
	}
	return res
}

// GetJobRating returns the rating submitted by the given rater on a job.
func GetJobRating(jobID int, rater interop.Hash160) Rating {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, pairIDKey(ratingPrefix, jobID, rater))
	if data == nil {
		panic(cst.ErrNotFound + ": rating does not exist")
	}
	return std.Deserialize(data.([]byte)).(Rating)
}

// GetUserStats returns the aggregates of the given account. An account with
// no history reads as all zeros.
func GetUserStats(addr interop.Hash160) UserStats {
	ctx := storage.GetReadOnlyContext()
	return getUserStats(ctx, addr)
}

// GetUserProfile returns the profile of the given account.
func GetUserProfile(addr interop.Hash160) UserProfile {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, append([]byte{profilePrefix}, addr...))
	if data == nil {
		panic(cst.ErrNotFound + ": profile does not exist")
	}
	return std.Deserialize(data.([]byte)).(UserProfile)
}

func getUserStats(ctx storage.Context, addr interop.Hash160) UserStats {
	data := storage.Get(ctx, append([]byte{statsPrefix}, addr...))
	if data == nil {
		return UserStats{}
	}
	return std.Deserialize(data.([]byte)).(UserStats)
}

func putUserStats(ctx storage.Context, addr interop.Hash160, us UserStats) {
	common.SetSerialized(ctx, append([]byte{statsPrefix}, addr...), us)
}
