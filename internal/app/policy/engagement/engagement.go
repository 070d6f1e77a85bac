// internal/app/policy/engagement/engagement.go
package engagement

import (
	"time"

	"github.com/codeit-toyproject-five/zogakzip/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeBadgeThreshold is the counter value at which a like badge is
// earned. The check is exact equality: a counter that never lands on
// this value (it cannot skip, since increments are atomic and +1) never
// triggers the badge.
const LikeBadgeThreshold = 10000

// Badge labels, in the exact form clients display them.
const (
	BadgeGroupLikes  = "그룹 공감 1만 개 이상 받기"
	BadgePostLikes   = "추억 공감 1만 개 이상 받기"
	BadgeAnniversary = "그룹 생성 후 1년 달성"
)

// BadgeAward is a pending cross-entity effect: append Badge to the
// group's badge list and bump its badgeCount. Awards are produced by
// the rule functions below and applied by the calling handler, so each
// entity's mutation stays locally visible at the call site.
type BadgeAward struct {
	GroupID primitive.ObjectID
	Badge   string
}

// GroupLiked evaluates a group like. g must carry the post-increment
// likeCount. At exactly LikeBadgeThreshold the group earns the
// group-likes badge; any other value produces no effects.
func GroupLiked(g models.Group) []BadgeAward {
	if g.LikeCount != LikeBadgeThreshold {
		return nil
	}
	return []BadgeAward{{GroupID: g.ID, Badge: BadgeGroupLikes}}
}

// PostLiked evaluates a post like. p must carry the post-increment
// likeCount. At exactly LikeBadgeThreshold the OWNING GROUP earns the
// post-likes badge; the post itself never holds badges. Callers that
// cannot resolve the owning group skip the award — the like itself is
// never rolled back.
func PostLiked(p models.Post) []BadgeAward {
	if p.LikeCount != LikeBadgeThreshold {
		return nil
	}
	return []BadgeAward{{GroupID: p.GroupID, Badge: BadgePostLikes}}
}

// HasBadge reports whether the badge has already been awarded.
func HasBadge(badges []string, badge string) bool {
	for _, b := range badges {
		if b == badge {
			return true
		}
	}
	return false
}

// AnniversaryWindow returns the half-open [start, end) range of
// createdAt values that qualify for the one-year badge when the sweep
// runs at now: local midnight of the same calendar date one year
// earlier, plus 24 hours. time.Date normalizes Feb 29 to Mar 1 on
// non-leap years, matching the sweep's calendar arithmetic.
func AnniversaryWindow(now time.Time) (start, end time.Time) {
	y, m, d := now.Date()
	start = time.Date(y-1, m, d, 0, 0, 0, 0, now.Location())
	end = start.Add(24 * time.Hour)
	return start, end
}

// AnniversaryAwards returns the one-year badge awards for the given
// candidate groups. Groups already holding the badge are skipped, so
// re-running the sweep on the same day never double-awards.
func AnniversaryAwards(groups []models.Group) []BadgeAward {
	var awards []BadgeAward
	for _, g := range groups {
		if HasBadge(g.Badges, BadgeAnniversary) {
			continue
		}
		awards = append(awards, BadgeAward{GroupID: g.ID, Badge: BadgeAnniversary})
	}
	return awards
}
