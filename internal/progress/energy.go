package progress

import (
	"time"

	"github.com/jason-napier/demonling/internal/game"
)

// Regenerate credits one energy point per whole elapsed minute since the
// record's last update, capped at the maximum. The timestamp advances only by
// the minutes actually credited, so a partial minute keeps accruing; once the
// cap is reached the clock snaps to now so time at full energy is not banked.
// Returns the number of points credited.
func Regenerate(p *game.PlayerState, now time.Time) int {
	if now.Before(p.LastEnergyUpdate) {
		// A clock that moved backwards resets the anchor rather than
		// granting a huge catch-up on the next call.
		p.LastEnergyUpdate = now
		return 0
	}
	if p.Energy >= p.EnergyMax {
		p.LastEnergyUpdate = now
		return 0
	}
	minutes := int(now.Sub(p.LastEnergyUpdate) / time.Minute)
	if minutes <= 0 {
		return 0
	}
	credit := minutes * game.EnergyPerMinute
	if room := p.EnergyMax - p.Energy; credit >= room {
		p.Energy = p.EnergyMax
		p.LastEnergyUpdate = now
		return room
	}
	p.Energy += credit
	p.LastEnergyUpdate = p.LastEnergyUpdate.Add(time.Duration(minutes) * time.Minute)
	return credit
}

// RefillWithShards trades soul shards for a full energy bar. The record is
// untouched when the player cannot afford it.
func RefillWithShards(p *game.PlayerState, now time.Time) error {
	if p.SoulShards < game.EnergyRefillShardCost {
		return ErrInsufficientShards
	}
	p.SoulShards -= game.EnergyRefillShardCost
	p.Energy = p.EnergyMax
	p.LastEnergyUpdate = now
	return nil
}

// RefillFree tops the bar up with no cost. Exposed for development and
// testing endpoints only.
func RefillFree(p *game.PlayerState, now time.Time) {
	p.Energy = p.EnergyMax
	p.LastEnergyUpdate = now
}
