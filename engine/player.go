package engine

import "github.com/lixenwraith/tower-defense/parameter"

// LedgerReason tags a currency change
type LedgerReason string

const (
	ReasonStart    LedgerReason = "start"
	ReasonKill     LedgerReason = "kill"
	ReasonPurchase LedgerReason = "purchase"
)

// LedgerEntry records one currency change in application order
type LedgerEntry struct {
	Tick    int64
	Reason  LedgerReason
	Delta   int64
	Balance uint32
}

// PlayerResource is the player singleton
// Money never goes negative, debits are gated; Health floors at zero
type PlayerResource struct {
	Money  uint32
	Health uint32
	Ledger []LedgerEntry
}

// NewPlayerResource creates a player with the given starting stats
func NewPlayerResource(money, health uint32) *PlayerResource {
	p := &PlayerResource{Money: money, Health: health}
	p.Ledger = append(p.Ledger, LedgerEntry{Reason: ReasonStart, Delta: int64(money), Balance: money})
	return p
}

// DefaultPlayerResource uses the standard starting stats
func DefaultPlayerResource() *PlayerResource {
	return NewPlayerResource(parameter.PlayerStartMoney, parameter.PlayerStartHealth)
}

// Credit adds amount to money
func (p *PlayerResource) Credit(tick int64, reason LedgerReason, amount uint32) {
	p.Money += amount
	p.Ledger = append(p.Ledger, LedgerEntry{Tick: tick, Reason: reason, Delta: int64(amount), Balance: p.Money})
}

// CanAfford reports money >= cost, the purchase gate
func (p *PlayerResource) CanAfford(cost uint32) bool {
	return p.Money >= cost
}

// TryDebit subtracts cost when affordable; otherwise leaves money unchanged and returns false
func (p *PlayerResource) TryDebit(tick int64, reason LedgerReason, cost uint32) bool {
	if !p.CanAfford(cost) {
		return false
	}
	p.Money -= cost
	p.Ledger = append(p.Ledger, LedgerEntry{Tick: tick, Reason: reason, Delta: -int64(cost), Balance: p.Money})
	return true
}

// Hurt subtracts damage from health, floored at zero
// Returns the remaining health and whether this call took health to zero
func (p *PlayerResource) Hurt(damage uint32) (remaining uint32, died bool) {
	if p.Health == 0 {
		return 0, false
	}
	if damage >= p.Health {
		p.Health = 0
		return 0, true
	}
	p.Health -= damage
	return p.Health, false
}

// LedgerSince returns entries recorded on or after tick
func (p *PlayerResource) LedgerSince(tick int64) []LedgerEntry {
	for i, e := range p.Ledger {
		if e.Tick >= tick && e.Reason != ReasonStart {
			return p.Ledger[i:]
		}
	}
	return nil
}
