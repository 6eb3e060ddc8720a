// FILE: internal/entity/plan_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type PlanStatus string
type WithdrawalType string

const (
	PlanStatusActive           PlanStatus = "ativo"
	PlanStatusEliminated       PlanStatus = "eliminado"
	PlanStatusPaused           PlanStatus = "pausado"
	PlanStatusTest1            PlanStatus = "teste_1"
	PlanStatusTest2            PlanStatus = "teste_2"
	PlanStatusTest1SecondTry   PlanStatus = "teste_1_sc"
	PlanStatusTest2SecondTry   PlanStatus = "teste_2_sc"
	PlanStatusSimulatedPayout  PlanStatus = "sim_rem"

	WithdrawalMonthly  WithdrawalType = "mensal"
	WithdrawalBiweekly WithdrawalType = "quinzenal"
)

// Plan is a catalog item. Immutable price/name changes are allowed until the
// plan is referenced by an acquisition; deletion is refused after that.
type Plan struct {
	Id          uuid.UUID
	Name        string
	Description *string
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AcquiredPlan links a trader to a Plan. WalletId is sequential per client,
// zero-padded to 3 digits, and not globally unique.
type AcquiredPlan struct {
	Id             uuid.UUID
	ClientId       uuid.UUID
	PlanId         uuid.UUID
	WalletId       string
	Status         PlanStatus
	WithdrawalType WithdrawalType
	AcquiredAt     time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Relations
	Plan *Plan
}

// AcquiredPlanListing is a joined admin view row.
type AcquiredPlanListing struct {
	AcquiredPlan
	ClientName  string
	ClientEmail string
	PlanName    string
	PlanPrice   float64
}
