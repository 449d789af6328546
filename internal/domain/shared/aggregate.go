package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the identity and timestamps every persisted domain
// object has. Column mapping lives in the persistence models, not here.
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBaseEntity creates a base entity with a fresh ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BaseAggregateRoot adds an optimistic-lock version and a pending domain
// event list on top of BaseEntity. Versions start at 1 and bump on every
// state change.
type BaseAggregateRoot struct {
	BaseEntity
	Version      int
	domainEvents []DomainEvent
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// AddDomainEvent records an event raised by a state change
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns the events pending publication
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents drops pending events after they have been published
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// NewBaseAggregateRoot creates a new base aggregate root at version 1
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// AccountAggregateRoot scopes an aggregate to one account. Every record in
// the system belongs to exactly one account; repositories take the account
// ID explicitly on every call rather than relying on an ambient filter.
type AccountAggregateRoot struct {
	BaseAggregateRoot
	AccountID uuid.UUID
	CreatedBy *uuid.UUID
}

// NewAccountAggregateRoot creates a new account-scoped aggregate root
func NewAccountAggregateRoot(accountID uuid.UUID) AccountAggregateRoot {
	return AccountAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		AccountID:         accountID,
	}
}

// SetCreatedBy records the acting user when the caller supplied one
func (a *AccountAggregateRoot) SetCreatedBy(userID uuid.UUID) {
	a.CreatedBy = &userID
}
