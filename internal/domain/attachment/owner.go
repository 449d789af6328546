package attachment

import (
	"fmt"

	"github.com/rentdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OwnerKind discriminates the business entity an attachment belongs to.
// The zero value is invalid; construct OwnerRef values through the typed
// constructors below so an invalid kind is unrepresentable.
type OwnerKind string

const (
	OwnerKindExpense   OwnerKind = "expense"
	OwnerKindProperty  OwnerKind = "property"
	OwnerKindWorkOrder OwnerKind = "work_order"
)

// IsValid checks if the owner kind is one of the known discriminants
func (k OwnerKind) IsValid() bool {
	switch k {
	case OwnerKindExpense, OwnerKindProperty, OwnerKindWorkOrder:
		return true
	default:
		return false
	}
}

// Namespace returns the storage-key path segment for this owner kind
func (k OwnerKind) Namespace() string {
	switch k {
	case OwnerKindExpense:
		return "receipts"
	case OwnerKindProperty:
		return "property-photos"
	case OwnerKindWorkOrder:
		return "workorder-photos"
	default:
		return ""
	}
}

// OwnerRef is a typed polymorphic reference to the entity an attachment is
// associated with.
type OwnerRef struct {
	Kind OwnerKind
	ID   uuid.UUID
}

// ExpenseOwner creates an OwnerRef pointing at an expense
func ExpenseOwner(id uuid.UUID) OwnerRef {
	return OwnerRef{Kind: OwnerKindExpense, ID: id}
}

// PropertyOwner creates an OwnerRef pointing at a property
func PropertyOwner(id uuid.UUID) OwnerRef {
	return OwnerRef{Kind: OwnerKindProperty, ID: id}
}

// WorkOrderOwner creates an OwnerRef pointing at a work order
func WorkOrderOwner(id uuid.UUID) OwnerRef {
	return OwnerRef{Kind: OwnerKindWorkOrder, ID: id}
}

// NewOwnerRef builds an OwnerRef from a raw kind string, for boundaries that
// receive the discriminant over the wire
func NewOwnerRef(kind string, id uuid.UUID) (OwnerRef, error) {
	k := OwnerKind(kind)
	if !k.IsValid() {
		return OwnerRef{}, shared.NewValidation("INVALID_OWNER_KIND",
			fmt.Sprintf("Unknown owner kind '%s'", kind))
	}
	if id == uuid.Nil {
		return OwnerRef{}, shared.NewValidation("INVALID_OWNER_ID", "Owner ID cannot be empty")
	}
	return OwnerRef{Kind: k, ID: id}, nil
}

// Validate checks the reference is fully populated
func (o OwnerRef) Validate() error {
	if !o.Kind.IsValid() {
		return shared.NewValidation("INVALID_OWNER_KIND", "Owner kind is not valid")
	}
	if o.ID == uuid.Nil {
		return shared.NewValidation("INVALID_OWNER_ID", "Owner ID cannot be empty")
	}
	return nil
}

// CanOwnPhotos returns true for owner kinds that carry photo galleries.
// Expenses own receipts, never photos.
func (o OwnerRef) CanOwnPhotos() bool {
	return o.Kind == OwnerKindProperty || o.Kind == OwnerKindWorkOrder
}

// String renders the reference for log fields and error messages
func (o OwnerRef) String() string {
	return fmt.Sprintf("%s/%s", o.Kind, o.ID)
}
