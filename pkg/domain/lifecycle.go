package domain

// EntityLifecycleStatus is the soft-delete state carried by most entities.
type EntityLifecycleStatus string

const (
	LifecycleActive  EntityLifecycleStatus = "ACTIVE"
	LifecyclePending EntityLifecycleStatus = "PENDING"
	LifecycleRemoved EntityLifecycleStatus = "REMOVED"
)
