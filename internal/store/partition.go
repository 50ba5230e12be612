package store

import "strings"

// PartitionKind classifies a partition by the entity types it may contain.
type PartitionKind int

const (
	// KindCommon holds People, Teams, Locations, history, preferences and
	// grants; readable and writable by all authenticated principals.
	KindCommon PartitionKind = iota
	// KindManager holds the authoritative Task list; Admin/Manager access.
	KindManager
	// KindTeamTasks holds one team's working copy of its assigned tasks.
	KindTeamTasks
)

// Naming derives partition handles from the application name. Handles are
// deterministic: a team's task partition can be resolved from its id alone,
// before the Team record itself has replicated.
type Naming struct {
	AppName string
}

// Common returns the handle of the shared People/Teams/Locations partition.
func (n Naming) Common() string {
	return n.AppName + "-CommonPartition"
}

// Manager returns the handle of the master task list partition.
func (n Naming) Manager() string {
	return n.AppName + "-ManagerPartition"
}

// teamPrefix is the fixed prefix for per-team task partitions.
func (n Naming) teamPrefix() string {
	return n.AppName + "-TeamTasks-"
}

// TeamTasks returns the handle of the given team's task partition.
func (n Naming) TeamTasks(teamID string) string {
	return n.teamPrefix() + teamID
}

// Kind classifies a partition handle. Unknown handles classify as team task
// partitions only when they carry the team prefix.
func (n Naming) Kind(partition string) (PartitionKind, bool) {
	switch partition {
	case n.Common():
		return KindCommon, true
	case n.Manager():
		return KindManager, true
	}
	if strings.HasPrefix(partition, n.teamPrefix()) && len(partition) > len(n.teamPrefix()) {
		return KindTeamTasks, true
	}
	return 0, false
}

// TeamID extracts the team id from a team task partition handle.
func (n Naming) TeamID(partition string) (string, bool) {
	if kind, ok := n.Kind(partition); !ok || kind != KindTeamTasks {
		return "", false
	}
	return strings.TrimPrefix(partition, n.teamPrefix()), true
}
