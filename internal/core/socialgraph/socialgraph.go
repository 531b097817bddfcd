// Package socialgraph resolves discrete social distance between users
// over a read-only graph snapshot
package socialgraph

// Distance is the hop count between two users in the connection graph
type Distance int

const (
	// DistanceSelf means viewer and target are the same user
	DistanceSelf Distance = 0
	// DistanceDirect means the target is a direct connection
	DistanceDirect Distance = 1
	// DistanceIndirect means the target is a connection of a connection
	DistanceIndirect Distance = 2
	// DistanceUnconnected is the sentinel for anything beyond two hops
	// downstream weighting treats it as zero, never as an error
	DistanceUnconnected Distance = 3
)

// String returns a short label for logs and explanations
func (d Distance) String() string {
	switch d {
	case DistanceSelf:
		return "self"
	case DistanceDirect:
		return "direct"
	case DistanceIndirect:
		return "indirect"
	default:
		return "unconnected"
	}
}

// Snapshot is a read-only view of one user's social neighborhood
// the graph store owns the edges; the engine only looks up membership
type Snapshot struct {
	UserID   string
	Direct   map[string]struct{}
	Indirect map[string]struct{}
}

// Isolated returns an empty snapshot for userID
// used when the graph store fails, so scoring stays available
func Isolated(userID string) Snapshot {
	return Snapshot{UserID: userID}
}

// Distance returns the discrete distance from the snapshot owner to targetID
func (s Snapshot) Distance(targetID string) Distance {
	if targetID == s.UserID {
		return DistanceSelf
	}
	if _, ok := s.Direct[targetID]; ok {
		return DistanceDirect
	}
	if _, ok := s.Indirect[targetID]; ok {
		return DistanceIndirect
	}
	return DistanceUnconnected
}

// DeriveIndirect builds the indirect set as connections of direct
// connections minus self minus the direct set
func DeriveIndirect(self string, direct []string, neighbors map[string][]string) map[string]struct{} {
	ds := make(map[string]struct{}, len(direct))
	for _, id := range direct {
		ds[id] = struct{}{}
	}
	out := make(map[string]struct{})
	for _, d := range direct {
		for _, peer := range neighbors[d] {
			if peer == self {
				continue
			}
			if _, ok := ds[peer]; ok {
				continue
			}
			out[peer] = struct{}{}
		}
	}
	return out
}

// Build assembles a Snapshot from raw edge lists
func Build(self string, direct []string, neighbors map[string][]string) Snapshot {
	ds := make(map[string]struct{}, len(direct))
	for _, id := range direct {
		if id == self {
			continue
		}
		ds[id] = struct{}{}
	}
	return Snapshot{
		UserID:   self,
		Direct:   ds,
		Indirect: DeriveIndirect(self, direct, neighbors),
	}
}
