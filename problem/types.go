package problem

import "errors"

// Sentinel errors for instance construction and loading. All represent an
// invalid instance: raised once, at load or construction time, never
// mid-search.
var (
	// ErrNoClients indicates a client table with fewer than one entry (the
	// depot itself is mandatory).
	ErrNoClients = errors.New("problem: client table must contain at least the depot")

	// ErrDepotDemand indicates client 0 (the depot) was given non-zero demand.
	ErrDepotDemand = errors.New("problem: depot must have zero demand")

	// ErrNegativeDemand indicates a client with negative demand.
	ErrNegativeDemand = errors.New("problem: client demand must be non-negative")

	// ErrNegativeService indicates a client with negative service duration.
	ErrNegativeService = errors.New("problem: service duration must be non-negative")

	// ErrBadWindow indicates a client whose earliest service start exceeds
	// its latest service start.
	ErrBadWindow = errors.New("problem: earliest time window bound exceeds latest")

	// ErrDimensionMismatch indicates the distance matrix order does not
	// match the number of clients.
	ErrDimensionMismatch = errors.New("problem: distance matrix dimension does not match client table")

	// ErrNonPositiveVehicles indicates a non-positive vehicle count.
	ErrNonPositiveVehicles = errors.New("problem: vehicle count must be positive")

	// ErrNonPositiveCapacity indicates a non-positive vehicle capacity.
	ErrNonPositiveCapacity = errors.New("problem: vehicle capacity must be positive")

	// ErrMalformedInstance indicates a structurally broken instance file
	// (missing header field, short row, unparsable number, ...).
	ErrMalformedInstance = errors.New("problem: malformed instance file")
)

// Client is one row of the instance's client table. Client 0 is always the
// depot: zero demand, zero service duration, and a time window spanning the
// whole planning horizon.
type Client struct {
	// X, Y are planar coordinates, used only to derive Euclidean distances
	// when no explicit matrix is supplied.
	X, Y float64

	// Demand is the non-negative quantity this client requests.
	Demand int

	// ServiceDuration is the time a vehicle must spend at this client once
	// service begins.
	ServiceDuration int

	// Earliest is the earliest time at which service may begin.
	Earliest int

	// Latest is the latest time at which service may begin.
	Latest int
}

// ProblemData is an immutable CVRPTW instance: a client table, a distance
// matrix, and fleet parameters. Every method is a pure read; once
// constructed a ProblemData is never mutated.
type ProblemData struct {
	clients  []Client
	dist     *DistanceMatrix
	nbVeh    int
	capacity int
}
